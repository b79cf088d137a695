package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-ledger/internal/application/audit"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
)

// AuditHandler maneja la auditoría del stock: diferencias y reparaciones.
type AuditHandler struct {
	uc *audit.UseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.UseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// Diff GET /api/audit/diff?model=M1
func (h *AuditHandler) Diff(c *fiber.Ctx) error {
	rows := h.uc.Diff(c.Query("model"))
	return c.JSON(fiber.Map{"ok": true, "differences": rows})
}

// Apply POST /api/audit/apply
func (h *AuditHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyFixRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	fixed, err := h.uc.ApplyFix(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "fixed": fixed})
}

// Regularize POST /api/audit/regularize
func (h *AuditHandler) Regularize(c *fiber.Ctx) error {
	var in dto.RegularizeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entries, err := h.uc.Regularize(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "entries": entries})
}
