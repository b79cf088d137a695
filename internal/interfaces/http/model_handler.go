package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-ledger/internal/application/catalog"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/identity"
)

// ModelHandler maneja los metadatos de modelo y el renombrado de códigos.
type ModelHandler struct {
	catalog  *catalog.UseCase
	identity *identity.UseCase
}

// NewModelHandler construye el handler.
func NewModelHandler(cat *catalog.UseCase, id *identity.UseCase) *ModelHandler {
	return &ModelHandler{catalog: cat, identity: id}
}

// UpdateInfo PATCH /api/models/:code
func (h *ModelHandler) UpdateInfo(c *fiber.Ctx) error {
	var patch dto.ModelInfoPatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c)
	}
	if err := h.catalog.UpdateModelInfo(c.Params("code"), patch); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Rename POST /api/models/:code/rename
func (h *ModelHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameModelRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.identity.RenameModel(c.Params("code"), in.NewCode); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
