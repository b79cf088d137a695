package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/ledger"
)

// StockHandler maneja el stock real: consulta, corrección manual y negativos.
type StockHandler struct {
	uc *ledger.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *ledger.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Query GET /api/stock?model=M1
func (h *StockHandler) Query(c *fiber.Ctx) error {
	rows := h.uc.Query(c.Query("model"))
	return c.JSON(fiber.Map{"ok": true, "stock": rows})
}

// Override PUT /api/stock
func (h *StockHandler) Override(c *fiber.Ctx) error {
	var in dto.OverrideStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.OverrideStock(in); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Negative GET /api/stock/negative
func (h *StockHandler) Negative(c *fiber.Ctx) error {
	rows := h.uc.NegativeStock()
	return c.JSON(fiber.Map{"ok": true, "stock": rows})
}

// ZeroNegatives POST /api/stock/negative/zero
func (h *StockHandler) ZeroNegatives(c *fiber.Ctx) error {
	adjusted, err := h.uc.ZeroOutNegatives()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "adjusted": adjusted})
}
