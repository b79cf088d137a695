package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/ledger"
)

// MovementHandler maneja el registro de entradas y salidas de stock.
type MovementHandler struct {
	uc *ledger.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Inbound POST /api/movements/inbound
func (h *MovementHandler) Inbound(c *fiber.Ctx) error {
	var in dto.InboundRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	summary, err := h.uc.RecordInbound(ledger.InboundInput{
		Model:    in.Model,
		Size:     in.Size,
		Quantity: in.Quantity,
		Date:     in.Date,
		Workshop: in.Workshop,
		Supplier: in.Supplier,
		Notes:    in.Notes,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "result": summary})
}

// Outbound POST /api/movements/outbound
func (h *MovementHandler) Outbound(c *fiber.Ctx) error {
	var in dto.OutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.uc.RecordOutbound(ledger.OutboundInput{
		Model:       in.Model,
		Size:        in.Size,
		Quantity:    in.Quantity,
		Date:        in.Date,
		Client:      in.Client,
		OrderRef:    in.OrderRef,
		DeliveryRef: in.DeliveryRef,
	})
	if err != nil {
		return fail(c, err)
	}
	body := fiber.Map{"ok": true, "result": res}
	// El stock insuficiente no bloquea la salida: se avisa y se registra.
	if res.Insufficient {
		body["warning"] = "stock insuficiente: el stock real queda en negativo"
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}
