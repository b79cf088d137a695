package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/forecast"
)

// ForecastHandler maneja órdenes de fabricación, compromisos y el estimado.
type ForecastHandler struct {
	uc *forecast.UseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *forecast.UseCase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// ListManufacturing GET /api/manufacturing
func (h *ForecastHandler) ListManufacturing(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "orders": h.uc.ListManufacturing()})
}

// CreateManufacturing POST /api/manufacturing
func (h *ForecastHandler) CreateManufacturing(c *fiber.Ctx) error {
	var in dto.ManufacturingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.RegisterOrder(in); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// UpdateManufacturing PUT /api/manufacturing/:index
func (h *ForecastHandler) UpdateManufacturing(c *fiber.Ctx) error {
	idx, err := c.ParamsInt("index")
	if err != nil {
		return badIndex(c)
	}
	var in struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.EditOrderQuantity(idx, in.Quantity); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// DeleteManufacturing DELETE /api/manufacturing/:index
func (h *ForecastHandler) DeleteManufacturing(c *fiber.Ctx) error {
	idx, err := c.ParamsInt("index")
	if err != nil {
		return badIndex(c)
	}
	if err := h.uc.DeleteOrder(idx); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ListCommitments GET /api/commitments
func (h *ForecastHandler) ListCommitments(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "commitments": h.uc.ListCommitments()})
}

// CreateCommitment POST /api/commitments
func (h *ForecastHandler) CreateCommitment(c *fiber.Ctx) error {
	var in dto.CommitmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.RegisterCommitment(in); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// UpdateCommitment PUT /api/commitments/:index
func (h *ForecastHandler) UpdateCommitment(c *fiber.Ctx) error {
	idx, err := c.ParamsInt("index")
	if err != nil {
		return badIndex(c)
	}
	var patch dto.CommitmentPatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c)
	}
	if err := h.uc.EditCommitment(idx, patch); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// DeleteCommitment DELETE /api/commitments/:index
func (h *ForecastHandler) DeleteCommitment(c *fiber.Ctx) error {
	idx, err := c.ParamsInt("index")
	if err != nil {
		return badIndex(c)
	}
	if err := h.uc.DeleteCommitment(idx); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Estimate GET /api/estimate
func (h *ForecastHandler) Estimate(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "estimate": h.uc.EstimateAll()})
}

// SuggestedCut GET /api/estimate/cut
func (h *ForecastHandler) SuggestedCut(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "cut": h.uc.SuggestedCut()})
}
