package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-ledger/internal/application/directory"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
)

// DirectoryHandler sirve un directorio de contactos; se instancia dos veces,
// una para talleres y otra para clientes.
type DirectoryHandler struct {
	uc *directory.UseCase
}

// NewDirectoryHandler construye el handler.
func NewDirectoryHandler(uc *directory.UseCase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// List GET /api/{workshops|clients}
func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "entries": h.uc.List()})
}

// Create POST /api/{workshops|clients}
func (h *DirectoryHandler) Create(c *fiber.Ctx) error {
	var in dto.DirectoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Add(in.Name, in.Contact); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// Update PUT /api/{workshops|clients}/:name
func (h *DirectoryHandler) Update(c *fiber.Ctx) error {
	var in dto.DirectoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Edit(c.Params("name"), in.NewName, in.Contact); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Delete DELETE /api/{workshops|clients}/:name
func (h *DirectoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("name")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
