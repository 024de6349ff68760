package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes del CRM (protegido).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	client, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(client)
}

// List GET /api/clients?status=active&search=acme&limit=20&offset=0
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	clients, pageResp, err := h.uc.List(c.Context(), c.Query("status"), c.Query("search"), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"clients": clients, "page": pageResp})
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	client, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddContact POST /api/clients/:id/contacts
func (h *ClientHandler) AddContact(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	contact, err := h.uc.AddContact(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

// ListContacts GET /api/clients/:id/contacts
func (h *ClientHandler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.uc.ListContacts(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(contacts)
}

// DeleteContact DELETE /api/clients/:id/contacts/:contactId
func (h *ClientHandler) DeleteContact(c *fiber.Ctx) error {
	if err := h.uc.DeleteContact(c.Context(), c.Params("contactId")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
