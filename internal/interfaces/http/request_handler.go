package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/application/usecase"
)

// RequestHandler maneja las solicitudes de presupuesto. El alta es pública
// (la consume el formulario del sitio); el resto requiere sesión.
type RequestHandler struct {
	uc *usecase.RequestUseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// CreatePublic POST /api/requests (público)
func (h *RequestHandler) CreatePublic(c *fiber.Ctx) error {
	var in dto.CreateRequestPublic
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	request, err := h.uc.CreatePublic(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetByID GET /api/requests/:id
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	request, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(request)
}

// List GET /api/requests?status=new&limit=20&offset=0
func (h *RequestHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	requests, pageResp, err := h.uc.List(c.Context(), c.Query("status"), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"requests": requests, "page": pageResp})
}

// UpdateStatus PATCH /api/requests/:id/status
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateRequestStatus
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	request, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(request)
}

// Delete DELETE /api/requests/:id
func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
