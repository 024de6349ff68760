package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/application/quoting"
)

// PublicHandler maneja el link público de propuestas. Sin autenticación: el
// token opaco de la URL es la credencial.
type PublicHandler struct {
	uc *quoting.PublicUseCase
}

// NewPublicHandler construye el handler.
func NewPublicHandler(uc *quoting.PublicUseCase) *PublicHandler {
	return &PublicHandler{uc: uc}
}

// GetByToken GET /api/public/quotes/:token
func (h *PublicHandler) GetByToken(c *fiber.Ctx) error {
	quote, err := h.uc.GetByToken(c.Context(), c.Params("token"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quote)
}

// Respond POST /api/public/quotes/:token/respond
// Registra aceptación o rechazo; la primera respuesta gana.
func (h *PublicHandler) Respond(c *fiber.Ctx) error {
	var in dto.RespondQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	resp, err := h.uc.Respond(c.Context(), c.Params("token"), c.IP(), c.Get(fiber.HeaderUserAgent), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// RecordEvent POST /api/public/quotes/:token/events
// Registra opened/downloaded/clicked para el historial de actividad.
func (h *PublicHandler) RecordEvent(c *fiber.Ctx) error {
	var in dto.PublicEventRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	if err := h.uc.RecordEvent(c.Context(), c.Params("token"), c.IP(), c.Get(fiber.HeaderUserAgent), in); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
