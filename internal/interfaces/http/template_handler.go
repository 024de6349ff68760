package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/application/quoting"
)

// TemplateHandler maneja los templates de propuesta (protegido).
type TemplateHandler struct {
	uc *quoting.TemplateUseCase
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(uc *quoting.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// Create POST /api/templates
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	template, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(template)
}

// GetByID GET /api/templates/:id
func (h *TemplateHandler) GetByID(c *fiber.Ctx) error {
	template, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(template)
}

// List GET /api/templates
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	templates, err := h.uc.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(templates)
}

// Update PUT /api/templates/:id
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	template, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(template)
}

// Delete DELETE /api/templates/:id
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Preview POST /api/templates/preview
// Renderiza un body arbitrario con datos de ejemplo; no persiste nada.
func (h *TemplateHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	return c.JSON(h.uc.Preview(c.Context(), in))
}
