package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/application/quoting"
)

// QuoteHandler maneja las propuestas y sus subrecursos: ítems, descuento,
// estado, template aplicado, versiones, eventos del link y PDF (protegido).
type QuoteHandler struct {
	uc         *quoting.QuoteUseCase
	versionUC  *quoting.VersionUseCase
	templateUC *quoting.TemplateUseCase
	publicUC   *quoting.PublicUseCase
	pdfUC      *quoting.PDFUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(
	uc *quoting.QuoteUseCase,
	versionUC *quoting.VersionUseCase,
	templateUC *quoting.TemplateUseCase,
	publicUC *quoting.PublicUseCase,
	pdfUC *quoting.PDFUseCase,
) *QuoteHandler {
	return &QuoteHandler{
		uc:         uc,
		versionUC:  versionUC,
		templateUC: templateUC,
		publicUC:   publicUC,
		pdfUC:      pdfUC,
	}
}

// Create POST /api/quotes
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	quote, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// GetByID GET /api/quotes/:id
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	quote, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quote)
}

// List GET /api/quotes?status=draft&client_id=...&limit=20&offset=0
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), c.Query("status"), c.Query("client_id"), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/quotes/:id (solo draft)
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	quote, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quote)
}

// Delete DELETE /api/quotes/:id (solo draft)
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateDiscount PUT /api/quotes/:id/discount (solo draft)
func (h *QuoteHandler) UpdateDiscount(c *fiber.Ctx) error {
	var in dto.UpdateQuoteDiscount
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	quote, err := h.uc.UpdateDiscount(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quote)
}

// UpdateStatus PATCH /api/quotes/:id/status
func (h *QuoteHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateQuoteStatus
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	quote, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quote)
}

// AddItem POST /api/quotes/:id/items (solo draft, recalcula el total)
func (h *QuoteHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddQuoteItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	quote, err := h.uc.AddItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// UpdateItem PUT /api/quotes/:id/items/:itemId (solo draft, recalcula el total)
func (h *QuoteHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateQuoteItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	quote, err := h.uc.UpdateItem(c.Context(), c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quote)
}

// DeleteItem DELETE /api/quotes/:id/items/:itemId (solo draft, recalcula el total)
func (h *QuoteHandler) DeleteItem(c *fiber.Ctx) error {
	quote, err := h.uc.DeleteItem(c.Context(), c.Params("id"), c.Params("itemId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quote)
}

// ApplyTemplate POST /api/quotes/:id/apply-template (solo draft)
func (h *QuoteHandler) ApplyTemplate(c *fiber.Ctx) error {
	var in dto.ApplyTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	resp, err := h.templateUC.Apply(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// CreateVersion POST /api/quotes/:id/versions
func (h *QuoteHandler) CreateVersion(c *fiber.Ctx) error {
	var in dto.CreateVersionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(&in); err != nil {
		return badRequest(c, "VALIDATION", validationDetail(err))
	}
	version, err := h.versionUC.Create(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(version)
}

// ListVersions GET /api/quotes/:id/versions (más nuevas primero)
func (h *QuoteHandler) ListVersions(c *fiber.Ctx) error {
	versions, err := h.versionUC.List(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(versions)
}

// GetVersion GET /api/quotes/:id/versions/:number
func (h *QuoteHandler) GetVersion(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("number"))
	if err != nil || number < 1 {
		return badRequest(c, "VALIDATION", "número de versión inválido")
	}
	version, err := h.versionUC.Get(c.Context(), c.Params("id"), number)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(version)
}

// ListEvents GET /api/quotes/:id/events?limit=50
// Actividad del link público: aperturas, descargas, clicks y respuesta.
func (h *QuoteHandler) ListEvents(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	events, err := h.publicUC.ListEvents(c.Context(), c.Params("id"), limit)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(events)
}

// DownloadPDF GET /api/quotes/:id/pdf
func (h *QuoteHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadQuotePDF(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
