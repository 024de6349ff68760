package dto

// CreateTemplateRequest body para POST /api/templates.
type CreateTemplateRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=200"`
	Body      string `json:"body" validate:"required,max=50000"`
	IsDefault bool   `json:"is_default"`
}

// UpdateTemplateRequest body para PUT /api/templates/:id.
type UpdateTemplateRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=200"`
	Body      string `json:"body" validate:"required,max=50000"`
	IsDefault bool   `json:"is_default"`
}

// TemplateResponse template en respuestas.
type TemplateResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Body      string `json:"body"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PreviewTemplateRequest body para POST /api/templates/preview: renderiza un
// body arbitrario con datos de ejemplo sin persistir nada.
type PreviewTemplateRequest struct {
	Body string `json:"body" validate:"required,max=50000"`
}

// PreviewTemplateResponse texto renderizado de la vista previa.
type PreviewTemplateResponse struct {
	Rendered string `json:"rendered"`
}
