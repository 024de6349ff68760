package dto

// CreateServiceRequest body para POST /api/services.
type CreateServiceRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=200"`
	Description    string `json:"description" validate:"omitempty,max=2000"`
	BasePriceCents int64  `json:"base_price_cents" validate:"min=0"`
	Unit           string `json:"unit" validate:"omitempty,max=50"`
}

// UpdateServiceRequest body para PUT /api/services/:id.
type UpdateServiceRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=200"`
	Description    string `json:"description" validate:"omitempty,max=2000"`
	BasePriceCents int64  `json:"base_price_cents" validate:"min=0"`
	Unit           string `json:"unit" validate:"omitempty,max=50"`
	Active         bool   `json:"active"`
}

// ServiceResponse servicio del catálogo en respuestas.
type ServiceResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	BasePriceCents int64  `json:"base_price_cents"`
	Unit           string `json:"unit,omitempty"`
	Active         bool   `json:"active"`
}
