package dto

// CreateQuoteRequest body para POST /api/quotes.
// AmountCents es el monto cerrado inicial; si después se agregan ítems, el
// total pasa a calcularse a partir de ellos.
type CreateQuoteRequest struct {
	ClientID     string `json:"client_id" validate:"required,uuid4"`
	RequestID    string `json:"request_id" validate:"omitempty,uuid4"`
	Title        string `json:"title" validate:"required,min=2,max=200"`
	AmountCents  int64  `json:"amount_cents" validate:"omitempty,min=0"`
	DeadlineText string `json:"deadline_text" validate:"omitempty,max=200"`
	Notes        string `json:"notes" validate:"omitempty,max=5000"`
}

// UpdateQuoteRequest body para PUT /api/quotes/:id (solo en estado draft).
type UpdateQuoteRequest struct {
	Title        string `json:"title" validate:"required,min=2,max=200"`
	AmountCents  int64  `json:"amount_cents" validate:"omitempty,min=0"`
	DeadlineText string `json:"deadline_text" validate:"omitempty,max=200"`
	Notes        string `json:"notes" validate:"omitempty,max=5000"`
}

// UpdateQuoteDiscount body para PUT /api/quotes/:id/discount.
// Type vacío elimina el descuento. Percent se envía como string decimal
// ("12.5") para no perder precisión en el JSON.
type UpdateQuoteDiscount struct {
	Type        string `json:"type" validate:"omitempty,oneof=percent fixed_amount"`
	Percent     string `json:"percent" validate:"omitempty,max=10"`
	AmountCents int64  `json:"amount_cents" validate:"omitempty,min=0"`
}

// UpdateQuoteStatus body para PATCH /api/quotes/:id/status.
type UpdateQuoteStatus struct {
	Status string `json:"status" validate:"required,oneof=sent approved lost"`
}

// AddQuoteItemRequest body para POST /api/quotes/:id/items.
type AddQuoteItemRequest struct {
	ServiceID      string `json:"service_id" validate:"omitempty,uuid4"`
	Title          string `json:"title" validate:"required,min=1,max=200"`
	Description    string `json:"description" validate:"omitempty,max=2000"`
	Quantity       int64  `json:"quantity" validate:"required,min=1"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"min=0"`
	SortOrder      int    `json:"sort_order" validate:"omitempty,min=0"`
}

// UpdateQuoteItemRequest body para PUT /api/quotes/:id/items/:itemId.
type UpdateQuoteItemRequest struct {
	Title          string `json:"title" validate:"required,min=1,max=200"`
	Description    string `json:"description" validate:"omitempty,max=2000"`
	Quantity       int64  `json:"quantity" validate:"required,min=1"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"min=0"`
	SortOrder      int    `json:"sort_order" validate:"omitempty,min=0"`
}

// QuoteItemResponse línea de propuesta en respuestas.
type QuoteItemResponse struct {
	ID             string `json:"id"`
	ServiceID      string `json:"service_id,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Quantity       int64  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
	SortOrder      int    `json:"sort_order"`
}

// QuoteResponse propuesta completa para GET /api/quotes/:id.
type QuoteResponse struct {
	ID              string              `json:"id"`
	ClientID        string              `json:"client_id"`
	RequestID       string              `json:"request_id,omitempty"`
	Title           string              `json:"title"`
	Status          string              `json:"status"`
	Currency        string              `json:"currency"`
	SubtotalCents   int64               `json:"subtotal_cents"`
	DiscountCents   int64               `json:"discount_cents"`
	TotalCents      int64               `json:"total_cents"`
	TotalFormatted  string              `json:"total_formatted"`
	DiscountType    string              `json:"discount_type,omitempty"`
	DiscountPercent string              `json:"discount_percent,omitempty"`
	DeadlineText    string              `json:"deadline_text,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	TemplateID      string              `json:"template_id,omitempty"`
	PublicURL       string              `json:"public_url,omitempty"`
	PublicExpiresAt string              `json:"public_expires_at,omitempty"`
	Items           []QuoteItemResponse `json:"items"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       string              `json:"updated_at"`
}

// QuoteListItem propuesta resumida para listados.
type QuoteListItem struct {
	ID             string `json:"id"`
	ClientID       string `json:"client_id"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	TotalCents     int64  `json:"total_cents"`
	TotalFormatted string `json:"total_formatted"`
	CreatedAt      string `json:"created_at"`
}

// QuoteListResponse página de propuestas.
type QuoteListResponse struct {
	Quotes []QuoteListItem `json:"quotes"`
	Page   PageResponse    `json:"page"`
}

// ApplyTemplateRequest body para POST /api/quotes/:id/apply-template.
// TemplateID vacío usa el template default.
type ApplyTemplateRequest struct {
	TemplateID string `json:"template_id" validate:"omitempty,uuid4"`
}

// ApplyTemplateResponse texto renderizado y congelado en la propuesta.
type ApplyTemplateResponse struct {
	QuoteID    string `json:"quote_id"`
	TemplateID string `json:"template_id"`
	Rendered   string `json:"rendered"`
}
