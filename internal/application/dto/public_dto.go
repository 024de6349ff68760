package dto

// PublicQuoteResponse propuesta tal como la ve el cliente en el link público.
// Expone solo lo necesario: nada de IDs internos de cliente ni notas privadas.
type PublicQuoteResponse struct {
	Title          string              `json:"title"`
	CompanyName    string              `json:"company_name"`
	ClientName     string              `json:"client_name"`
	Status         string              `json:"status"`
	SubtotalCents  int64               `json:"subtotal_cents"`
	DiscountCents  int64               `json:"discount_cents"`
	TotalCents     int64               `json:"total_cents"`
	TotalFormatted string              `json:"total_formatted"`
	Proposal       string              `json:"proposal,omitempty"` // texto renderizado del template
	Items          []QuoteItemResponse `json:"items"`
	ValidUntil     string              `json:"valid_until,omitempty"`
	Responded      bool                `json:"responded"`
	Decision       string              `json:"decision,omitempty"`
}

// RespondQuoteRequest body para POST /api/public/quotes/:token/respond.
type RespondQuoteRequest struct {
	Decision   string `json:"decision" validate:"required,oneof=accepted declined"`
	SignerName string `json:"signer_name" validate:"required,min=2,max=200"`
	Comment    string `json:"comment" validate:"omitempty,max=2000"`
}

// RespondQuoteResponse confirmación de la respuesta registrada.
type RespondQuoteResponse struct {
	Decision  string `json:"decision"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// PublicEventRequest body para POST /api/public/quotes/:token/events.
type PublicEventRequest struct {
	Type     string `json:"type" validate:"required,oneof=opened downloaded clicked"`
	Metadata string `json:"metadata" validate:"omitempty,max=2000"`
}

// QuoteEventResponse evento del link público en listados de actividad.
type QuoteEventResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Metadata  string `json:"metadata,omitempty"`
	CreatedAt string `json:"created_at"`
}
