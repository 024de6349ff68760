package dto

// CreateVersionRequest body para POST /api/quotes/:id/versions.
type CreateVersionRequest struct {
	Note string `json:"note" validate:"omitempty,max=500"`
}

// SnapshotItemDTO línea congelada dentro de un snapshot.
type SnapshotItemDTO struct {
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Quantity       int64  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// SnapshotDTO foto inmutable de la propuesta en el momento de versionar.
type SnapshotDTO struct {
	SchemaVersion   int               `json:"schema_version"`
	Title           string            `json:"title"`
	AmountCents     int64             `json:"amount_cents"`
	SubtotalCents   int64             `json:"subtotal_cents"`
	DiscountCents   int64             `json:"discount_cents"`
	DiscountType    string            `json:"discount_type,omitempty"`
	DiscountPercent string            `json:"discount_percent,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	DeadlineText    string            `json:"deadline_text,omitempty"`
	Items           []SnapshotItemDTO `json:"items"`
}

// VersionResponse versión para GET /api/quotes/:id/versions.
// DiffCents = total del snapshot − total vigente de la propuesta: positivo
// significa que la versión estaba más cara que el estado actual.
type VersionResponse struct {
	ID            string      `json:"id"`
	QuoteID       string      `json:"quote_id"`
	Version       int         `json:"version"`
	Note          string      `json:"note,omitempty"`
	CreatedBy     string      `json:"created_by,omitempty"`
	CreatedAt     string      `json:"created_at"`
	DiffCents     int64       `json:"diff_cents"`
	DiffFormatted string      `json:"diff_formatted"`
	Snapshot      SnapshotDTO `json:"snapshot"`
}
