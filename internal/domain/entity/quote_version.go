package entity

import (
	"time"

	"github.com/lilnaht/bidFlow/internal/domain/pricing"
)

// SnapshotSchemaVersion versión actual del esquema del snapshot. Se guarda
// dentro del JSON para poder migrar snapshots viejos si el esquema cambia.
const SnapshotSchemaVersion = 1

// SnapshotItem es una línea congelada dentro de un snapshot de versión.
type SnapshotItem struct {
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	Quantity       int64         `json:"quantity"`
	UnitPriceCents pricing.Money `json:"unit_price_cents"`
}

// SnapshotQuote son los campos de la propuesta congelados en un snapshot.
type SnapshotQuote struct {
	Title           string        `json:"title"`
	AmountCents     pricing.Money `json:"amount_cents"`
	SubtotalCents   pricing.Money `json:"subtotal_cents"`
	DiscountCents   pricing.Money `json:"discount_cents"`
	DiscountType    string        `json:"discount_type,omitempty"`
	DiscountPercent string        `json:"discount_percent,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	DeadlineText    string        `json:"deadline_text,omitempty"`
}

// QuoteSnapshot es la foto completa e inmutable de una propuesta en el momento
// de crear una versión. Se serializa a JSON en la columna snapshot.
type QuoteSnapshot struct {
	SchemaVersion int            `json:"schema_version"`
	Quote         SnapshotQuote  `json:"quote"`
	Items         []SnapshotItem `json:"items"`
}

// QuoteVersion es una versión numerada e inmutable de una propuesta.
// El número arranca en 1 por propuesta y crece sin huecos; una vez creada,
// la versión nunca se modifica ni se borra.
type QuoteVersion struct {
	ID        string
	QuoteID   string
	Version   int
	Snapshot  QuoteSnapshot
	Note      string // motivo del cambio, opcional
	CreatedBy string // user id del admin que versionó, opcional
	CreatedAt time.Time
}

// BuildSnapshot congela el estado actual de una propuesta y sus ítems.
func BuildSnapshot(q *Quote, items []*QuoteItem) QuoteSnapshot {
	totals := pricing.QuoteTotals(PricingItems(items), q.Discount, q.AmountCents)

	snap := QuoteSnapshot{
		SchemaVersion: SnapshotSchemaVersion,
		Quote: SnapshotQuote{
			Title:         q.Title,
			AmountCents:   totals.Total,
			SubtotalCents: totals.Subtotal,
			DiscountCents: totals.Discount,
			DiscountType:  q.Discount.Type,
			Notes:         q.Notes,
			DeadlineText:  q.DeadlineText,
		},
		Items: make([]SnapshotItem, 0, len(items)),
	}
	if q.Discount.Type == pricing.DiscountPercent {
		snap.Quote.DiscountPercent = q.Discount.Percent.String()
	}
	for _, item := range items {
		snap.Items = append(snap.Items, SnapshotItem{
			Title:          item.Title,
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return snap
}
