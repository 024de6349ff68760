package entity

import (
	"time"

	"github.com/lilnaht/bidFlow/internal/domain/pricing"
)

// QuoteItem representa una línea de una propuesta. Pertenece a exactamente una
// Quote y se elimina en cascada con ella.
type QuoteItem struct {
	ID             string
	QuoteID        string
	ServiceID      string // servicio del catálogo de origen, opcional
	Title          string
	Description    string
	Quantity       int64 // siempre positiva; default 1
	UnitPriceCents pricing.Money
	SortOrder      int // orden de impresión; empates se resuelven por orden de inserción
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LineTotal total de la línea: cantidad × precio unitario.
func (i *QuoteItem) LineTotal() pricing.Money {
	return pricing.Money(i.Quantity * int64(i.UnitPriceCents))
}

// PricingItems convierte líneas de propuesta a la entrada del calculador.
func PricingItems(items []*QuoteItem) []pricing.Item {
	out := make([]pricing.Item, 0, len(items))
	for _, item := range items {
		out = append(out, pricing.Item{Quantity: item.Quantity, UnitPrice: item.UnitPriceCents})
	}
	return out
}
