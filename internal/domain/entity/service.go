package entity

import (
	"time"

	"github.com/lilnaht/bidFlow/internal/domain/pricing"
)

// Service es un servicio del catálogo: sirve de base para crear ítems de
// propuesta con precio sugerido.
type Service struct {
	ID             string
	Name           string
	Description    string
	BasePriceCents pricing.Money
	Unit           string // "hora", "projeto", "mes"
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
