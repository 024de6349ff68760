package entity

import (
	"time"

	"github.com/lilnaht/bidFlow/internal/domain/pricing"
)

// Estados del ciclo de vida de una propuesta.
// Transiciones permitidas: draft → sent → approved | lost, y draft → lost
// (abandonada sin enviar). Ninguna transición es automática; todas las dispara
// un admin.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusApproved = "approved"
	QuoteStatusLost     = "lost"
)

// Quote es la raíz del agregado de propuestas: ítems, política de descuento,
// snapshot del template y datos del link público.
//
// AmountCents guarda el total vigente: el calculado a partir de los ítems, o
// el monto cerrado ingresado a mano cuando la propuesta no tiene ítems.
type Quote struct {
	ID               string
	ClientID         string
	RequestID        string // solicitud de origen, opcional
	Title            string
	AmountCents      pricing.Money
	Currency         string // "BRL"
	DeadlineText     string // plazo en texto libre ("30 dias")
	Status           string
	Notes            string
	Discount         pricing.Discount
	TemplateID       string // template aplicado, opcional
	TemplateSnapshot string // texto renderizado y congelado al aplicar el template
	PublicToken      string // token opaco del link público; se genera al pasar a sent
	PublicExpiresAt  *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CanTransitionTo valida la máquina de estados de la propuesta.
func (q *Quote) CanTransitionTo(next string) bool {
	switch q.Status {
	case QuoteStatusDraft:
		return next == QuoteStatusSent || next == QuoteStatusLost
	case QuoteStatusSent:
		return next == QuoteStatusApproved || next == QuoteStatusLost
	default:
		return false
	}
}

// PublicLinkActive indica si el link público sigue vigente en el instante dado.
func (q *Quote) PublicLinkActive(now time.Time) bool {
	if q.PublicToken == "" || q.PublicExpiresAt == nil {
		return false
	}
	return now.Before(*q.PublicExpiresAt)
}
