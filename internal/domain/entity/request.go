package entity

import "time"

// Estados de una solicitud de presupuesto (lead del formulario público).
const (
	RequestStatusNew      = "new"
	RequestStatusReview   = "review"
	RequestStatusSent     = "sent"
	RequestStatusApproved = "approved"
	RequestStatusLost     = "lost"
)

// Request representa una solicitud de presupuesto capturada por el formulario
// público o registrada manualmente por un admin.
type Request struct {
	ID              string
	ClientID        string // vacío hasta que se vincula/crea el cliente
	Name            string
	Email           string
	WhatsApp        string
	ProjectType     string
	Description     string
	BudgetEstimate  string // texto libre ("R$ 5.000 - R$ 10.000")
	DesiredDeadline string // texto libre ("2 semanas")
	Status          string
	Source          string // form, manual, referral
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
