package entity

import "time"

// Decisiones posibles del cliente sobre una propuesta publicada.
const (
	AcceptanceAccepted = "accepted"
	AcceptanceDeclined = "declined"
)

// Tipos de evento registrados sobre el link público de una propuesta.
const (
	EventOpened     = "opened"
	EventDownloaded = "downloaded"
	EventClicked    = "clicked"
	EventResponded  = "responded"
)

// QuoteAcceptance registra la respuesta del cliente desde el link público.
// Una propuesta tiene a lo sumo una aceptación; la primera respuesta gana.
type QuoteAcceptance struct {
	ID         string
	QuoteID    string
	Decision   string // accepted | declined
	SignerName string
	Comment    string
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
}

// QuoteEvent es un evento de actividad sobre el link público (apertura,
// descarga del PDF, clic, respuesta). Solo inserción, nunca se edita.
type QuoteEvent struct {
	ID        string
	QuoteID   string
	Type      string
	Metadata  string // JSON libre con detalle del evento
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}
