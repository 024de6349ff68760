package repository

import "github.com/lilnaht/bidFlow/internal/domain/entity"

// AcceptanceRepository define el puerto de persistencia para respuestas y
// eventos del link público.
type AcceptanceRepository interface {
	// CreateAcceptance registra la respuesta del cliente. La restricción
	// UNIQUE(quote_id) garantiza que la primera respuesta gana; un segundo
	// intento devuelve domain.ErrDuplicate.
	CreateAcceptance(acceptance *entity.QuoteAcceptance) error
	GetAcceptanceByQuote(quoteID string) (*entity.QuoteAcceptance, error)

	CreateEvent(event *entity.QuoteEvent) error
	ListEventsByQuote(quoteID string, limit int) ([]*entity.QuoteEvent, error)
}
