package repository

import "github.com/lilnaht/bidFlow/internal/domain/entity"

// QuoteVersionRepository define el puerto de persistencia para versiones
// inmutables de propuestas. No hay Update ni Delete: las versiones solo se
// crean y se leen.
type QuoteVersionRepository interface {
	// Create inserta la versión calculando el número como max(version)+1 de la
	// propuesta dentro del mismo INSERT. Ante carrera, la restricción
	// UNIQUE(quote_id, version) hace fallar al perdedor con domain.ErrDuplicate
	// y el caso de uso reintenta. El campo Version de la entidad se completa
	// con el número asignado.
	Create(version *entity.QuoteVersion) error
	GetByID(id string) (*entity.QuoteVersion, error)
	GetByNumber(quoteID string, number int) (*entity.QuoteVersion, error)
	// ListByQuote devuelve las versiones de la más nueva a la más vieja.
	ListByQuote(quoteID string) ([]*entity.QuoteVersion, error)
}
