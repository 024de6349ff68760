package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/repository"
)

var _ repository.AcceptanceRepository = (*AcceptanceRepo)(nil)

// AcceptanceRepo implementación de AcceptanceRepository (usable con pool o tx).
type AcceptanceRepo struct {
	q Querier
}

// NewAcceptanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAcceptanceRepository(q Querier) *AcceptanceRepo {
	return &AcceptanceRepo{q: q}
}

// CreateAcceptance registra la respuesta del cliente. La UNIQUE(quote_id)
// garantiza una sola respuesta por propuesta.
func (r *AcceptanceRepo) CreateAcceptance(a *entity.QuoteAcceptance) error {
	query := `
		INSERT INTO quote_acceptances (id, quote_id, decision, signer_name, comment, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.QuoteID, a.Decision, a.SignerName, a.Comment, a.IPAddress, a.UserAgent, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert acceptance: %w", err)
	}
	return nil
}

// GetAcceptanceByQuote obtiene la respuesta de una propuesta, o nil si no hay.
func (r *AcceptanceRepo) GetAcceptanceByQuote(quoteID string) (*entity.QuoteAcceptance, error) {
	query := `
		SELECT id, quote_id, decision, signer_name, comment, ip_address, user_agent, created_at
		FROM quote_acceptances WHERE quote_id = $1`
	var a entity.QuoteAcceptance
	err := r.q.QueryRow(context.Background(), query, quoteID).Scan(
		&a.ID, &a.QuoteID, &a.Decision, &a.SignerName, &a.Comment, &a.IPAddress, &a.UserAgent, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get acceptance: %w", err)
	}
	return &a, nil
}

// CreateEvent registra un evento de actividad del link público.
func (r *AcceptanceRepo) CreateEvent(ev *entity.QuoteEvent) error {
	query := `
		INSERT INTO quote_events (id, quote_id, type, metadata, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ev.ID, ev.QuoteID, ev.Type, ev.Metadata, ev.IPAddress, ev.UserAgent, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote event: %w", err)
	}
	return nil
}

// ListEventsByQuote devuelve los eventos más recientes primero.
func (r *AcceptanceRepo) ListEventsByQuote(quoteID string, limit int) ([]*entity.QuoteEvent, error) {
	query := `
		SELECT id, quote_id, type, metadata, ip_address, user_agent, created_at
		FROM quote_events WHERE quote_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, quoteID, limit)
	if err != nil {
		return nil, fmt.Errorf("list quote events: %w", err)
	}
	defer rows.Close()

	var out []*entity.QuoteEvent
	for rows.Next() {
		var ev entity.QuoteEvent
		if err := rows.Scan(&ev.ID, &ev.QuoteID, &ev.Type, &ev.Metadata, &ev.IPAddress, &ev.UserAgent, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quote event: %w", err)
		}
		out = append(out, &ev)
	}
	return out, rows.Err()
}
