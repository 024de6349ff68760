package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/repository"
)

var _ repository.QuoteVersionRepository = (*QuoteVersionRepo)(nil)

// QuoteVersionRepo implementación de QuoteVersionRepository (usable con pool o tx).
type QuoteVersionRepo struct {
	q Querier
}

// NewQuoteVersionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteVersionRepository(q Querier) *QuoteVersionRepo {
	return &QuoteVersionRepo{q: q}
}

// Create inserta la versión calculando el número dentro del propio INSERT:
// max(version)+1 de la propuesta, o 1 si no hay ninguna. Dos inserciones
// concurrentes pueden calcular el mismo número; la UNIQUE(quote_id, version)
// hace fallar a una con domain.ErrDuplicate y el caso de uso reintenta.
func (r *QuoteVersionRepo) Create(version *entity.QuoteVersion) error {
	snapshot, err := json.Marshal(version.Snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	query := `
		INSERT INTO quote_versions (id, quote_id, version, snapshot, note, created_by, created_at)
		SELECT $1, $2, COALESCE(MAX(version), 0) + 1, $3, $4, NULLIF($5, '')::uuid, $6
		FROM quote_versions WHERE quote_id = $2
		RETURNING version`
	err = r.q.QueryRow(context.Background(), query,
		version.ID, version.QuoteID, snapshot, version.Note, version.CreatedBy, version.CreatedAt,
	).Scan(&version.Version)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote version: %w", err)
	}
	return nil
}

// GetByID obtiene una versión por ID.
func (r *QuoteVersionRepo) GetByID(id string) (*entity.QuoteVersion, error) {
	query := `
		SELECT id, quote_id, version, snapshot, note, COALESCE(created_by::text, ''), created_at
		FROM quote_versions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByNumber obtiene la versión n de una propuesta.
func (r *QuoteVersionRepo) GetByNumber(quoteID string, number int) (*entity.QuoteVersion, error) {
	query := `
		SELECT id, quote_id, version, snapshot, note, COALESCE(created_by::text, ''), created_at
		FROM quote_versions WHERE quote_id = $1 AND version = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, quoteID, number))
}

// ListByQuote devuelve las versiones de la más nueva a la más vieja.
func (r *QuoteVersionRepo) ListByQuote(quoteID string) ([]*entity.QuoteVersion, error) {
	query := `
		SELECT id, quote_id, version, snapshot, note, COALESCE(created_by::text, ''), created_at
		FROM quote_versions WHERE quote_id = $1
		ORDER BY version DESC`
	rows, err := r.q.Query(context.Background(), query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote versions: %w", err)
	}
	defer rows.Close()

	var out []*entity.QuoteVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *QuoteVersionRepo) scanOne(row pgx.Row) (*entity.QuoteVersion, error) {
	v, err := scanVersion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote version: %w", err)
	}
	return v, nil
}

func scanVersion(row pgx.Row) (*entity.QuoteVersion, error) {
	var v entity.QuoteVersion
	var snapshot []byte
	if err := row.Scan(&v.ID, &v.QuoteID, &v.Version, &snapshot, &v.Note, &v.CreatedBy, &v.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(snapshot, &v.Snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &v, nil
}
