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

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `
	id, client_id, COALESCE(request_id::text, ''), title, amount_cents, currency,
	deadline_text, status, notes,
	discount_type, discount_percent, discount_amount_cents,
	COALESCE(template_id::text, ''), template_snapshot,
	COALESCE(public_token, ''), public_expires_at,
	created_at, updated_at`

// Create persiste una nueva propuesta.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (
			id, client_id, request_id, title, amount_cents, currency,
			deadline_text, status, notes,
			discount_type, discount_percent, discount_amount_cents,
			template_id, template_snapshot, public_token, public_expires_at,
			created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, NULLIF($13, '')::uuid, $14, NULLIF($15, ''), $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.ClientID, quote.RequestID, quote.Title, int64(quote.AmountCents), quote.Currency,
		quote.DeadlineText, quote.Status, quote.Notes,
		quote.Discount.Type, quote.Discount.Percent, int64(quote.Discount.Amount),
		quote.TemplateID, quote.TemplateSnapshot, quote.PublicToken, quote.PublicExpiresAt,
		quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene una propuesta por ID.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByPublicToken obtiene una propuesta por el token del link público.
func (r *QuoteRepo) GetByPublicToken(token string) (*entity.Quote, error) {
	if token == "" {
		return nil, nil
	}
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE public_token = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, token))
}

// List devuelve propuestas filtradas por estado y cliente, más nuevas primero,
// junto con el total sin paginar.
func (r *QuoteRepo) List(status, clientID string, limit, offset int) ([]*entity.Quote, int, error) {
	query := `
		SELECT ` + quoteColumns + `, COUNT(*) OVER ()
		FROM quotes
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR client_id = $2::uuid)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, status, clientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Quote
	var total int
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(
			&q.ID, &q.ClientID, &q.RequestID, &q.Title, &q.AmountCents, &q.Currency,
			&q.DeadlineText, &q.Status, &q.Notes,
			&q.Discount.Type, &q.Discount.Percent, &q.Discount.Amount,
			&q.TemplateID, &q.TemplateSnapshot,
			&q.PublicToken, &q.PublicExpiresAt,
			&q.CreatedAt, &q.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan quote: %w", err)
		}
		out = append(out, &q)
	}
	return out, total, rows.Err()
}

// Update actualiza todos los campos editables de la propuesta.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	query := `
		UPDATE quotes SET
			title = $2, amount_cents = $3, deadline_text = $4, status = $5, notes = $6,
			discount_type = $7, discount_percent = $8, discount_amount_cents = $9,
			template_id = NULLIF($10, '')::uuid, template_snapshot = $11,
			public_token = NULLIF($12, ''), public_expires_at = $13,
			updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.Title, int64(quote.AmountCents), quote.DeadlineText, quote.Status, quote.Notes,
		quote.Discount.Type, quote.Discount.Percent, int64(quote.Discount.Amount),
		quote.TemplateID, quote.TemplateSnapshot,
		quote.PublicToken, quote.PublicExpiresAt,
		quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la propuesta; ítems y versiones caen en cascada.
func (r *QuoteRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateItem persiste una línea de propuesta.
func (r *QuoteRepo) CreateItem(item *entity.QuoteItem) error {
	query := `
		INSERT INTO quote_items (
			id, quote_id, service_id, title, description,
			quantity, unit_price_cents, sort_order, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuoteID, item.ServiceID, item.Title, item.Description,
		item.Quantity, int64(item.UnitPriceCents), item.SortOrder, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote item: %w", err)
	}
	return nil
}

// ListItems devuelve las líneas ordenadas por sort_order y luego created_at.
func (r *QuoteRepo) ListItems(quoteID string) ([]*entity.QuoteItem, error) {
	query := `
		SELECT id, quote_id, COALESCE(service_id::text, ''), title, description,
			quantity, unit_price_cents, sort_order, created_at, updated_at
		FROM quote_items
		WHERE quote_id = $1
		ORDER BY sort_order, created_at`
	rows, err := r.q.Query(context.Background(), query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()

	var out []*entity.QuoteItem
	for rows.Next() {
		var item entity.QuoteItem
		if err := rows.Scan(
			&item.ID, &item.QuoteID, &item.ServiceID, &item.Title, &item.Description,
			&item.Quantity, &item.UnitPriceCents, &item.SortOrder, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

// UpdateItem actualiza una línea de propuesta.
func (r *QuoteRepo) UpdateItem(item *entity.QuoteItem) error {
	query := `
		UPDATE quote_items SET
			title = $2, description = $3, quantity = $4,
			unit_price_cents = $5, sort_order = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Title, item.Description, item.Quantity,
		int64(item.UnitPriceCents), item.SortOrder, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItem elimina una línea de propuesta.
func (r *QuoteRepo) DeleteItem(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM quote_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *QuoteRepo) scanOne(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	err := row.Scan(
		&q.ID, &q.ClientID, &q.RequestID, &q.Title, &q.AmountCents, &q.Currency,
		&q.DeadlineText, &q.Status, &q.Notes,
		&q.Discount.Type, &q.Discount.Percent, &q.Discount.Amount,
		&q.TemplateID, &q.TemplateSnapshot,
		&q.PublicToken, &q.PublicExpiresAt,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}
