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

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implementación de TemplateRepository (usable con pool o tx).
type TemplateRepo struct {
	q Querier
}

// NewTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTemplateRepository(q Querier) *TemplateRepo {
	return &TemplateRepo{q: q}
}

// Create persiste un template; si es default desmarca el resto.
func (r *TemplateRepo) Create(template *entity.ProposalTemplate) error {
	if template.IsDefault {
		if err := r.clearDefault(); err != nil {
			return err
		}
	}
	query := `
		INSERT INTO proposal_templates (id, name, body, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		template.ID, template.Name, template.Body, template.IsDefault,
		template.CreatedAt, template.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetByID obtiene un template por ID.
func (r *TemplateRepo) GetByID(id string) (*entity.ProposalTemplate, error) {
	query := `
		SELECT id, name, body, is_default, created_at, updated_at
		FROM proposal_templates WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetDefault obtiene el template default, o nil si no hay.
func (r *TemplateRepo) GetDefault() (*entity.ProposalTemplate, error) {
	query := `
		SELECT id, name, body, is_default, created_at, updated_at
		FROM proposal_templates WHERE is_default
		ORDER BY updated_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query))
}

// List devuelve todos los templates, default primero.
func (r *TemplateRepo) List() ([]*entity.ProposalTemplate, error) {
	query := `
		SELECT id, name, body, is_default, created_at, updated_at
		FROM proposal_templates
		ORDER BY is_default DESC, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProposalTemplate
	for rows.Next() {
		var t entity.ProposalTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Body, &t.IsDefault, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// Update actualiza un template; si pasa a default desmarca el resto.
func (r *TemplateRepo) Update(template *entity.ProposalTemplate) error {
	if template.IsDefault {
		if err := r.clearDefault(); err != nil {
			return err
		}
	}
	query := `
		UPDATE proposal_templates SET name = $2, body = $3, is_default = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		template.ID, template.Name, template.Body, template.IsDefault, template.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un template.
func (r *TemplateRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM proposal_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TemplateRepo) clearDefault() error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE proposal_templates SET is_default = false WHERE is_default`)
	if err != nil {
		return fmt.Errorf("clear default template: %w", err)
	}
	return nil
}

func (r *TemplateRepo) scanOne(row pgx.Row) (*entity.ProposalTemplate, error) {
	var t entity.ProposalTemplate
	err := row.Scan(&t.ID, &t.Name, &t.Body, &t.IsDefault, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}
