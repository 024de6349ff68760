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

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo implementación de RequestRepository (usable con pool o tx).
type RequestRepo struct {
	q Querier
}

// NewRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

// Create persiste una nueva solicitud.
func (r *RequestRepo) Create(request *entity.Request) error {
	query := `
		INSERT INTO requests (
			id, client_id, name, email, whatsapp, project_type, description,
			budget_estimate, desired_deadline, status, source, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.ClientID, request.Name, request.Email, request.WhatsApp,
		request.ProjectType, request.Description, request.BudgetEstimate, request.DesiredDeadline,
		request.Status, request.Source, request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *RequestRepo) GetByID(id string) (*entity.Request, error) {
	query := `
		SELECT id, COALESCE(client_id::text, ''), name, email, whatsapp, project_type, description,
			budget_estimate, desired_deadline, status, source, created_at, updated_at
		FROM requests WHERE id = $1`
	var req entity.Request
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&req.ID, &req.ClientID, &req.Name, &req.Email, &req.WhatsApp, &req.ProjectType, &req.Description,
		&req.BudgetEstimate, &req.DesiredDeadline, &req.Status, &req.Source, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return &req, nil
}

// List filtra por estado, más nuevas primero.
func (r *RequestRepo) List(status string, limit, offset int) ([]*entity.Request, int, error) {
	query := `
		SELECT id, COALESCE(client_id::text, ''), name, email, whatsapp, project_type, description,
			budget_estimate, desired_deadline, status, source, created_at, updated_at, COUNT(*) OVER ()
		FROM requests
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var out []*entity.Request
	var total int
	for rows.Next() {
		var req entity.Request
		if err := rows.Scan(
			&req.ID, &req.ClientID, &req.Name, &req.Email, &req.WhatsApp, &req.ProjectType, &req.Description,
			&req.BudgetEstimate, &req.DesiredDeadline, &req.Status, &req.Source,
			&req.CreatedAt, &req.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, &req)
	}
	return out, total, rows.Err()
}

// Update actualiza una solicitud.
func (r *RequestRepo) Update(request *entity.Request) error {
	query := `
		UPDATE requests SET
			client_id = NULLIF($2, '')::uuid, name = $3, email = $4, whatsapp = $5,
			project_type = $6, description = $7, budget_estimate = $8, desired_deadline = $9,
			status = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		request.ID, request.ClientID, request.Name, request.Email, request.WhatsApp,
		request.ProjectType, request.Description, request.BudgetEstimate, request.DesiredDeadline,
		request.Status, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una solicitud.
func (r *RequestRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
