package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository. La tabla tiene a lo sumo
// una fila; el upsert pisa la existente.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la configuración, o nil si nunca se guardó.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT id, company_name, company_email, company_phone, company_address, logo_url, updated_at
		FROM settings LIMIT 1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.CompanyName, &s.CompanyEmail, &s.CompanyPhone, &s.CompanyAddress, &s.LogoURL, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert crea o reemplaza la fila única.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (id, company_name, company_email, company_phone, company_address, logo_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_email = EXCLUDED.company_email,
			company_phone = EXCLUDED.company_phone,
			company_address = EXCLUDED.company_address,
			logo_url = EXCLUDED.logo_url,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.CompanyName, settings.CompanyEmail, settings.CompanyPhone,
		settings.CompanyAddress, settings.LogoURL, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
