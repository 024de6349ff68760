package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/repository"
)

// SettingsUseCase lee y actualiza los datos de la empresa emisora.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(settingsRepo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

// Get devuelve la configuración; ErrNotFound si nunca se guardó.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("obtener configuración: %w", err)
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingsResponse(settings), nil
}

// Update crea o reemplaza la configuración única.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("actualizar configuración: %w", err)
	}
	if settings == nil {
		settings = &entity.Settings{ID: uuid.New().String()}
	}
	settings.CompanyName = in.CompanyName
	settings.CompanyEmail = in.CompanyEmail
	settings.CompanyPhone = in.CompanyPhone
	settings.CompanyAddress = in.CompanyAddress
	settings.LogoURL = in.LogoURL
	settings.UpdatedAt = time.Now()
	if err := uc.settingsRepo.Upsert(settings); err != nil {
		return nil, fmt.Errorf("actualizar configuración: %w", err)
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CompanyName:    s.CompanyName,
		CompanyEmail:   s.CompanyEmail,
		CompanyPhone:   s.CompanyPhone,
		CompanyAddress: s.CompanyAddress,
		LogoURL:        s.LogoURL,
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}
