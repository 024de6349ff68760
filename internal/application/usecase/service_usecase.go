package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/pricing"
	"github.com/lilnaht/bidFlow/internal/domain/repository"
)

// ServiceUseCase CRUD del catálogo de servicios.
type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(serviceRepo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{serviceRepo: serviceRepo}
}

// Create crea un servicio activo.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.BasePriceCents < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	service := &entity.Service{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		BasePriceCents: pricing.Money(in.BasePriceCents),
		Unit:           in.Unit,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.serviceRepo.Create(service); err != nil {
		return nil, fmt.Errorf("crear servicio: %w", err)
	}
	return toServiceResponse(service), nil
}

// List devuelve el catálogo; onlyActive filtra los desactivados.
func (uc *ServiceUseCase) List(ctx context.Context, onlyActive bool) ([]dto.ServiceResponse, error) {
	services, err := uc.serviceRepo.List(onlyActive)
	if err != nil {
		return nil, fmt.Errorf("listar servicios: %w", err)
	}
	out := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, *toServiceResponse(s))
	}
	return out, nil
}

// Update edita un servicio.
func (uc *ServiceUseCase) Update(ctx context.Context, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if in.BasePriceCents < 0 {
		return nil, domain.ErrInvalidInput
	}
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("actualizar servicio: %w", err)
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	service.Name = in.Name
	service.Description = in.Description
	service.BasePriceCents = pricing.Money(in.BasePriceCents)
	service.Unit = in.Unit
	service.Active = in.Active
	service.UpdatedAt = time.Now()
	if err := uc.serviceRepo.Update(service); err != nil {
		return nil, fmt.Errorf("actualizar servicio: %w", err)
	}
	return toServiceResponse(service), nil
}

// Delete elimina un servicio del catálogo. Los ítems de propuesta que lo
// referenciaban conservan su copia de título y precio.
func (uc *ServiceUseCase) Delete(ctx context.Context, id string) error {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("eliminar servicio: %w", err)
	}
	if service == nil {
		return domain.ErrNotFound
	}
	return uc.serviceRepo.Delete(id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		BasePriceCents: int64(s.BasePriceCents),
		Unit:           s.Unit,
		Active:         s.Active,
	}
}
