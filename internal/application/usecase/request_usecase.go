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

// RequestUseCase captura y gestiona solicitudes de presupuesto (leads).
type RequestUseCase struct {
	requestRepo repository.RequestRepository
	clientRepo  repository.ClientRepository
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(requestRepo repository.RequestRepository, clientRepo repository.ClientRepository) *RequestUseCase {
	return &RequestUseCase{requestRepo: requestRepo, clientRepo: clientRepo}
}

// CreatePublic registra un lead del formulario público. Si ya existe un
// cliente con ese email se vincula; si no, se crea uno en negociación.
func (uc *RequestUseCase) CreatePublic(ctx context.Context, in dto.CreateRequestPublic) (*dto.RequestResponse, error) {
	client, err := uc.clientRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("crear solicitud: buscar cliente: %w", err)
	}
	now := time.Now()
	if client == nil {
		client = &entity.Client{
			ID:        uuid.New().String(),
			Name:      in.Name,
			Email:     in.Email,
			Phone:     in.WhatsApp,
			Status:    entity.ClientStatusNegotiation,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.clientRepo.Create(client); err != nil {
			return nil, fmt.Errorf("crear solicitud: crear cliente: %w", err)
		}
	}

	request := &entity.Request{
		ID:              uuid.New().String(),
		ClientID:        client.ID,
		Name:            in.Name,
		Email:           in.Email,
		WhatsApp:        in.WhatsApp,
		ProjectType:     in.ProjectType,
		Description:     in.Description,
		BudgetEstimate:  in.BudgetEstimate,
		DesiredDeadline: in.DesiredDeadline,
		Status:          entity.RequestStatusNew,
		Source:          "form",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("crear solicitud: %w", err)
	}
	return toRequestResponse(request), nil
}

// Get devuelve una solicitud por ID.
func (uc *RequestUseCase) Get(ctx context.Context, id string) (*dto.RequestResponse, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener solicitud: %w", err)
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	return toRequestResponse(request), nil
}

// List devuelve una página de solicitudes filtrada por estado.
func (uc *RequestUseCase) List(ctx context.Context, status string, page dto.PageRequest) ([]dto.RequestResponse, dto.PageResponse, error) {
	page.DefaultPage()
	requests, total, err := uc.requestRepo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, dto.PageResponse{}, fmt.Errorf("listar solicitudes: %w", err)
	}
	out := make([]dto.RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, *toRequestResponse(r))
	}
	return out, dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}, nil
}

// UpdateStatus cambia el estado de trabajo de una solicitud.
func (uc *RequestUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateRequestStatus) (*dto.RequestResponse, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("actualizar solicitud: %w", err)
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	request.Status = in.Status
	request.UpdatedAt = time.Now()
	if err := uc.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("actualizar solicitud: %w", err)
	}
	return toRequestResponse(request), nil
}

// Delete elimina una solicitud.
func (uc *RequestUseCase) Delete(ctx context.Context, id string) error {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("eliminar solicitud: %w", err)
	}
	if request == nil {
		return domain.ErrNotFound
	}
	return uc.requestRepo.Delete(id)
}

func toRequestResponse(r *entity.Request) *dto.RequestResponse {
	return &dto.RequestResponse{
		ID:              r.ID,
		ClientID:        r.ClientID,
		Name:            r.Name,
		Email:           r.Email,
		WhatsApp:        r.WhatsApp,
		ProjectType:     r.ProjectType,
		Description:     r.Description,
		BudgetEstimate:  r.BudgetEstimate,
		DesiredDeadline: r.DesiredDeadline,
		Status:          r.Status,
		Source:          r.Source,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}
