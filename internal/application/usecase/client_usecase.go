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

// ClientUseCase CRUD de clientes y sus contactos.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create crea un cliente; por defecto arranca en estado active.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.ClientStatusActive
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Segment:   in.Segment,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return toClientResponse(client), nil
}

// Get devuelve un cliente por ID.
func (uc *ClientUseCase) Get(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List devuelve una página de clientes filtrada por estado y búsqueda libre.
func (uc *ClientUseCase) List(ctx context.Context, status, search string, page dto.PageRequest) ([]dto.ClientResponse, dto.PageResponse, error) {
	page.DefaultPage()
	clients, total, err := uc.clientRepo.List(status, search, page.Limit, page.Offset)
	if err != nil {
		return nil, dto.PageResponse{}, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}, nil
}

// Update edita un cliente.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	client.Name = in.Name
	client.Email = in.Email
	client.Phone = in.Phone
	client.Segment = in.Segment
	client.Status = in.Status
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(id)
}

// AddContact agrega un contacto a un cliente.
func (uc *ClientUseCase) AddContact(ctx context.Context, clientID string, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("agregar contacto: %w", err)
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	contact := &entity.Contact{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      in.Role,
		IsPrimary: in.IsPrimary,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.CreateContact(contact); err != nil {
		return nil, fmt.Errorf("agregar contacto: %w", err)
	}
	return toContactResponse(contact), nil
}

// ListContacts devuelve los contactos de un cliente.
func (uc *ClientUseCase) ListContacts(ctx context.Context, clientID string) ([]dto.ContactResponse, error) {
	contacts, err := uc.clientRepo.ListContacts(clientID)
	if err != nil {
		return nil, fmt.Errorf("listar contactos: %w", err)
	}
	out := make([]dto.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, *toContactResponse(c))
	}
	return out, nil
}

// DeleteContact elimina un contacto.
func (uc *ClientUseCase) DeleteContact(ctx context.Context, id string) error {
	return uc.clientRepo.DeleteContact(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Segment:   c.Segment,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:        c.ID,
		ClientID:  c.ClientID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Role:      c.Role,
		IsPrimary: c.IsPrimary,
	}
}
