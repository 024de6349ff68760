package quoting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/proposal"
	"github.com/lilnaht/bidFlow/internal/domain/repository"
)

// TemplateUseCase administra los templates de propuesta y su aplicación.
//
// Aplicar un template es un renderizado único: el texto resultante se congela
// en la propuesta y no cambia aunque después se edite el template o la
// propuesta. Para refrescarlo hay que volver a aplicar.
type TemplateUseCase struct {
	templateRepo repository.TemplateRepository
	quoteRepo    repository.QuoteRepository
	clientRepo   repository.ClientRepository
	settingsRepo repository.SettingsRepository
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(
	templateRepo repository.TemplateRepository,
	quoteRepo repository.QuoteRepository,
	clientRepo repository.ClientRepository,
	settingsRepo repository.SettingsRepository,
) *TemplateUseCase {
	return &TemplateUseCase{
		templateRepo: templateRepo,
		quoteRepo:    quoteRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
	}
}

// Create crea un template.
func (uc *TemplateUseCase) Create(ctx context.Context, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	now := time.Now()
	template := &entity.ProposalTemplate{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Body:      in.Body,
		IsDefault: in.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.templateRepo.Create(template); err != nil {
		return nil, fmt.Errorf("crear template: %w", err)
	}
	return buildTemplateResponse(template), nil
}

// Get devuelve un template por ID.
func (uc *TemplateUseCase) Get(ctx context.Context, id string) (*dto.TemplateResponse, error) {
	template, err := uc.templateRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener template: %w", err)
	}
	if template == nil {
		return nil, domain.ErrNotFound
	}
	return buildTemplateResponse(template), nil
}

// List devuelve todos los templates.
func (uc *TemplateUseCase) List(ctx context.Context) ([]dto.TemplateResponse, error) {
	templates, err := uc.templateRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar templates: %w", err)
	}
	out := make([]dto.TemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, *buildTemplateResponse(tpl))
	}
	return out, nil
}

// Update edita un template existente.
func (uc *TemplateUseCase) Update(ctx context.Context, id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	template, err := uc.templateRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("actualizar template: %w", err)
	}
	if template == nil {
		return nil, domain.ErrNotFound
	}
	template.Name = in.Name
	template.Body = in.Body
	template.IsDefault = in.IsDefault
	template.UpdatedAt = time.Now()
	if err := uc.templateRepo.Update(template); err != nil {
		return nil, fmt.Errorf("actualizar template: %w", err)
	}
	return buildTemplateResponse(template), nil
}

// Delete elimina un template. Las propuestas que lo aplicaron conservan su
// snapshot congelado.
func (uc *TemplateUseCase) Delete(ctx context.Context, id string) error {
	template, err := uc.templateRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("eliminar template: %w", err)
	}
	if template == nil {
		return domain.ErrNotFound
	}
	return uc.templateRepo.Delete(id)
}

// Apply renderiza el template con los datos actuales de la propuesta y
// congela el resultado en ella. TemplateID vacío usa el template default.
// Solo en estado draft.
func (uc *TemplateUseCase) Apply(ctx context.Context, quoteID string, in dto.ApplyTemplateRequest) (*dto.ApplyTemplateResponse, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, fmt.Errorf("aplicar template: obtener propuesta: %w", err)
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if quote.Status != entity.QuoteStatusDraft {
		return nil, domain.ErrConflict
	}

	var template *entity.ProposalTemplate
	if in.TemplateID != "" {
		template, err = uc.templateRepo.GetByID(in.TemplateID)
	} else {
		template, err = uc.templateRepo.GetDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("aplicar template: obtener template: %w", err)
	}
	if template == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.quoteRepo.ListItems(quoteID)
	if err != nil {
		return nil, fmt.Errorf("aplicar template: obtener ítems: %w", err)
	}
	client, err := uc.clientRepo.GetByID(quote.ClientID)
	if err != nil {
		return nil, fmt.Errorf("aplicar template: obtener cliente: %w", err)
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("aplicar template: obtener configuración: %w", err)
	}

	rendered := proposal.Render(template.Body, buildProposalContext(quote, items, client, settings))

	quote.TemplateID = template.ID
	quote.TemplateSnapshot = rendered
	quote.UpdatedAt = time.Now()
	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, fmt.Errorf("aplicar template: guardar propuesta: %w", err)
	}

	return &dto.ApplyTemplateResponse{
		QuoteID:    quote.ID,
		TemplateID: template.ID,
		Rendered:   rendered,
	}, nil
}

// Preview renderiza un body arbitrario con datos de ejemplo, sin persistir.
func (uc *TemplateUseCase) Preview(ctx context.Context, in dto.PreviewTemplateRequest) *dto.PreviewTemplateResponse {
	sample := proposal.Context{
		ClientName:  "Cliente Exemplo",
		ClientEmail: "cliente@exemplo.com",
		QuoteTitle:  "Proposta de exemplo",
		TotalCents:  250_000,

		SubtotalCents: 250_000,
		Items: []proposal.ContextItem{
			{Title: "Serviço exemplo", Quantity: 1, UnitPriceCents: 250_000},
		},
	}
	return &dto.PreviewTemplateResponse{Rendered: proposal.Render(in.Body, sample)}
}

func buildTemplateResponse(t *entity.ProposalTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Body:      t.Body,
		IsDefault: t.IsDefault,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}
