package quoting

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/pricing"
	"github.com/lilnaht/bidFlow/internal/domain/repository"
)

// QuoteUseCase concentra el ciclo de vida de una propuesta: creación, ítems,
// política de descuento, transiciones de estado y emisión del link público.
//
// El total vigente (Quote.AmountCents) se recalcula y persiste en cada cambio
// de precio: agregar/editar/borrar ítems o cambiar el descuento. Si la
// propuesta no tiene ítems, AmountCents es el monto cerrado ingresado a mano.
type QuoteUseCase struct {
	quoteRepo      repository.QuoteRepository
	clientRepo     repository.ClientRepository
	serviceRepo    repository.ServiceRepository
	txRunner       TxRunner
	publicLinkDays int
	publicBaseURL  string
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(
	quoteRepo repository.QuoteRepository,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
	txRunner TxRunner,
	publicLinkDays int,
	publicBaseURL string,
) *QuoteUseCase {
	return &QuoteUseCase{
		quoteRepo:      quoteRepo,
		clientRepo:     clientRepo,
		serviceRepo:    serviceRepo,
		txRunner:       txRunner,
		publicLinkDays: publicLinkDays,
		publicBaseURL:  publicBaseURL,
	}
}

// Create crea una propuesta en estado draft.
func (uc *QuoteUseCase) Create(ctx context.Context, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, fmt.Errorf("crear propuesta: obtener cliente: %w", err)
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.AmountCents < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	quote := &entity.Quote{
		ID:           uuid.New().String(),
		ClientID:     in.ClientID,
		RequestID:    in.RequestID,
		Title:        in.Title,
		AmountCents:  pricing.Money(in.AmountCents),
		Currency:     "BRL",
		DeadlineText: in.DeadlineText,
		Status:       entity.QuoteStatusDraft,
		Notes:        in.Notes,
		Discount:     pricing.NoDiscount(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.quoteRepo.Create(quote); err != nil {
		return nil, fmt.Errorf("crear propuesta: %w", err)
	}
	return uc.buildResponse(quote, nil), nil
}

// Get devuelve la propuesta con sus ítems y totales calculados.
func (uc *QuoteUseCase) Get(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	quote, items, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	return uc.buildResponse(quote, items), nil
}

// List devuelve una página de propuestas filtrada por estado y cliente.
func (uc *QuoteUseCase) List(ctx context.Context, status, clientID string, page dto.PageRequest) (*dto.QuoteListResponse, error) {
	page.DefaultPage()
	quotes, total, err := uc.quoteRepo.List(status, clientID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar propuestas: %w", err)
	}

	out := &dto.QuoteListResponse{
		Quotes: make([]dto.QuoteListItem, 0, len(quotes)),
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, q := range quotes {
		out.Quotes = append(out.Quotes, dto.QuoteListItem{
			ID:             q.ID,
			ClientID:       q.ClientID,
			Title:          q.Title,
			Status:         q.Status,
			TotalCents:     int64(q.AmountCents),
			TotalFormatted: pricing.FormatBRL(q.AmountCents),
			CreatedAt:      q.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// Update edita título, monto cerrado, plazo y notas. Solo en estado draft.
func (uc *QuoteUseCase) Update(ctx context.Context, id string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	quote, items, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	if quote.Status != entity.QuoteStatusDraft {
		return nil, domain.ErrConflict
	}

	quote.Title = in.Title
	quote.DeadlineText = in.DeadlineText
	quote.Notes = in.Notes
	if len(items) == 0 {
		// Sin ítems el monto cerrado se edita directo; con ítems manda el cálculo.
		quote.AmountCents = pricing.Money(in.AmountCents)
	}
	uc.recompute(quote, items)
	quote.UpdatedAt = time.Now()

	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, fmt.Errorf("actualizar propuesta: %w", err)
	}
	return uc.buildResponse(quote, items), nil
}

// Delete elimina una propuesta draft junto con sus ítems (cascade).
func (uc *QuoteUseCase) Delete(ctx context.Context, id string) error {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("eliminar propuesta: %w", err)
	}
	if quote == nil {
		return domain.ErrNotFound
	}
	if quote.Status != entity.QuoteStatusDraft {
		return domain.ErrConflict
	}
	return uc.quoteRepo.Delete(id)
}

// UpdateDiscount cambia la política de descuento y recalcula el total.
// Type vacío elimina el descuento. Solo en estado draft.
func (uc *QuoteUseCase) UpdateDiscount(ctx context.Context, id string, in dto.UpdateQuoteDiscount) (*dto.QuoteResponse, error) {
	quote, items, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	if quote.Status != entity.QuoteStatusDraft {
		return nil, domain.ErrConflict
	}

	switch in.Type {
	case pricing.DiscountNone:
		quote.Discount = pricing.NoDiscount()
	case pricing.DiscountPercent:
		p, perr := decimal.NewFromString(in.Percent)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		quote.Discount = pricing.PercentDiscount(p)
	case pricing.DiscountFixed:
		if in.AmountCents < 0 {
			return nil, domain.ErrInvalidInput
		}
		quote.Discount = pricing.FixedDiscount(pricing.Money(in.AmountCents))
	default:
		return nil, domain.ErrInvalidInput
	}

	uc.recompute(quote, items)
	quote.UpdatedAt = time.Now()
	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, fmt.Errorf("actualizar descuento: %w", err)
	}
	return uc.buildResponse(quote, items), nil
}

// AddItem agrega una línea y recalcula el total en la misma transacción.
// Si la línea referencia un servicio del catálogo y no trae precio, hereda el
// precio base del servicio. Solo en estado draft.
func (uc *QuoteUseCase) AddItem(ctx context.Context, quoteID string, in dto.AddQuoteItemRequest) (*dto.QuoteResponse, error) {
	if in.Quantity <= 0 || in.UnitPriceCents < 0 {
		return nil, domain.ErrInvalidInput
	}

	unitPrice := pricing.Money(in.UnitPriceCents)
	if in.ServiceID != "" && unitPrice == 0 {
		service, err := uc.serviceRepo.GetByID(in.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("agregar ítem: obtener servicio: %w", err)
		}
		if service == nil {
			return nil, domain.ErrNotFound
		}
		unitPrice = service.BasePriceCents
	}

	now := time.Now()
	item := &entity.QuoteItem{
		ID:             uuid.New().String(),
		QuoteID:        quoteID,
		ServiceID:      in.ServiceID,
		Title:          in.Title,
		Description:    in.Description,
		Quantity:       in.Quantity,
		UnitPriceCents: unitPrice,
		SortOrder:      in.SortOrder,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var quote *entity.Quote
	var items []*entity.QuoteItem
	err := uc.txRunner.RunQuote(ctx, func(
		quoteRepo repository.QuoteRepository,
		_ repository.QuoteVersionRepository,
		_ repository.AcceptanceRepository,
	) error {
		var txErr error
		quote, txErr = quoteRepo.GetByID(quoteID)
		if txErr != nil {
			return txErr
		}
		if quote == nil {
			return domain.ErrNotFound
		}
		if quote.Status != entity.QuoteStatusDraft {
			return domain.ErrConflict
		}
		if txErr = quoteRepo.CreateItem(item); txErr != nil {
			return txErr
		}
		items, txErr = quoteRepo.ListItems(quoteID)
		if txErr != nil {
			return txErr
		}
		uc.recompute(quote, items)
		quote.UpdatedAt = now
		return quoteRepo.Update(quote)
	})
	if err != nil {
		return nil, err
	}
	return uc.buildResponse(quote, items), nil
}

// UpdateItem edita una línea y recalcula el total. Solo en estado draft.
func (uc *QuoteUseCase) UpdateItem(ctx context.Context, quoteID, itemID string, in dto.UpdateQuoteItemRequest) (*dto.QuoteResponse, error) {
	if in.Quantity <= 0 || in.UnitPriceCents < 0 {
		return nil, domain.ErrInvalidInput
	}

	var quote *entity.Quote
	var items []*entity.QuoteItem
	err := uc.txRunner.RunQuote(ctx, func(
		quoteRepo repository.QuoteRepository,
		_ repository.QuoteVersionRepository,
		_ repository.AcceptanceRepository,
	) error {
		var txErr error
		quote, txErr = quoteRepo.GetByID(quoteID)
		if txErr != nil {
			return txErr
		}
		if quote == nil {
			return domain.ErrNotFound
		}
		if quote.Status != entity.QuoteStatusDraft {
			return domain.ErrConflict
		}

		current, txErr := quoteRepo.ListItems(quoteID)
		if txErr != nil {
			return txErr
		}
		var target *entity.QuoteItem
		for _, it := range current {
			if it.ID == itemID {
				target = it
				break
			}
		}
		if target == nil {
			return domain.ErrNotFound
		}

		target.Title = in.Title
		target.Description = in.Description
		target.Quantity = in.Quantity
		target.UnitPriceCents = pricing.Money(in.UnitPriceCents)
		target.SortOrder = in.SortOrder
		target.UpdatedAt = time.Now()
		if txErr = quoteRepo.UpdateItem(target); txErr != nil {
			return txErr
		}

		items, txErr = quoteRepo.ListItems(quoteID)
		if txErr != nil {
			return txErr
		}
		uc.recompute(quote, items)
		quote.UpdatedAt = time.Now()
		return quoteRepo.Update(quote)
	})
	if err != nil {
		return nil, err
	}
	return uc.buildResponse(quote, items), nil
}

// DeleteItem elimina una línea y recalcula el total. Solo en estado draft.
// Si era la última línea, el total calculado queda como monto cerrado.
func (uc *QuoteUseCase) DeleteItem(ctx context.Context, quoteID, itemID string) (*dto.QuoteResponse, error) {
	var quote *entity.Quote
	var items []*entity.QuoteItem
	err := uc.txRunner.RunQuote(ctx, func(
		quoteRepo repository.QuoteRepository,
		_ repository.QuoteVersionRepository,
		_ repository.AcceptanceRepository,
	) error {
		var txErr error
		quote, txErr = quoteRepo.GetByID(quoteID)
		if txErr != nil {
			return txErr
		}
		if quote == nil {
			return domain.ErrNotFound
		}
		if quote.Status != entity.QuoteStatusDraft {
			return domain.ErrConflict
		}
		if txErr = quoteRepo.DeleteItem(itemID); txErr != nil {
			return txErr
		}
		items, txErr = quoteRepo.ListItems(quoteID)
		if txErr != nil {
			return txErr
		}
		uc.recompute(quote, items)
		quote.UpdatedAt = time.Now()
		return quoteRepo.Update(quote)
	})
	if err != nil {
		return nil, err
	}
	return uc.buildResponse(quote, items), nil
}

// UpdateStatus aplica una transición de estado explícita.
// Al pasar a sent se genera el token del link público con vencimiento
// now + publicLinkDays.
func (uc *QuoteUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateQuoteStatus) (*dto.QuoteResponse, error) {
	quote, items, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	if !quote.CanTransitionTo(in.Status) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	quote.Status = in.Status
	if in.Status == entity.QuoteStatusSent {
		token, terr := newPublicToken()
		if terr != nil {
			return nil, fmt.Errorf("generar token público: %w", terr)
		}
		expires := now.AddDate(0, 0, uc.publicLinkDays)
		quote.PublicToken = token
		quote.PublicExpiresAt = &expires
	}
	quote.UpdatedAt = now

	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, fmt.Errorf("actualizar estado: %w", err)
	}
	return uc.buildResponse(quote, items), nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// load trae propuesta + ítems o domain.ErrNotFound.
func (uc *QuoteUseCase) load(id string) (*entity.Quote, []*entity.QuoteItem, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener propuesta: %w", err)
	}
	if quote == nil {
		return nil, nil, domain.ErrNotFound
	}
	items, err := uc.quoteRepo.ListItems(id)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener ítems: %w", err)
	}
	return quote, items, nil
}

// recompute fija AmountCents al total calculado cuando hay ítems.
func (uc *QuoteUseCase) recompute(quote *entity.Quote, items []*entity.QuoteItem) {
	totals := pricing.QuoteTotals(entity.PricingItems(items), quote.Discount, quote.AmountCents)
	quote.AmountCents = totals.Total
}

func (uc *QuoteUseCase) buildResponse(quote *entity.Quote, items []*entity.QuoteItem) *dto.QuoteResponse {
	totals := pricing.QuoteTotals(entity.PricingItems(items), quote.Discount, quote.AmountCents)

	out := &dto.QuoteResponse{
		ID:            quote.ID,
		ClientID:      quote.ClientID,
		RequestID:     quote.RequestID,
		Title:         quote.Title,
		Status:        quote.Status,
		Currency:      quote.Currency,
		SubtotalCents: int64(totals.Subtotal),
		DiscountCents: int64(totals.Discount),
		TotalCents:    int64(totals.Total),

		TotalFormatted: pricing.FormatBRL(totals.Total),
		DiscountType:   quote.Discount.Type,
		DeadlineText:   quote.DeadlineText,
		Notes:          quote.Notes,
		TemplateID:     quote.TemplateID,
		Items:          make([]dto.QuoteItemResponse, 0, len(items)),
		CreatedAt:      quote.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      quote.UpdatedAt.Format(time.RFC3339),
	}
	if quote.Discount.Type == pricing.DiscountPercent {
		out.DiscountPercent = quote.Discount.Percent.String()
	}
	if quote.PublicToken != "" {
		out.PublicURL = uc.publicBaseURL + "/" + quote.PublicToken
	}
	if quote.PublicExpiresAt != nil {
		out.PublicExpiresAt = quote.PublicExpiresAt.Format(time.RFC3339)
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.QuoteItemResponse{
			ID:             item.ID,
			ServiceID:      item.ServiceID,
			Title:          item.Title,
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: int64(item.UnitPriceCents),
			LineTotalCents: int64(item.LineTotal()),
			SortOrder:      item.SortOrder,
		})
	}
	return out
}

// newPublicToken genera un token opaco de 48 hex chars para el link público.
func newPublicToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
