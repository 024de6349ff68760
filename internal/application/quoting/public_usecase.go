package quoting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lilnaht/bidFlow/internal/application/dto"
	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/pricing"
	"github.com/lilnaht/bidFlow/internal/domain/repository"
)

// PublicUseCase atiende la página pública de propuestas: lectura por token,
// respuesta del cliente (aceptar/rechazar) y registro de eventos de actividad.
// Ninguna operación acá requiere autenticación; el token es la credencial.
type PublicUseCase struct {
	quoteRepo      repository.QuoteRepository
	clientRepo     repository.ClientRepository
	settingsRepo   repository.SettingsRepository
	acceptanceRepo repository.AcceptanceRepository
	txRunner       TxRunner
}

// NewPublicUseCase construye el caso de uso.
func NewPublicUseCase(
	quoteRepo repository.QuoteRepository,
	clientRepo repository.ClientRepository,
	settingsRepo repository.SettingsRepository,
	acceptanceRepo repository.AcceptanceRepository,
	txRunner TxRunner,
) *PublicUseCase {
	return &PublicUseCase{
		quoteRepo:      quoteRepo,
		clientRepo:     clientRepo,
		settingsRepo:   settingsRepo,
		acceptanceRepo: acceptanceRepo,
		txRunner:       txRunner,
	}
}

// GetByToken devuelve la propuesta tal como la ve el cliente.
//
//   - Token inexistente → domain.ErrNotFound.
//   - Token vencido → domain.ErrExpired (estado distinto, no un 404 genérico).
//
// Una propuesta ya respondida sigue siendo visible, con la decisión tomada.
func (uc *PublicUseCase) GetByToken(ctx context.Context, token string) (*dto.PublicQuoteResponse, error) {
	quote, err := uc.quoteRepo.GetByPublicToken(token)
	if err != nil {
		return nil, fmt.Errorf("propuesta pública: %w", err)
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !quote.PublicLinkActive(time.Now()) {
		return nil, domain.ErrExpired
	}

	items, err := uc.quoteRepo.ListItems(quote.ID)
	if err != nil {
		return nil, fmt.Errorf("propuesta pública: obtener ítems: %w", err)
	}
	client, err := uc.clientRepo.GetByID(quote.ClientID)
	if err != nil {
		return nil, fmt.Errorf("propuesta pública: obtener cliente: %w", err)
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("propuesta pública: obtener configuración: %w", err)
	}
	acceptance, err := uc.acceptanceRepo.GetAcceptanceByQuote(quote.ID)
	if err != nil {
		return nil, fmt.Errorf("propuesta pública: obtener respuesta: %w", err)
	}

	totals := pricing.QuoteTotals(entity.PricingItems(items), quote.Discount, quote.AmountCents)

	out := &dto.PublicQuoteResponse{
		Title:          quote.Title,
		Status:         quote.Status,
		SubtotalCents:  int64(totals.Subtotal),
		DiscountCents:  int64(totals.Discount),
		TotalCents:     int64(totals.Total),
		TotalFormatted: pricing.FormatBRL(totals.Total),
		Proposal:       quote.TemplateSnapshot,
		Items:          make([]dto.QuoteItemResponse, 0, len(items)),
	}
	if client != nil {
		out.ClientName = client.Name
	}
	if settings != nil {
		out.CompanyName = settings.CompanyName
	}
	if quote.PublicExpiresAt != nil {
		out.ValidUntil = quote.PublicExpiresAt.Format(time.RFC3339)
	}
	if acceptance != nil {
		out.Responded = true
		out.Decision = acceptance.Decision
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.QuoteItemResponse{
			ID:             item.ID,
			Title:          item.Title,
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: int64(item.UnitPriceCents),
			LineTotalCents: int64(item.LineTotal()),
			SortOrder:      item.SortOrder,
		})
	}
	return out, nil
}

// Respond registra la decisión del cliente y mueve la propuesta a
// approved o lost en la misma transacción. Solo se acepta mientras el estado
// es sent; la primera respuesta gana.
func (uc *PublicUseCase) Respond(ctx context.Context, token, ip, userAgent string, in dto.RespondQuoteRequest) (*dto.RespondQuoteResponse, error) {
	quote, err := uc.quoteRepo.GetByPublicToken(token)
	if err != nil {
		return nil, fmt.Errorf("responder propuesta: %w", err)
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if !quote.PublicLinkActive(now) {
		return nil, domain.ErrExpired
	}
	if quote.Status != entity.QuoteStatusSent {
		return nil, domain.ErrConflict
	}

	nextStatus := entity.QuoteStatusApproved
	if in.Decision == entity.AcceptanceDeclined {
		nextStatus = entity.QuoteStatusLost
	}

	acceptance := &entity.QuoteAcceptance{
		ID:         uuid.New().String(),
		QuoteID:    quote.ID,
		Decision:   in.Decision,
		SignerName: in.SignerName,
		Comment:    in.Comment,
		IPAddress:  ip,
		UserAgent:  userAgent,
		CreatedAt:  now,
	}

	err = uc.txRunner.RunQuote(ctx, func(
		quoteRepo repository.QuoteRepository,
		_ repository.QuoteVersionRepository,
		acceptanceRepo repository.AcceptanceRepository,
	) error {
		if txErr := acceptanceRepo.CreateAcceptance(acceptance); txErr != nil {
			if errors.Is(txErr, domain.ErrDuplicate) {
				return domain.ErrConflict // alguien respondió primero
			}
			return txErr
		}
		quote.Status = nextStatus
		quote.UpdatedAt = now
		if txErr := quoteRepo.Update(quote); txErr != nil {
			return txErr
		}
		return acceptanceRepo.CreateEvent(&entity.QuoteEvent{
			ID:        uuid.New().String(),
			QuoteID:   quote.ID,
			Type:      entity.EventResponded,
			Metadata:  fmt.Sprintf(`{"decision":%q}`, in.Decision),
			IPAddress: ip,
			UserAgent: userAgent,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.RespondQuoteResponse{
		Decision:  in.Decision,
		Status:    nextStatus,
		CreatedAt: now.Format(time.RFC3339),
	}, nil
}

// RecordEvent registra un evento de actividad del link público
// (opened, downloaded, clicked). Nunca falla por token vencido: el evento de
// apertura de un link vencido también es información útil.
func (uc *PublicUseCase) RecordEvent(ctx context.Context, token, ip, userAgent string, in dto.PublicEventRequest) error {
	switch in.Type {
	case entity.EventOpened, entity.EventDownloaded, entity.EventClicked:
	default:
		return domain.ErrInvalidInput
	}

	quote, err := uc.quoteRepo.GetByPublicToken(token)
	if err != nil {
		return fmt.Errorf("registrar evento: %w", err)
	}
	if quote == nil {
		return domain.ErrNotFound
	}

	return uc.acceptanceRepo.CreateEvent(&entity.QuoteEvent{
		ID:        uuid.New().String(),
		QuoteID:   quote.ID,
		Type:      in.Type,
		Metadata:  in.Metadata,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	})
}

// ListEvents devuelve la actividad del link público para el panel admin.
func (uc *PublicUseCase) ListEvents(ctx context.Context, quoteID string, limit int) ([]dto.QuoteEventResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	events, err := uc.acceptanceRepo.ListEventsByQuote(quoteID, limit)
	if err != nil {
		return nil, fmt.Errorf("listar eventos: %w", err)
	}
	out := make([]dto.QuoteEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, dto.QuoteEventResponse{
			ID:        ev.ID,
			Type:      ev.Type,
			Metadata:  ev.Metadata,
			CreatedAt: ev.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}
