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

// versionCreateRetries intentos ante colisión de numeración concurrente.
// La contención real es humana (acciones de admin), así que con pocos alcanza.
const versionCreateRetries = 3

// VersionUseCase crea y lista versiones inmutables de propuestas.
//
// La numeración es por propuesta, arranca en 1 y nunca tiene huecos ni
// duplicados: el número se calcula dentro del INSERT y la restricción
// UNIQUE(quote_id, version) resuelve las carreras; el perdedor reintenta.
type VersionUseCase struct {
	quoteRepo   repository.QuoteRepository
	versionRepo repository.QuoteVersionRepository
}

// NewVersionUseCase construye el caso de uso.
func NewVersionUseCase(
	quoteRepo repository.QuoteRepository,
	versionRepo repository.QuoteVersionRepository,
) *VersionUseCase {
	return &VersionUseCase{quoteRepo: quoteRepo, versionRepo: versionRepo}
}

// Create congela el estado actual de la propuesta en una versión nueva.
// Si la escritura falla no queda versión parcial; ante colisión de número se
// reintenta con un snapshot fresco.
func (uc *VersionUseCase) Create(ctx context.Context, quoteID, createdBy string, in dto.CreateVersionRequest) (*dto.VersionResponse, error) {
	var lastErr error
	for attempt := 0; attempt < versionCreateRetries; attempt++ {
		quote, items, err := uc.loadQuote(quoteID)
		if err != nil {
			return nil, err
		}

		version := &entity.QuoteVersion{
			ID:        uuid.New().String(),
			QuoteID:   quoteID,
			Snapshot:  entity.BuildSnapshot(quote, items),
			Note:      in.Note,
			CreatedBy: createdBy,
			CreatedAt: time.Now(),
		}
		err = uc.versionRepo.Create(version)
		if err == nil {
			return buildVersionResponse(version, quote.AmountCents), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("crear versión: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("crear versión: numeración en conflicto tras %d intentos: %w",
		versionCreateRetries, lastErr)
}

// List devuelve las versiones de la más nueva a la más vieja, cada una con su
// diff contra el total vigente de la propuesta.
func (uc *VersionUseCase) List(ctx context.Context, quoteID string) ([]dto.VersionResponse, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, fmt.Errorf("listar versiones: obtener propuesta: %w", err)
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}

	versions, err := uc.versionRepo.ListByQuote(quoteID)
	if err != nil {
		return nil, fmt.Errorf("listar versiones: %w", err)
	}

	out := make([]dto.VersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, *buildVersionResponse(v, quote.AmountCents))
	}
	return out, nil
}

// Get devuelve una versión puntual por número.
func (uc *VersionUseCase) Get(ctx context.Context, quoteID string, number int) (*dto.VersionResponse, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, fmt.Errorf("obtener versión: obtener propuesta: %w", err)
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	version, err := uc.versionRepo.GetByNumber(quoteID, number)
	if err != nil {
		return nil, fmt.Errorf("obtener versión: %w", err)
	}
	if version == nil {
		return nil, domain.ErrNotFound
	}
	return buildVersionResponse(version, quote.AmountCents), nil
}

// Diff calcula snapshotTotal(versión) − total vigente. Positivo: la versión
// estaba más cara que el estado actual. Lectura pura, no muta nada.
func Diff(version *entity.QuoteVersion, currentTotal pricing.Money) pricing.Money {
	return snapshotTotal(version.Snapshot) - currentTotal
}

// snapshotTotal recalcula el total congelado: a partir de los ítems del
// snapshot, o el monto registrado si el snapshot no tiene ítems.
func snapshotTotal(snap entity.QuoteSnapshot) pricing.Money {
	if len(snap.Items) == 0 {
		return snap.Quote.AmountCents
	}
	items := make([]pricing.Item, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, pricing.Item{Quantity: it.Quantity, UnitPrice: it.UnitPriceCents})
	}
	subtotal := pricing.ItemsSubtotal(items)
	total := subtotal - snap.Quote.DiscountCents
	if total < 0 {
		total = 0
	}
	return total
}

func (uc *VersionUseCase) loadQuote(quoteID string) (*entity.Quote, []*entity.QuoteItem, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener propuesta: %w", err)
	}
	if quote == nil {
		return nil, nil, domain.ErrNotFound
	}
	items, err := uc.quoteRepo.ListItems(quoteID)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener ítems: %w", err)
	}
	return quote, items, nil
}

func buildVersionResponse(v *entity.QuoteVersion, currentTotal pricing.Money) *dto.VersionResponse {
	diff := Diff(v, currentTotal)

	snap := dto.SnapshotDTO{
		SchemaVersion:   v.Snapshot.SchemaVersion,
		Title:           v.Snapshot.Quote.Title,
		AmountCents:     int64(v.Snapshot.Quote.AmountCents),
		SubtotalCents:   int64(v.Snapshot.Quote.SubtotalCents),
		DiscountCents:   int64(v.Snapshot.Quote.DiscountCents),
		DiscountType:    v.Snapshot.Quote.DiscountType,
		DiscountPercent: v.Snapshot.Quote.DiscountPercent,
		Notes:           v.Snapshot.Quote.Notes,
		DeadlineText:    v.Snapshot.Quote.DeadlineText,
		Items:           make([]dto.SnapshotItemDTO, 0, len(v.Snapshot.Items)),
	}
	for _, it := range v.Snapshot.Items {
		snap.Items = append(snap.Items, dto.SnapshotItemDTO{
			Title:          it.Title,
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: int64(it.UnitPriceCents),
		})
	}

	return &dto.VersionResponse{
		ID:            v.ID,
		QuoteID:       v.QuoteID,
		Version:       v.Version,
		Note:          v.Note,
		CreatedBy:     v.CreatedBy,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
		DiffCents:     int64(diff),
		DiffFormatted: pricing.FormatBRL(diff),
		Snapshot:      snap,
	}
}
