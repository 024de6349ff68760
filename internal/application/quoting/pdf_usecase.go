package quoting

import (
	"context"
	"fmt"

	"github.com/lilnaht/bidFlow/internal/domain"
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/pricing"
	"github.com/lilnaht/bidFlow/internal/domain/repository"
)

// PDFUseCase genera la representación en PDF de una propuesta.
type PDFUseCase struct {
	quoteRepo    repository.QuoteRepository
	clientRepo   repository.ClientRepository
	settingsRepo repository.SettingsRepository
	generator    QuotePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	quoteRepo repository.QuoteRepository,
	clientRepo repository.ClientRepository,
	settingsRepo repository.SettingsRepository,
	generator QuotePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		quoteRepo:    quoteRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
	}
}

// DownloadQuotePDF carga la propuesta completa y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la propuesta no existe.
func (uc *PDFUseCase) DownloadQuotePDF(ctx context.Context, quoteID string) (pdfBytes []byte, filename string, err error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener propuesta: %w", err)
	}
	if quote == nil {
		return nil, "", domain.ErrNotFound
	}

	items, err := uc.quoteRepo.ListItems(quoteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener ítems: %w", err)
	}
	client, err := uc.clientRepo.GetByID(quote.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener configuración: %w", err)
	}

	totals := pricing.QuoteTotals(entity.PricingItems(items), quote.Discount, quote.AmountCents)

	pdfBytes, err = uc.generator.GenerateQuotePDF(ctx, quote, items, client, settings, totals)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	short := quote.ID
	if len(short) > 8 {
		short = short[:8]
	}
	filename = fmt.Sprintf("orcamento_%s.pdf", short)
	return pdfBytes, filename, nil
}
