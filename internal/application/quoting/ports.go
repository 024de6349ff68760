package quoting

import (
	"context"

	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/pricing"
	"github.com/lilnaht/bidFlow/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repos del agregado de propuestas. Se usa donde hay más de una escritura que
// debe ser atómica (recalcular total al tocar ítems, registrar respuesta del
// cliente junto con el cambio de estado).
type TxRunner interface {
	RunQuote(ctx context.Context, fn func(
		quoteRepo repository.QuoteRepository,
		versionRepo repository.QuoteVersionRepository,
		acceptanceRepo repository.AcceptanceRepository,
	) error) error
}

// QuotePDFGenerator genera la representación en PDF de una propuesta.
type QuotePDFGenerator interface {
	GenerateQuotePDF(
		ctx context.Context,
		quote *entity.Quote,
		items []*entity.QuoteItem,
		client *entity.Client,
		settings *entity.Settings,
		totals pricing.Totals,
	) ([]byte, error)
}
