package quoting

import (
	"github.com/lilnaht/bidFlow/internal/domain/entity"
	"github.com/lilnaht/bidFlow/internal/domain/pricing"
	"github.com/lilnaht/bidFlow/internal/domain/proposal"
)

// buildProposalContext arma el contexto del renderizador a partir de la
// propuesta, su cliente, los datos de la empresa y los totales calculados.
// client y settings pueden ser nil; el renderizador aplica sus fallbacks.
func buildProposalContext(
	quote *entity.Quote,
	items []*entity.QuoteItem,
	client *entity.Client,
	settings *entity.Settings,
) proposal.Context {
	totals := pricing.QuoteTotals(entity.PricingItems(items), quote.Discount, quote.AmountCents)

	ctx := proposal.Context{
		QuoteID:       quote.ID,
		QuoteTitle:    quote.Title,
		TotalCents:    totals.Total,
		SubtotalCents: totals.Subtotal,
		DiscountCents: totals.Discount,
		Notes:         quote.Notes,
		ValidUntil:    quote.PublicExpiresAt,
		Items:         make([]proposal.ContextItem, 0, len(items)),
	}
	if client != nil {
		ctx.ClientName = client.Name
		ctx.ClientEmail = client.Email
		ctx.ClientPhone = client.Phone
	}
	if settings != nil {
		ctx.CompanyName = settings.CompanyName
		ctx.CompanyEmail = settings.CompanyEmail
		ctx.CompanyPhone = settings.CompanyPhone
		ctx.CompanyAddress = settings.CompanyAddress
	}
	for _, item := range items {
		ctx.Items = append(ctx.Items, proposal.ContextItem{
			Title:          item.Title,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return ctx
}
