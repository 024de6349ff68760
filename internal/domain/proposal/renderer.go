// Package proposal renderiza el texto de una propuesta a partir de un
// template con tokens {{...}} y el contexto de la propuesta.
//
// El conjunto de tokens es cerrado: un token desconocido se reemplaza por
// cadena vacía, nunca queda el literal {{...}} en la salida. La sustitución
// es de una sola pasada, así que un valor que contenga {{...}} se imprime
// literal y no se vuelve a expandir.
package proposal

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lilnaht/bidFlow/internal/domain/pricing"
)

// tokenPattern acepta espacios internos opcionales: {{ foo }} ≡ {{foo}}.
var tokenPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// ContextItem es una línea de la propuesta tal como la imprime items_table.
type ContextItem struct {
	Title          string
	Quantity       int64
	UnitPriceCents pricing.Money
}

// Context reúne todos los datos que alimentan los tokens del template.
// Los campos vacíos usan fallbacks neutros para que el texto final nunca
// quede con huecos raros.
type Context struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	CompanyName    string
	CompanyEmail   string
	CompanyPhone   string
	CompanyAddress string

	QuoteID       string
	QuoteTitle    string
	TotalCents    pricing.Money
	SubtotalCents pricing.Money
	DiscountCents pricing.Money
	Notes         string

	ValidUntil *time.Time
	Items      []ContextItem
}

// Render sustituye todos los tokens del template en una sola pasada.
func Render(template string, ctx Context) string {
	values := ctx.tokenValues()
	return tokenPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := tokenPattern.FindStringSubmatch(match)[1]
		return values[name] // token desconocido → ""
	})
}

// tokenValues materializa el mapa token → valor con los fallbacks aplicados.
// Los datos de contacto vacíos se imprimen como "-" para que el texto final
// no quede con huecos.
func (ctx Context) tokenValues() map[string]string {
	clientName := ctx.ClientName
	if clientName == "" {
		clientName = "Cliente"
	}
	companyName := ctx.CompanyName
	if companyName == "" {
		companyName = "bidFlow"
	}
	validUntil := "-"
	if ctx.ValidUntil != nil {
		validUntil = ctx.ValidUntil.Format("02/01/2006")
	}

	return map[string]string{
		"client_name":  clientName,
		"client_email": orDash(ctx.ClientEmail),
		"client_phone": orDash(ctx.ClientPhone),

		"company_name":    companyName,
		"company_email":   orDash(ctx.CompanyEmail),
		"company_phone":   orDash(ctx.CompanyPhone),
		"company_address": orDash(ctx.CompanyAddress),

		"quote_id":       ctx.QuoteID,
		"quote_title":    ctx.QuoteTitle,
		"quote_total":    pricing.FormatBRL(ctx.TotalCents),
		"quote_subtotal": pricing.FormatBRL(ctx.SubtotalCents),
		"quote_discount": pricing.FormatBRL(ctx.DiscountCents),
		"valid_until":    validUntil,
		"items_table":    itemsTable(ctx.Items),
		"notes":          ctx.Notes,
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// itemsTable imprime las líneas de la propuesta en texto plano, una por
// renglón: "- Desenvolvimento (2 x R$ 500,00) = R$ 1.000,00". Sin ítems se
// imprime una línea placeholder para que el texto no quede vacío.
func itemsTable(items []ContextItem) string {
	if len(items) == 0 {
		return "- Item principal (1 x R$ 0,00)"
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lineTotal := pricing.Money(item.Quantity * int64(item.UnitPriceCents))
		lines = append(lines, fmt.Sprintf("- %s (%d x %s) = %s",
			item.Title,
			item.Quantity,
			pricing.FormatBRL(item.UnitPriceCents),
			pricing.FormatBRL(lineTotal),
		))
	}
	return strings.Join(lines, "\n")
}
