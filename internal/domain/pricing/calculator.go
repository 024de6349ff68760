// Package pricing implementa el núcleo de cálculo de una propuesta:
// subtotal de ítems, descuento (porcentaje o monto fijo) y total final.
//
// Todas las funciones son puras y totales: no hacen I/O, no retornan error
// y ante entradas fuera de rango aplican clamping en vez de fallar, porque
// siempre debe existir un número mostrable en pantalla. La validación de
// entrada (cantidad positiva, precio no negativo) ocurre antes, en los
// casos de uso.
package pricing

import "github.com/shopspring/decimal"

// Tipos de descuento válidos para una propuesta. Exactamente uno está
// activo a la vez; cambiar de tipo resetea conceptualmente el valor del otro.
const (
	DiscountNone    = ""             // sin descuento
	DiscountPercent = "percent"      // porcentaje sobre el subtotal de ítems
	DiscountFixed   = "fixed_amount" // monto fijo en centavos
)

// Discount es la política de descuento de una propuesta como unión etiquetada:
// Type decide cuál de los dos valores aplica; el otro se ignora.
type Discount struct {
	Type    string          // DiscountNone | DiscountPercent | DiscountFixed
	Percent decimal.Decimal // solo aplica si Type == DiscountPercent; se clampa a [0, 100]
	Amount  Money           // solo aplica si Type == DiscountFixed; se clampa a [0, subtotal]
}

// NoDiscount política vacía (sin descuento).
func NoDiscount() Discount {
	return Discount{Type: DiscountNone}
}

// PercentDiscount construye una política porcentual.
func PercentDiscount(p decimal.Decimal) Discount {
	return Discount{Type: DiscountPercent, Percent: p}
}

// FixedDiscount construye una política de monto fijo.
func FixedDiscount(amount Money) Discount {
	return Discount{Type: DiscountFixed, Amount: amount}
}

// Item entrada mínima del cálculo: cantidad y precio unitario en centavos.
type Item struct {
	Quantity  int64
	UnitPrice Money
}

// LineTotal total de la línea: cantidad × precio unitario.
func (i Item) LineTotal() Money {
	return Money(i.Quantity * int64(i.UnitPrice))
}

// Totals resultado del cálculo completo de una propuesta.
type Totals struct {
	Subtotal Money
	Discount Money
	Total    Money
}

// ItemsSubtotal suma cantidad × precio unitario de todos los ítems.
// Lista vacía → 0.
func ItemsSubtotal(items []Item) Money {
	var sum Money
	for _, item := range items {
		sum += item.LineTotal()
	}
	return sum
}

// DiscountAmount calcula el descuento en centavos sobre un subtotal.
//
//   - DiscountNone → 0.
//   - DiscountPercent → round(subtotal × clamp(p, 0, 100) / 100), redondeo
//     half-up al centavo. Si subtotal <= 0 el resultado es 0 sin importar p.
//   - DiscountFixed → min(max(monto, 0), subtotal): nunca excede el subtotal
//     ni es negativo.
func DiscountAmount(subtotal Money, d Discount) Money {
	if d.Type == DiscountNone || subtotal <= 0 {
		return 0
	}

	if d.Type == DiscountPercent {
		p := clampPercent(d.Percent)
		// Aritmética decimal exacta; Round(0) redondea half-up para positivos.
		amount := decimal.NewFromInt(int64(subtotal)).
			Mul(p).
			Div(decimal.NewFromInt(100)).
			Round(0)
		return Money(amount.IntPart())
	}

	fixed := d.Amount
	if fixed < 0 {
		fixed = 0
	}
	if fixed > subtotal {
		fixed = subtotal
	}
	return fixed
}

// QuoteTotals calcula subtotal, descuento y total de una propuesta.
//
// Con ítems: total = max(0, subtotal − descuento).
// Sin ítems: la propuesta es un monto cerrado; se usa fallbackAmount tal cual
// (clampado a 0) y la política de descuento se ignora por completo.
func QuoteTotals(items []Item, d Discount, fallbackAmount Money) Totals {
	if len(items) == 0 {
		total := fallbackAmount
		if total < 0 {
			total = 0
		}
		return Totals{Subtotal: 0, Discount: 0, Total: total}
	}

	subtotal := ItemsSubtotal(items)
	discount := DiscountAmount(subtotal, d)
	total := subtotal - discount
	if total < 0 {
		total = 0
	}
	return Totals{Subtotal: subtotal, Discount: discount, Total: total}
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
