package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money representa un monto en centavos (unidad mínima de BRL).
// Todo el cálculo monetario del sistema usa enteros; nunca punto flotante.
type Money int64

// Decimal devuelve el monto en reales como decimal exacto (centavos / 100).
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m)).Div(decimal.NewFromInt(100))
}

// FormatBRL formatea el monto como moneda brasileña: "R$ 1.234,56".
// Montos negativos llevan el signo antes del símbolo: "-R$ 10,00".
func FormatBRL(m Money) string {
	cents := int64(m)
	neg := cents < 0
	if neg {
		cents = -cents
	}

	d := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	fixed := d.StringFixed(2) // "1234.56"

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := groupThousands(intPart)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")
	b.WriteString(grouped)
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// groupThousands inserta puntos de miles en un string numérico sin signo.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
