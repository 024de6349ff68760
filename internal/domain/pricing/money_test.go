package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lilnaht/bidFlow/internal/domain/pricing"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		name  string
		cents pricing.Money
		want  string
	}{
		{"cero", 0, "R$ 0,00"},
		{"centavos sueltos", 5, "R$ 0,05"},
		{"sin miles", 90_000, "R$ 900,00"},
		{"con separador de miles", 123_456, "R$ 1.234,56"},
		{"millones", 123_456_789, "R$ 1.234.567,89"},
		{"negativo", -1_000, "-R$ 10,00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.FormatBRL(tc.cents))
		})
	}
}
