package ptbr

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "zero is plural", amount: "0", expected: "zero reais"},
		{name: "one real is singular", amount: "1", expected: "um real"},
		{name: "two reais", amount: "2", expected: "dois reais"},
		{name: "teen", amount: "15", expected: "quinze reais"},
		{name: "round ten", amount: "40", expected: "quarenta reais"},
		{name: "tens and units", amount: "87", expected: "oitenta e sete reais"},
		{name: "exactly one hundred is cem", amount: "100", expected: "cem reais"},
		{name: "one hundred and one", amount: "101", expected: "cento e um reais"},
		{name: "hundreds with teen", amount: "519", expected: "quinhentos e dezenove reais"},
		{name: "round hundreds", amount: "900", expected: "novecentos reais"},
		{name: "one thousand is mil alone", amount: "1000", expected: "mil reais"},
		{name: "two thousand", amount: "2000", expected: "dois mil reais"},
		{name: "thousand and one", amount: "1001", expected: "mil e um reais"},
		{name: "thousand and one hundred", amount: "1100", expected: "mil e cem reais"},
		{name: "hundred thousands", amount: "100000", expected: "cem mil reais"},
		{
			name:     "largest six digit amount",
			amount:   "999999",
			expected: "novecentos e noventa e nove mil e novecentos e noventa e nove reais",
		},
		{
			name:     "thousands with cents",
			amount:   "1234.56",
			expected: "mil e duzentos e trinta e quatro reais e cinquenta e seis centavos",
		},
		{name: "one cent is singular", amount: "0.01", expected: "zero reais e um centavo"},
		{name: "one real and one cent", amount: "1.01", expected: "um real e um centavo"},
		{name: "cents rounded half up", amount: "10.005", expected: "dez reais e um centavo"},
		{name: "rounding carries into reais", amount: "0.999", expected: "um real"},
		{name: "cents below half are dropped", amount: "3.004", expected: "três reais"},
		{name: "one million takes de", amount: "1000000", expected: "um milhão de reais"},
		{name: "two millions take de", amount: "2000000", expected: "dois milhões de reais"},
		{name: "million and one", amount: "1000001", expected: "um milhão e um reais"},
		{
			name:     "millions and thousands",
			amount:   "2500300.10",
			expected: "dois milhões e quinhentos mil e trezentos reais e dez centavos",
		},
		{name: "one billion", amount: "1000000000", expected: "um bilhão de reais"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AmountToWords(decimal.RequireFromString(tt.amount))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAmountToWords_Errors(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		_, err := AmountToWords(decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})

	t.Run("one trillion is out of range", func(t *testing.T) {
		_, err := AmountToWords(decimal.NewFromInt(1_000_000_000_000))
		assert.ErrorIs(t, err, ErrAmountOutOfRange)
	})

	t.Run("rounding up to one trillion is out of range", func(t *testing.T) {
		_, err := AmountToWords(decimal.RequireFromString("999999999999.995"))
		assert.ErrorIs(t, err, ErrAmountOutOfRange)
	})

	t.Run("largest amount is spelled", func(t *testing.T) {
		words, err := AmountToWords(decimal.RequireFromString("999999999999.99"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(words, "novecentos e noventa e nove bilhões"))
		assert.True(t, strings.HasSuffix(words, "reais e noventa e nove centavos"))
	})
}

func TestIntegerToWords(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "zero"},
		{10, "dez"},
		{14, "quatorze"},
		{20, "vinte"},
		{21, "vinte e um"},
		{110, "cento e dez"},
		{200, "duzentos"},
		{1999, "mil e novecentos e noventa e nove"},
		{21000, "vinte e um mil"},
		{3000003, "três milhões e três"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result, err := IntegerToWords(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	_, err := IntegerToWords(-5)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = IntegerToWords(MaxSpelledInteger + 1)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
}
