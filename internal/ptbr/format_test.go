package ptbr

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "0,00"},
		{"5", "5,00"},
		{"12.3", "12,30"},
		{"999.99", "999,99"},
		{"1000", "1.000,00"},
		{"1234.56", "1.234,56"},
		{"1234567.891", "1.234.567,89"},
		{"100000", "100.000,00"},
		{"-1500.5", "-1.500,50"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatBRL(decimal.RequireFromString("1234.56")))
}

func TestDates(t *testing.T) {
	date := time.Date(2026, time.October, 7, 0, 0, 0, 0, time.UTC)

	t.Run("short format", func(t *testing.T) {
		assert.Equal(t, "07/10/2026", FormatDate(date))
	})

	t.Run("extended format", func(t *testing.T) {
		assert.Equal(t, "7 de Outubro de 2026", FormatDateExtended(date))
	})

	t.Run("parse iso", func(t *testing.T) {
		parsed, err := ParseISODate("2026-10-07")
		require.NoError(t, err)
		assert.True(t, parsed.Equal(date))
	})

	t.Run("parse rejects other layouts", func(t *testing.T) {
		_, err := ParseISODate("07/10/2026")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("iso helpers", func(t *testing.T) {
		assert.Equal(t, "01/03/2025", FormatISODate("2025-03-01"))
		assert.Equal(t, "1 de Março de 2025", FormatISODateExtended("2025-03-01"))
		assert.Equal(t, "", FormatISODate(""))
		assert.Equal(t, "", FormatISODateExtended("  "))
		assert.Equal(t, "amanhã", FormatISODate("amanhã"))
	})
}
