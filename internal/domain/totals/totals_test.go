package totals

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guicheweb/recibo/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute(t *testing.T) {
	rates := []entity.RateLine{
		{ID: "a", Label: "Diária Evento", Quantity: 2, UnitValue: d("250.00")},
		{ID: "b", Label: "Hora Extra", Quantity: 3, UnitValue: d("35.50")},
		{ID: "c", Label: "Instalação PDV", Quantity: 0, UnitValue: d("100")},
	}
	expenses := []entity.ExpenseLine{
		{ID: "x", Label: "Uber", Kind: entity.ExpenseKindSingle, Quantity: 9, UnitValue: d("42.30")},
		{ID: "y", Label: "Refeição", Kind: entity.ExpenseKindQuantity, Quantity: 3, UnitValue: d("25")},
	}
	advance := entity.AdvanceRecord{Amount: d("1234.56"), PaymentMethod: "PIX"}

	tests := []struct {
		name string
		mode entity.Mode
		want string
	}{
		{name: "rates sums quantity times value", mode: entity.ModeRates, want: "606.50"},
		{name: "expenses honours kind", mode: entity.ModeExpenses, want: "117.30"},
		{name: "advance returns amount", mode: entity.ModeAdvance, want: "1234.56"},
		{name: "unknown mode is zero", mode: entity.ModeUnknown, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.mode, rates, expenses, advance)
			assert.True(t, d(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestCompute_EmptyLists(t *testing.T) {
	assert.True(t, Compute(entity.ModeRates, nil, nil, entity.AdvanceRecord{}).IsZero())
	assert.True(t, Compute(entity.ModeExpenses, nil, nil, entity.AdvanceRecord{}).IsZero())
	assert.True(t, Compute(entity.ModeAdvance, nil, nil, entity.AdvanceRecord{}).IsZero())
}

func TestCompute_OrderIndependent(t *testing.T) {
	lines := []entity.RateLine{
		{Quantity: 1, UnitValue: d("0.10")},
		{Quantity: 7, UnitValue: d("13.33")},
		{Quantity: 2, UnitValue: d("0.20")},
	}
	reversed := []entity.RateLine{lines[2], lines[1], lines[0]}

	a := Compute(entity.ModeRates, lines, nil, entity.AdvanceRecord{})
	b := Compute(entity.ModeRates, reversed, nil, entity.AdvanceRecord{})

	assert.True(t, a.Equal(b))
	assert.True(t, d("93.81").Equal(a))
}

func TestCompute_DoesNotClampNegatives(t *testing.T) {
	lines := []entity.ExpenseLine{
		{Kind: entity.ExpenseKindSingle, UnitValue: d("10")},
		{Kind: entity.ExpenseKindSingle, UnitValue: d("-4")},
	}
	assert.True(t, d("6").Equal(Compute(entity.ModeExpenses, nil, lines, entity.AdvanceRecord{})))
}

func TestComputeReceipt(t *testing.T) {
	r := entity.NewReceipt(entity.ModeRates)
	r.RateLines[2].Quantity = 3
	r.RateLines[2].UnitValue = d("180")
	r.ExpenseLines = []entity.ExpenseLine{{UnitValue: d("999")}}

	assert.True(t, d("540").Equal(ComputeReceipt(r)))
}

func TestBreakdown(t *testing.T) {
	t.Run("rates preserve input order", func(t *testing.T) {
		rates := []entity.RateLine{
			{ID: "z", Label: "Z", Quantity: 1, UnitValue: d("5")},
			{ID: "a", Label: "A", Quantity: 2, UnitValue: d("10")},
		}

		s := Breakdown(entity.ModeRates, rates, nil, entity.AdvanceRecord{})

		require.Len(t, s.Lines, 2)
		assert.Equal(t, "z", s.Lines[0].ID)
		assert.Equal(t, "a", s.Lines[1].ID)
		assert.True(t, d("20").Equal(s.Lines[1].Subtotal))
		assert.True(t, d("25").Equal(s.Total))
		assert.Equal(t, entity.ModeRates, s.Mode)
	})

	t.Run("single expense reports quantity one", func(t *testing.T) {
		expenses := []entity.ExpenseLine{
			{ID: "e1", Kind: entity.ExpenseKindSingle, Quantity: 5, UnitValue: d("12")},
			{ID: "e2", Kind: entity.ExpenseKindQuantity, Quantity: 5, UnitValue: d("12")},
		}

		s := Breakdown(entity.ModeExpenses, nil, expenses, entity.AdvanceRecord{})

		require.Len(t, s.Lines, 2)
		assert.Equal(t, 1, s.Lines[0].Quantity)
		assert.Equal(t, 5, s.Lines[1].Quantity)
		assert.True(t, d("72").Equal(s.Total))
	})

	t.Run("advance yields one synthetic line", func(t *testing.T) {
		s := Breakdown(entity.ModeAdvance, nil, nil, entity.AdvanceRecord{Amount: d("300")})

		require.Len(t, s.Lines, 1)
		assert.Equal(t, entity.AdvanceLineID, s.Lines[0].ID)
		assert.True(t, d("300").Equal(s.Total))
	})

	t.Run("empty rates give empty non-nil lines", func(t *testing.T) {
		s := Breakdown(entity.ModeRates, nil, nil, entity.AdvanceRecord{})

		assert.NotNil(t, s.Lines)
		assert.Empty(t, s.Lines)
		assert.True(t, s.Total.IsZero())
	})
}
