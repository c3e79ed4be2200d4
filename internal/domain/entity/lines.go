package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseKind tells how an expense line is valued
type ExpenseKind string

// RateLine is one daily-rate service line (quantity × unit value)
type RateLine struct {
	ID        string          `json:"id" yaml:"id"`
	Label     string          `json:"label" yaml:"label"`
	Quantity  int             `json:"quantity" yaml:"quantity"`
	UnitValue decimal.Decimal `json:"unit_value" yaml:"unit_value"`
}

// Subtotal returns Quantity × UnitValue
func (l RateLine) Subtotal() decimal.Decimal {
	return l.UnitValue.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ExpenseLine is one itemized expense
type ExpenseLine struct {
	ID        string          `json:"id" yaml:"id"`
	Label     string          `json:"label" yaml:"label"`
	Kind      ExpenseKind     `json:"kind" yaml:"kind"`
	Quantity  int             `json:"quantity" yaml:"quantity"` // meaningful only for ExpenseKindQuantity
	UnitValue decimal.Decimal `json:"unit_value" yaml:"unit_value"`
}

// NewExpenseLine creates an expense line with a fresh identifier
func NewExpenseLine(label string, kind ExpenseKind, quantity int, unitValue decimal.Decimal) ExpenseLine {
	return ExpenseLine{
		ID:        uuid.NewString(),
		Label:     label,
		Kind:      kind,
		Quantity:  quantity,
		UnitValue: unitValue,
	}
}

// Subtotal returns UnitValue for single expenses and Quantity × UnitValue
// for quantity expenses. Any other kind is valued as single.
func (l ExpenseLine) Subtotal() decimal.Decimal {
	if l.Kind == ExpenseKindQuantity {
		return l.UnitValue.Mul(decimal.NewFromInt(int64(l.Quantity)))
	}
	return l.UnitValue
}

// AdvanceRecord is the single cash advance of the advance mode
type AdvanceRecord struct {
	Amount        decimal.Decimal `json:"amount" yaml:"amount"`
	Note          string          `json:"note" yaml:"note"`
	PaymentMethod string          `json:"payment_method" yaml:"payment_method"`
}

// Subtotal returns Amount
func (a AdvanceRecord) Subtotal() decimal.Decimal {
	return a.Amount
}
