// Package totals computes receipt subtotals and grand totals for the three
// receipt modes. Everything here is pure: no state, no I/O.
package totals

import (
	"github.com/shopspring/decimal"

	"github.com/guicheweb/recibo/internal/domain/entity"
)

// Line is the subtotal of one input record, in input order
type Line struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Quantity  int             `json:"quantity"`
	UnitValue decimal.Decimal `json:"unit_value"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Summary is the per-line breakdown plus the grand total for one mode
type Summary struct {
	Mode  entity.Mode     `json:"mode"`
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// Compute returns the grand total for the active mode.
// Empty lists yield zero. Negative inputs are not clamped.
func Compute(mode entity.Mode, rates []entity.RateLine, expenses []entity.ExpenseLine, advance entity.AdvanceRecord) decimal.Decimal {
	switch mode {
	case entity.ModeRates:
		return SumRates(rates)
	case entity.ModeExpenses:
		return SumExpenses(expenses)
	case entity.ModeAdvance:
		return advance.Subtotal()
	}
	return decimal.Zero
}

// ComputeReceipt is Compute applied to a receipt's own records
func ComputeReceipt(r *entity.Receipt) decimal.Decimal {
	return Compute(r.Mode, r.RateLines, r.ExpenseLines, r.Advance)
}

// SumRates sums quantity × unit value over rate lines
func SumRates(lines []entity.RateLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// SumExpenses sums expense subtotals
func SumExpenses(lines []entity.ExpenseLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Breakdown returns the subtotal of every record of the active mode,
// preserving input order, together with the grand total.
// The advance mode yields a single synthetic line.
func Breakdown(mode entity.Mode, rates []entity.RateLine, expenses []entity.ExpenseLine, advance entity.AdvanceRecord) Summary {
	summary := Summary{Mode: mode, Lines: []Line{}}

	switch mode {
	case entity.ModeRates:
		for _, l := range rates {
			summary.Lines = append(summary.Lines, Line{
				ID:        l.ID,
				Label:     l.Label,
				Quantity:  l.Quantity,
				UnitValue: l.UnitValue,
				Subtotal:  l.Subtotal(),
			})
		}
	case entity.ModeExpenses:
		for _, l := range expenses {
			qty := 1
			if l.Kind == entity.ExpenseKindQuantity {
				qty = l.Quantity
			}
			summary.Lines = append(summary.Lines, Line{
				ID:        l.ID,
				Label:     l.Label,
				Quantity:  qty,
				UnitValue: l.UnitValue,
				Subtotal:  l.Subtotal(),
			})
		}
	case entity.ModeAdvance:
		summary.Lines = append(summary.Lines, Line{
			ID:        entity.AdvanceLineID,
			Label:     entity.AdvanceLineDescription,
			Quantity:  1,
			UnitValue: advance.Amount,
			Subtotal:  advance.Subtotal(),
		})
	}

	summary.Total = Compute(mode, rates, expenses, advance)
	return summary
}

// BreakdownReceipt is Breakdown applied to a receipt's own records
func BreakdownReceipt(r *entity.Receipt) Summary {
	return Breakdown(r.Mode, r.RateLines, r.ExpenseLines, r.Advance)
}
