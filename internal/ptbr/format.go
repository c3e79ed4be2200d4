package ptbr

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ISODateLayout is the layout of dates coming from form inputs
const ISODateLayout = "2006-01-02"

var months = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// FormatCurrency formats an amount with two decimals, "." as thousands
// separator and "," as decimal separator: 1234.5 becomes "1.234,50".
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.Round(2).StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// FormatBRL is FormatCurrency prefixed with the real sign
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + FormatCurrency(amount)
}

// ParseISODate parses a YYYY-MM-DD date
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate formats t as dd/mm/yyyy
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateExtended formats t as "17 de Outubro de 2026"
func FormatDateExtended(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}

// FormatISODate reformats a YYYY-MM-DD string as dd/mm/yyyy.
// Empty input gives an empty string; unparsable input is returned as is.
func FormatISODate(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	t, err := ParseISODate(s)
	if err != nil {
		return s
	}
	return FormatDate(t)
}

// FormatISODateExtended is FormatISODate with the extended layout
func FormatISODateExtended(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	t, err := ParseISODate(s)
	if err != nil {
		return s
	}
	return FormatDateExtended(t)
}
