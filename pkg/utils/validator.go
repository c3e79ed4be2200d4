package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	controlChars    = regexp.MustCompile(`[\x00-\x1f\x7f]`)
	brazilianAmount = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})*(,\d+)?$|^-?\d+(,\d+)$`)
)

// ParseAmount parses an amount typed either as "1234.56" or in Brazilian
// notation "1.234,56". An optional "R$" prefix is ignored.
func ParseAmount(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if raw == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	if brazilianAmount.MatchString(raw) && strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.Replace(raw, ",", ".", 1)
	} else if strings.Contains(raw, ",") {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s", s)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s", s)
	}
	return amount, nil
}

// ValidateAmount rejects negative receipt amounts
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative: %s", amount.StringFixed(2))
	}
	return nil
}

// ValidateISODate accepts an empty string or a YYYY-MM-DD date
func ValidateISODate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return nil
}

// SanitizeString removes control characters and surrounding whitespace
func SanitizeString(s string) string {
	return strings.TrimSpace(controlChars.ReplaceAllString(s, ""))
}
