// Package ptbr formats amounts, numbers and dates the way Brazilian receipts
// print them: "R$ 1.234,56", "17/10/2026", "17 de Outubro de 2026" and
// amounts written out in Portuguese ("mil e duzentos e trinta e quatro reais").
package ptbr

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaxSpelledInteger is the largest integer IntegerToWords accepts
const MaxSpelledInteger int64 = 999_999_999_999

const (
	thousand = 1_000
	million  = 1_000_000
	billion  = 1_000_000_000
)

var (
	units = [...]string{"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}
	teens = [...]string{"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	tens  = [...]string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}

	// "cento" only appears before a non-zero remainder; exact 100 is "cem"
	hundreds = [...]string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}

	hundred   = decimal.NewFromInt(100)
	maxAmount = decimal.NewFromInt(MaxSpelledInteger + 1)
)

// AmountToWords writes a non-negative amount of reais in Portuguese.
//
// The amount is rounded half-up to cents first. The integer part takes
// "real" only when it is exactly one, and whole millions take "de reais"
// ("um milhão de reais"). Cents are appended with " e " only when non-zero.
func AmountToWords(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", ErrNegativeAmount
	}

	rounded := amount.Round(2)
	if rounded.GreaterThanOrEqual(maxAmount) {
		return "", ErrAmountOutOfRange
	}

	integer := rounded.Truncate(0)
	reais := integer.IntPart()
	cents := rounded.Sub(integer).Mul(hundred).IntPart()

	words, err := IntegerToWords(reais)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(words)
	switch {
	case reais == 1:
		b.WriteString(" real")
	case reais >= million && reais%million == 0:
		b.WriteString(" de reais")
	default:
		b.WriteString(" reais")
	}

	if cents > 0 {
		centWords, err := IntegerToWords(cents)
		if err != nil {
			return "", err
		}
		b.WriteString(" e ")
		b.WriteString(centWords)
		if cents == 1 {
			b.WriteString(" centavo")
		} else {
			b.WriteString(" centavos")
		}
	}

	return b.String(), nil
}

// IntegerToWords writes n (0..MaxSpelledInteger) in Portuguese.
// Groups are joined with " e ": 1234 is "mil e duzentos e trinta e quatro".
func IntegerToWords(n int64) (string, error) {
	if n < 0 {
		return "", ErrNegativeAmount
	}
	if n > MaxSpelledInteger {
		return "", ErrAmountOutOfRange
	}
	if n == 0 {
		return units[0], nil
	}

	billions := n / billion
	millions := (n / million) % thousand
	thousands := (n / thousand) % thousand
	rest := n % thousand

	parts := make([]string, 0, 4)
	if billions > 0 {
		parts = append(parts, scaled(billions, "bilhão", "bilhões"))
	}
	if millions > 0 {
		parts = append(parts, scaled(millions, "milhão", "milhões"))
	}
	if thousands > 0 {
		if thousands == 1 {
			parts = append(parts, "mil")
		} else {
			parts = append(parts, belowThousand(thousands)+" mil")
		}
	}
	if rest > 0 {
		parts = append(parts, belowThousand(rest))
	}

	return strings.Join(parts, " e "), nil
}

func scaled(n int64, singular, plural string) string {
	if n == 1 {
		return "um " + singular
	}
	return belowThousand(n) + " " + plural
}

// belowThousand handles 1..999
func belowThousand(n int64) string {
	if n == 100 {
		return "cem"
	}

	h, r := n/100, n%100
	switch {
	case h == 0:
		return belowHundred(r)
	case r == 0:
		return hundreds[h]
	default:
		return hundreds[h] + " e " + belowHundred(r)
	}
}

// belowHundred handles 1..99; 10..19 never split into tens and units
func belowHundred(n int64) string {
	switch {
	case n < 10:
		return units[n]
	case n < 20:
		return teens[n-10]
	case n%10 == 0:
		return tens[n/10]
	default:
		return tens[n/10] + " e " + units[n%10]
	}
}
