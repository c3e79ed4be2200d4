// Package cpf masks and validates Brazilian individual taxpayer numbers
// (Cadastro de Pessoas Físicas): eleven digits, the last two being check
// digits over the first nine and ten.
package cpf

import "strings"

// Length is the number of digits in a CPF
const Length = 11

// Unmask keeps only the ASCII digits of raw
func Unmask(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Mask formats raw as 000.000.000-00. Non-digits are dropped, input is
// truncated to 11 digits and separators are only inserted once enough
// digits exist, so partial input is partially masked ("1234" is "123.4").
// Masking an already masked value returns it unchanged.
func Mask(raw string) string {
	digits := Unmask(raw)
	if len(digits) > Length {
		digits = digits[:Length]
	}

	switch n := len(digits); {
	case n <= 3:
		return digits
	case n <= 6:
		return digits[:3] + "." + digits[3:]
	case n <= 9:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:]
	default:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
	}
}

// IsValid reports whether cpf carries eleven digits, not all equal, whose
// two check digits match. Punctuation is ignored. It never panics.
func IsValid(cpf string) bool {
	digits := Unmask(cpf)
	if len(digits) != Length {
		return false
	}
	if strings.Count(digits, digits[:1]) == Length {
		return false
	}

	var d [Length]int
	for i := range digits {
		d[i] = int(digits[i] - '0')
	}

	return checkDigit(d[:9]) == d[9] && checkDigit(d[:10]) == d[10]
}

// checkDigit computes the verifier for the given prefix with weights
// len+1 down to 2
func checkDigit(prefix []int) int {
	sum := 0
	weight := len(prefix) + 1
	for _, v := range prefix {
		sum += v * weight
		weight--
	}
	r := (sum * 10) % 11
	if r == 10 {
		return 0
	}
	return r
}
