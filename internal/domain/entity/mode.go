package entity

import (
	"fmt"
	"strings"
)

// Mode selects which record set feeds the receipt total.
// Exactly one mode is active per receipt.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeRates
	ModeExpenses
	ModeAdvance
)

var modeNames = map[Mode]string{
	ModeRates:    "diarias",
	ModeExpenses: "despesas",
	ModeAdvance:  "adiantamento",
}

var modeAliases = map[string]Mode{
	"diarias":      ModeRates,
	"rates":        ModeRates,
	"despesas":     ModeExpenses,
	"expenses":     ModeExpenses,
	"adiantamento": ModeAdvance,
	"advance":      ModeAdvance,
}

// ParseMode converts a wire name into a Mode
func ParseMode(s string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return ModeUnknown, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Valid reports whether m is one of the three receipt modes
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Title returns the receipt subtitle for the mode
func (m Mode) Title() string {
	switch m {
	case ModeRates:
		return "RECEBIMENTO DE DIÁRIA"
	case ModeExpenses:
		return "RECEBIMENTO DE DESPESAS"
	case ModeAdvance:
		return "RECEBIMENTO DE ADIANTAMENTO"
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
