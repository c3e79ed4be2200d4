// Package locations provides the Brazilian federative units and their
// cities used to fill event and receipt places.
package locations

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrUnknownState is returned for a code that is not a federative unit
var ErrUnknownState = errors.New("unknown state code")

// State is one federative unit
type State struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Cities []string `json:"cities,omitempty"`
}

// States returns every unit (code and name only) sorted by name using
// Portuguese collation, so "Pará" < "Paraíba" < "Paraná".
func States() []State {
	states := make([]State, 0, len(gazetteer))
	for _, s := range gazetteer {
		states = append(states, State{Code: s.Code, Name: s.Name})
	}

	col := collate.New(language.BrazilianPortuguese)
	sort.Slice(states, func(i, j int) bool {
		return col.CompareString(states[i].Name, states[j].Name) < 0
	})
	return states
}

// Lookup returns the unit for a code, case-insensitively
func Lookup(code string) (State, error) {
	s, ok := gazetteer[normalizeCode(code)]
	if !ok {
		return State{}, ErrUnknownState
	}
	cities := make([]string, len(s.Cities))
	copy(cities, s.Cities)
	s.Cities = cities
	return s, nil
}

// Cities returns the bundled cities of a unit, or an empty slice for an
// unknown code
func Cities(code string) []string {
	s, err := Lookup(code)
	if err != nil {
		return []string{}
	}
	return s.Cities
}

// IsState reports whether code names a federative unit
func IsState(code string) bool {
	_, ok := gazetteer[normalizeCode(code)]
	return ok
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
