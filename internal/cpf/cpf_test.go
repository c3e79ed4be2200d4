package cpf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "three digits", input: "123", expected: "123"},
		{name: "four digits", input: "1234", expected: "123.4"},
		{name: "six digits", input: "123456", expected: "123.456"},
		{name: "seven digits", input: "1234567", expected: "123.456.7"},
		{name: "nine digits", input: "123456789", expected: "123.456.789"},
		{name: "ten digits", input: "1234567890", expected: "123.456.789-0"},
		{name: "full", input: "12345678900", expected: "123.456.789-00"},
		{name: "truncates extra digits", input: "1234567890012", expected: "123.456.789-00"},
		{name: "drops letters and spaces", input: "529 982 247 25abc", expected: "529.982.247-25"},
		{name: "already masked", input: "529.982.247-25", expected: "529.982.247-25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mask(tt.input))
		})
	}
}

func TestMask_Idempotent(t *testing.T) {
	inputs := []string{"", "1", "1234", "12345678", "12345678900", "999.888.777-66", "a1b2c3d4"}
	for _, in := range inputs {
		once := Mask(in)
		assert.Equal(t, once, Mask(once), "input %q", in)
	}
}

func TestUnmask(t *testing.T) {
	assert.Equal(t, "52998224725", Unmask("529.982.247-25"))
	assert.Equal(t, "", Unmask("abc"))
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "known valid", input: "52998224725", valid: true},
		{name: "known valid masked", input: "529.982.247-25", valid: true},
		{name: "another valid", input: "11144477735", valid: true},
		{name: "first check digit yields zero", input: "12345678909", valid: true},
		{name: "corrupted second check digit", input: "52998224724", valid: false},
		{name: "corrupted first check digit", input: "52998224735", valid: false},
		{name: "all repeated digits", input: "11111111111", valid: false},
		{name: "all zeros", input: "000.000.000-00", valid: false},
		{name: "too short", input: "5299822472", valid: false},
		{name: "too long", input: "529982247250", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "garbage", input: "not a cpf", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.input))
		})
	}
}
