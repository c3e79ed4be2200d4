package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAccents(t *testing.T) {
	assert.Equal(t, "Joao Conceicao", StripAccents("João Conceição"))
	assert.Equal(t, "Sao Paulo - Goias", StripAccents("São Paulo - Goiás"))
	assert.Equal(t, "plain", StripAccents("plain"))
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "accents and spaces", input: "João da Silva", expected: "Joao_da_Silva"},
		{name: "collapses whitespace", input: "  Maria   José \t Souza ", expected: "Maria_Jose_Souza"},
		{name: "drops separators", input: "../etc/passwd", expected: "etcpasswd"},
		{name: "drops symbols", input: "Ana & Cia. (ME)", expected: "Ana_Cia._ME"},
		{name: "nothing printable", input: "***", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFileName(tt.input))
		})
	}
}

func TestReceiptFileName(t *testing.T) {
	assert.Equal(t, "recibo-diarias-Joao_da_Silva.pdf", ReceiptFileName("João da Silva", "diarias", FileTypePDF))
	assert.Equal(t, "recibo-despesas.xlsx", ReceiptFileName("  ", "despesas", FileTypeExcel))
}
