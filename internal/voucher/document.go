package voucher

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guicheweb/recibo/internal/domain/entity"
	"github.com/guicheweb/recibo/internal/ptbr"
)

// Placeholders printed in place of missing receipt fields
const (
	PlaceholderFullName = "[Nome Completo]"
	PlaceholderProducer = "[Nome do Produtor]"
	PlaceholderServices = "[Serviços]"
	PlaceholderEvent    = "[Nome do Evento]"
	PlaceholderEventLoc = "[Cidade/UF]"
	PlaceholderCity     = "[Cidade]"
	PlaceholderDate     = "[Data]"

	// DocumentTitle heads every receipt
	DocumentTitle = "RECIBO"

	emptyDetail = "-"
)

// Document is a composed receipt ready to be rendered to text, PDF or XLSX
type Document struct {
	ReceiptID    string          `json:"receipt_id"`
	Mode         entity.Mode     `json:"mode"`
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle"`
	Details      []Detail        `json:"details"`
	Body         string          `json:"body"`
	Items        []Item          `json:"items"`
	Advance      *AdvanceInfo    `json:"advance,omitempty"`
	Total        decimal.Decimal `json:"total"`
	TotalText    string          `json:"total_text"`
	TotalInWords string          `json:"total_in_words"`
	PlaceAndDate string          `json:"place_and_date"`
	PIX          string          `json:"pix,omitempty"`
	Signature    Signature       `json:"signature"`
	Footer       string          `json:"footer,omitempty"`
}

// Detail is one label/value pair of the identification block
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Item is one printed table row
type Item struct {
	SequenceNumber int             `json:"sequence_number"` // 1-indexed
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity"`
	UnitValue      decimal.Decimal `json:"unit_value"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// AdvanceInfo replaces the item table for advance receipts
type AdvanceInfo struct {
	PaymentMethod string `json:"payment_method,omitempty"`
	Note          string `json:"note,omitempty"`
}

// Signature is the signing block at the bottom of the receipt
type Signature struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	CPFValid bool   `json:"cpf_valid"`
}

// Text renders the document as a plain-text preview
func (d *Document) Text() string {
	var b strings.Builder

	b.WriteString(d.Title)
	b.WriteString("\n")
	b.WriteString(d.Subtitle)
	b.WriteString("\n\n")

	for _, detail := range d.Details {
		fmt.Fprintf(&b, "%s: %s\n", detail.Label, detail.Value)
	}
	if len(d.Details) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(d.Body)
	b.WriteString("\n\n")

	if d.Advance != nil {
		if d.Advance.PaymentMethod != "" {
			fmt.Fprintf(&b, "Forma de pagamento: %s\n", d.Advance.PaymentMethod)
		}
		if d.Advance.Note != "" {
			fmt.Fprintf(&b, "Observação: %s\n", d.Advance.Note)
		}
	}

	for _, item := range d.Items {
		fmt.Fprintf(&b, "%d. %s  %d x %s = %s\n",
			item.SequenceNumber,
			item.Description,
			item.Quantity,
			ptbr.FormatBRL(item.UnitValue),
			ptbr.FormatBRL(item.Subtotal))
	}

	fmt.Fprintf(&b, "TOTAL: %s\n", d.TotalText)
	fmt.Fprintf(&b, "(%s)\n\n", d.TotalInWords)

	b.WriteString(d.PlaceAndDate)
	b.WriteString("\n")
	if d.PIX != "" {
		fmt.Fprintf(&b, "PIX: %s\n", d.PIX)
	}

	b.WriteString("\n____________________________________\n")
	b.WriteString(d.Signature.Name)
	b.WriteString("\n")
	if d.Signature.CPF != "" {
		fmt.Fprintf(&b, "CPF: %s\n", d.Signature.CPF)
	}

	if d.Footer != "" {
		b.WriteString("\n")
		b.WriteString(d.Footer)
		b.WriteString("\n")
	}

	return b.String()
}
