package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DateKind tells whether the event happened on a single day or a period
type DateKind string

// ReceiptInfo holds the personal and event data typed into the form.
// Dates are ISO strings (YYYY-MM-DD) and may be empty.
type ReceiptInfo struct {
	FullName     string   `json:"full_name" yaml:"full_name"`
	CPF          string   `json:"cpf" yaml:"cpf"`
	Producer     string   `json:"producer" yaml:"producer"`
	EventName    string   `json:"event_name" yaml:"event_name"`
	DateKind     DateKind `json:"date_kind" yaml:"date_kind"`
	EventDate    string   `json:"event_date" yaml:"event_date"`
	EventDateEnd string   `json:"event_date_end" yaml:"event_date_end"`
	EventState   string   `json:"event_state" yaml:"event_state"`
	EventCity    string   `json:"event_city" yaml:"event_city"`
	PIX          string   `json:"pix" yaml:"pix"`
	ReceiptDate  string   `json:"receipt_date" yaml:"receipt_date"`
	ReceiptState string   `json:"receipt_state" yaml:"receipt_state"`
	ReceiptCity  string   `json:"receipt_city" yaml:"receipt_city"`
}

// Receipt is everything needed to compose one receipt.
// Only the record set selected by Mode contributes to the total.
type Receipt struct {
	ID                 string        `json:"id" yaml:"id"`
	Mode               Mode          `json:"mode" yaml:"mode"`
	Info               ReceiptInfo   `json:"info" yaml:"info"`
	Services           []string      `json:"services" yaml:"services"`
	ServiceDescription string        `json:"service_description" yaml:"service_description"`
	RateLines          []RateLine    `json:"rate_lines" yaml:"rate_lines"`
	ExpenseLines       []ExpenseLine `json:"expense_lines" yaml:"expense_lines"`
	Advance            AdvanceRecord `json:"advance" yaml:"advance"`
}

// NewReceipt creates an empty receipt in the given mode with the standard
// rate lines preloaded
func NewReceipt(mode Mode) *Receipt {
	return &Receipt{
		ID:        uuid.NewString(),
		Mode:      mode,
		Info:      ReceiptInfo{DateKind: DateKindSingle},
		RateLines: DefaultRateLines(),
	}
}

// EnsureIdentifiers assigns identifiers to the receipt and to expense lines
// that arrived without one
func (r *Receipt) EnsureIdentifiers() {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	for i := range r.ExpenseLines {
		if r.ExpenseLines[i].ID == "" {
			r.ExpenseLines[i].ID = uuid.NewString()
		}
	}
}

// Validate checks the fields required before a receipt can be generated
func (r *Receipt) Validate() error {
	if err := r.ValidateDraft(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Info.FullName) == "" {
		return ErrFullNameRequired
	}
	return nil
}

// ValidateDraft checks what a live preview needs. Missing personal data is
// allowed here and shows up as placeholders.
func (r *Receipt) ValidateDraft() error {
	if !r.Mode.Valid() {
		return ErrInvalidMode
	}
	for _, s := range r.Services {
		if !IsKnownService(s) {
			return fmt.Errorf("%w: %q", ErrUnknownService, s)
		}
	}
	return nil
}
