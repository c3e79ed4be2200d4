package voucher

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/guicheweb/recibo/internal/cpf"
	"github.com/guicheweb/recibo/internal/domain/entity"
	"github.com/guicheweb/recibo/internal/domain/totals"
	"github.com/guicheweb/recibo/internal/ptbr"
)

// Composer builds printable documents from receipts
type Composer struct {
	footer string
	logger *zap.Logger
}

// NewComposer creates a Composer. footer is printed at the bottom of every
// receipt and may be empty.
func NewComposer(footer string, logger *zap.Logger) *Composer {
	return &Composer{
		footer: strings.TrimSpace(footer),
		logger: logger,
	}
}

// Compose builds the document for a receipt. Missing personal data is
// replaced by placeholders; the receipt only needs a valid mode.
func (c *Composer) Compose(ctx context.Context, receipt *entity.Receipt) (*Document, error) {
	if receipt == nil {
		return nil, ErrNilReceipt
	}
	if err := receipt.ValidateDraft(); err != nil {
		return nil, err
	}

	c.logger.Debug("Composing receipt",
		zap.String("receipt_id", receipt.ID),
		zap.String("mode", receipt.Mode.String()))

	summary := totals.BreakdownReceipt(receipt)

	words, err := ptbr.AmountToWords(summary.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to spell total: %w", err)
	}

	info := receipt.Info
	totalText := ptbr.FormatBRL(summary.Total)

	doc := &Document{
		ReceiptID:    receipt.ID,
		Mode:         receipt.Mode,
		Title:        DocumentTitle,
		Subtitle:     receipt.Mode.Title(),
		Details:      c.buildDetails(info),
		Items:        c.buildItems(receipt.Mode, summary),
		Total:        summary.Total,
		TotalText:    totalText,
		TotalInWords: words,
		PlaceAndDate: placeAndDate(info),
		PIX:          strings.TrimSpace(info.PIX),
		Signature:    buildSignature(info),
		Footer:       c.footer,
	}

	doc.Body = fmt.Sprintf(
		"Eu, %s, recebi do produtor %s, a quantia de %s (%s) referente à prestação de serviços de %s do evento %s%s, na cidade de %s.",
		orPlaceholder(info.FullName, PlaceholderFullName),
		orPlaceholder(info.Producer, PlaceholderProducer),
		totalText,
		words,
		ServicesText(receipt.Services, receipt.ServiceDescription),
		orPlaceholder(info.EventName, PlaceholderEvent),
		prefixed(EventDateText(info)),
		eventLocation(info.EventCity, info.EventState),
	)

	if receipt.Mode == entity.ModeAdvance {
		doc.Advance = &AdvanceInfo{
			PaymentMethod: strings.TrimSpace(receipt.Advance.PaymentMethod),
			Note:          strings.TrimSpace(receipt.Advance.Note),
		}
	}

	c.logger.Debug("Receipt composed",
		zap.String("receipt_id", receipt.ID),
		zap.Int("item_count", len(doc.Items)),
		zap.String("total", summary.Total.StringFixed(2)))

	return doc, nil
}

// buildItems keeps the rows worth printing: rates with a quantity and
// expenses with a positive subtotal. Advances print no table.
func (c *Composer) buildItems(mode entity.Mode, summary totals.Summary) []Item {
	items := []Item{}
	if mode == entity.ModeAdvance {
		return items
	}

	for _, line := range summary.Lines {
		switch mode {
		case entity.ModeRates:
			if line.Quantity <= 0 {
				continue
			}
		case entity.ModeExpenses:
			if !line.Subtotal.IsPositive() {
				continue
			}
		}
		items = append(items, Item{
			SequenceNumber: len(items) + 1,
			Description:    line.Label,
			Quantity:       line.Quantity,
			UnitValue:      line.UnitValue,
			Subtotal:       line.Subtotal,
		})
	}
	return items
}

func (c *Composer) buildDetails(info entity.ReceiptInfo) []Detail {
	maskedCPF := cpf.Mask(info.CPF)

	eventDate := EventDateRange(info)

	place := emptyDetail
	city := strings.TrimSpace(info.EventCity)
	state := strings.TrimSpace(info.EventState)
	switch {
	case city != "" && state != "":
		place = city + " - " + state
	case city != "":
		place = city
	case state != "":
		place = state
	}

	return []Detail{
		{Label: "Nome", Value: orPlaceholder(info.FullName, emptyDetail)},
		{Label: "CPF", Value: orPlaceholder(maskedCPF, emptyDetail)},
		{Label: "Evento", Value: orPlaceholder(info.EventName, emptyDetail)},
		{Label: "Data do Evento", Value: orPlaceholder(eventDate, emptyDetail)},
		{Label: "Local", Value: place},
		{Label: "Produtor", Value: orPlaceholder(info.Producer, emptyDetail)},
	}
}

// ServicesText joins the selected service labels in upper case with " E ".
// With no selection the free description is used, then the placeholder.
func ServicesText(services []string, description string) string {
	labels := make([]string, 0, len(services))
	for _, s := range services {
		labels = append(labels, strings.ToUpper(entity.ServiceLabel(s)))
	}
	if len(labels) > 0 {
		return strings.Join(labels, " E ")
	}
	return orPlaceholder(description, PlaceholderServices)
}

// EventDateText returns "no período de A a B" for a complete period,
// "no dia A" when only a start date exists, or "" without dates
func EventDateText(info entity.ReceiptInfo) string {
	start := ptbr.FormatISODate(info.EventDate)
	end := ptbr.FormatISODate(info.EventDateEnd)

	if info.DateKind == entity.DateKindPeriod && start != "" && end != "" {
		return fmt.Sprintf("no período de %s a %s", start, end)
	}
	if start != "" {
		return "no dia " + start
	}
	return ""
}

// EventDateRange is the short form used in the identification block
func EventDateRange(info entity.ReceiptInfo) string {
	start := ptbr.FormatISODate(info.EventDate)
	end := ptbr.FormatISODate(info.EventDateEnd)

	if info.DateKind == entity.DateKindPeriod && start != "" && end != "" {
		return start + " a " + end
	}
	return start
}

func placeAndDate(info entity.ReceiptInfo) string {
	return fmt.Sprintf("%s, %s.",
		orPlaceholder(info.ReceiptCity, PlaceholderCity),
		orPlaceholder(ptbr.FormatISODateExtended(info.ReceiptDate), PlaceholderDate))
}

func buildSignature(info entity.ReceiptInfo) Signature {
	return Signature{
		Name:     orPlaceholder(info.FullName, PlaceholderFullName),
		CPF:      cpf.Mask(info.CPF),
		CPFValid: cpf.IsValid(info.CPF),
	}
}

func eventLocation(city, state string) string {
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)

	switch {
	case city != "" && state != "":
		return city + "/" + state
	case city != "":
		return city
	case state != "":
		return state
	}
	return PlaceholderEventLoc
}

func orPlaceholder(value, placeholder string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return placeholder
}

func prefixed(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
