package service

import (
	"github.com/guicheweb/recibo/internal/domain/entity"
	"github.com/guicheweb/recibo/pkg/utils"
)

// SanitizeReceipt strips control characters from the free-text fields of a
// receipt that came from outside and rejects malformed dates
func SanitizeReceipt(r *entity.Receipt) error {
	if r == nil {
		return nil
	}

	info := &r.Info
	for _, field := range []*string{
		&info.FullName, &info.CPF, &info.Producer, &info.EventName,
		&info.EventState, &info.EventCity, &info.PIX,
		&info.ReceiptState, &info.ReceiptCity,
		&r.ServiceDescription, &r.Advance.Note, &r.Advance.PaymentMethod,
	} {
		*field = utils.SanitizeString(*field)
	}
	for i := range r.RateLines {
		r.RateLines[i].Label = utils.SanitizeString(r.RateLines[i].Label)
	}
	for i := range r.ExpenseLines {
		r.ExpenseLines[i].Label = utils.SanitizeString(r.ExpenseLines[i].Label)
	}

	for _, date := range []string{info.EventDate, info.EventDateEnd, info.ReceiptDate} {
		if err := utils.ValidateISODate(date); err != nil {
			return err
		}
	}
	return nil
}
