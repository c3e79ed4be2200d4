package entity

// Service type constants for the daily-rate mode
const (
	ServiceTicketOffice = "bilheteria"     // Bilheteria
	ServiceGate         = "portaria"       // Portaria
	ServiceParking      = "estacionamento" // Estacionamento
	ServiceSupport      = "suporte"        // Suporte Online
	ServiceBar          = "bar"            // Bar
)

// Expense kind constants for ExpenseLine
const (
	ExpenseKindSingle   ExpenseKind = "single"   // valor único
	ExpenseKindQuantity ExpenseKind = "quantity" // quantidade × valor
)

// Event date kind constants for ReceiptInfo
const (
	DateKindSingle DateKind = "unico"   // Dia Único
	DateKindPeriod DateKind = "periodo" // Período (de/até)
)

// Rate line identifiers of the standard daily-rate form
const (
	RateInstallation       = "instalacao"
	RateOvertime           = "horaExtra"
	RateEventDay           = "diariaEvento"
	RateTravelDay          = "diariaDeslocamento"
	RateTravelOvertime     = "horaExtraDeslocamento"
	AdvanceLineID          = "adiantamento"
	AdvanceLineDescription = "Adiantamento"
)

var serviceLabels = map[string]string{
	ServiceTicketOffice: "Bilheteria",
	ServiceGate:         "Portaria",
	ServiceParking:      "Estacionamento",
	ServiceSupport:      "Suporte Online",
	ServiceBar:          "Bar",
}

// ServiceOrder lists the known services in display order
var ServiceOrder = []string{
	ServiceTicketOffice,
	ServiceGate,
	ServiceParking,
	ServiceSupport,
	ServiceBar,
}

// ServiceLabel returns the display label for a service type.
// Unknown types are returned unchanged.
func ServiceLabel(service string) string {
	if label, ok := serviceLabels[service]; ok {
		return label
	}
	return service
}

// IsKnownService reports whether service is one of the selectable services
func IsKnownService(service string) bool {
	_, ok := serviceLabels[service]
	return ok
}

// DefaultRateLines returns the standard rate lines of the daily-rate form,
// all with zero quantity and value.
func DefaultRateLines() []RateLine {
	return []RateLine{
		{ID: RateInstallation, Label: "Instalação PDV"},
		{ID: RateOvertime, Label: "Hora Extra"},
		{ID: RateEventDay, Label: "Diária Evento"},
		{ID: RateTravelDay, Label: "Diária Deslocamento"},
		{ID: RateTravelOvertime, Label: "Hora Extra Deslocamento"},
	}
}
