package port

import (
	"context"

	"github.com/guicheweb/recibo/internal/domain/entity"
	"github.com/guicheweb/recibo/internal/locations"
	"github.com/guicheweb/recibo/internal/voucher"
)

// DocumentComposer builds the printable document of a receipt
type DocumentComposer interface {
	Compose(ctx context.Context, receipt *entity.Receipt) (*voucher.Document, error)
}

// DocumentRenderer turns a document into file bytes
type DocumentRenderer interface {
	Render(ctx context.Context, doc *voucher.Document) ([]byte, error)
}

// CityDirectory lists federative units and their cities
type CityDirectory interface {
	States() []locations.State
	Cities(ctx context.Context, stateCode string) []string
	Loading() bool
}
