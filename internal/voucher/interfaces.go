package voucher

import (
	"context"

	"github.com/guicheweb/recibo/internal/domain/entity"
)

// ComposerInterface builds a printable document from a receipt
type ComposerInterface interface {
	Compose(ctx context.Context, receipt *entity.Receipt) (*Document, error)
}

// RendererInterface turns a document into file bytes
type RendererInterface interface {
	Render(ctx context.Context, doc *Document) ([]byte, error)
}

// WorkbookFillerInterface writes a document as an Excel workbook on disk
type WorkbookFillerInterface interface {
	RendererInterface

	// FillWorkbook saves the workbook to outputPath and returns the path
	FillWorkbook(ctx context.Context, doc *Document, outputPath string) (string, error)
}

var (
	_ ComposerInterface       = (*Composer)(nil)
	_ RendererInterface       = (*PDFRenderer)(nil)
	_ WorkbookFillerInterface = (*ExcelFiller)(nil)
)
