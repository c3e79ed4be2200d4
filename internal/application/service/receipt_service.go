package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guicheweb/recibo/internal/application/port"
	"github.com/guicheweb/recibo/internal/domain/entity"
	"github.com/guicheweb/recibo/internal/domain/totals"
	"github.com/guicheweb/recibo/internal/storage"
	"github.com/guicheweb/recibo/internal/voucher"
)

// Logger interface for minimal logging dependency
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Format is an export file format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatText Format = "text"
)

// ErrUnsupportedFormat is returned for an unknown export format
var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat parses a format name, case-insensitively. "txt" is accepted
// for text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

func (f Format) fileType() storage.FileType {
	switch f {
	case FormatPDF:
		return storage.FileTypePDF
	case FormatXLSX:
		return storage.FileTypeExcel
	case FormatText:
		return storage.FileTypeText
	}
	return storage.FileTypeGeneric
}

// ExportResult describes a receipt file saved to the output directory
type ExportResult struct {
	ReceiptID  string          `json:"receipt_id"`
	Format     Format          `json:"format"`
	FolderPath string          `json:"folder_path"`
	FilePath   string          `json:"file_path"`
	Size       int             `json:"size"`
	Total      decimal.Decimal `json:"total"`
}

// ReceiptService composes, renders and exports receipts
type ReceiptService interface {
	Preview(ctx context.Context, receipt *entity.Receipt) (*voucher.Document, error)
	Total(ctx context.Context, receipt *entity.Receipt) (totals.Summary, error)
	RenderPDF(ctx context.Context, receipt *entity.Receipt) ([]byte, error)
	RenderXLSX(ctx context.Context, receipt *entity.Receipt) ([]byte, error)
	RenderText(ctx context.Context, receipt *entity.Receipt) ([]byte, error)
	Render(ctx context.Context, receipt *entity.Receipt, format Format) ([]byte, error)
	Export(ctx context.Context, receipt *entity.Receipt, format Format) (*ExportResult, error)
}

type receiptServiceImpl struct {
	composer    port.DocumentComposer
	pdf         port.DocumentRenderer
	xlsx        port.DocumentRenderer
	folders     port.FolderManager
	fileStorage port.FileStorage
	logger      Logger
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(
	composer port.DocumentComposer,
	pdf port.DocumentRenderer,
	xlsx port.DocumentRenderer,
	folders port.FolderManager,
	fileStorage port.FileStorage,
	logger Logger,
) ReceiptService {
	return &receiptServiceImpl{
		composer:    composer,
		pdf:         pdf,
		xlsx:        xlsx,
		folders:     folders,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// Preview composes the live preview. Missing personal data shows up as
// placeholders.
func (s *receiptServiceImpl) Preview(ctx context.Context, receipt *entity.Receipt) (*voucher.Document, error) {
	if receipt == nil {
		return nil, voucher.ErrNilReceipt
	}
	if err := receipt.ValidateDraft(); err != nil {
		return nil, err
	}

	doc, err := s.composer.Compose(ctx, receipt)
	if err != nil {
		s.logger.Error("Failed to compose preview", "error", err, "receipt_id", receipt.ID)
		return nil, err
	}
	return doc, nil
}

// Total returns the per-line breakdown and the grand total of the active mode
func (s *receiptServiceImpl) Total(ctx context.Context, receipt *entity.Receipt) (totals.Summary, error) {
	if receipt == nil {
		return totals.Summary{}, voucher.ErrNilReceipt
	}
	if err := receipt.ValidateDraft(); err != nil {
		return totals.Summary{}, err
	}
	return totals.BreakdownReceipt(receipt), nil
}

// RenderPDF renders the printable PDF receipt
func (s *receiptServiceImpl) RenderPDF(ctx context.Context, receipt *entity.Receipt) ([]byte, error) {
	return s.Render(ctx, receipt, FormatPDF)
}

// RenderXLSX renders the receipt workbook
func (s *receiptServiceImpl) RenderXLSX(ctx context.Context, receipt *entity.Receipt) ([]byte, error) {
	return s.Render(ctx, receipt, FormatXLSX)
}

// RenderText renders the plain-text receipt
func (s *receiptServiceImpl) RenderText(ctx context.Context, receipt *entity.Receipt) ([]byte, error) {
	return s.Render(ctx, receipt, FormatText)
}

// Render validates the receipt and renders it in the given format
func (s *receiptServiceImpl) Render(ctx context.Context, receipt *entity.Receipt, format Format) ([]byte, error) {
	doc, err := s.generate(ctx, receipt)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, doc, format)
}

// Export renders the receipt and saves it under the receipt's folder in the
// output directory
func (s *receiptServiceImpl) Export(ctx context.Context, receipt *entity.Receipt, format Format) (*ExportResult, error) {
	if receipt != nil {
		receipt.EnsureIdentifiers()
	}

	doc, err := s.generate(ctx, receipt)
	if err != nil {
		return nil, err
	}

	data, err := s.render(ctx, doc, format)
	if err != nil {
		return nil, err
	}

	// an earlier export of the same receipt keeps its folder
	folderExisted := s.folders.FolderExists(receipt.ID)

	folderPath, err := s.folders.CreateReceiptFolder(receipt.ID)
	if err != nil {
		s.logger.Error("Failed to create receipt folder", "error", err, "receipt_id", receipt.ID)
		return nil, fmt.Errorf("failed to create receipt folder: %w", err)
	}

	fileType := format.fileType()
	filePath := filepath.Join(folderPath, storage.ReceiptFileName(receipt.Info.FullName, receipt.Mode.String(), fileType))

	if err := s.fileStorage.SaveFileWithType(filePath, data, fileType); err != nil {
		s.logger.Error("Failed to save receipt file", "error", err, "receipt_id", receipt.ID, "path", filePath)
		if !folderExisted {
			if cleanupErr := s.folders.DeleteReceiptFolder(receipt.ID); cleanupErr != nil {
				s.logger.Error("Failed to remove empty receipt folder", "error", cleanupErr, "receipt_id", receipt.ID)
			}
		}
		return nil, fmt.Errorf("failed to save receipt file: %w", err)
	}

	s.logger.Info("Receipt exported",
		"receipt_id", receipt.ID,
		"format", string(format),
		"path", filePath,
		"size", len(data))

	return &ExportResult{
		ReceiptID:  receipt.ID,
		Format:     format,
		FolderPath: folderPath,
		FilePath:   filePath,
		Size:       len(data),
		Total:      doc.Total,
	}, nil
}

// generate validates the receipt for printing and composes its document
func (s *receiptServiceImpl) generate(ctx context.Context, receipt *entity.Receipt) (*voucher.Document, error) {
	if receipt == nil {
		return nil, voucher.ErrNilReceipt
	}
	if err := receipt.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("Generating receipt", "receipt_id", receipt.ID, "mode", receipt.Mode.String())

	doc, err := s.composer.Compose(ctx, receipt)
	if err != nil {
		s.logger.Error("Failed to compose receipt", "error", err, "receipt_id", receipt.ID)
		return nil, err
	}
	return doc, nil
}

func (s *receiptServiceImpl) render(ctx context.Context, doc *voucher.Document, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatPDF:
		data, err = s.pdf.Render(ctx, doc)
	case FormatXLSX:
		data, err = s.xlsx.Render(ctx, doc)
	case FormatText:
		data = []byte(doc.Text())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		s.logger.Error("Failed to render receipt", "error", err, "receipt_id", doc.ReceiptID, "format", string(format))
		return nil, err
	}
	return data, nil
}
