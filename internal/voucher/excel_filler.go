package voucher

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Workbook layout of the "Recibo" sheet
const (
	sheetName = "Recibo"

	cellTitle    = "A1"
	cellSubtitle = "A2"

	// Identification block, two details per row
	detailRowStart = 3
	detailRowEnd   = 5

	cellBody = "A6"

	// Item table: header on row 7, one item per row from row 8
	headerRow    = 7
	dataRowStart = 8

	colSequence    = "A"
	colDescription = "B"
	colQuantity    = "C"
	colUnitValue   = "D"
	colSubtotal    = "E"

	lastColumn    = "F"
	currencyNumFm = `"R$" #,##0.00`
)

var detailColumns = [2][2]string{{"A", "B"}, {"D", "E"}}

// ExcelFiller writes documents as XLSX workbooks, either on a blank
// workbook or on a template carrying a "Recibo" sheet
type ExcelFiller struct {
	templatePath string
	logger       *zap.Logger
}

// NewExcelFiller creates a new ExcelFiller. An empty templatePath starts
// every workbook blank.
func NewExcelFiller(templatePath string, logger *zap.Logger) (*ExcelFiller, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templatePath)
		}
	}

	return &ExcelFiller{
		templatePath: templatePath,
		logger:       logger,
	}, nil
}

// ValidateTemplate checks that the configured template has the expected
// sheet. Without a template there is nothing to check.
func (ef *ExcelFiller) ValidateTemplate() error {
	if ef.templatePath == "" {
		return nil
	}

	file, err := excelize.OpenFile(ef.templatePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	defer file.Close()

	if !slices.Contains(file.GetSheetList(), sheetName) {
		return fmt.Errorf("%w: missing sheet %s", ErrInvalidTemplate, sheetName)
	}
	return nil
}

// FillWorkbook builds the workbook for doc and saves it to outputPath
func (ef *ExcelFiller) FillWorkbook(ctx context.Context, doc *Document, outputPath string) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}

	ef.logger.Debug("Filling receipt workbook",
		zap.String("receipt_id", doc.ReceiptID),
		zap.String("output_path", outputPath))

	file, err := ef.build(ctx, doc)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := file.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileSaveFailed, err)
	}

	ef.logger.Info("Receipt workbook saved",
		zap.String("receipt_id", doc.ReceiptID),
		zap.String("output_path", outputPath),
		zap.Int("item_count", len(doc.Items)))

	return outputPath, nil
}

// Render returns the XLSX bytes of doc
func (ef *ExcelFiller) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	file, err := ef.build(ctx, doc)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func (ef *ExcelFiller) build(ctx context.Context, doc *Document) (*excelize.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := ef.openWorkbook()
	if err != nil {
		return nil, err
	}

	steps := []func(*excelize.File, *Document) error{
		ef.fillHeaderSection,
		ef.fillItemRows,
		ef.fillClosingSection,
	}
	for _, step := range steps {
		if err := step(file, doc); err != nil {
			file.Close()
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
		}
	}

	return file, nil
}

func (ef *ExcelFiller) openWorkbook() (*excelize.File, error) {
	if ef.templatePath != "" {
		file, err := excelize.OpenFile(ef.templatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open template: %w", err)
		}
		if !slices.Contains(file.GetSheetList(), sheetName) {
			file.Close()
			return nil, fmt.Errorf("%w: missing sheet %s", ErrInvalidTemplate, sheetName)
		}
		return file, nil
	}

	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	return file, nil
}

// fillHeaderSection fills rows 1-6: title, identification block and body
func (ef *ExcelFiller) fillHeaderSection(file *excelize.File, doc *Document) error {
	titleStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}

	for _, c := range []string{cellTitle, cellSubtitle} {
		row := c[1:]
		if err := file.MergeCell(sheetName, c, lastColumn+row); err != nil {
			return fmt.Errorf("failed to merge %s: %w", c, err)
		}
		if err := file.SetCellStyle(sheetName, c, c, titleStyle); err != nil {
			return fmt.Errorf("failed to style %s: %w", c, err)
		}
	}
	if err := file.SetCellValue(sheetName, cellTitle, doc.Title); err != nil {
		return fmt.Errorf("failed to set title: %w", err)
	}
	if err := file.SetCellValue(sheetName, cellSubtitle, doc.Subtitle); err != nil {
		return fmt.Errorf("failed to set subtitle: %w", err)
	}

	for i, detail := range doc.Details {
		row := detailRowStart + i/2
		if row > detailRowEnd {
			ef.logger.Warn("Too many details for the identification block, truncating",
				zap.Int("total_details", len(doc.Details)))
			break
		}
		cols := detailColumns[i%2]
		if err := file.SetCellValue(sheetName, fmt.Sprintf("%s%d", cols[0], row), detail.Label); err != nil {
			return fmt.Errorf("failed to set detail label at row %d: %w", row, err)
		}
		if err := file.SetCellValue(sheetName, fmt.Sprintf("%s%d", cols[1], row), detail.Value); err != nil {
			return fmt.Errorf("failed to set detail value at row %d: %w", row, err)
		}
	}

	bodyStyle, err := file.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create body style: %w", err)
	}
	if err := file.MergeCell(sheetName, cellBody, lastColumn+"6"); err != nil {
		return fmt.Errorf("failed to merge body: %w", err)
	}
	if err := file.SetCellStyle(sheetName, cellBody, cellBody, bodyStyle); err != nil {
		return fmt.Errorf("failed to style body: %w", err)
	}
	if err := file.SetRowHeight(sheetName, 6, 60); err != nil {
		return fmt.Errorf("failed to size body row: %w", err)
	}
	if err := file.SetCellValue(sheetName, cellBody, doc.Body); err != nil {
		return fmt.Errorf("failed to set body: %w", err)
	}

	return file.SetColWidth(sheetName, colDescription, colDescription, 32)
}

// fillItemRows writes the item table from row 8, or the advance details
// when the document has no table
func (ef *ExcelFiller) fillItemRows(file *excelize.File, doc *Document) error {
	if doc.Advance != nil {
		values := [][2]string{
			{"Forma de pagamento", doc.Advance.PaymentMethod},
			{"Observação", doc.Advance.Note},
		}
		for i, v := range values {
			row := dataRowStart + i
			if err := file.SetCellValue(sheetName, fmt.Sprintf("%s%d", colSequence, row), v[0]); err != nil {
				return fmt.Errorf("failed to set advance label at row %d: %w", row, err)
			}
			if err := file.SetCellValue(sheetName, fmt.Sprintf("%s%d", colDescription, row), v[1]); err != nil {
				return fmt.Errorf("failed to set advance value at row %d: %w", row, err)
			}
		}
		return nil
	}

	headers := map[string]string{
		colSequence:    "#",
		colDescription: "Descrição",
		colQuantity:    "Qtd",
		colUnitValue:   "Valor",
		colSubtotal:    "Subtotal",
	}
	for column, label := range headers {
		if err := file.SetCellValue(sheetName, fmt.Sprintf("%s%d", column, headerRow), label); err != nil {
			return fmt.Errorf("failed to set header %s: %w", label, err)
		}
	}

	numFmt := currencyNumFm
	moneyStyle, err := file.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("failed to create money style: %w", err)
	}

	for i, item := range doc.Items {
		row := dataRowStart + i

		cells := []cellValue{
			{fmt.Sprintf("%s%d", colSequence, row), item.SequenceNumber},
			{fmt.Sprintf("%s%d", colDescription, row), item.Description},
			{fmt.Sprintf("%s%d", colQuantity, row), item.Quantity},
			{fmt.Sprintf("%s%d", colUnitValue, row), item.UnitValue.InexactFloat64()},
			{fmt.Sprintf("%s%d", colSubtotal, row), item.Subtotal.InexactFloat64()},
		}
		if err := setCells(file, cells); err != nil {
			return fmt.Errorf("failed to fill row %d: %w", row, err)
		}

		if err := file.SetCellStyle(sheetName,
			fmt.Sprintf("%s%d", colUnitValue, row),
			fmt.Sprintf("%s%d", colSubtotal, row),
			moneyStyle); err != nil {
			return fmt.Errorf("failed to style row %d: %w", row, err)
		}
	}

	return nil
}

// TotalRow returns the row holding the total for doc. The amount in words,
// place and signature follow it.
func TotalRow(doc *Document) int {
	rows := len(doc.Items)
	if doc.Advance != nil {
		rows = 2
	}
	return dataRowStart + rows + 1
}

// fillClosingSection writes total, words, place and date, PIX, signature
// and footer below the table
func (ef *ExcelFiller) fillClosingSection(file *excelize.File, doc *Document) error {
	row := TotalRow(doc)

	numFmt := currencyNumFm
	totalStyle, err := file.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return fmt.Errorf("failed to create total style: %w", err)
	}

	totalCell := fmt.Sprintf("%s%d", colSubtotal, row)
	cells := []cellValue{
		{fmt.Sprintf("%s%d", colUnitValue, row), "TOTAL"},
		{totalCell, doc.Total.InexactFloat64()},
		{fmt.Sprintf("A%d", row+1), doc.TotalInWords},
		{fmt.Sprintf("A%d", row+3), doc.PlaceAndDate},
		{fmt.Sprintf("A%d", row+6), doc.Signature.Name},
	}
	if doc.PIX != "" {
		cells = append(cells, cellValue{fmt.Sprintf("A%d", row+4), "PIX: " + doc.PIX})
	}
	if doc.Signature.CPF != "" {
		cells = append(cells, cellValue{fmt.Sprintf("A%d", row+7), "CPF: " + doc.Signature.CPF})
	}
	if doc.Footer != "" {
		cells = append(cells, cellValue{fmt.Sprintf("A%d", row+9), doc.Footer})
	}

	if err := setCells(file, cells); err != nil {
		return err
	}

	return file.SetCellStyle(sheetName, totalCell, totalCell, totalStyle)
}

type cellValue struct {
	cell  string
	value interface{}
}

func setCells(file *excelize.File, cells []cellValue) error {
	for _, c := range cells {
		if err := file.SetCellValue(sheetName, c.cell, c.value); err != nil {
			return fmt.Errorf("failed to set %s: %w", c.cell, err)
		}
	}
	return nil
}
