package voucher

import (
	"context"
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"go.uber.org/zap"

	"github.com/guicheweb/recibo/internal/ptbr"
)

// PDFRenderer renders documents as A4 PDF receipts
type PDFRenderer struct {
	issuer string
	logger *zap.Logger
}

// NewPDFRenderer creates a PDFRenderer. issuer is written to the PDF
// metadata as author.
func NewPDFRenderer(issuer string, logger *zap.Logger) *PDFRenderer {
	return &PDFRenderer{
		issuer: issuer,
		logger: logger,
	}
}

// Render returns the PDF bytes of doc
func (r *PDFRenderer) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithBottomMargin(10).
		WithTitle(doc.Title+" - "+doc.Subtitle, true)
	if r.issuer != "" {
		builder = builder.WithAuthor(r.issuer, true)
	}

	m := maroto.New(builder.Build())

	r.addHeader(m, doc)
	r.addDetails(m, doc)
	r.addBody(m, doc)
	if doc.Advance != nil {
		r.addAdvance(m, doc.Advance)
	} else {
		r.addItemsTable(m, doc.Items)
	}
	r.addTotal(m, doc)
	r.addSignature(m, doc)
	r.addFooter(m, doc)

	pdfDoc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	data := pdfDoc.GetBytes()

	r.logger.Debug("Receipt PDF rendered",
		zap.String("receipt_id", doc.ReceiptID),
		zap.Int("size", len(data)))

	return data, nil
}

func (r *PDFRenderer) addHeader(m core.Maroto, doc *Document) {
	m.AddRow(12,
		text.NewCol(12, doc.Title, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, doc.Subtitle, props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(5, line.NewCol(12))
}

func (r *PDFRenderer) addDetails(m core.Maroto, doc *Document) {
	for i := 0; i < len(doc.Details); i += 2 {
		cols := []core.Col{detailCol(doc.Details[i])}
		if i+1 < len(doc.Details) {
			cols = append(cols, detailCol(doc.Details[i+1]))
		}
		m.AddRow(7, cols...)
	}
	m.AddRow(4)
}

func detailCol(d Detail) core.Col {
	return col.New(6).Add(
		text.New(d.Label+": ", props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.New(d.Value, props.Text{
			Size:  9,
			Left:  28,
			Align: align.Left,
		}),
	)
}

func (r *PDFRenderer) addBody(m core.Maroto, doc *Document) {
	m.AddRow(32,
		text.NewCol(12, doc.Body, props.Text{
			Size:  11,
			Align: align.Left,
			Top:   2,
		}),
	)
}

func (r *PDFRenderer) addAdvance(m core.Maroto, advance *AdvanceInfo) {
	if advance.PaymentMethod != "" {
		m.AddRow(7,
			col.New(4).Add(text.New("Forma de pagamento:", props.Text{Size: 10, Style: fontstyle.Bold})),
			col.New(8).Add(text.New(advance.PaymentMethod, props.Text{Size: 10})),
		)
	}
	if advance.Note != "" {
		m.AddRow(14,
			col.New(4).Add(text.New("Observação:", props.Text{Size: 10, Style: fontstyle.Bold})),
			col.New(8).Add(text.New(advance.Note, props.Text{Size: 10})),
		)
	}
	m.AddRow(4)
}

func (r *PDFRenderer) addItemsTable(m core.Maroto, items []Item) {
	if len(items) == 0 {
		return
	}

	header := props.Text{Size: 10, Style: fontstyle.Bold}
	m.AddRow(8,
		text.NewCol(1, "#", withAlign(header, align.Center)),
		text.NewCol(5, "Descrição", withAlign(header, align.Left)),
		text.NewCol(1, "Qtd", withAlign(header, align.Center)),
		text.NewCol(2, "Valor", withAlign(header, align.Right)),
		text.NewCol(3, "Subtotal", withAlign(header, align.Right)),
	)
	m.AddRow(2, line.NewCol(12))

	cell := props.Text{Size: 9}
	for _, item := range items {
		m.AddRow(7,
			text.NewCol(1, strconv.Itoa(item.SequenceNumber), withAlign(cell, align.Center)),
			text.NewCol(5, item.Description, withAlign(cell, align.Left)),
			text.NewCol(1, strconv.Itoa(item.Quantity), withAlign(cell, align.Center)),
			text.NewCol(2, ptbr.FormatBRL(item.UnitValue), withAlign(cell, align.Right)),
			text.NewCol(3, ptbr.FormatBRL(item.Subtotal), withAlign(cell, align.Right)),
		)
	}
	m.AddRow(2, line.NewCol(12))
}

func (r *PDFRenderer) addTotal(m core.Maroto, doc *Document) {
	m.AddRow(10,
		text.NewCol(8, "TOTAL", props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Align: align.Right,
			Top:   2,
		}),
		text.NewCol(4, doc.TotalText, props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Align: align.Right,
			Top:   2,
		}),
	)
	m.AddRow(12,
		text.NewCol(12, "("+doc.TotalInWords+")", props.Text{
			Size:  9,
			Style: fontstyle.Italic,
			Align: align.Right,
		}),
	)
}

func (r *PDFRenderer) addSignature(m core.Maroto, doc *Document) {
	m.AddRow(10,
		text.NewCol(12, doc.PlaceAndDate, props.Text{
			Size:  10,
			Align: align.Right,
			Top:   3,
		}),
	)
	if doc.PIX != "" {
		m.AddRow(7,
			text.NewCol(12, "PIX: "+doc.PIX, props.Text{
				Size:  10,
				Align: align.Left,
			}),
		)
	}

	m.AddRow(20)
	m.AddRow(2,
		col.New(3),
		line.NewCol(6),
		col.New(3),
	)
	m.AddRow(6,
		text.NewCol(12, doc.Signature.Name, props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	if doc.Signature.CPF != "" {
		m.AddRow(6,
			text.NewCol(12, "CPF: "+doc.Signature.CPF, props.Text{
				Size:  9,
				Align: align.Center,
			}),
		)
	}
}

func (r *PDFRenderer) addFooter(m core.Maroto, doc *Document) {
	if doc.Footer == "" {
		return
	}
	m.AddRow(10)
	m.AddRow(2, line.NewCol(12))
	m.AddRow(8,
		text.NewCol(12, doc.Footer, props.Text{
			Size:  8,
			Align: align.Center,
		}),
	)
}

func withAlign(p props.Text, a align.Type) props.Text {
	p.Align = a
	return p
}
