package export

import (
	"context"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin    = 10.0
	pdfRowHeight = 6.0
)

// PDFWriter escribe un A4 con título y una tabla paginada; el encabezado
// de la tabla se repite en cada página.
type PDFWriter struct{}

func (PDFWriter) Format() string      { return "pdf" }
func (PDFWriter) ContentType() string { return "application/pdf" }
func (PDFWriter) Extension() string   { return "pdf" }

func (PDFWriter) Write(ctx context.Context, w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetTitle(doc.Title, true)

	// fuentes core: cp1252 para umlauts
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pageW, pageH := pdf.GetPageSize()
	cols := len(doc.Headers)
	if cols == 0 {
		cols = 1
	}
	colW := (pageW - 2*pdfMargin) / float64(cols)

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(225, 225, 225)
		for _, h := range doc.Headers {
			pdf.CellFormat(colW, pdfRowHeight+1, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	drawHeader()

	limit := pageH - 2*pdfMargin
	for _, r := range doc.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if pdf.GetY()+pdfRowHeight > limit {
			pdf.AddPage()
			drawHeader()
		}
		for _, v := range doc.Strings(r) {
			pdf.CellFormat(colW, pdfRowHeight, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}
