// Package pdf builds a downloadable PDF rendition of the invoice view.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/invoicepad/invoicepad/internal/invoice"
	"github.com/invoicepad/invoicepad/internal/render"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

const (
	qtyColWidth    = 20.0
	descColWidth   = 90.0
	priceColWidth  = 40.0
	amountColWidth = 40.0
	rowHeight      = 8.0
)

// Build renders the given state and totals as an A4 invoice document.
func (s *Service) Build(state invoice.State, totals invoice.Totals) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, "INVOICE", "", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 7, tr(state.Company.Name), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, line := range []string{
		state.Company.Address,
		state.Company.Phone,
		state.Company.Email,
		state.Company.Website,
	} {
		if line != "" {
			doc.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
		}
	}

	doc.Ln(4)
	doc.CellFormat(0, 5, tr("Invoice #: "+state.Meta.InvoiceNumber), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, tr("Date: "+state.Meta.InvoiceDate), "", 1, "L", false, 0, "")

	if state.Meta.DueDate != "" {
		doc.CellFormat(0, 5, tr("Due: "+state.Meta.DueDate), "", 1, "L", false, 0, "")
	}

	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 5, "Bill To", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)

	for _, line := range []string{
		state.Client.Name,
		state.Client.Address,
		state.Client.Phone,
		state.Client.Email,
	} {
		if line != "" {
			doc.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
		}
	}

	doc.Ln(6)
	s.writeItemTable(doc, tr, state)
	s.writeTotals(doc, tr, state.Meta, totals)

	if state.Meta.Notes != "" {
		doc.Ln(8)
		doc.SetFont("Helvetica", "I", 9)
		doc.MultiCell(0, 5, tr(state.Meta.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *Service) writeItemTable(doc *gofpdf.Fpdf, tr func(string) string, state invoice.State) {
	symbol := state.Meta.CurrencySymbol

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(235, 235, 235)
	doc.CellFormat(qtyColWidth, rowHeight, "Qty", "1", 0, "R", true, 0, "")
	doc.CellFormat(descColWidth, rowHeight, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(priceColWidth, rowHeight, "Unit Price", "1", 0, "R", true, 0, "")
	doc.CellFormat(amountColWidth, rowHeight, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 10)

	for _, item := range state.Items {
		doc.CellFormat(qtyColWidth, rowHeight, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		doc.CellFormat(descColWidth, rowHeight, tr(item.Description), "1", 0, "L", false, 0, "")
		doc.CellFormat(priceColWidth, rowHeight, tr(symbol+render.Money(item.UnitPrice)), "1", 0, "R", false, 0, "")
		doc.CellFormat(amountColWidth, rowHeight, tr(symbol+render.Money(item.Amount())), "1", 1, "R", false, 0, "")
	}
}

func (s *Service) writeTotals(doc *gofpdf.Fpdf, tr func(string) string, meta invoice.Meta, totals invoice.Totals) {
	labelWidth := qtyColWidth + descColWidth + priceColWidth
	symbol := meta.CurrencySymbol

	row := func(label string, value float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}

		doc.SetFont("Helvetica", style, 10)
		doc.CellFormat(labelWidth, rowHeight, label, "", 0, "R", false, 0, "")
		doc.CellFormat(amountColWidth, rowHeight, tr(symbol+render.Money(value)), "1", 1, "R", false, 0, "")
	}

	row("Subtotal", totals.Subtotal, false)
	row(fmt.Sprintf("Tax (%g%%)", meta.TaxRate), totals.Tax, false)
	row("Shipping", totals.Shipping, false)
	row("Total", totals.Total, true)
	row("Amount Paid", meta.AmountPaid, false)
}
