package invoice

import "github.com/invoicepad/invoicepad/internal/invoice"

// viewData assembles the single mapping both views are rendered from:
// every stored field plus the four derived totals. The setup and invoice
// views receive identical data and differ only in the template.
func viewData(state invoice.State, totals invoice.Totals) map[string]any {
	return map[string]any{
		"company": state.Company,
		"client":  state.Client,
		"items":   state.Items,

		"invoice_number":  state.Meta.InvoiceNumber,
		"invoice_date":    state.Meta.InvoiceDate,
		"due_date":        state.Meta.DueDate,
		"currency_symbol": state.Meta.CurrencySymbol,
		"tax_rate":        state.Meta.TaxRate,
		"amount_paid":     state.Meta.AmountPaid,
		"notes":           state.Meta.Notes,

		"subtotal": totals.Subtotal,
		"tax":      totals.Tax,
		"shipping": totals.Shipping,
		"total":    totals.Total,
	}
}
