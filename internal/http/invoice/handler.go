package invoice

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/invoicepad/invoicepad/internal/invoice"
	"github.com/invoicepad/invoicepad/internal/pdf"
	"github.com/invoicepad/invoicepad/internal/render"
)

type Handler struct {
	svc      *invoice.Service
	renderer render.Renderer
	pdf      *pdf.Service
}

func NewHandler(svc *invoice.Service, renderer render.Renderer, pdfSvc *pdf.Service) *Handler {
	return &Handler{svc: svc, renderer: renderer, pdf: pdfSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.index)
	r.Get("/setup", h.setup)
	r.Get("/invoice", h.invoice)
	r.Get("/invoice.pdf", h.invoicePDF)

	r.Post("/add_item", h.addItem)
	r.Post("/remove_item", h.removeItem)
	r.Post("/update_company", h.updateCompany)
	r.Post("/update_client", h.updateClient)
	r.Post("/update_meta", h.updateMeta)
	r.Post("/clear_all", h.clearAll)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/setup", http.StatusFound)
}

func (h *Handler) setup(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, "setup")
}

func (h *Handler) invoice(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, "invoice")
}

func (h *Handler) renderView(w http.ResponseWriter, view string) {
	state, totals := h.svc.Current()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.renderer.Render(w, view, viewData(state, totals)); err != nil {
		slog.Error("failed to render view", "view", view, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) invoicePDF(w http.ResponseWriter, r *http.Request) {
	state, totals := h.svc.Current()

	doc, err := h.pdf.Build(state, totals)
	if err != nil {
		slog.Error("failed to build pdf", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="invoice-`+state.Meta.InvoiceNumber+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.Write(doc)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	item, added := h.svc.AddItem(invoice.AddItemParams{
		Quantity:    r.FormValue("quantity"),
		Description: r.FormValue("description"),
		UnitPrice:   r.FormValue("unit_price"),
	})
	if added {
		slog.Info("added item", "description", item.Description, "quantity", item.Quantity, "unit_price", item.UnitPrice)
	}

	h.redirectToSetup(w, r)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	description := r.FormValue("description")

	if removed := h.svc.RemoveItem(description); removed > 0 {
		slog.Info("removed items", "description", description, "count", removed)
	}

	h.redirectToSetup(w, r)
}

func (h *Handler) updateCompany(w http.ResponseWriter, r *http.Request) {
	h.svc.UpdateCompany(invoice.CompanyParams{
		Name:    r.FormValue("name"),
		Address: r.FormValue("address"),
		Phone:   r.FormValue("phone"),
		Email:   r.FormValue("email"),
		Website: r.FormValue("website"),
		LogoURL: r.FormValue("logo_url"),
	})

	h.redirectToSetup(w, r)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	h.svc.UpdateClient(invoice.ClientParams{
		Name:    r.FormValue("name"),
		Address: r.FormValue("address"),
		Phone:   r.FormValue("phone"),
		Email:   r.FormValue("email"),
	})

	h.redirectToSetup(w, r)
}

func (h *Handler) updateMeta(w http.ResponseWriter, r *http.Request) {
	meta := h.svc.UpdateMeta(invoice.MetaParams{
		InvoiceNumber:  r.FormValue("invoice_number"),
		InvoiceDate:    r.FormValue("invoice_date"),
		DueDate:        r.FormValue("due_date"),
		CurrencySymbol: r.FormValue("currency_symbol"),
		TaxRate:        r.FormValue("tax_rate"),
		Shipping:       r.FormValue("shipping"),
		AmountPaid:     r.FormValue("amount_paid"),
		Notes:          r.FormValue("notes"),
	})
	slog.Info("updated invoice details", "invoice_number", meta.InvoiceNumber, "tax_rate", meta.TaxRate)

	h.redirectToSetup(w, r)
}

func (h *Handler) clearAll(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearAll()
	slog.Info("cleared all invoice data")

	h.redirectToSetup(w, r)
}

// redirectToSetup sends the browser back to the setup page after a form
// post. 303 forces a GET regardless of the original method.
func (h *Handler) redirectToSetup(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/setup", http.StatusSeeOther)
}
