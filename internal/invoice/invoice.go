package invoice

import (
	"time"

	"github.com/google/uuid"
)

// LineItem represents one billable row on the invoice. The ID is assigned
// when the item is appended and identifies the row in views; removal still
// matches on the description text.
type LineItem struct {
	ID          uuid.UUID
	Quantity    int
	Description string
	UnitPrice   float64
}

// Amount is the row total before tax.
func (li LineItem) Amount() float64 {
	return float64(li.Quantity) * li.UnitPrice
}

// CompanyProfile holds the issuing party's details. All fields are free
// text; only the name has a non-empty default.
type CompanyProfile struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
	LogoURL string
}

// ClientProfile holds the billed party's details.
type ClientProfile struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Meta holds invoice-level fields not tied to a party or line item.
// Dates are kept as text: they come from and go back to form inputs
// unmodified.
type Meta struct {
	InvoiceNumber  string
	InvoiceDate    string
	DueDate        string
	CurrencySymbol string
	TaxRate        float64 // percent, always in [0, 100]
	Shipping       float64
	AmountPaid     float64
	Notes          string
}

// State is a full copy of everything the store holds.
type State struct {
	Company CompanyProfile
	Client  ClientProfile
	Meta    Meta
	Items   []LineItem
}

const (
	DefaultCompanyName   = "Your Company Name"
	DefaultClientName    = "Client Name"
	DefaultInvoiceNumber = "0001"
	DefaultCurrency      = "$"
	DefaultTaxRate       = 3.0
	DefaultNotes         = "Thank you for your business!"
)

func DefaultCompany() CompanyProfile {
	return CompanyProfile{Name: DefaultCompanyName}
}

func DefaultClient() ClientProfile {
	return ClientProfile{Name: DefaultClientName}
}

// DefaultMeta returns the startup metadata with the invoice date set to
// the given moment's calendar date.
func DefaultMeta(now time.Time) Meta {
	return Meta{
		InvoiceNumber:  DefaultInvoiceNumber,
		InvoiceDate:    now.Format(time.DateOnly),
		CurrencySymbol: DefaultCurrency,
		TaxRate:        DefaultTaxRate,
		Notes:          DefaultNotes,
	}
}

// Totals is the derived money breakdown for the current state.
type Totals struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

// ComputeTotals derives the invoice totals from the item list and the
// tax/shipping metadata. It never fails: malformed input is resolved to
// safe numeric values before it reaches the store, so everything here is
// plain arithmetic.
func ComputeTotals(items []LineItem, meta Meta) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount()
	}

	tax := subtotal * (meta.TaxRate / 100.0)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: meta.Shipping,
		Total:    subtotal + tax + meta.Shipping,
	}
}
