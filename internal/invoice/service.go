package invoice

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	Snapshot() State
	AppendItem(item LineItem)
	RemoveItems(description string) int
	SetCompany(company CompanyProfile)
	SetClient(client ClientProfile)
	SetMeta(meta Meta)
	Reset(now time.Time)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// AddItemParams carries the raw form values for a new line item. All
// normalization happens here, not in the transport layer.
type AddItemParams struct {
	Quantity    string
	Description string
	UnitPrice   string
}

// AddItem appends a line item and returns it. A blank description makes
// the whole operation a no-op, reported by the second return value.
func (s *Service) AddItem(params AddItemParams) (*LineItem, bool) {
	description := strings.TrimSpace(params.Description)
	if description == "" {
		return nil, false
	}

	item := LineItem{
		ID:          uuid.New(),
		Quantity:    parseQuantity(params.Quantity),
		Description: description,
		UnitPrice:   parseAmount(params.UnitPrice, 0),
	}
	s.repo.AppendItem(item)

	return &item, true
}

// RemoveItem removes every item whose description exactly equals the
// trimmed input and reports how many were removed. Blank input is a no-op.
func (s *Service) RemoveItem(description string) int {
	description = strings.TrimSpace(description)
	if description == "" {
		return 0
	}

	return s.repo.RemoveItems(description)
}

type CompanyParams struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
	LogoURL string
}

// UpdateCompany overwrites the company profile. Fields are trimmed and
// stored as given; blanks are allowed, including the name.
func (s *Service) UpdateCompany(params CompanyParams) {
	s.repo.SetCompany(CompanyProfile{
		Name:    strings.TrimSpace(params.Name),
		Address: strings.TrimSpace(params.Address),
		Phone:   strings.TrimSpace(params.Phone),
		Email:   strings.TrimSpace(params.Email),
		Website: strings.TrimSpace(params.Website),
		LogoURL: strings.TrimSpace(params.LogoURL),
	})
}

type ClientParams struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// UpdateClient overwrites the client profile, same rules as UpdateCompany.
func (s *Service) UpdateClient(params ClientParams) {
	s.repo.SetClient(ClientProfile{
		Name:    strings.TrimSpace(params.Name),
		Address: strings.TrimSpace(params.Address),
		Phone:   strings.TrimSpace(params.Phone),
		Email:   strings.TrimSpace(params.Email),
	})
}

type MetaParams struct {
	InvoiceNumber  string
	InvoiceDate    string
	DueDate        string
	CurrencySymbol string
	TaxRate        string
	Shipping       string
	AmountPaid     string
	Notes          string
}

// UpdateMeta applies the per-field metadata rules: blank invoice number and
// date keep their previous values, a blank currency symbol falls back to
// "$", the tax rate falls back to its previous value and is clamped to
// [0, 100], shipping and amount paid fall back to zero, and due date and
// notes overwrite even when blank.
func (s *Service) UpdateMeta(params MetaParams) Meta {
	prev := s.repo.Snapshot().Meta

	meta := Meta{
		InvoiceNumber:  orPrevious(params.InvoiceNumber, prev.InvoiceNumber),
		InvoiceDate:    orPrevious(params.InvoiceDate, prev.InvoiceDate),
		DueDate:        strings.TrimSpace(params.DueDate),
		CurrencySymbol: orPrevious(params.CurrencySymbol, DefaultCurrency),
		TaxRate:        parseRate(params.TaxRate, prev.TaxRate),
		Shipping:       parseAmount(params.Shipping, 0),
		AmountPaid:     parseDecimal(params.AmountPaid, 0),
		Notes:          strings.TrimSpace(params.Notes),
	}
	s.repo.SetMeta(meta)

	return meta
}

// ClearAll resets every record and the item list to startup defaults. The
// invoice date is recomputed to today, not restored to its old value.
func (s *Service) ClearAll() {
	s.repo.Reset(s.now())
}

// Current returns a copy of the state together with the derived totals.
func (s *Service) Current() (State, Totals) {
	state := s.repo.Snapshot()
	return state, ComputeTotals(state.Items, state.Meta)
}

func orPrevious(raw, previous string) string {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return trimmed
	}

	return previous
}
