package store_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepad/invoicepad/internal/invoice"
	"github.com/invoicepad/invoicepad/internal/invoice/store"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNew_Defaults(t *testing.T) {
	s := store.New(testNow)
	state := s.Snapshot()

	assert.Equal(t, invoice.DefaultCompanyName, state.Company.Name)
	assert.Empty(t, state.Company.Address)
	assert.Equal(t, invoice.DefaultClientName, state.Client.Name)
	assert.Equal(t, "0001", state.Meta.InvoiceNumber)
	assert.Equal(t, "2024-06-01", state.Meta.InvoiceDate)
	assert.InDelta(t, 3.0, state.Meta.TaxRate, 1e-9)
	assert.Empty(t, state.Items)
}

func TestStore_AppendItem_PreservesOrder(t *testing.T) {
	s := store.New(testNow)

	s.AppendItem(invoice.LineItem{ID: uuid.New(), Quantity: 1, Description: "first", UnitPrice: 1})
	s.AppendItem(invoice.LineItem{ID: uuid.New(), Quantity: 2, Description: "second", UnitPrice: 2})
	s.AppendItem(invoice.LineItem{ID: uuid.New(), Quantity: 3, Description: "first", UnitPrice: 3})

	items := s.Snapshot().Items
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Description)
	assert.Equal(t, "second", items[1].Description)
	assert.Equal(t, "first", items[2].Description)
}

func TestStore_RemoveItems_RemovesAllMatches(t *testing.T) {
	s := store.New(testNow)

	s.AppendItem(invoice.LineItem{ID: uuid.New(), Quantity: 1, Description: "Widget", UnitPrice: 5})
	s.AppendItem(invoice.LineItem{ID: uuid.New(), Quantity: 1, Description: "Gadget", UnitPrice: 7})
	s.AppendItem(invoice.LineItem{ID: uuid.New(), Quantity: 2, Description: "Widget", UnitPrice: 9})

	removed := s.RemoveItems("Widget")

	assert.Equal(t, 2, removed)

	items := s.Snapshot().Items
	require.Len(t, items, 1)
	assert.Equal(t, "Gadget", items[0].Description)
}

func TestStore_RemoveItems_NoMatch(t *testing.T) {
	s := store.New(testNow)
	s.AppendItem(invoice.LineItem{ID: uuid.New(), Quantity: 1, Description: "Widget", UnitPrice: 5})

	assert.Zero(t, s.RemoveItems("widget")) // matching is exact, case included
	assert.Len(t, s.Snapshot().Items, 1)
}

func TestStore_Snapshot_IsACopy(t *testing.T) {
	s := store.New(testNow)
	s.AppendItem(invoice.LineItem{ID: uuid.New(), Quantity: 1, Description: "Widget", UnitPrice: 5})

	state := s.Snapshot()
	state.Items[0].Description = "mutated"
	state.Company.Name = "mutated"

	fresh := s.Snapshot()
	assert.Equal(t, "Widget", fresh.Items[0].Description)
	assert.Equal(t, invoice.DefaultCompanyName, fresh.Company.Name)
}

func TestStore_Reset(t *testing.T) {
	s := store.New(testNow)

	s.AppendItem(invoice.LineItem{ID: uuid.New(), Quantity: 1, Description: "Widget", UnitPrice: 5})
	s.SetCompany(invoice.CompanyProfile{Name: "Acme"})
	s.SetClient(invoice.ClientProfile{Name: "Globex"})
	s.SetMeta(invoice.Meta{InvoiceNumber: "INV-9", TaxRate: 50})

	later := time.Date(2024, 7, 4, 9, 0, 0, 0, time.UTC)
	s.Reset(later)

	state := s.Snapshot()
	assert.Empty(t, state.Items)
	assert.Equal(t, invoice.DefaultCompanyName, state.Company.Name)
	assert.Equal(t, invoice.DefaultClientName, state.Client.Name)
	assert.Equal(t, "0001", state.Meta.InvoiceNumber)
	assert.InDelta(t, 3.0, state.Meta.TaxRate, 1e-9)

	// The invoice date follows the reset time, not the original.
	assert.Equal(t, "2024-07-04", state.Meta.InvoiceDate)
}

func TestStore_Reset_Idempotent(t *testing.T) {
	s := store.New(testNow)
	s.AppendItem(invoice.LineItem{ID: uuid.New(), Quantity: 1, Description: "Widget", UnitPrice: 5})

	later := time.Date(2024, 7, 4, 9, 0, 0, 0, time.UTC)
	s.Reset(later)
	once := s.Snapshot()

	s.Reset(later)
	twice := s.Snapshot()

	assert.Equal(t, once, twice)
}
