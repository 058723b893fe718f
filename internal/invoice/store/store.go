// Package store holds the invoice state in process memory. A single mutex
// guards every record; under concurrent writers the semantics are
// last-write-wins, which is acceptable for a single-user form.
package store

import (
	"sync"
	"time"

	"github.com/invoicepad/invoicepad/internal/invoice"
)

type Store struct {
	mu      sync.Mutex
	company invoice.CompanyProfile
	client  invoice.ClientProfile
	meta    invoice.Meta
	items   []invoice.LineItem
}

// New creates a store populated with the startup defaults. The invoice
// date is the given moment's calendar date.
func New(now time.Time) *Store {
	s := &Store{}
	s.reset(now)

	return s
}

// Snapshot returns a deep copy of the current state, so callers can read
// and render without holding the lock.
func (s *Store) Snapshot() invoice.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]invoice.LineItem, len(s.items))
	copy(items, s.items)

	return invoice.State{
		Company: s.company,
		Client:  s.client,
		Meta:    s.meta,
		Items:   items,
	}
}

// AppendItem adds a line item at the end of the list. Insertion order is
// preserved; duplicate descriptions are allowed.
func (s *Store) AppendItem(item invoice.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
}

// RemoveItems deletes every item whose description exactly equals the
// given text and returns the number removed.
func (s *Store) RemoveItems(description string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]

	for _, item := range s.items {
		if item.Description != description {
			kept = append(kept, item)
		}
	}

	removed := len(s.items) - len(kept)
	s.items = kept

	return removed
}

func (s *Store) SetCompany(company invoice.CompanyProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.company = company
}

func (s *Store) SetClient(client invoice.ClientProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.client = client
}

func (s *Store) SetMeta(meta invoice.Meta) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meta = meta
}

// Reset restores every record to its startup default and empties the item
// list. The invoice date is recomputed from now rather than restored.
func (s *Store) Reset(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset(now)
}

func (s *Store) reset(now time.Time) {
	s.company = invoice.DefaultCompany()
	s.client = invoice.DefaultClient()
	s.meta = invoice.DefaultMeta(now)
	s.items = nil
}
