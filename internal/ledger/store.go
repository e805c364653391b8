// Package ledger holds the in-memory bill store and the views derived from it.
package ledger

import (
	"time"

	"github.com/Veraticus/billbook/internal/model"
)

// Store owns the append-only sequence of bills for one session.
type Store struct {
	bills []model.Bill
}

// NewStore creates a store seeded with the given bills, in order.
func NewStore(seed []model.Bill) *Store {
	bills := make([]model.Bill, len(seed))
	copy(bills, seed)
	return &Store{bills: bills}
}

// Add appends a bill to the end of the sequence. It never fails.
func (s *Store) Add(bill model.Bill) {
	s.bills = append(s.bills, bill)
}

// Len returns the number of bills.
func (s *Store) Len() int {
	return len(s.bills)
}

// All returns a copy of every bill in insertion order.
func (s *Store) All() []model.Bill {
	out := make([]model.Bill, len(s.bills))
	copy(out, s.bills)
	return out
}

// Filter returns, in insertion order, every bill that matches the category
// filter and whose date falls inside the recency window ending at now.
func (s *Store) Filter(category model.CategoryFilter, recency model.Recency, now time.Time) []model.Bill {
	out := make([]model.Bill, 0, len(s.bills))
	for _, bill := range s.bills {
		if category.Matches(bill.Category) && recency.Includes(bill.Date, now) {
			out = append(out, bill)
		}
	}
	return out
}
