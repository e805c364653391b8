// Package model defines the core domain models used throughout the application.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bill is a single income or expense entry. Bills are never edited once
// built.
type Bill struct {
	Date        time.Time
	Amount      decimal.Decimal
	Category    Category
	Name        string
	Description string
	ID          uuid.UUID
}

// NewBill builds a bill with a fresh identifier.
func NewBill(category Category, name string, amount decimal.Decimal, date time.Time, description string) Bill {
	return Bill{
		ID:          uuid.New(),
		Category:    category,
		Name:        name,
		Amount:      amount,
		Date:        date,
		Description: description,
	}
}

// IsIncome reports whether the bill records money received.
func (b Bill) IsIncome() bool {
	return b.Category.IsIncome()
}
