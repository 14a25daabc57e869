// ABOUTME: Expense model for financial tracking.
// ABOUTME: Expenses are immutable once logged and only removed by ID.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a single spending entry.
type Expense struct {
	ID              uuid.UUID `json:"id" yaml:"id"`
	Amount          float64   `json:"amount" yaml:"amount"`
	Category        string    `json:"category" yaml:"category"`
	Description     *string   `json:"description" yaml:"description,omitempty"`
	TransactionDate Date      `json:"transaction_date" yaml:"transaction_date"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// NewExpense creates a new Expense with generated UUID.
func NewExpense(amount float64, category string, date Date) *Expense {
	return &Expense{
		ID:              uuid.New(),
		Amount:          amount,
		Category:        category,
		TransactionDate: date,
		CreatedAt:       time.Now().UTC(),
	}
}

// WithDescription sets the description. Empty strings are stored as absent.
func (e *Expense) WithDescription(description string) *Expense {
	if description == "" {
		e.Description = nil
		return e
	}
	e.Description = &description
	return e
}
