package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a money movement.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// UncategorizedCategory is the bucket used for transactions without a category.
const UncategorizedCategory = "Uncategorized"

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Bill is a reference to a captured receipt or invoice.
type Bill struct {
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Transaction is a single recorded money movement. Amount is always a
// non-negative magnitude; the direction lives in TransactionType.
type Transaction struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	Category        string          `json:"category,omitempty"`      // Expense only
	PaymentMethod   string          `json:"paymentMethod,omitempty"` // Expense only
	Date            time.Time       `json:"date"`
	Notes           string          `json:"notes,omitempty"`
	Bill            *Bill           `json:"bill,omitempty"`
	AuditFields
}

// CategoryOrDefault returns the category, or "Uncategorized" when it is blank.
func (t Transaction) CategoryOrDefault() string {
	c := strings.TrimSpace(t.Category)
	if c == "" {
		return UncategorizedCategory
	}
	return c
}

// Validate checks the invariants a transaction must satisfy before it is stored.
func (t Transaction) Validate() error {
	if !t.TransactionType.IsValid() {
		return fmt.Errorf("%w: transaction type must be Income or Expense, got %q", apperrors.ErrValidation, t.TransactionType)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if t.TransactionType == Expense && strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("%w: category is required for Expense transactions", apperrors.ErrValidation)
	}
	if t.TransactionType == Income && t.PaymentMethod != "" {
		return fmt.Errorf("%w: payment method is only recorded for Expense transactions", apperrors.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	return nil
}

// TransactionFilter narrows a transaction listing. Zero values mean "no filter".
type TransactionFilter struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// Matches reports whether tx falls inside the filter window.
func (f TransactionFilter) Matches(tx Transaction) bool {
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	if f.StartDate != nil && tx.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && tx.Date.After(*f.EndDate) {
		return false
	}
	return true
}
