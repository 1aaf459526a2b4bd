package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`   // Primary Key (UUID)
	UserID          string          `json:"userID"`          // Identity provider subject (Not Null)
	Amount          decimal.Decimal `json:"amount"`          // NUMERIC(19,4), non-negative
	TransactionType string          `json:"transactionType"` // Income or Expense (Not Null)
	Category        *string         `json:"category"`        // Nullable
	PaymentMethod   *string         `json:"paymentMethod"`   // Nullable, Expense only
	TransactionDate time.Time       `json:"transactionDate"` // TIMESTAMPTZ, stored in UTC
	Notes           *string         `json:"notes"`           // Nullable
	BillURL         *string         `json:"billURL"`         // Nullable
	BillUploadedAt  *time.Time      `json:"billUploadedAt"`  // Nullable
	AuditFields
}
