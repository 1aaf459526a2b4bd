package dto

import (
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillRequest references a receipt captured by the bill scanner.
type BillRequest struct {
	URL        string     `json:"url" binding:"required,url"`
	UploadedAt *time.Time `json:"uploadedAt"` // Optional, defaults to now
}

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=Income Expense"`
	Category        string                 `json:"category"`      // Required for Expense
	PaymentMethod   string                 `json:"paymentMethod"` // Expense only
	Date            time.Time              `json:"date"`
	Notes           string                 `json:"notes" binding:"max=1000"`
	Bill            *BillRequest           `json:"bill"`
}

// TransactionSuggestionRequest is a transaction proposed by bill extraction or
// voice parsing. Category is free text and is snapped onto a known label.
type TransactionSuggestionRequest struct {
	Source        string          `json:"source" binding:"required,oneof=bill voice"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	Date          *time.Time      `json:"date"` // Optional, defaults to now
	Notes         string          `json:"notes" binding:"max=1000"`
	Bill          *BillRequest    `json:"bill"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Category  string `form:"category"`
	StartDate string `form:"startDate" binding:"omitempty,isodate"`
	EndDate   string `form:"endDate" binding:"omitempty,isodate"`
	TopN      int    `form:"topN,default=5" binding:"min=0,max=50"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Category        string                 `json:"category,omitempty"`
	PaymentMethod   string                 `json:"paymentMethod,omitempty"`
	Date            time.Time              `json:"date"`
	Notes           string                 `json:"notes,omitempty"`
	Bill            *domain.Bill           `json:"bill,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		UserID:          tx.UserID,
		Amount:          tx.Amount,
		TransactionType: tx.TransactionType,
		Category:        tx.Category,
		PaymentMethod:   tx.PaymentMethod,
		Date:            tx.Date,
		Notes:           tx.Notes,
		Bill:            tx.Bill,
		CreatedAt:       tx.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to a slice of TransactionResponse DTOs
func ToListTransactionResponse(txs []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i := range txs {
		res[i] = ToTransactionResponse(&txs[i])
	}
	return res
}
