package services

import (
	"context"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/SscSPs/spendcheck/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// ListTransactions retrieves a user's transactions, newest first.
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new transaction.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// CreateFromSuggestion records a transaction proposed by bill extraction or
	// voice parsing, snapping its category onto a known label first.
	CreateFromSuggestion(ctx context.Context, userID string, req dto.TransactionSuggestionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
