package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactions retrieves a user's transactions matching filter, newest first.
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// ListCategories retrieves the distinct categories a user has recorded.
	ListCategories(ctx context.Context, userID string) ([]string, error)

	// ListActiveUsers retrieves the users with at least one transaction dated in [start, end).
	ListActiveUsers(ctx context.Context, start, end time.Time) ([]string, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, tx domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
