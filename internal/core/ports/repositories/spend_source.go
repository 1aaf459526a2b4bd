package repositories

import (
	"context"

	"github.com/SscSPs/spendcheck/internal/core/domain"
)

// SpendSource is where the dashboard loads its inputs from. It is satisfied
// both by the remote backend client and by the local repositories, and every
// call carries the caller's session explicitly.
type SpendSource interface {
	// FetchTransactions returns the session user's transactions matching filter.
	FetchTransactions(ctx context.Context, session domain.Session, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// FetchBudget returns one month's budget, or apperrors.ErrNotFound.
	FetchBudget(ctx context.Context, session domain.Session, month domain.MonthKey) (*domain.BudgetRecord, error)

	// FetchBudgets returns all of the session user's budgets.
	FetchBudgets(ctx context.Context, session domain.Session) ([]domain.BudgetRecord, error)
}
