package repositories

import (
	"context"

	"github.com/SscSPs/spendcheck/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudget retrieves the budget for one month. Returns apperrors.ErrNotFound when absent.
	FindBudget(ctx context.Context, userID string, month domain.MonthKey) (*domain.BudgetRecord, error)

	// ListBudgets retrieves every budget of a user, ascending by month.
	ListBudgets(ctx context.Context, userID string) ([]domain.BudgetRecord, error)

	// ListBudgetsForMonth retrieves every user's budget for one month.
	ListBudgetsForMonth(ctx context.Context, month domain.MonthKey) ([]domain.BudgetRecord, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// UpsertBudget creates or replaces the budget for (UserID, Month).
	UpsertBudget(ctx context.Context, budget domain.BudgetRecord) error

	// DeleteBudget removes one month's budget. Returns apperrors.ErrNotFound when absent.
	DeleteBudget(ctx context.Context, userID string, month domain.MonthKey) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
