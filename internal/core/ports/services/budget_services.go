package services

import (
	"context"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/SscSPs/spendcheck/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data
type BudgetReaderSvc interface {
	// GetBudget retrieves one month's budget. Returns apperrors.ErrNotFound when absent.
	GetBudget(ctx context.Context, userID string, month domain.MonthKey) (*domain.BudgetRecord, error)

	// ListBudgets retrieves all of a user's budgets, ascending by month.
	ListBudgets(ctx context.Context, userID string) ([]domain.BudgetRecord, error)

	// ResolveBudget decides which limits apply to month as seen at now.
	ResolveBudget(ctx context.Context, userID string, month domain.MonthKey, now time.Time) (*domain.BudgetResolution, error)
}

// BudgetWriterSvc defines write operations for budget data
type BudgetWriterSvc interface {
	// SaveBudget upserts the budget for req.Month.
	SaveBudget(ctx context.Context, userID string, req dto.SaveBudgetRequest) (*domain.BudgetRecord, error)

	// DeleteBudget removes one month's budget.
	DeleteBudget(ctx context.Context, userID string, month domain.MonthKey) error
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
