package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portsrepo "github.com/SscSPs/spendcheck/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/SscSPs/spendcheck/internal/dto"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates a new budget service.
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: repo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) GetBudget(ctx context.Context, userID string, month domain.MonthKey) (*domain.BudgetRecord, error) {
	if err := s.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.RequireMonth(month); err != nil {
		return nil, err
	}
	budget, err := s.budgetRepo.FindBudget(ctx, userID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No budget for month", slog.String("month", month.String()))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get budget", slog.String("month", month.String()))
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]domain.BudgetRecord, error) {
	if err := s.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		return []domain.BudgetRecord{}, nil
	}
	return budgets, nil
}

func (s *budgetService) ResolveBudget(ctx context.Context, userID string, month domain.MonthKey, now time.Time) (*domain.BudgetResolution, error) {
	if err := s.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.RequireMonth(month); err != nil {
		return nil, err
	}

	res, err := resolveBudget(ctx, month, domain.MonthKeyOf(now),
		func(ctx context.Context) (*domain.BudgetRecord, error) {
			return s.budgetRepo.FindBudget(ctx, userID, month)
		},
		func(ctx context.Context) ([]domain.BudgetRecord, error) {
			return s.budgetRepo.ListBudgets(ctx, userID)
		},
	)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve budget", slog.String("month", month.String()))
		return nil, fmt.Errorf("failed to resolve budget: %w", err)
	}
	s.LogDebug(ctx, "Resolved budget",
		slog.String("month", month.String()),
		slog.String("state", string(res.State)),
		slog.String("source_month", res.SourceMonth.String()))
	return res, nil
}

func (s *budgetService) SaveBudget(ctx context.Context, userID string, req dto.SaveBudgetRequest) (*domain.BudgetRecord, error) {
	if err := s.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	month, err := domain.ParseMonthKey(req.Month)
	if err != nil {
		return nil, err
	}
	for category, limit := range req.Budgets {
		if limit.Valid && limit.Decimal.IsNegative() {
			return nil, fmt.Errorf("%w: limit for %q must not be negative", apperrors.ErrValidation, category)
		}
	}

	now := s.Now()
	budget := domain.BudgetRecord{
		UserID:      userID,
		Month:       month,
		Limits:      req.Budgets.Clone(),
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if err := s.budgetRepo.UpsertBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("month", month.String()))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}
	s.LogInfo(ctx, "Budget saved", slog.String("month", month.String()), slog.Int("categories", len(budget.Limits)))
	return &budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID string, month domain.MonthKey) error {
	if err := s.RequireUser(ctx, userID); err != nil {
		return err
	}
	if err := s.RequireMonth(month); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, userID, month); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete budget", slog.String("month", month.String()))
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	s.LogInfo(ctx, "Budget deleted", slog.String("month", month.String()))
	return nil
}
