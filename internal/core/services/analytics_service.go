package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/analytics"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portsrepo "github.com/SscSPs/spendcheck/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
)

type analyticsService struct {
	BaseService
	txRepo     portsrepo.TransactionReader
	budgetRepo portsrepo.BudgetReader
	filter     analytics.SpendFilter
}

// AnalyticsServiceOption is a functional option for configuring the analytics service
type AnalyticsServiceOption func(*analyticsService)

// WithSpendFilter changes which transactions count as spend.
func WithSpendFilter(filter analytics.SpendFilter) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.filter = filter
	}
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(txRepo portsrepo.TransactionReader, budgetRepo portsrepo.BudgetReader, options ...AnalyticsServiceOption) portssvc.AnalyticsSvc {
	svc := &analyticsService{txRepo: txRepo, budgetRepo: budgetRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AnalyticsSvc = (*analyticsService)(nil)

func (s *analyticsService) CategoryBreakdown(ctx context.Context, userID string, filter domain.TransactionFilter) (*domain.CategoryBreakdown, error) {
	txs, err := s.fetch(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	breakdown := analytics.AggregateByCategory(txs, s.filter)
	return &breakdown, nil
}

func (s *analyticsService) MonthlyAnalysis(ctx context.Context, userID string, filter domain.TransactionFilter, topN int) (*domain.MonthlyAnalysis, error) {
	txs, err := s.fetch(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	breakdown := analytics.AggregateByCategory(txs, s.filter)
	series := analytics.AggregateByMonth(txs, breakdown.RankedCategories(), topN, s.filter)
	return &domain.MonthlyAnalysis{
		Transactions: txs,
		Categories:   breakdown,
		Series:       series,
		Trend:        analytics.CalculateTrend(series.Months),
	}, nil
}

func (s *analyticsService) BudgetSummary(ctx context.Context, userID string, month domain.MonthKey, now time.Time) (*domain.BudgetSummary, error) {
	if err := s.RequireMonth(month); err != nil {
		return nil, err
	}
	start, end := month.Range()
	last := end.Add(-time.Nanosecond)
	txs, err := s.fetch(ctx, userID, domain.TransactionFilter{StartDate: &start, EndDate: &last})
	if err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.FindBudget(ctx, userID, month)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get budget for summary", slog.String("month", month.String()))
			return nil, fmt.Errorf("failed to get budget: %w", err)
		}
		budget = nil
	}

	breakdown := analytics.AggregateByCategory(txs, s.filter)
	spent := breakdown.SpentByCategory()
	var limits domain.BudgetLimits
	if budget != nil {
		limits = budget.Limits
	}
	forecast := analytics.AgainstIncome(analytics.ForecastFor(month, breakdown.Total, now), analytics.IncomeTotal(txs))

	return &domain.BudgetSummary{
		Month:    month,
		Budget:   budget,
		Spent:    spent,
		Progress: analytics.EvaluateProgress(limits, spent),
		Forecast: &forecast,
	}, nil
}

func (s *analyticsService) fetch(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if err := s.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	txs, err := s.txRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for analytics", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return txs, nil
}
