package services

import (
	"context"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
)

// AnalyticsSvc serves the aggregation engine over stored transactions.
type AnalyticsSvc interface {
	// CategoryBreakdown ranks spend per category inside filter.
	CategoryBreakdown(ctx context.Context, userID string, filter domain.TransactionFilter) (*domain.CategoryBreakdown, error)

	// MonthlyAnalysis returns the window's transactions with their category,
	// monthly and trend aggregations. topN <= 0 uses the default.
	MonthlyAnalysis(ctx context.Context, userID string, filter domain.TransactionFilter, topN int) (*domain.MonthlyAnalysis, error)

	// BudgetSummary combines month's budget, actual spend, progress and forecast.
	BudgetSummary(ctx context.Context, userID string, month domain.MonthKey, now time.Time) (*domain.BudgetSummary, error)
}

// AlertSvc evaluates budgets and emits alert triggers.
type AlertSvc interface {
	// CheckMonth evaluates every budget for month and publishes one alert per
	// triggered category, plus a forecast_overspend alert for any user whose
	// projected spend exceeds the month's income. It returns the number of
	// alerts published.
	CheckMonth(ctx context.Context, month domain.MonthKey, now time.Time) (int, error)
}

// AlertPublisher delivers alert triggers to the notification pipeline.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, alert domain.BudgetAlert) error
}

// DashboardSvc runs the full load cycle for a selected month.
type DashboardSvc interface {
	// LoadMonth fetches, aggregates, resolves and evaluates month for session.
	// A result overtaken by a newer LoadMonth for the same user is discarded
	// with apperrors.ErrStaleResult.
	LoadMonth(ctx context.Context, session domain.Session, month domain.MonthKey) (*domain.Dashboard, error)
}
