package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/analytics"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portsrepo "github.com/SscSPs/spendcheck/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
)

type alertService struct {
	BaseService
	txRepo     portsrepo.TransactionReader
	budgetRepo portsrepo.BudgetReader
	publisher  portssvc.AlertPublisher
	filter     analytics.SpendFilter

	mu   sync.Mutex
	sent map[alertKey]struct{}
}

// alertKey identifies an alert that has already been delivered by this process.
type alertKey struct {
	userID   string
	month    domain.MonthKey
	category string
	level    domain.AlertLevel
}

// AlertServiceOption is a functional option for configuring the alert service
type AlertServiceOption func(*alertService)

// WithAlertSpendFilter changes which transactions count as spend.
func WithAlertSpendFilter(filter analytics.SpendFilter) AlertServiceOption {
	return func(s *alertService) {
		s.filter = filter
	}
}

// NewAlertService creates a new alert service. Each (user, month, category,
// level) alert is published at most once per service instance.
func NewAlertService(txRepo portsrepo.TransactionReader, budgetRepo portsrepo.BudgetReader, publisher portssvc.AlertPublisher, options ...AlertServiceOption) portssvc.AlertSvc {
	svc := &alertService{
		txRepo:     txRepo,
		budgetRepo: budgetRepo,
		publisher:  publisher,
		sent:       make(map[alertKey]struct{}),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AlertSvc = (*alertService)(nil)

func (s *alertService) CheckMonth(ctx context.Context, month domain.MonthKey, now time.Time) (int, error) {
	if err := s.RequireMonth(month); err != nil {
		return 0, err
	}
	s.forgetBefore(month)

	budgets, err := s.budgetRepo.ListBudgetsForMonth(ctx, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets for alert check", slog.String("month", month.String()))
		return 0, fmt.Errorf("failed to list budgets: %w", err)
	}
	start, end := month.Range()
	active, err := s.txRepo.ListActiveUsers(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active users for alert check", slog.String("month", month.String()))
		return 0, fmt.Errorf("failed to list active users: %w", err)
	}

	limitsByUser := make(map[string]domain.BudgetLimits, len(budgets))
	for _, budget := range budgets {
		limitsByUser[budget.UserID] = budget.Limits
	}
	users := make([]string, 0, len(budgets)+len(active))
	for _, budget := range budgets {
		users = append(users, budget.UserID)
	}
	for _, userID := range active {
		if _, ok := limitsByUser[userID]; !ok {
			users = append(users, userID)
		}
	}

	last := end.Add(-time.Nanosecond)
	filter := domain.TransactionFilter{StartDate: &start, EndDate: &last}

	published := 0
	var errs []error
	for _, userID := range users {
		if err := ctx.Err(); err != nil {
			return published, err
		}
		txs, err := s.txRepo.ListTransactions(ctx, userID, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch transactions for alert check", slog.String("user_id", userID))
			errs = append(errs, fmt.Errorf("user %s: %w", userID, err))
			continue
		}
		breakdown := analytics.AggregateByCategory(txs, s.filter)

		alerts := analytics.EvaluateAlerts(userID, month, limitsByUser[userID], breakdown.SpentByCategory(), now)
		forecast := analytics.AgainstIncome(analytics.ForecastFor(month, breakdown.Total, now), analytics.IncomeTotal(txs))
		if alert := analytics.EvaluateForecastAlert(userID, month, forecast, now); alert != nil {
			alerts = append(alerts, *alert)
		}

		for _, alert := range alerts {
			key := alertKey{userID: alert.UserID, month: alert.Month, category: alert.Category, level: alert.Level}
			if s.alreadySent(key) {
				continue
			}
			if err := s.publisher.PublishAlert(ctx, alert); err != nil {
				s.LogError(ctx, err, "Failed to publish budget alert",
					slog.String("user_id", alert.UserID),
					slog.String("category", alert.Category),
					slog.String("level", string(alert.Level)))
				errs = append(errs, fmt.Errorf("publish %s/%s/%s: %w", alert.UserID, alert.Category, alert.Level, err))
				continue
			}
			s.markSent(key)
			published++
			s.LogInfo(ctx, "Budget alert published",
				slog.String("user_id", alert.UserID),
				slog.String("category", alert.Category),
				slog.String("level", string(alert.Level)),
				slog.String("percent_used", alert.PercentUsed.String()))
		}
	}
	return published, errors.Join(errs...)
}

// forgetBefore drops delivery records for months earlier than month.
func (s *alertService) forgetBefore(month domain.MonthKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.sent {
		if key.month < month {
			delete(s.sent, key)
		}
	}
}

func (s *alertService) alreadySent(key alertKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sent[key]
	return ok
}

func (s *alertService) markSent(key alertKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent[key] = struct{}{}
}
