package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/analytics"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portsrepo "github.com/SscSPs/spendcheck/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	BaseService
	source    portsrepo.SpendSource
	sequencer *RequestSequencer
	filter    analytics.SpendFilter
	topN      int
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithDashboardClock overrides the clock that decides the current month.
func WithDashboardClock(clock func() time.Time) DashboardServiceOption {
	return func(s *dashboardService) {
		s.Clock = clock
	}
}

// WithDashboardSpendFilter changes which transactions count as spend.
func WithDashboardSpendFilter(filter analytics.SpendFilter) DashboardServiceOption {
	return func(s *dashboardService) {
		s.filter = filter
	}
}

// WithTopCategories sets how many ranked categories get a monthly series.
func WithTopCategories(n int) DashboardServiceOption {
	return func(s *dashboardService) {
		s.topN = n
	}
}

// WithSequencer shares a sequencer between dashboard instances.
func WithSequencer(seq *RequestSequencer) DashboardServiceOption {
	return func(s *dashboardService) {
		s.sequencer = seq
	}
}

// NewDashboardService creates a dashboard loader over source.
func NewDashboardService(source portsrepo.SpendSource, options ...DashboardServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{
		source:    source,
		sequencer: NewRequestSequencer(),
		topN:      analytics.DefaultTopCategories,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) LoadMonth(ctx context.Context, session domain.Session, month domain.MonthKey) (*domain.Dashboard, error) {
	if !session.Valid() {
		return nil, apperrors.ErrAuthRequired
	}
	if err := s.RequireMonth(month); err != nil {
		return nil, err
	}

	ticket := s.sequencer.Next(session.UserID)
	now := s.Now()

	var (
		txs        []domain.Transaction
		resolution *domain.BudgetResolution
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.source.FetchTransactions(gctx, session, domain.TransactionFilter{})
		if err != nil {
			return fmt.Errorf("failed to fetch transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		resolution, err = resolveBudget(gctx, month, domain.MonthKeyOf(now),
			func(ctx context.Context) (*domain.BudgetRecord, error) {
				return s.source.FetchBudget(ctx, session, month)
			},
			func(ctx context.Context) ([]domain.BudgetRecord, error) {
				return s.source.FetchBudgets(ctx, session)
			},
		)
		if err != nil {
			return fmt.Errorf("failed to resolve budget: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load dashboard", slog.String("month", month.String()), slog.Uint64("sequence", ticket))
		return nil, err
	}

	if !s.sequencer.IsLatest(session.UserID, ticket) {
		s.LogDebug(ctx, "Discarding superseded dashboard load", slog.String("month", month.String()), slog.Uint64("sequence", ticket))
		return nil, apperrors.ErrStaleResult
	}

	inMonth := analytics.InMonth(txs, month)
	monthly := analytics.AggregateByCategory(inMonth, s.filter)
	overall := analytics.AggregateByCategory(txs, s.filter)
	series := analytics.AggregateByMonth(txs, overall.RankedCategories(), s.topN, s.filter)

	return &domain.Dashboard{
		Month:      month,
		Sequence:   ticket,
		Resolution: *resolution,
		Categories: monthly,
		Progress:   analytics.EvaluateProgress(resolution.Limits, monthly.SpentByCategory()),
		Series:     series,
		Trend:      analytics.CalculateTrend(series.Months),
		Forecast:   analytics.AgainstIncome(analytics.ForecastFor(month, monthly.Total, now), analytics.IncomeTotal(inMonth)),
	}, nil
}
