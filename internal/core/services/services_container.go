package services

import (
	"github.com/SscSPs/spendcheck/internal/core/analytics"
	portsrepo "github.com/SscSPs/spendcheck/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/SscSPs/spendcheck/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher may be nil when alerts are not delivered by this process.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portssvc.AlertPublisher) *portssvc.ServiceContainer {
	filter := analytics.SpendFilter{IncludeIncome: cfg.IncludeIncomeInSpend}

	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		WithBudgetReader(repos.BudgetRepo),
	)
	container.Budget = NewBudgetService(repos.BudgetRepo)
	container.Analytics = NewAnalyticsService(
		repos.TransactionRepo,
		repos.BudgetRepo,
		WithSpendFilter(filter),
	)
	container.Dashboard = NewDashboardService(
		NewRepositorySpendSource(repos.TransactionRepo, repos.BudgetRepo),
		WithDashboardSpendFilter(filter),
	)
	if publisher != nil {
		container.Alert = NewAlertService(repos.TransactionRepo, repos.BudgetRepo, publisher, WithAlertSpendFilter(filter))
	}

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
	_ portssvc.AnalyticsSvc         = (*analyticsService)(nil)
	_ portssvc.AlertSvc             = (*alertService)(nil)
	_ portssvc.DashboardSvc         = (*dashboardService)(nil)
)
