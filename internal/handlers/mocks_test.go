package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/SscSPs/spendcheck/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) CreateFromSuggestion(ctx context.Context, userID string, req dto.TransactionSuggestionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) GetBudget(ctx context.Context, userID string, month domain.MonthKey) (*domain.BudgetRecord, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetRecord), args.Error(1)
}
func (m *MockBudgetService) ListBudgets(ctx context.Context, userID string) ([]domain.BudgetRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetRecord), args.Error(1)
}
func (m *MockBudgetService) ResolveBudget(ctx context.Context, userID string, month domain.MonthKey, now time.Time) (*domain.BudgetResolution, error) {
	args := m.Called(ctx, userID, month, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetResolution), args.Error(1)
}
func (m *MockBudgetService) SaveBudget(ctx context.Context, userID string, req dto.SaveBudgetRequest) (*domain.BudgetRecord, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetRecord), args.Error(1)
}
func (m *MockBudgetService) DeleteBudget(ctx context.Context, userID string, month domain.MonthKey) error {
	args := m.Called(ctx, userID, month)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) CategoryBreakdown(ctx context.Context, userID string, filter domain.TransactionFilter) (*domain.CategoryBreakdown, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryBreakdown), args.Error(1)
}
func (m *MockAnalyticsService) MonthlyAnalysis(ctx context.Context, userID string, filter domain.TransactionFilter, topN int) (*domain.MonthlyAnalysis, error) {
	args := m.Called(ctx, userID, filter, topN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyAnalysis), args.Error(1)
}
func (m *MockAnalyticsService) BudgetSummary(ctx context.Context, userID string, month domain.MonthKey, now time.Time) (*domain.BudgetSummary, error) {
	args := m.Called(ctx, userID, month, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AnalyticsSvc = (*MockAnalyticsService)(nil)
