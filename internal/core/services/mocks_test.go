package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListCategories(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTransactionRepository) ListActiveUsers(ctx context.Context, start, end time.Time) ([]string, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudget(ctx context.Context, userID string, month domain.MonthKey) (*domain.BudgetRecord, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetRecord), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, userID string) ([]domain.BudgetRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetRecord), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsForMonth(ctx context.Context, month domain.MonthKey) ([]domain.BudgetRecord, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetRecord), args.Error(1)
}

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.BudgetRecord) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, userID string, month domain.MonthKey) error {
	args := m.Called(ctx, userID, month)
	return args.Error(0)
}

// --- Mock SpendSource ---
type MockSpendSource struct {
	mock.Mock
}

func (m *MockSpendSource) FetchTransactions(ctx context.Context, session domain.Session, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, session, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockSpendSource) FetchBudget(ctx context.Context, session domain.Session, month domain.MonthKey) (*domain.BudgetRecord, error) {
	args := m.Called(ctx, session, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetRecord), args.Error(1)
}

func (m *MockSpendSource) FetchBudgets(ctx context.Context, session domain.Session) ([]domain.BudgetRecord, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetRecord), args.Error(1)
}

// --- Mock AlertPublisher ---
type MockAlertPublisher struct {
	mock.Mock
}

func (m *MockAlertPublisher) PublishAlert(ctx context.Context, alert domain.BudgetAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}
