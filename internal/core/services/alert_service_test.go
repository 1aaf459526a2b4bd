package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/SscSPs/spendcheck/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AlertServiceTestSuite struct {
	suite.Suite
	txRepo     *MockTransactionRepository
	budgetRepo *MockBudgetRepository
	publisher  *MockAlertPublisher
	service    portssvc.AlertSvc
	now        time.Time
}

func (suite *AlertServiceTestSuite) SetupTest() {
	suite.txRepo = new(MockTransactionRepository)
	suite.budgetRepo = new(MockBudgetRepository)
	suite.publisher = new(MockAlertPublisher)
	suite.service = services.NewAlertService(suite.txRepo, suite.budgetRepo, suite.publisher)
	suite.now = time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC)
}

func (suite *AlertServiceTestSuite) expectMonth() {
	ctx := context.Background()
	suite.budgetRepo.On("ListBudgetsForMonth", ctx, domain.MonthKey("2025-03")).Return([]domain.BudgetRecord{
		{UserID: "alice", Month: "2025-03", Limits: limits(map[string]int64{"Food": 100, "Bills": 100, "Fun": 0})},
		{UserID: "bob", Month: "2025-03", Limits: limits(map[string]int64{"Food": 100})},
	}, nil)
	suite.txRepo.On("ListActiveUsers", ctx, mock.Anything, mock.Anything).Return([]string{"alice", "bob"}, nil)
	suite.txRepo.On("ListTransactions", ctx, "alice", mock.AnythingOfType("domain.TransactionFilter")).Return([]domain.Transaction{
		expenseOn("Food", 95, suite.now),
		expenseOn("Bills", 120, suite.now),
		expenseOn("Fun", 40, suite.now),
	}, nil)
	suite.txRepo.On("ListTransactions", ctx, "bob", mock.AnythingOfType("domain.TransactionFilter")).Return([]domain.Transaction{
		expenseOn("Food", 20, suite.now),
	}, nil)
}

func (suite *AlertServiceTestSuite) TestCheckMonth_PublishesTriggeredCategories() {
	ctx := context.Background()
	suite.expectMonth()
	suite.publisher.On("PublishAlert", ctx, mock.MatchedBy(func(a domain.BudgetAlert) bool {
		return a.UserID == "alice" && a.Category == "Bills" && a.Level == domain.AlertExceeded
	})).Return(nil).Once()
	suite.publisher.On("PublishAlert", ctx, mock.MatchedBy(func(a domain.BudgetAlert) bool {
		return a.UserID == "alice" && a.Category == "Food" && a.Level == domain.AlertWarning
	})).Return(nil).Once()

	n, err := suite.service.CheckMonth(ctx, "2025-03", suite.now)

	suite.Require().NoError(err)
	suite.Equal(2, n)
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *AlertServiceTestSuite) TestCheckMonth_DoesNotRepeatAlerts() {
	ctx := context.Background()
	suite.expectMonth()
	suite.publisher.On("PublishAlert", ctx, mock.AnythingOfType("domain.BudgetAlert")).Return(nil).Times(2)

	first, err := suite.service.CheckMonth(ctx, "2025-03", suite.now)
	suite.Require().NoError(err)
	second, err := suite.service.CheckMonth(ctx, "2025-03", suite.now.Add(time.Hour))
	suite.Require().NoError(err)

	suite.Equal(2, first)
	suite.Equal(0, second)
	suite.publisher.AssertNumberOfCalls(suite.T(), "PublishAlert", 2)
}

func (suite *AlertServiceTestSuite) TestCheckMonth_PublishFailureIsRetried() {
	ctx := context.Background()
	suite.expectMonth()
	suite.publisher.On("PublishAlert", ctx, mock.AnythingOfType("domain.BudgetAlert")).Return(assert.AnError).Times(2)

	n, err := suite.service.CheckMonth(ctx, "2025-03", suite.now)
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(0, n)

	suite.publisher.On("PublishAlert", ctx, mock.AnythingOfType("domain.BudgetAlert")).Return(nil).Times(2)
	n, err = suite.service.CheckMonth(ctx, "2025-03", suite.now)
	suite.Require().NoError(err)
	suite.Equal(2, n)
}

func (suite *AlertServiceTestSuite) TestCheckMonth_ListError() {
	ctx := context.Background()
	suite.budgetRepo.On("ListBudgetsForMonth", ctx, domain.MonthKey("2025-03")).Return(nil, assert.AnError).Once()

	n, err := suite.service.CheckMonth(ctx, "2025-03", suite.now)

	suite.ErrorIs(err, assert.AnError)
	suite.Zero(n)
	suite.publisher.AssertNotCalled(suite.T(), "PublishAlert", mock.Anything, mock.Anything)
}

func (suite *AlertServiceTestSuite) TestCheckMonth_ForecastOverspendAgainstIncome() {
	ctx := context.Background()
	suite.budgetRepo.On("ListBudgetsForMonth", ctx, domain.MonthKey("2025-03")).Return([]domain.BudgetRecord{}, nil)
	suite.txRepo.On("ListActiveUsers", ctx, mock.Anything, mock.Anything).Return([]string{"carol", "dave", "erin"}, nil)
	// carol: 800 spent by the 20th projects to 1240 against 1000 income.
	suite.txRepo.On("ListTransactions", ctx, "carol", mock.AnythingOfType("domain.TransactionFilter")).Return([]domain.Transaction{
		incomeOn(1000, suite.now),
		expenseOn("Rent", 800, suite.now),
	}, nil)
	// dave: no income recorded, so there is nothing to compare against.
	suite.txRepo.On("ListTransactions", ctx, "dave", mock.AnythingOfType("domain.TransactionFilter")).Return([]domain.Transaction{
		expenseOn("Rent", 800, suite.now),
	}, nil)
	// erin: 200 by the 20th projects to 310, inside 1000 income.
	suite.txRepo.On("ListTransactions", ctx, "erin", mock.AnythingOfType("domain.TransactionFilter")).Return([]domain.Transaction{
		incomeOn(1000, suite.now),
		expenseOn("Food", 200, suite.now),
	}, nil)
	suite.publisher.On("PublishAlert", ctx, mock.MatchedBy(func(a domain.BudgetAlert) bool {
		return a.UserID == "carol" &&
			a.Level == domain.AlertForecastOverspend &&
			a.Category == "" &&
			a.Spent.Equal(decimal.NewFromInt(1240)) &&
			a.Limit.Equal(decimal.NewFromInt(1000)) &&
			a.PercentUsed.Equal(decimal.NewFromInt(124))
	})).Return(nil).Once()

	n, err := suite.service.CheckMonth(ctx, "2025-03", suite.now)

	suite.Require().NoError(err)
	suite.Equal(1, n)
	suite.publisher.AssertExpectations(suite.T())
	suite.publisher.AssertNumberOfCalls(suite.T(), "PublishAlert", 1)
}

func (suite *AlertServiceTestSuite) TestCheckMonth_ForgetsEarlierMonths() {
	ctx := context.Background()
	feb := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	suite.budgetRepo.On("ListBudgetsForMonth", ctx, domain.MonthKey("2025-02")).Return([]domain.BudgetRecord{
		{UserID: "alice", Month: "2025-02", Limits: limits(map[string]int64{"Food": 100})},
	}, nil)
	suite.budgetRepo.On("ListBudgetsForMonth", ctx, domain.MonthKey("2025-03")).Return([]domain.BudgetRecord{}, nil)
	suite.txRepo.On("ListActiveUsers", ctx, mock.Anything, mock.Anything).Return([]string{}, nil)
	suite.txRepo.On("ListTransactions", ctx, "alice", mock.AnythingOfType("domain.TransactionFilter")).Return([]domain.Transaction{
		expenseOn("Food", 120, feb),
	}, nil)
	suite.publisher.On("PublishAlert", ctx, mock.AnythingOfType("domain.BudgetAlert")).Return(nil)

	first, err := suite.service.CheckMonth(ctx, "2025-02", suite.now)
	suite.Require().NoError(err)
	repeat, err := suite.service.CheckMonth(ctx, "2025-02", suite.now)
	suite.Require().NoError(err)
	_, err = suite.service.CheckMonth(ctx, "2025-03", suite.now)
	suite.Require().NoError(err)
	again, err := suite.service.CheckMonth(ctx, "2025-02", suite.now)
	suite.Require().NoError(err)

	suite.Equal(1, first)
	suite.Equal(0, repeat)
	suite.Equal(1, again)
}

func (suite *AlertServiceTestSuite) TestCheckMonth_ActiveUsersError() {
	ctx := context.Background()
	suite.budgetRepo.On("ListBudgetsForMonth", ctx, domain.MonthKey("2025-03")).Return([]domain.BudgetRecord{}, nil).Once()
	suite.txRepo.On("ListActiveUsers", ctx, mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	n, err := suite.service.CheckMonth(ctx, "2025-03", suite.now)

	suite.ErrorIs(err, assert.AnError)
	suite.Zero(n)
	suite.publisher.AssertNotCalled(suite.T(), "PublishAlert", mock.Anything, mock.Anything)
}

func TestAlertService(t *testing.T) {
	suite.Run(t, new(AlertServiceTestSuite))
}
