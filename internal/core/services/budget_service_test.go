package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portssvc "github.com/SscSPs/spendcheck/internal/core/ports/services"
	"github.com/SscSPs/spendcheck/internal/core/services"
	"github.com/SscSPs/spendcheck/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	repo    *MockBudgetRepository
	service portssvc.BudgetSvcFacade
	now     time.Time
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.repo = new(MockBudgetRepository)
	suite.service = services.NewBudgetService(suite.repo)
	suite.now = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func (suite *BudgetServiceTestSuite) TestGetBudget_Success() {
	ctx := context.Background()
	expected := &domain.BudgetRecord{UserID: "user-1", Month: "2025-03", Limits: limits(map[string]int64{"Food": 100})}
	suite.repo.On("FindBudget", ctx, "user-1", domain.MonthKey("2025-03")).Return(expected, nil).Once()

	budget, err := suite.service.GetBudget(ctx, "user-1", "2025-03")

	suite.Require().NoError(err)
	suite.Equal(expected, budget)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestGetBudget_NotFound() {
	ctx := context.Background()
	suite.repo.On("FindBudget", ctx, "user-1", domain.MonthKey("2025-03")).Return(nil, apperrors.ErrNotFound).Once()

	budget, err := suite.service.GetBudget(ctx, "user-1", "2025-03")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(budget)
}

func (suite *BudgetServiceTestSuite) TestGetBudget_MalformedMonth() {
	budget, err := suite.service.GetBudget(context.Background(), "user-1", "March")

	suite.ErrorIs(err, apperrors.ErrMalformedInput)
	suite.Nil(budget)
	suite.repo.AssertNotCalled(suite.T(), "FindBudget", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestResolveBudget_Current() {
	ctx := context.Background()
	rec := &domain.BudgetRecord{Month: "2025-03", Limits: limits(map[string]int64{"Food": 100})}
	suite.repo.On("FindBudget", ctx, "user-1", domain.MonthKey("2025-03")).Return(rec, nil).Once()

	res, err := suite.service.ResolveBudget(ctx, "user-1", "2025-03", suite.now)

	suite.Require().NoError(err)
	suite.Equal(domain.ResolvedCurrent, res.State)
	suite.True(res.Editable)
	suite.repo.AssertNotCalled(suite.T(), "ListBudgets", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestResolveBudget_CarriesForward() {
	ctx := context.Background()
	suite.repo.On("FindBudget", ctx, "user-1", domain.MonthKey("2025-03")).Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("ListBudgets", ctx, "user-1").Return([]domain.BudgetRecord{
		{Month: "2025-01", Limits: limits(map[string]int64{"Food": 100})},
	}, nil).Once()

	res, err := suite.service.ResolveBudget(ctx, "user-1", "2025-03", suite.now)

	suite.Require().NoError(err)
	suite.Equal(domain.ResolvedCarried, res.State)
	suite.Equal(domain.MonthKey("2025-01"), res.SourceMonth)
	suite.True(res.Limits.LimitFor("Food").Equal(decimal.NewFromInt(100)))
	suite.True(res.FirstTime)
	suite.repo.AssertNotCalled(suite.T(), "UpsertBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestResolveBudget_Empty() {
	ctx := context.Background()
	suite.repo.On("FindBudget", ctx, "user-1", domain.MonthKey("2025-03")).Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("ListBudgets", ctx, "user-1").Return([]domain.BudgetRecord{}, nil).Once()

	res, err := suite.service.ResolveBudget(ctx, "user-1", "2025-03", suite.now)

	suite.Require().NoError(err)
	suite.Equal(domain.ResolvedEmpty, res.State)
	suite.Len(res.Limits, len(domain.DefaultBudgetCategories))
}

func (suite *BudgetServiceTestSuite) TestResolveBudget_TransportErrorIsSurfaced() {
	ctx := context.Background()
	transportErr := apperrors.NewTransportError("find budget", assert.AnError)
	suite.repo.On("FindBudget", ctx, "user-1", domain.MonthKey("2025-03")).Return(nil, transportErr).Once()

	res, err := suite.service.ResolveBudget(ctx, "user-1", "2025-03", suite.now)

	suite.ErrorIs(err, apperrors.ErrTransport)
	suite.Nil(res)
	suite.repo.AssertNotCalled(suite.T(), "ListBudgets", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestResolveBudget_ListErrorIsSurfaced() {
	ctx := context.Background()
	suite.repo.On("FindBudget", ctx, "user-1", domain.MonthKey("2025-03")).Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("ListBudgets", ctx, "user-1").Return(nil, assert.AnError).Once()

	res, err := suite.service.ResolveBudget(ctx, "user-1", "2025-03", suite.now)

	suite.ErrorIs(err, assert.AnError)
	suite.Nil(res)
}

func (suite *BudgetServiceTestSuite) TestSaveBudget_Success() {
	ctx := context.Background()
	req := dto.SaveBudgetRequest{Month: "2025-04", Budgets: limits(map[string]int64{"Food": 250})}
	suite.repo.On("UpsertBudget", ctx, mock.MatchedBy(func(b domain.BudgetRecord) bool {
		return b.UserID == "user-1" && b.Month == "2025-04" && b.Limits.LimitFor("Food").Equal(decimal.NewFromInt(250))
	})).Return(nil).Once()

	budget, err := suite.service.SaveBudget(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Equal(domain.MonthKey("2025-04"), budget.Month)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestSaveBudget_RejectsNegativeLimit() {
	req := dto.SaveBudgetRequest{Month: "2025-04", Budgets: limits(map[string]int64{"Food": -1})}

	budget, err := suite.service.SaveBudget(context.Background(), "user-1", req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(budget)
}

func (suite *BudgetServiceTestSuite) TestSaveBudget_RepoError() {
	ctx := context.Background()
	req := dto.SaveBudgetRequest{Month: "2025-04", Budgets: limits(map[string]int64{"Food": 1})}
	suite.repo.On("UpsertBudget", ctx, mock.AnythingOfType("domain.BudgetRecord")).Return(assert.AnError).Once()

	budget, err := suite.service.SaveBudget(ctx, "user-1", req)

	suite.ErrorIs(err, assert.AnError)
	suite.Nil(budget)
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget() {
	ctx := context.Background()
	suite.repo.On("DeleteBudget", ctx, "user-1", domain.MonthKey("2025-02")).Return(nil).Once()
	suite.repo.On("DeleteBudget", ctx, "user-1", domain.MonthKey("2025-01")).Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteBudget(ctx, "user-1", "2025-02"))
	suite.ErrorIs(suite.service.DeleteBudget(ctx, "user-1", "2025-01"), apperrors.ErrNotFound)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestListBudgets_RequiresUser() {
	budgets, err := suite.service.ListBudgets(context.Background(), "")
	suite.ErrorIs(err, apperrors.ErrAuthRequired)
	suite.Nil(budgets)
}

func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
