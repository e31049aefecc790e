package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/fynlens/fynlens_backend/internal/dto"
	"github.com/fynlens/fynlens_backend/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gin-gonic/gin"
)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) GroupBreakdown(ctx context.Context, payPeriod int) ([]domain.GroupSummary, error) {
	args := m.Called(ctx, payPeriod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupSummary), args.Error(1)
}

func (m *MockBudgetService) Summary(ctx context.Context, payPeriod int) (*domain.BudgetSummary, error) {
	args := m.Called(ctx, payPeriod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetSummary), args.Error(1)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock PayPeriodService ---
type MockPayPeriodService struct {
	mock.Mock
}

func (m *MockPayPeriodService) CurrentPeriod(ctx context.Context) (*domain.PayPeriodInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayPeriodInfo), args.Error(1)
}

func (m *MockPayPeriodService) PeriodInfo(ctx context.Context, period int) (*domain.PayPeriodInfo, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayPeriodInfo), args.Error(1)
}

var _ portssvc.PayPeriodSvcFacade = (*MockPayPeriodService)(nil)

// --- Test Suite ---
type BudgetHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockBudget    *MockBudgetService
	mockPayPeriod *MockPayPeriodService
}

func (suite *BudgetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockBudget = new(MockBudgetService)
	suite.mockPayPeriod = new(MockPayPeriodService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Budget:    suite.mockBudget,
		PayPeriod: suite.mockPayPeriod,
	})
}

func (suite *BudgetHandlerTestSuite) TestGetSummary_ExplicitPeriod() {
	summary := &domain.BudgetSummary{
		PayPeriod:     202410,
		TotalSpent:    decimal.RequireFromString("1650"),
		TotalBudgeted: decimal.RequireFromString("1750"),
		Remaining:     decimal.RequireFromString("100"),
	}
	suite.mockBudget.On("Summary", mock.Anything, 202410).Return(summary, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budgets/summary?payPeriod=202410", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BudgetSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(202410, resp.PayPeriod)
	suite.True(resp.TotalSpent.Equal(decimal.RequireFromString("1650")))

	// The current period is not consulted when one is given explicitly.
	suite.mockPayPeriod.AssertNotCalled(suite.T(), "CurrentPeriod", mock.Anything)
	suite.mockBudget.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestGetSummary_DefaultsToCurrentPeriod() {
	suite.mockPayPeriod.On("CurrentPeriod", mock.Anything).Return(&domain.PayPeriodInfo{Period: 202411}, nil).Once()
	suite.mockBudget.On("Summary", mock.Anything, 202411).Return(&domain.BudgetSummary{PayPeriod: 202411}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budgets/summary", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockBudget.AssertExpectations(suite.T())
	suite.mockPayPeriod.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestGetSummary_InvalidPeriodParam() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budgets/summary?payPeriod=abc", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBudget.AssertNotCalled(suite.T(), "Summary", mock.Anything, mock.Anything)
}

func (suite *BudgetHandlerTestSuite) TestGetGroups_IncludesAlertLevels() {
	groups := []domain.GroupSummary{
		{
			SpendingGroupID: domain.SpendingGroupDayToDay,
			Description:     "Day to day",
			Actual:          decimal.RequireFromString("90"),
			Target:          decimal.RequireFromString("100"),
		},
	}
	suite.mockBudget.On("GroupBreakdown", mock.Anything, 202410).Return(groups, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budgets/groups?payPeriod=202410", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.GroupSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(string(domain.AlertWarning80), resp[0].AlertLevel)
}

func (suite *BudgetHandlerTestSuite) TestGetGroups_NoAggregate() {
	suite.mockBudget.On("GroupBreakdown", mock.Anything, 202410).Return(nil, apperrors.ErrNoAggregate).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budgets/groups?payPeriod=202410", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func TestBudgetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}
