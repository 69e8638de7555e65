package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/dto"
	"github.com/gathr-app/gathr_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) GetExpense(ctx context.Context, eventID, expenseID string) (*dto.ExpenseDetailResponse, error) {
	args := m.Called(ctx, eventID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExpenseDetailResponse), args.Error(1)
}
func (m *MockExpenseService) ListExpenses(ctx context.Context, eventID string) (*dto.ListExpensesResponse, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListExpensesResponse), args.Error(1)
}
func (m *MockExpenseService) CreateExpense(ctx context.Context, eventID string, payer domain.ParticipantRef, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, eventID, payer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) UpdateExpense(ctx context.Context, eventID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, eventID, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) DeleteExpense(ctx context.Context, eventID, expenseID string) error {
	args := m.Called(ctx, eventID, expenseID)
	return args.Error(0)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock BalancingService ---
type MockBalancingService struct {
	mock.Mock
}

func (m *MockBalancingService) ComputeBalances(ctx context.Context, eventID string) ([]domain.Balance, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}
func (m *MockBalancingService) RegenerateSettlements(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
func (m *MockBalancingService) ListSettlements(ctx context.Context, eventID string) ([]domain.SettlementTransfer, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SettlementTransfer), args.Error(1)
}

var _ portssvc.BalancingSvcFacade = (*MockBalancingService)(nil)

// --- Mock IdentityService ---
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) ResolveToken(ctx context.Context, token string) (*domain.ParticipantRef, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParticipantRef), args.Error(1)
}

var _ portssvc.IdentitySvcFacade = (*MockIdentityService)(nil)

// --- Test Suite ---
type ExpenseHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockExpenseService   *MockExpenseService
	mockBalancingService *MockBalancingService
	mockIdentityService  *MockIdentityService
}

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockExpenseService = new(MockExpenseService)
	suite.mockBalancingService = new(MockBalancingService)
	suite.mockIdentityService = new(MockIdentityService)

	v1 := suite.router.Group("/api/v1")
	registerExpenseRoutes(v1, suite.mockExpenseService, suite.mockBalancingService, suite.mockIdentityService)
}

func (suite *ExpenseHandlerTestSuite) createExpenseBody() dto.CreateExpenseRequest {
	return dto.CreateExpenseRequest{
		Amount:       decimal.RequireFromString("90.00"),
		Description:  "Groceries",
		Date:         time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Distribution: "equal",
		Participants: []dto.ExpenseParticipantRequest{
			{Kind: "user", ID: "user-1"},
			{Kind: "guest", ID: "guest-1"},
		},
	}
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_Success() {
	eventID := uuid.NewString()
	payer := domain.ParticipantRef{Kind: domain.KindUser, ID: "user-1"}
	body := suite.createExpenseBody()

	suite.mockIdentityService.On("ResolveToken", mock.Anything, "tok-1").
		Return(&payer, nil).Once()
	suite.mockExpenseService.On("CreateExpense", mock.Anything, eventID, payer, mock.AnythingOfType("dto.CreateExpenseRequest")).
		Return(&domain.Expense{ExpenseID: "exp-1", EventID: eventID, Amount: body.Amount, Payer: payer}, nil).Once()

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/events/%s/expenses", eventID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AuthTokenHeader, "tok-1")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var created domain.Expense
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal("exp-1", created.ExpenseID)
	suite.mockExpenseService.AssertExpectations(suite.T())
	suite.mockIdentityService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_MissingTokenRejected() {
	payload, _ := json.Marshal(suite.createExpenseBody())
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events/evt-1/expenses", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "CreateExpense")
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_UnknownTokenRejected() {
	suite.mockIdentityService.On("ResolveToken", mock.Anything, "bogus").
		Return(nil, fmt.Errorf("%w: unknown token", apperrors.ErrForbidden)).Once()

	payload, _ := json.Marshal(suite.createExpenseBody())
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events/evt-1/expenses", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AuthTokenHeader, "bogus")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "CreateExpense")
}

func (suite *ExpenseHandlerTestSuite) TestDeleteExpense_RecomputeFailureIsConflict() {
	payer := domain.ParticipantRef{Kind: domain.KindUser, ID: "user-1"}
	suite.mockIdentityService.On("ResolveToken", mock.Anything, "tok-1").
		Return(&payer, nil).Once()
	suite.mockExpenseService.On("DeleteExpense", mock.Anything, "evt-1", "exp-1").
		Return(fmt.Errorf("%w: replace transfers: connection reset", apperrors.ErrRecomputeFailed)).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/events/evt-1/expenses/exp-1", nil)
	req.Header.Set(middleware.AuthTokenHeader, "tok-1")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockExpenseService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestGetExpense_NotFound() {
	suite.mockExpenseService.On("GetExpense", mock.Anything, "evt-1", "missing").
		Return(nil, fmt.Errorf("%w: expense missing not found", apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/evt-1/expenses/missing", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestListBalances_Success() {
	balances := []domain.Balance{
		{Participant: domain.ParticipantRef{Kind: domain.KindUser, ID: "user-1"}, DisplayName: "Alice", NetAmount: decimal.RequireFromString("45.00")},
		{Participant: domain.ParticipantRef{Kind: domain.KindGuest, ID: "guest-1"}, DisplayName: "Bob", NetAmount: decimal.RequireFromString("-45.00")},
	}
	suite.mockBalancingService.On("ComputeBalances", mock.Anything, "evt-1").
		Return(balances, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/evt-1/balances", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListBalancesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Balances, 2)
	suite.Equal("Alice", resp.Balances[0].Name)
	suite.True(resp.Balances[0].NetAmount.Equal(decimal.RequireFromString("45.00")))
	suite.mockBalancingService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestExpenseHandler(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
