package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/core/services"
	"github.com/gathr-app/gathr_backend/internal/dto"
)

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

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockEventRepo      *MockEventRepository
	mockInvitationRepo *MockInvitationRepository
	mockExpenseRepo    *MockExpenseRepository
	mockBalancingSvc   *MockBalancingService
	service            portssvc.ExpenseSvcFacade

	event *domain.Event
	payer domain.ParticipantRef
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockInvitationRepo = new(MockInvitationRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockBalancingSvc = new(MockBalancingService)
	suite.service = services.NewExpenseService(
		suite.mockEventRepo,
		suite.mockInvitationRepo,
		suite.mockExpenseRepo,
		suite.mockBalancingSvc,
	)

	suite.event = &domain.Event{
		EventID:       uuid.NewString(),
		Title:         "Road trip",
		OrganizerName: "Alice",
		CreatorUserID: uuid.NewString(),
	}
	suite.payer = domain.ParticipantRef{Kind: domain.KindUser, ID: suite.event.CreatorUserID}
}

func participantsOf(refs ...domain.ParticipantRef) []dto.ExpenseParticipantRequest {
	out := make([]dto.ExpenseParticipantRequest, len(refs))
	for i, r := range refs {
		out[i] = dto.ExpenseParticipantRequest{Kind: string(r.Kind), ID: r.ID}
	}
	return out
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_EqualSplitSharesSumToAmount() {
	guestA := domain.ParticipantRef{Kind: domain.KindGuest, ID: uuid.NewString()}
	guestB := domain.ParticipantRef{Kind: domain.KindGuest, ID: uuid.NewString()}
	req := dto.CreateExpenseRequest{
		Amount:       dec("100"),
		Description:  "Fuel",
		Date:         time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		Distribution: "equal",
		Participants: participantsOf(suite.payer, guestA, guestB),
	}

	suite.mockEventRepo.On("FindEventByID", mock.Anything, suite.event.EventID).Return(suite.event, nil).Once()
	var saved domain.Expense
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.AnythingOfType("domain.Expense")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Expense)
		}).Return(nil).Once()
	suite.mockBalancingSvc.On("RegenerateSettlements", mock.Anything, suite.event.EventID).Return(nil).Once()

	expense, err := suite.service.CreateExpense(context.Background(), suite.event.EventID, suite.payer, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Require().Len(saved.Shares, 3)

	// 100 / 3 rounds to 33.33; the last share absorbs the remainder.
	suite.True(saved.Shares[0].ShareValue.Equal(dec("33.33")))
	suite.True(saved.Shares[1].ShareValue.Equal(dec("33.33")))
	suite.True(saved.Shares[2].ShareValue.Equal(dec("33.34")))

	total := decimal.Zero
	for _, s := range saved.Shares {
		total = total.Add(s.ShareValue)
	}
	suite.True(total.Equal(req.Amount))
	suite.mockBalancingSvc.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_SingleParticipantTakesAll() {
	req := dto.CreateExpenseRequest{
		Amount:       dec("19.99"),
		Description:  "Snacks",
		Date:         time.Now().UTC(),
		Distribution: "equal",
		Participants: participantsOf(suite.payer),
	}

	suite.mockEventRepo.On("FindEventByID", mock.Anything, suite.event.EventID).Return(suite.event, nil).Once()
	var saved domain.Expense
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.AnythingOfType("domain.Expense")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Expense)
		}).Return(nil).Once()
	suite.mockBalancingSvc.On("RegenerateSettlements", mock.Anything, suite.event.EventID).Return(nil).Once()

	_, err := suite.service.CreateExpense(context.Background(), suite.event.EventID, suite.payer, req)

	suite.Require().NoError(err)
	suite.Require().Len(saved.Shares, 1)
	suite.True(saved.Shares[0].ShareValue.Equal(dec("19.99")))
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NonPositiveAmountRejected() {
	req := dto.CreateExpenseRequest{
		Amount:       dec("0"),
		Description:  "Nothing",
		Date:         time.Now().UTC(),
		Distribution: "equal",
		Participants: participantsOf(suite.payer),
	}

	suite.mockEventRepo.On("FindEventByID", mock.Anything, suite.event.EventID).Return(suite.event, nil).Once()

	expense, err := suite.service.CreateExpense(context.Background(), suite.event.EventID, suite.payer, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RegenerationFailureSurfaces() {
	req := dto.CreateExpenseRequest{
		Amount:       dec("50"),
		Description:  "Tickets",
		Date:         time.Now().UTC(),
		Distribution: "equal",
		Participants: participantsOf(suite.payer),
	}

	suite.mockEventRepo.On("FindEventByID", mock.Anything, suite.event.EventID).Return(suite.event, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockBalancingSvc.On("RegenerateSettlements", mock.Anything, suite.event.EventID).
		Return(apperrors.ErrRecomputeFailed).Once()

	expense, err := suite.service.CreateExpense(context.Background(), suite.event.EventID, suite.payer, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrRecomputeFailed)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_RebuildsShares() {
	expenseID := uuid.NewString()
	guestA := domain.ParticipantRef{Kind: domain.KindGuest, ID: uuid.NewString()}
	existing := &domain.Expense{
		ExpenseID: expenseID,
		EventID:   suite.event.EventID,
		Amount:    dec("30"),
		Payer:     suite.payer,
		Shares: []domain.ExpenseShare{
			{ExpenseID: expenseID, Participant: suite.payer, ShareValue: dec("30")},
		},
	}
	req := dto.UpdateExpenseRequest{
		Amount:       dec("80"),
		Description:  "Dinner, corrected",
		Date:         time.Now().UTC(),
		Participants: participantsOf(suite.payer, guestA),
	}

	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, suite.event.EventID, expenseID).Return(existing, nil).Once()
	var updated domain.Expense
	suite.mockExpenseRepo.On("UpdateExpense", mock.Anything, mock.AnythingOfType("domain.Expense")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Expense)
		}).Return(nil).Once()
	suite.mockBalancingSvc.On("RegenerateSettlements", mock.Anything, suite.event.EventID).Return(nil).Once()

	result, err := suite.service.UpdateExpense(context.Background(), suite.event.EventID, expenseID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(updated.Amount.Equal(dec("80")))
	suite.Require().Len(updated.Shares, 2)
	suite.True(updated.Shares[0].ShareValue.Equal(dec("40")))
	suite.True(updated.Shares[1].ShareValue.Equal(dec("40")))
	suite.mockBalancingSvc.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_RegeneratesSettlements() {
	expenseID := uuid.NewString()
	existing := &domain.Expense{ExpenseID: expenseID, EventID: suite.event.EventID, Amount: dec("10"), Payer: suite.payer}

	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, suite.event.EventID, expenseID).Return(existing, nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", mock.Anything, suite.event.EventID, expenseID).Return(nil).Once()
	suite.mockBalancingSvc.On("RegenerateSettlements", mock.Anything, suite.event.EventID).Return(nil).Once()

	err := suite.service.DeleteExpense(context.Background(), suite.event.EventID, expenseID)

	suite.Require().NoError(err)
	suite.mockBalancingSvc.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_RestoresPreExpenseSettlements() {
	// Wired with the real balancing engine so the regenerated transfer set
	// after a delete can be compared against one the expense never touched.
	settlementRepo := new(MockSettlementRepository)
	balancing := services.NewBalancingService(
		suite.mockEventRepo,
		suite.mockInvitationRepo,
		suite.mockExpenseRepo,
		settlementRepo,
	)
	svc := services.NewExpenseService(
		suite.mockEventRepo,
		suite.mockInvitationRepo,
		suite.mockExpenseRepo,
		balancing,
	)

	guestID := uuid.NewString()
	guest := domain.ParticipantRef{Kind: domain.KindGuest, ID: guestID}
	invitations := []domain.Invitation{
		{InvitationID: uuid.NewString(), EventID: suite.event.EventID, GuestID: guestID, GuestName: "Bob", Accepted: boolPtr(true)},
	}
	baseline := domain.Expense{
		ExpenseID: uuid.NewString(),
		EventID:   suite.event.EventID,
		Amount:    dec("60"),
		Payer:     suite.payer,
		Shares: []domain.ExpenseShare{
			{Participant: suite.payer, ShareValue: dec("30")},
			{Participant: guest, ShareValue: dec("30")},
		},
	}
	extra := domain.Expense{
		ExpenseID: uuid.NewString(),
		EventID:   suite.event.EventID,
		Amount:    dec("40"),
		Payer:     guest,
		Shares: []domain.ExpenseShare{
			{Participant: suite.payer, ShareValue: dec("20")},
			{Participant: guest, ShareValue: dec("20")},
		},
	}

	suite.mockEventRepo.On("FindEventByID", mock.Anything, suite.event.EventID).Return(suite.event, nil)
	suite.mockInvitationRepo.On("ListInvitationsByEvent", mock.Anything, suite.event.EventID).Return(invitations, nil)

	var captured [][]domain.SettlementTransfer
	settlementRepo.On("ReplaceTransfers", mock.Anything, suite.event.EventID, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = append(captured, args.Get(2).([]domain.SettlementTransfer))
		}).Return(nil)

	// Transfer set for a ledger where the extra expense never existed.
	suite.mockExpenseRepo.On("ListExpensesByEvent", mock.Anything, suite.event.EventID).
		Return([]domain.Expense{baseline}, nil).Once()
	suite.Require().NoError(balancing.RegenerateSettlements(context.Background(), suite.event.EventID))

	// Delete the extra expense; the repo then serves the baseline ledger again.
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, suite.event.EventID, extra.ExpenseID).Return(&extra, nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", mock.Anything, suite.event.EventID, extra.ExpenseID).Return(nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByEvent", mock.Anything, suite.event.EventID).
		Return([]domain.Expense{baseline}, nil).Once()
	suite.Require().NoError(svc.DeleteExpense(context.Background(), suite.event.EventID, extra.ExpenseID))

	suite.Require().Len(captured, 2)
	neverCreated, afterDelete := captured[0], captured[1]
	suite.Require().Len(afterDelete, len(neverCreated))
	for i := range neverCreated {
		suite.Equal(neverCreated[i].Sender, afterDelete[i].Sender)
		suite.Equal(neverCreated[i].Receiver, afterDelete[i].Receiver)
		suite.True(neverCreated[i].Amount.Equal(afterDelete[i].Amount))
	}
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NotFound() {
	expenseID := uuid.NewString()
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, suite.event.EventID, expenseID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteExpense(context.Background(), suite.event.EventID, expenseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_ResolvesPayerNames() {
	guestAID := uuid.NewString()
	guestA := domain.ParticipantRef{Kind: domain.KindGuest, ID: guestAID}
	invitations := []domain.Invitation{
		{InvitationID: uuid.NewString(), EventID: suite.event.EventID, GuestID: guestAID, GuestName: "Bob", Accepted: boolPtr(true)},
	}
	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), EventID: suite.event.EventID, Amount: dec("25"), Description: "Cake", Payer: suite.payer},
		{ExpenseID: uuid.NewString(), EventID: suite.event.EventID, Amount: dec("12"), Description: "Drinks", Payer: guestA},
	}

	suite.mockEventRepo.On("FindEventByID", mock.Anything, suite.event.EventID).Return(suite.event, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByEvent", mock.Anything, suite.event.EventID).Return(expenses, nil).Once()
	suite.mockInvitationRepo.On("ListInvitationsByEvent", mock.Anything, suite.event.EventID).Return(invitations, nil).Once()

	resp, err := suite.service.ListExpenses(context.Background(), suite.event.EventID)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Expenses, 2)
	suite.Equal("Alice", resp.Expenses[0].PayerName)
	suite.Equal("Bob", resp.Expenses[1].PayerName)
}

func (suite *ExpenseServiceTestSuite) TestGetExpense_RepoError() {
	expenseID := uuid.NewString()
	suite.mockEventRepo.On("FindEventByID", mock.Anything, suite.event.EventID).Return(suite.event, nil).Once()
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, suite.event.EventID, expenseID).
		Return(nil, assert.AnError).Once()

	resp, err := suite.service.GetExpense(context.Background(), suite.event.EventID, expenseID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, assert.AnError)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
