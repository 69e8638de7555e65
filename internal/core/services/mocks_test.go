package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
)

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEventsByCreator(ctx context.Context, userID string) ([]domain.Event, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEventsByIDs(ctx context.Context, eventIDs []string) ([]domain.Event, error) {
	args := m.Called(ctx, eventIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event, dates []domain.EventDate) error {
	args := m.Called(ctx, event, dates)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event, newDates []domain.EventDate) error {
	args := m.Called(ctx, event, newDates)
	return args.Error(0)
}

func (m *MockEventRepository) FindEventDateByID(ctx context.Context, eventDateID string) (*domain.EventDate, error) {
	args := m.Called(ctx, eventDateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventDate), args.Error(1)
}

func (m *MockEventRepository) ListEventDatesByEvent(ctx context.Context, eventID string) ([]domain.EventDate, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventDate), args.Error(1)
}

func (m *MockEventRepository) ReplaceDateScores(ctx context.Context, eventID string, scores map[string]int) error {
	args := m.Called(ctx, eventID, scores)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock GuestRepository ---
type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) FindGuestByID(ctx context.Context, guestID string) (*domain.Guest, error) {
	args := m.Called(ctx, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestRepository) FindGuestByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestRepository) FindGuestByToken(ctx context.Context, token string) (*domain.Guest, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestRepository) SaveGuest(ctx context.Context, guest domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}

// --- Mock InvitationRepository ---
type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) FindInvitation(ctx context.Context, eventID, guestID string) (*domain.Invitation, error) {
	args := m.Called(ctx, eventID, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) FindInvitationByID(ctx context.Context, invitationID string) (*domain.Invitation, error) {
	args := m.Called(ctx, invitationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) ListInvitationsByEvent(ctx context.Context, eventID string) ([]domain.Invitation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) ListInvitationsByGuest(ctx context.Context, guestID string) ([]domain.Invitation, error) {
	args := m.Called(ctx, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) SaveInvitation(ctx context.Context, invitation domain.Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, eventID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, eventID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByEvent(ctx context.Context, eventID string) ([]domain.Expense, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, eventID, expenseID string) error {
	args := m.Called(ctx, eventID, expenseID)
	return args.Error(0)
}

// --- Mock SettlementRepository ---
type MockSettlementRepository struct {
	mock.Mock
}

func (m *MockSettlementRepository) ListTransfersByEvent(ctx context.Context, eventID string) ([]domain.SettlementTransfer, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SettlementTransfer), args.Error(1)
}

func (m *MockSettlementRepository) ReplaceTransfers(ctx context.Context, eventID string, transfers []domain.SettlementTransfer) error {
	args := m.Called(ctx, eventID, transfers)
	return args.Error(0)
}

// --- Mock GuestResponseRepository ---
type MockGuestResponseRepository struct {
	mock.Mock
}

func (m *MockGuestResponseRepository) ListResponsesByInvitation(ctx context.Context, invitationID string) ([]domain.GuestResponse, error) {
	args := m.Called(ctx, invitationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GuestResponse), args.Error(1)
}

func (m *MockGuestResponseRepository) ListResponsesByEvent(ctx context.Context, eventID string) ([]domain.GuestResponse, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GuestResponse), args.Error(1)
}

func (m *MockGuestResponseRepository) SaveInvitationResponse(ctx context.Context, invitation domain.Invitation, responses []domain.GuestResponse) error {
	args := m.Called(ctx, invitation, responses)
	return args.Error(0)
}

// --- Mock DiscussionRepository ---
type MockDiscussionRepository struct {
	mock.Mock
}

func (m *MockDiscussionRepository) FindPostByID(ctx context.Context, postID string) (*domain.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockDiscussionRepository) ListPostsByEvent(ctx context.Context, eventID string) ([]domain.Post, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *MockDiscussionRepository) ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockDiscussionRepository) SavePost(ctx context.Context, post domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockDiscussionRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// --- Mock NotificationSink ---
type MockNotificationSink struct {
	mock.Mock
}

func (m *MockNotificationSink) Publish(ctx context.Context, eventID string, n portssvc.Notification) {
	m.Called(ctx, eventID, n)
}
