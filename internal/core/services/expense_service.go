package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/dto"
	"github.com/gathr-app/gathr_backend/internal/middleware"
)

// expenseService manages the expense ledger of an event. Every mutation is
// followed by a settlement regeneration so the transfer set never goes stale.
type expenseService struct {
	eventRepo      portsrepo.EventRepositoryFacade
	invitationRepo portsrepo.InvitationRepositoryFacade
	expenseRepo    portsrepo.ExpenseRepositoryFacade
	balancingSvc   portssvc.BalancingSvcFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(
	eventRepo portsrepo.EventRepositoryFacade,
	invitationRepo portsrepo.InvitationRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	balancingSvc portssvc.BalancingSvcFacade,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		eventRepo:      eventRepo,
		invitationRepo: invitationRepo,
		expenseRepo:    expenseRepo,
		balancingSvc:   balancingSvc,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// splitEqually divides amount into len(participants) shares rounded to
// currency scale. The last share absorbs the rounding remainder so the shares
// always sum exactly to the amount.
func splitEqually(expenseID string, amount decimal.Decimal, participants []dto.ExpenseParticipantRequest) []domain.ExpenseShare {
	n := int64(len(participants))
	base := amount.Div(decimal.NewFromInt(n)).Round(2)

	shares := make([]domain.ExpenseShare, 0, n)
	for i, p := range participants {
		value := base
		if i == len(participants)-1 {
			value = amount.Sub(base.Mul(decimal.NewFromInt(n - 1)))
		}
		shares = append(shares, domain.ExpenseShare{
			ShareID:     uuid.NewString(),
			ExpenseID:   expenseID,
			Participant: domain.ParticipantRef{Kind: domain.ParticipantKind(p.Kind), ID: p.ID},
			ShareValue:  value,
		})
	}
	return shares
}

// GetExpense retrieves an expense with its shares and resolved display names.
func (s *expenseService) GetExpense(ctx context.Context, eventID, expenseID string) (*dto.ExpenseDetailResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, eventID, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	invitations, err := s.invitationRepo.ListInvitationsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations for event %s: %w", eventID, err)
	}
	names := buildNameIndex(event, invitations)

	shares := make([]dto.ExpenseShareResponse, 0, len(expense.Shares))
	for _, share := range expense.Shares {
		shares = append(shares, dto.ExpenseShareResponse{
			Participant: share.Participant,
			Name:        names[share.Participant],
			ShareValue:  share.ShareValue,
		})
	}

	return &dto.ExpenseDetailResponse{
		ExpenseResponse: dto.ExpenseResponse{
			ExpenseID:   expense.ExpenseID,
			Amount:      expense.Amount,
			Description: expense.Description,
			Date:        expense.Date,
			PayerKind:   string(expense.Payer.Kind),
			PayerName:   names[expense.Payer],
		},
		Distribution: string(expense.Distribution),
		Shares:       shares,
	}, nil
}

// ListExpenses lists the event's expenses with resolved payer names.
func (s *expenseService) ListExpenses(ctx context.Context, eventID string) (*dto.ListExpensesResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	expenses, err := s.expenseRepo.ListExpensesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for event %s: %w", eventID, err)
	}

	invitations, err := s.invitationRepo.ListInvitationsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations for event %s: %w", eventID, err)
	}
	names := buildNameIndex(event, invitations)

	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, dto.ExpenseResponse{
			ExpenseID:   e.ExpenseID,
			Amount:      e.Amount,
			Description: e.Description,
			Date:        e.Date,
			PayerKind:   string(e.Payer.Kind),
			PayerName:   names[e.Payer],
		})
	}
	return &dto.ListExpensesResponse{Expenses: out}, nil
}

// CreateExpense records an expense paid by the given participant, splits it
// equally over the listed participants and regenerates the settlements.
func (s *expenseService) CreateExpense(ctx context.Context, eventID string, payer domain.ParticipantRef, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		EventID:      eventID,
		Amount:       req.Amount,
		Description:  req.Description,
		Date:         req.Date,
		Payer:        payer,
		Distribution: domain.DistributionMode(req.Distribution),
	}
	expense.Shares = splitEqually(expense.ExpenseID, expense.Amount, req.Participants)

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("event_id", eventID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	if err := s.balancingSvc.RegenerateSettlements(ctx, eventID); err != nil {
		return nil, err
	}

	logger.Info("Expense created", slog.String("event_id", eventID), slog.String("expense_id", expense.ExpenseID), slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

// UpdateExpense rewrites an expense and rebuilds its share set from the
// request's participant list, then regenerates the settlements.
func (s *expenseService) UpdateExpense(ctx context.Context, eventID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.expenseRepo.FindExpenseByID(ctx, eventID, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	existing.Amount = req.Amount
	existing.Description = req.Description
	existing.Date = req.Date
	existing.Shares = splitEqually(existing.ExpenseID, existing.Amount, req.Participants)

	if err := s.expenseRepo.UpdateExpense(ctx, *existing); err != nil {
		logger.Error("Failed to update expense", slog.String("expense_id", expenseID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}

	if err := s.balancingSvc.RegenerateSettlements(ctx, eventID); err != nil {
		return nil, err
	}

	logger.Info("Expense updated", slog.String("event_id", eventID), slog.String("expense_id", expenseID))
	return existing, nil
}

// DeleteExpense removes an expense and its shares, then regenerates the
// settlements.
func (s *expenseService) DeleteExpense(ctx context.Context, eventID, expenseID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.expenseRepo.FindExpenseByID(ctx, eventID, expenseID); err != nil {
		return fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	if err := s.expenseRepo.DeleteExpense(ctx, eventID, expenseID); err != nil {
		logger.Error("Failed to delete expense", slog.String("expense_id", expenseID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}

	if err := s.balancingSvc.RegenerateSettlements(ctx, eventID); err != nil {
		return err
	}

	logger.Info("Expense deleted", slog.String("event_id", eventID), slog.String("expense_id", expenseID))
	return nil
}
