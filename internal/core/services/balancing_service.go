package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/middleware"
)

// balancingService derives net balances from the expense ledger and keeps the
// settlement transfer set of each event in sync with them.
type balancingService struct {
	eventRepo      portsrepo.EventRepositoryFacade
	invitationRepo portsrepo.InvitationRepositoryFacade
	expenseRepo    portsrepo.ExpenseRepositoryFacade
	settlementRepo portsrepo.SettlementRepositoryFacade
}

// NewBalancingService creates a new BalancingService.
func NewBalancingService(
	eventRepo portsrepo.EventRepositoryFacade,
	invitationRepo portsrepo.InvitationRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	settlementRepo portsrepo.SettlementRepositoryFacade,
) portssvc.BalancingSvcFacade {
	return &balancingService{
		eventRepo:      eventRepo,
		invitationRepo: invitationRepo,
		expenseRepo:    expenseRepo,
		settlementRepo: settlementRepo,
	}
}

var _ portssvc.BalancingSvcFacade = (*balancingService)(nil)

// ComputeBalances derives each participant's net position from the event's
// current ledger: every amount a participant paid counts toward them, every
// share they hold counts against them. Roster members (the creator and every
// accepted guest) always appear, even at zero. Participants that only occur
// on expense rows (formerly invited guests) are kept as well, so the sum of
// all nets stays zero.
func (s *balancingService) ComputeBalances(ctx context.Context, eventID string) ([]domain.Balance, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	invitations, err := s.invitationRepo.ListInvitationsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations for event %s: %w", eventID, err)
	}

	expenses, err := s.expenseRepo.ListExpensesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for event %s: %w", eventID, err)
	}

	names := buildNameIndex(event, invitations)

	// Seed the roster in a stable order: creator first, then accepted guests
	// in invitation order. Off-roster participants are appended as the ledger
	// mentions them.
	order := make([]domain.ParticipantRef, 0, len(invitations)+1)
	nets := make(map[domain.ParticipantRef]decimal.Decimal)

	creator := domain.ParticipantRef{Kind: domain.KindUser, ID: event.CreatorUserID}
	order = append(order, creator)
	nets[creator] = decimal.Zero

	for _, inv := range invitations {
		if !inv.IsAccepted() {
			continue
		}
		ref := domain.ParticipantRef{Kind: domain.KindGuest, ID: inv.GuestID}
		if _, ok := nets[ref]; !ok {
			order = append(order, ref)
			nets[ref] = decimal.Zero
		}
	}

	touch := func(ref domain.ParticipantRef) {
		if _, ok := nets[ref]; !ok {
			order = append(order, ref)
			nets[ref] = decimal.Zero
		}
	}

	for _, exp := range expenses {
		touch(exp.Payer)
		nets[exp.Payer] = nets[exp.Payer].Add(exp.Amount)
		for _, share := range exp.Shares {
			touch(share.Participant)
			nets[share.Participant] = nets[share.Participant].Sub(share.ShareValue)
		}
	}

	balances := make([]domain.Balance, 0, len(order))
	for _, ref := range order {
		balances = append(balances, domain.Balance{
			Participant: ref,
			DisplayName: names[ref],
			// Round to currency scale so repeated equal-division shares
			// cannot accumulate drift.
			NetAmount: nets[ref].Round(2),
		})
	}

	return balances, nil
}

// generateTransfers matches creditors against debtors with a greedy
// largest-first sweep and returns the payment instructions that zero out all
// balances. The matching is deterministic: both sides are stable-sorted
// descending by magnitude, so ties keep their balance order.
func generateTransfers(eventID string, balances []domain.Balance) []domain.SettlementTransfer {
	var creditors, debtors []domain.Balance
	for _, b := range balances {
		switch {
		case b.NetAmount.IsPositive():
			creditors = append(creditors, b)
		case b.NetAmount.IsNegative():
			debtors = append(debtors, b)
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].NetAmount.GreaterThan(creditors[j].NetAmount)
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].NetAmount.Abs().GreaterThan(debtors[j].NetAmount.Abs())
	})

	var transfers []domain.SettlementTransfer
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := decimal.Min(creditor.NetAmount, debtor.NetAmount.Abs())
		if amount.IsPositive() {
			transfers = append(transfers, domain.SettlementTransfer{
				TransferID:   uuid.NewString(),
				EventID:      eventID,
				Sender:       debtor.Participant,
				SenderName:   debtor.DisplayName,
				Receiver:     creditor.Participant,
				ReceiverName: creditor.DisplayName,
				Amount:       amount,
			})
		}

		creditor.NetAmount = creditor.NetAmount.Sub(amount)
		debtor.NetAmount = debtor.NetAmount.Add(amount)

		// Both pointers may advance in the same step when creditor and
		// debtor hit zero together.
		if creditor.NetAmount.IsZero() {
			i++
		}
		if debtor.NetAmount.IsZero() {
			j++
		}
	}

	return transfers
}

// RegenerateSettlements recomputes the event's balances and atomically
// replaces its settlement transfer set. On any persistence failure the prior
// set is left untouched and ErrRecomputeFailed is returned.
func (s *balancingService) RegenerateSettlements(ctx context.Context, eventID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	balances, err := s.ComputeBalances(ctx, eventID)
	if err != nil {
		return err
	}

	transfers := generateTransfers(eventID, balances)

	if err := s.settlementRepo.ReplaceTransfers(ctx, eventID, transfers); err != nil {
		logger.Error("Failed to replace settlement transfers", slog.String("event_id", eventID), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", apperrors.ErrRecomputeFailed, err)
	}

	logger.Info("Settlement transfers regenerated", slog.String("event_id", eventID), slog.Int("transfer_count", len(transfers)))
	return nil
}

// ListSettlements returns the event's current transfer set.
func (s *balancingService) ListSettlements(ctx context.Context, eventID string) ([]domain.SettlementTransfer, error) {
	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	return s.settlementRepo.ListTransfersByEvent(ctx, eventID)
}
