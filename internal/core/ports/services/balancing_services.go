package services

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
)

// BalancingSvcFacade derives net balances from the expense ledger and keeps
// the settlement transfer set in sync with them.
type BalancingSvcFacade interface {
	// ComputeBalances derives each participant's net position for the event
	// from its current ledger. Pure read, no side effects. The nets of a
	// consistent snapshot sum to zero.
	ComputeBalances(ctx context.Context, eventID string) ([]domain.Balance, error)

	// RegenerateSettlements recomputes balances and atomically replaces the
	// event's transfer set with a fresh greedy largest-first matching. On
	// failure the prior set is untouched and ErrRecomputeFailed is returned.
	RegenerateSettlements(ctx context.Context, eventID string) error

	// ListSettlements returns the event's current transfer set.
	ListSettlements(ctx context.Context, eventID string) ([]domain.SettlementTransfer, error)
}
