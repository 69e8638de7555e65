package repositories

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
)

// SettlementReader defines read operations for settlement transfer data
type SettlementReader interface {
	// ListTransfersByEvent retrieves the current transfer set of an event in
	// insertion order.
	ListTransfersByEvent(ctx context.Context, eventID string) ([]domain.SettlementTransfer, error)
}

// SettlementWriter defines write operations for settlement transfer data
type SettlementWriter interface {
	// ReplaceTransfers deletes the prior transfer set of the event and inserts
	// the new one as a single atomic unit. On failure the prior set is left
	// untouched. Replaces for the same event are serialized against each other.
	ReplaceTransfers(ctx context.Context, eventID string, transfers []domain.SettlementTransfer) error
}

// SettlementRepositoryFacade combines all settlement repository interfaces
type SettlementRepositoryFacade interface {
	SettlementReader
	SettlementWriter
}
