package pgsql

import (
	"context"
	"fmt"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	"github.com/gathr-app/gathr_backend/internal/models"
	"github.com/gathr-app/gathr_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettlementRepository struct {
	BaseRepository
}

// newPgxSettlementRepository creates a new repository for settlement transfer data.
func newPgxSettlementRepository(pool *pgxpool.Pool) portsrepo.SettlementRepositoryFacade {
	return &PgxSettlementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SettlementRepositoryFacade = (*PgxSettlementRepository)(nil)

// ListTransfersByEvent retrieves the current transfer set of an event in
// insertion order.
func (r *PgxSettlementRepository) ListTransfersByEvent(ctx context.Context, eventID string) ([]domain.SettlementTransfer, error) {
	query := `
		SELECT transfer_id, event_id, sender_kind, sender_id, sender_name,
		       receiver_kind, receiver_id, receiver_name, amount
		FROM settlement_transfers
		WHERE event_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query settlement transfers: %w", err)
	}
	defer rows.Close()

	modelTransfers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SettlementTransfer, error) {
		var m models.SettlementTransfer
		err := row.Scan(
			&m.TransferID,
			&m.EventID,
			&m.SenderKind,
			&m.SenderID,
			&m.SenderName,
			&m.ReceiverKind,
			&m.ReceiverID,
			&m.ReceiverName,
			&m.Amount,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan settlement transfers: %w", err)
	}

	return mapping.ToDomainSettlementTransferSlice(modelTransfers), nil
}

// ReplaceTransfers deletes the prior transfer set of the event and inserts the
// new one in a single transaction. The event row is locked first so
// regenerations for the same event run one at a time; on any failure the
// transaction rolls back and the prior set survives.
func (r *PgxSettlementRepository) ReplaceTransfers(ctx context.Context, eventID string, transfers []domain.SettlementTransfer) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockEvent(ctx, tx, eventID); err != nil {
		return fmt.Errorf("failed to lock event %s: %w", eventID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM settlement_transfers WHERE event_id = $1;`, eventID); err != nil {
		return fmt.Errorf("failed to clear transfers of event %s: %w", eventID, err)
	}

	if len(transfers) > 0 {
		insertTransfer := `
			INSERT INTO settlement_transfers
				(transfer_id, event_id, sender_kind, sender_id, sender_name,
				 receiver_kind, receiver_id, receiver_name, amount, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`
		batch := &pgx.Batch{}
		for i, t := range transfers {
			m := mapping.ToModelSettlementTransfer(t)
			batch.Queue(insertTransfer,
				m.TransferID,
				m.EventID,
				m.SenderKind,
				m.SenderID,
				m.SenderName,
				m.ReceiverKind,
				m.ReceiverID,
				m.ReceiverName,
				m.Amount,
				i,
			)
		}
		results := tx.SendBatch(ctx, batch)
		for range transfers {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to insert settlement transfer: %w", err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to flush transfer inserts: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}
