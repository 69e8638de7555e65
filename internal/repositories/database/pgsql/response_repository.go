package pgsql

import (
	"context"
	"fmt"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	"github.com/gathr-app/gathr_backend/internal/models"
	"github.com/gathr-app/gathr_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGuestResponseRepository struct {
	BaseRepository
}

// newPgxGuestResponseRepository creates a new repository for guest response data.
func newPgxGuestResponseRepository(pool *pgxpool.Pool) portsrepo.GuestResponseRepositoryFacade {
	return &PgxGuestResponseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.GuestResponseRepositoryFacade = (*PgxGuestResponseRepository)(nil)

func collectResponses(rows pgx.Rows) ([]domain.GuestResponse, error) {
	modelResponses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GuestResponse, error) {
		var m models.GuestResponse
		err := row.Scan(&m.ResponseID, &m.InvitationID, &m.EventDateID, &m.Accepted, &m.RankOrder)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan guest responses: %w", err)
	}
	return mapping.ToDomainGuestResponseSlice(modelResponses), nil
}

// ListResponsesByInvitation retrieves all per-date responses recorded for an
// invitation.
func (r *PgxGuestResponseRepository) ListResponsesByInvitation(ctx context.Context, invitationID string) ([]domain.GuestResponse, error) {
	query := `
		SELECT response_id, invitation_id, event_date_id, accepted, rank_order
		FROM guest_responses
		WHERE invitation_id = $1
		ORDER BY event_date_id;
	`
	rows, err := r.Pool.Query(ctx, query, invitationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses for invitation %s: %w", invitationID, err)
	}
	defer rows.Close()
	return collectResponses(rows)
}

// ListResponsesByEvent retrieves all per-date responses recorded for any
// invitation of the event.
func (r *PgxGuestResponseRepository) ListResponsesByEvent(ctx context.Context, eventID string) ([]domain.GuestResponse, error) {
	query := `
		SELECT gr.response_id, gr.invitation_id, gr.event_date_id, gr.accepted, gr.rank_order
		FROM guest_responses gr
		JOIN invitations i ON i.invitation_id = gr.invitation_id
		WHERE i.event_id = $1
		ORDER BY gr.invitation_id, gr.event_date_id;
	`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses for event %s: %w", eventID, err)
	}
	defer rows.Close()
	return collectResponses(rows)
}

// SaveInvitationResponse updates the invitation's guest name and overall
// accepted flag and upserts the per-date responses, all in one transaction.
// The unique index on (invitation_id, event_date_id) makes re-submits replace
// the earlier answer.
func (r *PgxGuestResponseRepository) SaveInvitationResponse(ctx context.Context, invitation domain.Invitation, responses []domain.GuestResponse) error {
	mi := mapping.ToModelInvitation(invitation)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateInvitation := `
		UPDATE invitations
		SET guest_name = $2, accepted = $3
		WHERE invitation_id = $1;
	`
	tag, err := tx.Exec(ctx, updateInvitation, mi.InvitationID, mi.GuestName, mi.Accepted)
	if err != nil {
		return fmt.Errorf("failed to update invitation %s: %w", mi.InvitationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if len(responses) > 0 {
		upsertResponse := `
			INSERT INTO guest_responses (response_id, invitation_id, event_date_id, accepted, rank_order)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (invitation_id, event_date_id) DO UPDATE SET
				accepted = EXCLUDED.accepted,
				rank_order = EXCLUDED.rank_order;
		`
		batch := &pgx.Batch{}
		for _, resp := range responses {
			m := mapping.ToModelGuestResponse(resp)
			batch.Queue(upsertResponse, m.ResponseID, m.InvitationID, m.EventDateID, m.Accepted, m.RankOrder)
		}
		results := tx.SendBatch(ctx, batch)
		for range responses {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to upsert guest response: %w", err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to flush response upserts: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}
