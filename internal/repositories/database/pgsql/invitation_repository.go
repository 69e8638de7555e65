package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	"github.com/gathr-app/gathr_backend/internal/models"
	"github.com/gathr-app/gathr_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvitationRepository struct {
	BaseRepository
}

// newPgxInvitationRepository creates a new repository for invitation data.
func newPgxInvitationRepository(pool *pgxpool.Pool) portsrepo.InvitationRepositoryFacade {
	return &PgxInvitationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvitationRepositoryFacade = (*PgxInvitationRepository)(nil)

const invitationColumns = `invitation_id, event_id, guest_id, guest_name, accepted`

func scanInvitation(row pgx.Row) (models.Invitation, error) {
	var m models.Invitation
	err := row.Scan(
		&m.InvitationID,
		&m.EventID,
		&m.GuestID,
		&m.GuestName,
		&m.Accepted,
	)
	return m, err
}

// FindInvitation retrieves the invitation linking a guest to an event.
func (r *PgxInvitationRepository) FindInvitation(ctx context.Context, eventID, guestID string) (*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE event_id = $1 AND guest_id = $2;
	`
	m, err := scanInvitation(r.Pool.QueryRow(ctx, query, eventID, guestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invitation for guest %s on event %s: %w", guestID, eventID, err)
	}

	inv := mapping.ToDomainInvitation(m)
	return &inv, nil
}

// FindInvitationByID retrieves an invitation by its unique identifier.
func (r *PgxInvitationRepository) FindInvitationByID(ctx context.Context, invitationID string) (*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE invitation_id = $1;
	`
	m, err := scanInvitation(r.Pool.QueryRow(ctx, query, invitationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invitation %s: %w", invitationID, err)
	}

	inv := mapping.ToDomainInvitation(m)
	return &inv, nil
}

func (r *PgxInvitationRepository) listInvitations(ctx context.Context, query, arg string) ([]domain.Invitation, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query invitations: %w", err)
	}
	defer rows.Close()

	modelInvitations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invitation, error) {
		return scanInvitation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invitations: %w", err)
	}

	out := make([]domain.Invitation, len(modelInvitations))
	for i, m := range modelInvitations {
		out[i] = mapping.ToDomainInvitation(m)
	}
	return out, nil
}

// ListInvitationsByEvent retrieves all invitations for an event in creation order.
func (r *PgxInvitationRepository) ListInvitationsByEvent(ctx context.Context, eventID string) ([]domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE event_id = $1
		ORDER BY created_at, invitation_id;
	`
	return r.listInvitations(ctx, query, eventID)
}

// ListInvitationsByGuest retrieves all invitations addressed to a guest.
func (r *PgxInvitationRepository) ListInvitationsByGuest(ctx context.Context, guestID string) ([]domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE guest_id = $1
		ORDER BY created_at, invitation_id;
	`
	return r.listInvitations(ctx, query, guestID)
}

// SaveInvitation persists a new invitation.
func (r *PgxInvitationRepository) SaveInvitation(ctx context.Context, invitation domain.Invitation) error {
	m := mapping.ToModelInvitation(invitation)

	query := `
		INSERT INTO invitations (invitation_id, event_id, guest_id, guest_name, accepted)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.InvitationID, m.EventID, m.GuestID, m.GuestName, m.Accepted)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: guest %s is already invited to event %s", apperrors.ErrDuplicate, m.GuestID, m.EventID)
		}
		return fmt.Errorf("failed to save invitation %s: %w", m.InvitationID, err)
	}
	return nil
}
