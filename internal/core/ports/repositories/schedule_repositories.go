package repositories

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
)

// GuestResponseReader defines read operations for guest response data
type GuestResponseReader interface {
	// ListResponsesByInvitation retrieves all per-date responses recorded for
	// an invitation.
	ListResponsesByInvitation(ctx context.Context, invitationID string) ([]domain.GuestResponse, error)

	// ListResponsesByEvent retrieves all per-date responses recorded for any
	// invitation of the event.
	ListResponsesByEvent(ctx context.Context, eventID string) ([]domain.GuestResponse, error)
}

// GuestResponseWriter defines write operations for guest response data
type GuestResponseWriter interface {
	// SaveInvitationResponse updates the invitation's guest name and overall
	// accepted flag and upserts the per-date responses, all in one
	// transaction. At most one response survives per (invitation, date) pair;
	// the latest write wins.
	SaveInvitationResponse(ctx context.Context, invitation domain.Invitation, responses []domain.GuestResponse) error
}

// GuestResponseRepositoryFacade combines all guest response repository interfaces
type GuestResponseRepositoryFacade interface {
	GuestResponseReader
	GuestResponseWriter
}
