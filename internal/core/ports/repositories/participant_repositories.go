package repositories

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByToken retrieves a user by its opaque access token.
	FindUserByToken(ctx context.Context, token string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// GuestReader defines read operations for guest data
type GuestReader interface {
	// FindGuestByID retrieves a guest by its unique identifier.
	FindGuestByID(ctx context.Context, guestID string) (*domain.Guest, error)

	// FindGuestByEmail retrieves a guest by email.
	FindGuestByEmail(ctx context.Context, email string) (*domain.Guest, error)

	// FindGuestByToken retrieves a guest by its opaque access token.
	FindGuestByToken(ctx context.Context, token string) (*domain.Guest, error)
}

// GuestWriter defines write operations for guest data
type GuestWriter interface {
	// SaveGuest persists a new guest.
	SaveGuest(ctx context.Context, guest domain.Guest) error
}

// GuestRepositoryFacade combines all guest repository interfaces
type GuestRepositoryFacade interface {
	GuestReader
	GuestWriter
}

// InvitationReader defines read operations for invitation data
type InvitationReader interface {
	// FindInvitation retrieves the invitation linking a guest to an event.
	FindInvitation(ctx context.Context, eventID, guestID string) (*domain.Invitation, error)

	// FindInvitationByID retrieves an invitation by its unique identifier.
	FindInvitationByID(ctx context.Context, invitationID string) (*domain.Invitation, error)

	// ListInvitationsByEvent retrieves all invitations for an event.
	ListInvitationsByEvent(ctx context.Context, eventID string) ([]domain.Invitation, error)

	// ListInvitationsByGuest retrieves all invitations addressed to a guest.
	ListInvitationsByGuest(ctx context.Context, guestID string) ([]domain.Invitation, error)
}

// InvitationWriter defines write operations for invitation data
type InvitationWriter interface {
	// SaveInvitation persists a new invitation.
	SaveInvitation(ctx context.Context, invitation domain.Invitation) error
}

// InvitationRepositoryFacade combines all invitation repository interfaces
type InvitationRepositoryFacade interface {
	InvitationReader
	InvitationWriter
}
