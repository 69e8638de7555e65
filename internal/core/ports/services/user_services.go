package services

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gathr-app/gathr_backend/internal/dto"
)

// UserSvcFacade defines user operations. Creation is idempotent by email: an
// existing user is returned together with its token.
type UserSvcFacade interface {
	// CreateUser finds or creates the user for the given email.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}

// IdentitySvcFacade maps opaque access tokens to participant references.
type IdentitySvcFacade interface {
	// ResolveToken returns the participant owning the token, trying users
	// first and guests second.
	ResolveToken(ctx context.Context, token string) (*domain.ParticipantRef, error)
}
