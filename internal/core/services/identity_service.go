package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
)

// identityService resolves opaque access tokens to participant references.
type identityService struct {
	userRepo  portsrepo.UserRepositoryFacade
	guestRepo portsrepo.GuestRepositoryFacade
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(userRepo portsrepo.UserRepositoryFacade, guestRepo portsrepo.GuestRepositoryFacade) portssvc.IdentitySvcFacade {
	return &identityService{userRepo: userRepo, guestRepo: guestRepo}
}

var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

// ResolveToken returns the participant owning the token, trying users first
// and guests second. Unknown tokens resolve to ErrForbidden, not ErrNotFound,
// so the boundary reports them as an authorization failure.
func (s *identityService) ResolveToken(ctx context.Context, token string) (*domain.ParticipantRef, error) {
	user, err := s.userRepo.FindUserByToken(ctx, token)
	if err == nil {
		return &domain.ParticipantRef{Kind: domain.KindUser, ID: user.UserID}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	guest, err := s.guestRepo.FindGuestByToken(ctx, token)
	if err == nil {
		return &domain.ParticipantRef{Kind: domain.KindGuest, ID: guest.GuestID}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	return nil, fmt.Errorf("%w: unknown token", apperrors.ErrForbidden)
}
