package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/dto"
	"github.com/gathr-app/gathr_backend/internal/middleware"
	"github.com/gathr-app/gathr_backend/internal/utils"
)

// userTokenBytes is the entropy of a user access token before hex encoding.
const userTokenBytes = 16

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser finds or creates the user for the given email. Creation is
// idempotent: an existing user is returned with its original token so the
// email keeps a single credential.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(userTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate user token: %w", err)
	}

	user := domain.User{
		UserID: uuid.NewString(),
		Email:  req.Email,
		Token:  token,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User created", slog.String("user_id", user.UserID))
	return &user, nil
}
