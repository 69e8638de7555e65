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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) findUserBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT user_id, email, token
		FROM users
		WHERE %s = $1;
	`, column)

	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, value).Scan(
		&modelUser.UserID,
		&modelUser.Email,
		&modelUser.Token,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", column, err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

// FindUserByID retrieves a user by its unique identifier.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUserBy(ctx, "user_id", userID)
}

// FindUserByEmail retrieves a user by email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserBy(ctx, "email", email)
}

// FindUserByToken retrieves a user by its opaque access token.
func (r *PgxUserRepository) FindUserByToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findUserBy(ctx, "token", token)
}

// SaveUser persists a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)

	query := `
		INSERT INTO users (user_id, email, token)
		VALUES ($1, $2, $3);
	`
	_, err := r.Pool.Exec(ctx, query, modelUser.UserID, modelUser.Email, modelUser.Token)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user with email %s", apperrors.ErrDuplicate, modelUser.Email)
		}
		return fmt.Errorf("failed to save user %s: %w", modelUser.UserID, err)
	}
	return nil
}
