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

type PgxGuestRepository struct {
	BaseRepository
}

// newPgxGuestRepository creates a new repository for guest data.
func newPgxGuestRepository(pool *pgxpool.Pool) portsrepo.GuestRepositoryFacade {
	return &PgxGuestRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.GuestRepositoryFacade = (*PgxGuestRepository)(nil)

func (r *PgxGuestRepository) findGuestBy(ctx context.Context, column, value string) (*domain.Guest, error) {
	query := fmt.Sprintf(`
		SELECT guest_id, email, token
		FROM guests
		WHERE %s = $1;
	`, column)

	var modelGuest models.Guest
	err := r.Pool.QueryRow(ctx, query, value).Scan(
		&modelGuest.GuestID,
		&modelGuest.Email,
		&modelGuest.Token,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find guest by %s: %w", column, err)
	}

	domainGuest := mapping.ToDomainGuest(modelGuest)
	return &domainGuest, nil
}

// FindGuestByID retrieves a guest by its unique identifier.
func (r *PgxGuestRepository) FindGuestByID(ctx context.Context, guestID string) (*domain.Guest, error) {
	return r.findGuestBy(ctx, "guest_id", guestID)
}

// FindGuestByEmail retrieves a guest by email.
func (r *PgxGuestRepository) FindGuestByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	return r.findGuestBy(ctx, "email", email)
}

// FindGuestByToken retrieves a guest by its opaque access token.
func (r *PgxGuestRepository) FindGuestByToken(ctx context.Context, token string) (*domain.Guest, error) {
	return r.findGuestBy(ctx, "token", token)
}

// SaveGuest persists a new guest.
func (r *PgxGuestRepository) SaveGuest(ctx context.Context, guest domain.Guest) error {
	modelGuest := mapping.ToModelGuest(guest)

	query := `
		INSERT INTO guests (guest_id, email, token)
		VALUES ($1, $2, $3);
	`
	_, err := r.Pool.Exec(ctx, query, modelGuest.GuestID, modelGuest.Email, modelGuest.Token)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: guest with email %s", apperrors.ErrDuplicate, modelGuest.Email)
		}
		return fmt.Errorf("failed to save guest %s: %w", modelGuest.GuestID, err)
	}
	return nil
}
