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

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for event and candidate date data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

const eventColumns = `event_id, title, description, location, organizer_name, creator_user_id`

func scanEvent(row pgx.Row) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.Title,
		&m.Description,
		&m.Location,
		&m.OrganizerName,
		&m.CreatorUserID,
	)
	return m, err
}

// FindEventByID retrieves a specific event by its unique identifier.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_id = $1;
	`
	m, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	event := mapping.ToDomainEvent(m)
	return &event, nil
}

func (r *PgxEventRepository) listEvents(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	modelEvents, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}

	out := make([]domain.Event, len(modelEvents))
	for i, m := range modelEvents {
		out[i] = mapping.ToDomainEvent(m)
	}
	return out, nil
}

// ListEventsByCreator retrieves all events created by a user.
func (r *PgxEventRepository) ListEventsByCreator(ctx context.Context, userID string) ([]domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE creator_user_id = $1
		ORDER BY created_at, event_id;
	`
	return r.listEvents(ctx, query, userID)
}

// ListEventsByIDs retrieves the events matching the given identifiers.
func (r *PgxEventRepository) ListEventsByIDs(ctx context.Context, eventIDs []string) ([]domain.Event, error) {
	if len(eventIDs) == 0 {
		return []domain.Event{}, nil
	}
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_id = ANY($1)
		ORDER BY created_at, event_id;
	`
	return r.listEvents(ctx, query, eventIDs)
}

// SaveEvent persists a new event together with its candidate dates in one
// transaction.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event, dates []domain.EventDate) error {
	m := mapping.ToModelEvent(event)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertEvent := `
		INSERT INTO events (event_id, title, description, location, organizer_name, creator_user_id)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, insertEvent,
		m.EventID,
		m.Title,
		m.Description,
		m.Location,
		m.OrganizerName,
		m.CreatorUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event %s: %w", m.EventID, err)
	}

	if err := insertEventDates(ctx, tx, dates); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateEvent updates the mutable fields of an event and appends any candidate
// dates the event does not have yet, in one transaction.
func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event, newDates []domain.EventDate) error {
	m := mapping.ToModelEvent(event)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateEvent := `
		UPDATE events
		SET title = $2, description = $3, location = $4, organizer_name = $5
		WHERE event_id = $1;
	`
	tag, err := tx.Exec(ctx, updateEvent,
		m.EventID,
		m.Title,
		m.Description,
		m.Location,
		m.OrganizerName,
	)
	if err != nil {
		return fmt.Errorf("failed to update event %s: %w", m.EventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertEventDates(ctx, tx, newDates); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertEventDates(ctx context.Context, tx pgx.Tx, dates []domain.EventDate) error {
	if len(dates) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	insertDate := `
		INSERT INTO event_dates (event_date_id, event_id, proposed_date, score)
		VALUES ($1, $2, $3, $4);
	`
	for _, d := range dates {
		md := mapping.ToModelEventDate(d)
		batch.Queue(insertDate, md.EventDateID, md.EventID, md.ProposedDate, md.Score)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range dates {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert event date: %w", err)
		}
	}
	return results.Close()
}

// FindEventDateByID retrieves a candidate date by its unique identifier.
func (r *PgxEventRepository) FindEventDateByID(ctx context.Context, eventDateID string) (*domain.EventDate, error) {
	query := `
		SELECT event_date_id, event_id, proposed_date, score
		FROM event_dates
		WHERE event_date_id = $1;
	`
	var m models.EventDate
	err := r.Pool.QueryRow(ctx, query, eventDateID).Scan(
		&m.EventDateID,
		&m.EventID,
		&m.ProposedDate,
		&m.Score,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event date %s: %w", eventDateID, err)
	}

	date := mapping.ToDomainEventDate(m)
	return &date, nil
}

// ListEventDatesByEvent retrieves all candidate dates of an event in proposal
// order.
func (r *PgxEventRepository) ListEventDatesByEvent(ctx context.Context, eventID string) ([]domain.EventDate, error) {
	query := `
		SELECT event_date_id, event_id, proposed_date, score
		FROM event_dates
		WHERE event_id = $1
		ORDER BY proposed_date, event_date_id;
	`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event dates: %w", err)
	}
	defer rows.Close()

	modelDates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.EventDate, error) {
		var m models.EventDate
		err := row.Scan(&m.EventDateID, &m.EventID, &m.ProposedDate, &m.Score)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan event dates: %w", err)
	}

	return mapping.ToDomainEventDateSlice(modelDates), nil
}

// ReplaceDateScores overwrites the preference score of every candidate date of
// an event as one atomic unit. The event row is locked first so concurrent
// recomputes for the same event are serialized.
func (r *PgxEventRepository) ReplaceDateScores(ctx context.Context, eventID string, scores map[string]int) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockEvent(ctx, tx, eventID); err != nil {
		return fmt.Errorf("failed to lock event %s: %w", eventID, err)
	}

	updateScore := `
		UPDATE event_dates
		SET score = $3
		WHERE event_date_id = $1 AND event_id = $2;
	`
	batch := &pgx.Batch{}
	for dateID, score := range scores {
		batch.Queue(updateScore, dateID, eventID, score)
	}
	results := tx.SendBatch(ctx, batch)
	for range scores {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to update date score: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to flush score updates: %w", err)
	}

	return r.Commit(ctx, tx)
}
