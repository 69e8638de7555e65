package repositories

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
)

// EventReader defines read operations for event data
type EventReader interface {
	// FindEventByID retrieves a specific event by its unique identifier.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEventsByCreator retrieves all events created by a user.
	ListEventsByCreator(ctx context.Context, userID string) ([]domain.Event, error)

	// ListEventsByIDs retrieves the events matching the given identifiers.
	ListEventsByIDs(ctx context.Context, eventIDs []string) ([]domain.Event, error)
}

// EventWriter defines write operations for event data
type EventWriter interface {
	// SaveEvent persists a new event together with its candidate dates.
	SaveEvent(ctx context.Context, event domain.Event, dates []domain.EventDate) error

	// UpdateEvent updates the mutable fields of an event and appends any
	// candidate dates the event does not have yet.
	UpdateEvent(ctx context.Context, event domain.Event, newDates []domain.EventDate) error
}

// EventDateReader defines read operations for candidate date data
type EventDateReader interface {
	// FindEventDateByID retrieves a candidate date by its unique identifier.
	FindEventDateByID(ctx context.Context, eventDateID string) (*domain.EventDate, error)

	// ListEventDatesByEvent retrieves all candidate dates of an event.
	ListEventDatesByEvent(ctx context.Context, eventID string) ([]domain.EventDate, error)
}

// EventDateWriter defines write operations for candidate date data
type EventDateWriter interface {
	// ReplaceDateScores overwrites the preference score of every candidate
	// date of an event as one atomic unit. Recomputes for the same event are
	// serialized against each other.
	ReplaceDateScores(ctx context.Context, eventID string, scores map[string]int) error
}

// EventRepositoryFacade combines all event-related repository interfaces
type EventRepositoryFacade interface {
	EventReader
	EventWriter
	EventDateReader
	EventDateWriter
}
