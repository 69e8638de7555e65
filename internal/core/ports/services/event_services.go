package services

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gathr-app/gathr_backend/internal/dto"
)

// EventReaderSvc defines read operations for events
type EventReaderSvc interface {
	// GetEventInfo retrieves an event with its candidate dates. The view
	// discriminator is "user" when the token belongs to the creator.
	GetEventInfo(ctx context.Context, eventID, token string) (*dto.EventInfoResponse, error)

	// ListEventsForEmail lists the events an email created or is invited to.
	ListEventsForEmail(ctx context.Context, email string) (*dto.ListEventsResponse, error)

	// ListAcceptedParticipants returns the accepted roster: the creator first,
	// then every guest whose invitation is accepted.
	ListAcceptedParticipants(ctx context.Context, eventID string) ([]domain.Participant, error)

	// GetAttendance splits responded guests into canCome and cannotCome.
	GetAttendance(ctx context.Context, eventID string) (*dto.AttendanceResponse, error)
}

// EventWriterSvc defines write operations for events
type EventWriterSvc interface {
	// CreateEvent persists a new event and its candidate dates.
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error)

	// UpdateEvent updates event fields and appends new candidate dates.
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest) (*domain.Event, error)

	// InviteGuest finds or creates the guest for the email and its invitation
	// to the event.
	InviteGuest(ctx context.Context, eventID, email string) (*dto.InviteGuestResponse, error)
}

// EventSvcFacade combines all event service interfaces
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
}
