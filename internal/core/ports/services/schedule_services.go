package services

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gathr-app/gathr_backend/internal/dto"
)

// ScheduleSvcFacade manages guest responses to candidate dates and the derived
// preference scores.
type ScheduleSvcFacade interface {
	// RecordResponses stores a guest's overall answer and per-date responses
	// (latest write wins per date), then recomputes the date scores.
	RecordResponses(ctx context.Context, eventID, guestToken string, req dto.RecordResponsesRequest) (*domain.Invitation, error)

	// GetResponses returns the guest's recorded answers for the event.
	GetResponses(ctx context.Context, eventID, guestToken string) (*dto.GuestResponsesResponse, error)

	// RecomputeDateScores rescores every candidate date of the event from the
	// responses of accepted invitations and atomically replaces the stored
	// scores. On failure the prior scores are untouched.
	RecomputeDateScores(ctx context.Context, eventID string) error

	// FavoriteDates returns all dates tied at the maximum score among dates
	// with a positive score. An empty slice means no favorite yet.
	FavoriteDates(ctx context.Context, eventID string) ([]domain.EventDate, error)
}
