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
)

// acceptedBonus is added to a date's score for every accepting per-date
// response from a guest who confirmed attendance overall.
const acceptedBonus = 2

// scheduleService manages guest responses to candidate dates and the derived
// preference scores.
type scheduleService struct {
	eventRepo      portsrepo.EventRepositoryFacade
	guestRepo      portsrepo.GuestRepositoryFacade
	invitationRepo portsrepo.InvitationRepositoryFacade
	responseRepo   portsrepo.GuestResponseRepositoryFacade
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(
	eventRepo portsrepo.EventRepositoryFacade,
	guestRepo portsrepo.GuestRepositoryFacade,
	invitationRepo portsrepo.InvitationRepositoryFacade,
	responseRepo portsrepo.GuestResponseRepositoryFacade,
) portssvc.ScheduleSvcFacade {
	return &scheduleService{
		eventRepo:      eventRepo,
		guestRepo:      guestRepo,
		invitationRepo: invitationRepo,
		responseRepo:   responseRepo,
	}
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

// orderWeight converts a guest's rank for a date into a score contribution.
// Rank 1 (most preferred) yields the maximum weight totalDates; an absent or
// out-of-range rank is treated as the lowest weight, zero.
func orderWeight(rankOrder *int, totalDates int) int {
	if rankOrder == nil {
		return 0
	}
	rank := *rankOrder
	if rank < 1 || rank > totalDates {
		return 0
	}
	return totalDates - rank + 1
}

// RecordResponses stores a guest's overall answer and per-date responses for
// an event, then recomputes the date scores. At most one response survives per
// (invitation, date) pair; the latest write wins.
func (s *scheduleService) RecordResponses(ctx context.Context, eventID, guestToken string, req dto.RecordResponsesRequest) (*domain.Invitation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	guest, err := s.guestRepo.FindGuestByToken(ctx, guestToken)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve guest token: %w", err)
	}

	invitation, err := s.invitationRepo.FindInvitation(ctx, eventID, guest.GuestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invitation for guest %s on event %s: %w", guest.GuestID, eventID, err)
	}

	dates, err := s.eventRepo.ListEventDatesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dates for event %s: %w", eventID, err)
	}
	knownDates := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		knownDates[d.EventDateID] = struct{}{}
	}

	responses := make([]domain.GuestResponse, 0, len(req.Responses))
	for _, r := range req.Responses {
		if _, ok := knownDates[r.EventDateID]; !ok {
			return nil, fmt.Errorf("%w: event date %s does not belong to event %s", apperrors.ErrNotFound, r.EventDateID, eventID)
		}
		responses = append(responses, domain.GuestResponse{
			ResponseID:   uuid.NewString(),
			InvitationID: invitation.InvitationID,
			EventDateID:  r.EventDateID,
			Accepted:     *r.Accepted,
			RankOrder:    r.RankOrder,
		})
	}

	invitation.GuestName = req.GuestName
	invitation.Accepted = req.Accepted

	if err := s.responseRepo.SaveInvitationResponse(ctx, *invitation, responses); err != nil {
		logger.Error("Failed to save invitation response", slog.String("invitation_id", invitation.InvitationID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save invitation response: %w", err)
	}

	if err := s.RecomputeDateScores(ctx, eventID); err != nil {
		return nil, err
	}

	logger.Info("Guest responses recorded", slog.String("event_id", eventID), slog.String("invitation_id", invitation.InvitationID), slog.Int("response_count", len(responses)))
	return invitation, nil
}

// GetResponses returns the guest's recorded answers for the event.
func (s *scheduleService) GetResponses(ctx context.Context, eventID, guestToken string) (*dto.GuestResponsesResponse, error) {
	guest, err := s.guestRepo.FindGuestByToken(ctx, guestToken)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve guest token: %w", err)
	}

	invitation, err := s.invitationRepo.FindInvitation(ctx, eventID, guest.GuestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invitation for guest %s on event %s: %w", guest.GuestID, eventID, err)
	}

	responses, err := s.responseRepo.ListResponsesByInvitation(ctx, invitation.InvitationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses for invitation %s: %w", invitation.InvitationID, err)
	}

	return &dto.GuestResponsesResponse{
		GuestName: invitation.GuestName,
		Accepted:  invitation.Accepted,
		Responses: dto.ToGuestDateResponses(responses),
	}, nil
}

// RecomputeDateScores rescores every candidate date of the event from the
// current responses and atomically replaces the stored scores. Only responses
// from invitations whose overall accepted flag is true count; declined guests'
// per-date answers are ignored.
func (s *scheduleService) RecomputeDateScores(ctx context.Context, eventID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	dates, err := s.eventRepo.ListEventDatesByEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to list dates for event %s: %w", eventID, err)
	}

	invitations, err := s.invitationRepo.ListInvitationsByEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to list invitations for event %s: %w", eventID, err)
	}
	attending := make(map[string]struct{}, len(invitations))
	for _, inv := range invitations {
		if inv.IsAccepted() {
			attending[inv.InvitationID] = struct{}{}
		}
	}

	responses, err := s.responseRepo.ListResponsesByEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to list responses for event %s: %w", eventID, err)
	}

	totalDates := len(dates)
	scores := make(map[string]int, totalDates)
	for _, d := range dates {
		scores[d.EventDateID] = 0
	}

	for _, r := range responses {
		if _, ok := attending[r.InvitationID]; !ok {
			continue
		}
		if _, ok := scores[r.EventDateID]; !ok {
			continue
		}
		contribution := orderWeight(r.RankOrder, totalDates)
		if r.Accepted {
			contribution += acceptedBonus
		}
		scores[r.EventDateID] += contribution
	}

	if err := s.eventRepo.ReplaceDateScores(ctx, eventID, scores); err != nil {
		logger.Error("Failed to replace date scores", slog.String("event_id", eventID), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", apperrors.ErrRecomputeFailed, err)
	}

	logger.Info("Date scores recomputed", slog.String("event_id", eventID), slog.Int("date_count", totalDates))
	return nil
}

// FavoriteDates returns all candidate dates tied at the maximum score among
// dates with a positive score. An empty slice means no date has been favored
// yet; that is a valid state, not an error.
func (s *scheduleService) FavoriteDates(ctx context.Context, eventID string) ([]domain.EventDate, error) {
	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	dates, err := s.eventRepo.ListEventDatesByEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.EventDate{}, nil
		}
		return nil, fmt.Errorf("failed to list dates for event %s: %w", eventID, err)
	}

	maxScore := 0
	for _, d := range dates {
		if d.Score > maxScore {
			maxScore = d.Score
		}
	}
	if maxScore == 0 {
		return []domain.EventDate{}, nil
	}

	favorites := make([]domain.EventDate, 0, len(dates))
	for _, d := range dates {
		if d.Score == maxScore {
			favorites = append(favorites, d)
		}
	}
	return favorites, nil
}
