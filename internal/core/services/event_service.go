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

// guestTokenBytes is the entropy of a guest invite token before hex encoding.
const guestTokenBytes = 16

// eventService manages events, their candidate dates and guest invitations.
type eventService struct {
	eventRepo      portsrepo.EventRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
	guestRepo      portsrepo.GuestRepositoryFacade
	invitationRepo portsrepo.InvitationRepositoryFacade
	responseRepo   portsrepo.GuestResponseRepositoryFacade
}

// NewEventService creates a new EventService.
func NewEventService(
	eventRepo portsrepo.EventRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	guestRepo portsrepo.GuestRepositoryFacade,
	invitationRepo portsrepo.InvitationRepositoryFacade,
	responseRepo portsrepo.GuestResponseRepositoryFacade,
) portssvc.EventSvcFacade {
	return &eventService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		guestRepo:      guestRepo,
		invitationRepo: invitationRepo,
		responseRepo:   responseRepo,
	}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// CreateEvent persists a new event and its candidate dates.
func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByID(ctx, req.CreatorUserID); err != nil {
		return nil, fmt.Errorf("failed to find creator %s: %w", req.CreatorUserID, err)
	}

	event := domain.Event{
		EventID:       uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		OrganizerName: req.OrganizerName,
		CreatorUserID: req.CreatorUserID,
	}

	dates := make([]domain.EventDate, 0, len(req.Dates))
	for _, d := range req.Dates {
		dates = append(dates, domain.EventDate{
			EventDateID:  uuid.NewString(),
			EventID:      event.EventID,
			ProposedDate: d.ProposedDate,
		})
	}

	if err := s.eventRepo.SaveEvent(ctx, event, dates); err != nil {
		logger.Error("Failed to save event", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	logger.Info("Event created", slog.String("event_id", event.EventID), slog.Int("date_count", len(dates)))
	return &event, nil
}

// UpdateEvent updates the event's fields and appends candidate dates it does
// not have yet. Existing dates, and the responses referring to them, are never
// touched.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest) (*domain.Event, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	existing, err := s.eventRepo.ListEventDatesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dates for event %s: %w", eventID, err)
	}
	known := make(map[int64]struct{}, len(existing))
	for _, d := range existing {
		known[d.ProposedDate.UnixNano()] = struct{}{}
	}

	var newDates []domain.EventDate
	for _, d := range req.Dates {
		if _, ok := known[d.ProposedDate.UnixNano()]; ok {
			continue
		}
		known[d.ProposedDate.UnixNano()] = struct{}{}
		newDates = append(newDates, domain.EventDate{
			EventDateID:  uuid.NewString(),
			EventID:      eventID,
			ProposedDate: d.ProposedDate,
		})
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Location = req.Location
	event.OrganizerName = req.OrganizerName

	if err := s.eventRepo.UpdateEvent(ctx, *event, newDates); err != nil {
		logger.Error("Failed to update event", slog.String("event_id", eventID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update event %s: %w", eventID, err)
	}

	logger.Info("Event updated", slog.String("event_id", eventID), slog.Int("new_date_count", len(newDates)))
	return event, nil
}

// GetEventInfo retrieves an event with its candidate dates. The view
// discriminator is "user" when the token belongs to the event creator and
// "guest" when it belongs to an invited guest; any other token is rejected.
func (s *eventService) GetEventInfo(ctx context.Context, eventID, token string) (*dto.EventInfoResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	view, err := s.resolveView(ctx, event, token)
	if err != nil {
		return nil, err
	}

	dates, err := s.eventRepo.ListEventDatesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dates for event %s: %w", eventID, err)
	}

	return &dto.EventInfoResponse{
		Event: dto.ToEventResponse(event),
		Dates: dto.ToEventDateResponses(dates),
		View:  view,
	}, nil
}

// resolveView decides which side of the event the token holder sees.
func (s *eventService) resolveView(ctx context.Context, event *domain.Event, token string) (string, error) {
	user, err := s.userRepo.FindUserByToken(ctx, token)
	if err == nil {
		if user.UserID != event.CreatorUserID {
			return "", fmt.Errorf("%w: token does not belong to the event creator", apperrors.ErrForbidden)
		}
		return "user", nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("failed to resolve token: %w", err)
	}

	guest, err := s.guestRepo.FindGuestByToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: unknown token", apperrors.ErrForbidden)
		}
		return "", fmt.Errorf("failed to resolve token: %w", err)
	}

	if _, err := s.invitationRepo.FindInvitation(ctx, event.EventID, guest.GuestID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: guest is not invited to this event", apperrors.ErrForbidden)
		}
		return "", fmt.Errorf("failed to find invitation: %w", err)
	}
	return "guest", nil
}

// ListEventsForEmail lists the events an email address created, and those it
// is invited to, with the matching access tokens. Either side may be empty if
// the email is unknown in that role.
func (s *eventService) ListEventsForEmail(ctx context.Context, email string) (*dto.ListEventsResponse, error) {
	resp := &dto.ListEventsResponse{
		EventsCreated: []dto.EventSummary{},
		EventsInvited: []dto.EventSummary{},
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		created, err := s.eventRepo.ListEventsByCreator(ctx, user.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list events created by %s: %w", user.UserID, err)
		}
		resp.UserToken = user.Token
		for _, e := range created {
			resp.EventsCreated = append(resp.EventsCreated, dto.EventSummary{EventID: e.EventID, Title: e.Title})
		}
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	guest, err := s.guestRepo.FindGuestByEmail(ctx, email)
	switch {
	case err == nil:
		invitations, err := s.invitationRepo.ListInvitationsByGuest(ctx, guest.GuestID)
		if err != nil {
			return nil, fmt.Errorf("failed to list invitations for guest %s: %w", guest.GuestID, err)
		}
		ids := make([]string, 0, len(invitations))
		for _, inv := range invitations {
			ids = append(ids, inv.EventID)
		}
		invited, err := s.eventRepo.ListEventsByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to list invited events: %w", err)
		}
		resp.GuestToken = guest.Token
		for _, e := range invited {
			resp.EventsInvited = append(resp.EventsInvited, dto.EventSummary{EventID: e.EventID, Title: e.Title})
		}
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to find guest by email: %w", err)
	}

	return resp, nil
}

// ListAcceptedParticipants returns the accepted roster: the creator first,
// then every guest whose invitation is accepted, in invitation order.
func (s *eventService) ListAcceptedParticipants(ctx context.Context, eventID string) ([]domain.Participant, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	invitations, err := s.invitationRepo.ListInvitationsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations for event %s: %w", eventID, err)
	}

	participants := []domain.Participant{{
		ParticipantRef: domain.ParticipantRef{Kind: domain.KindUser, ID: event.CreatorUserID},
		DisplayName:    event.OrganizerName,
	}}
	for _, inv := range invitations {
		if !inv.IsAccepted() {
			continue
		}
		participants = append(participants, domain.Participant{
			ParticipantRef: domain.ParticipantRef{Kind: domain.KindGuest, ID: inv.GuestID},
			DisplayName:    inv.GuestName,
		})
	}
	return participants, nil
}

// GetAttendance splits responded guests into those who can come and those who
// cannot, each with their per-date answers. Guests who have not responded yet
// appear in neither list.
func (s *eventService) GetAttendance(ctx context.Context, eventID string) (*dto.AttendanceResponse, error) {
	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	invitations, err := s.invitationRepo.ListInvitationsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations for event %s: %w", eventID, err)
	}

	dates, err := s.eventRepo.ListEventDatesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dates for event %s: %w", eventID, err)
	}
	dateByID := make(map[string]domain.EventDate, len(dates))
	for _, d := range dates {
		dateByID[d.EventDateID] = d
	}

	responses, err := s.responseRepo.ListResponsesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses for event %s: %w", eventID, err)
	}
	byInvitation := make(map[string][]domain.GuestResponse)
	for _, r := range responses {
		byInvitation[r.InvitationID] = append(byInvitation[r.InvitationID], r)
	}

	attendance := &dto.AttendanceResponse{
		CanCome:    []dto.AttendeeResponse{},
		CannotCome: []dto.AttendeeResponse{},
	}
	for _, inv := range invitations {
		if inv.Accepted == nil {
			continue
		}
		answers := make([]dto.DateAnswer, 0, len(byInvitation[inv.InvitationID]))
		for _, r := range byInvitation[inv.InvitationID] {
			date, ok := dateByID[r.EventDateID]
			if !ok {
				continue
			}
			answers = append(answers, dto.DateAnswer{
				ProposedDate: date.ProposedDate,
				Accepted:     r.Accepted,
			})
		}
		attendee := dto.AttendeeResponse{
			GuestName: inv.GuestName,
			Accepted:  inv.Accepted,
			Answers:   answers,
		}
		if *inv.Accepted {
			attendance.CanCome = append(attendance.CanCome, attendee)
		} else {
			attendance.CannotCome = append(attendance.CannotCome, attendee)
		}
	}
	return attendance, nil
}

// InviteGuest finds or creates the guest for the email and its invitation to
// the event. Re-inviting the same email returns the existing guest and
// invitation unchanged, so invite links stay stable.
func (s *eventService) InviteGuest(ctx context.Context, eventID, email string) (*dto.InviteGuestResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	guest, err := s.guestRepo.FindGuestByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		token, tokenErr := utils.GenerateSecureRandomString(guestTokenBytes)
		if tokenErr != nil {
			return nil, fmt.Errorf("failed to generate guest token: %w", tokenErr)
		}
		guest = &domain.Guest{
			GuestID: uuid.NewString(),
			Email:   email,
			Token:   token,
		}
		if err := s.guestRepo.SaveGuest(ctx, *guest); err != nil {
			logger.Error("Failed to save guest", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to save guest: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to find guest by email: %w", err)
	}

	invitation, err := s.invitationRepo.FindInvitation(ctx, eventID, guest.GuestID)
	if errors.Is(err, apperrors.ErrNotFound) {
		invitation = &domain.Invitation{
			InvitationID: uuid.NewString(),
			EventID:      eventID,
			GuestID:      guest.GuestID,
		}
		if err := s.invitationRepo.SaveInvitation(ctx, *invitation); err != nil {
			logger.Error("Failed to save invitation", slog.String("event_id", eventID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to save invitation: %w", err)
		}
		logger.Info("Guest invited", slog.String("event_id", eventID), slog.String("guest_id", guest.GuestID))
	} else if err != nil {
		return nil, fmt.Errorf("failed to find invitation: %w", err)
	}

	return &dto.InviteGuestResponse{
		Guest:      dto.ToGuestResponse(guest),
		Invitation: dto.ToInvitationResponse(invitation),
	}, nil
}
