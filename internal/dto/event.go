package dto

import (
	"time"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
)

// EventDateRequest is a candidate date submitted on event creation or update.
type EventDateRequest struct {
	ProposedDate time.Time `json:"proposedDate" binding:"required"`
}

// CreateEventRequest is the payload to create an event with candidate dates.
type CreateEventRequest struct {
	Title         string             `json:"title" binding:"required"`
	Description   string             `json:"description"`
	Location      string             `json:"location"`
	OrganizerName string             `json:"organizerName" binding:"required"`
	CreatorUserID string             `json:"creatorUserID" binding:"required"`
	Dates         []EventDateRequest `json:"dates" binding:"required,min=1,dive"`
}

// CreateEventResponse returns the new event ID and the invite link guests use.
type CreateEventResponse struct {
	EventID    string `json:"eventID"`
	InviteLink string `json:"inviteLink"`
}

// UpdateEventRequest is the payload to update an event. Candidate dates the
// event does not have yet are appended; existing ones are left alone.
type UpdateEventRequest struct {
	Title         string             `json:"title" binding:"required"`
	Description   string             `json:"description"`
	Location      string             `json:"location"`
	OrganizerName string             `json:"organizerName" binding:"required"`
	Dates         []EventDateRequest `json:"dates" binding:"dive"`
}

// EventResponse is the event representation returned to clients.
type EventResponse struct {
	EventID       string `json:"eventID"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	OrganizerName string `json:"organizerName"`
}

// EventDateResponse is a candidate date with its current preference score.
type EventDateResponse struct {
	EventDateID  string    `json:"eventDateID"`
	ProposedDate time.Time `json:"proposedDate"`
	Score        int       `json:"score"`
}

// EventInfoResponse is the detail view of an event. View is "user" when the
// supplied token belongs to the event creator, otherwise "guest".
type EventInfoResponse struct {
	Event EventResponse       `json:"event"`
	Dates []EventDateResponse `json:"dates"`
	View  string              `json:"view"`
}

// EventSummary is a short event listing entry.
type EventSummary struct {
	EventID string `json:"eventID"`
	Title   string `json:"title"`
}

// ListEventsResponse lists the events an email address created or is invited
// to, with the matching access tokens.
type ListEventsResponse struct {
	EventsCreated []EventSummary `json:"eventsCreated"`
	UserToken     string         `json:"userToken"`
	EventsInvited []EventSummary `json:"eventsInvited"`
	GuestToken    string         `json:"guestToken"`
}

// ParticipantResponse is one entry of the accepted-participant roster.
type ParticipantResponse struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// ListParticipantsResponse is the accepted roster: creator first, then guests.
type ListParticipantsResponse struct {
	Participants []ParticipantResponse `json:"participants"`
}

// InviteGuestRequest is the payload to invite a guest by email.
type InviteGuestRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// InviteGuestResponse returns the (possibly pre-existing) guest and invitation.
type InviteGuestResponse struct {
	Guest      GuestResponse      `json:"guest"`
	Invitation InvitationResponse `json:"invitation"`
}

// GuestResponse is the guest representation returned to clients.
type GuestResponse struct {
	GuestID string `json:"guestID"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

// InvitationResponse is the invitation representation returned to clients.
type InvitationResponse struct {
	InvitationID string `json:"invitationID"`
	EventID      string `json:"eventID"`
	GuestID      string `json:"guestID"`
	GuestName    string `json:"guestName"`
	Accepted     *bool  `json:"accepted"`
}

// DateAnswer is a per-date answer inside an attendance view.
type DateAnswer struct {
	ProposedDate time.Time `json:"proposedDate"`
	Accepted     bool      `json:"accepted"`
}

// AttendeeResponse is a guest's attendance summary for an event.
type AttendeeResponse struct {
	GuestName string       `json:"guestName"`
	Accepted  *bool        `json:"accepted"`
	Answers   []DateAnswer `json:"answers"`
}

// AttendanceResponse splits responded guests into those who can come and
// those who cannot. Guests that have not responded appear in neither list.
type AttendanceResponse struct {
	CanCome    []AttendeeResponse `json:"canCome"`
	CannotCome []AttendeeResponse `json:"cannotCome"`
}

// ToEventResponse converts a domain Event to an EventResponse
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:       e.EventID,
		Title:         e.Title,
		Description:   e.Description,
		Location:      e.Location,
		OrganizerName: e.OrganizerName,
	}
}

// ToEventDateResponse converts a domain EventDate to an EventDateResponse
func ToEventDateResponse(d domain.EventDate) EventDateResponse {
	return EventDateResponse{
		EventDateID:  d.EventDateID,
		ProposedDate: d.ProposedDate,
		Score:        d.Score,
	}
}

// ToEventDateResponses converts domain EventDates to EventDateResponses
func ToEventDateResponses(dates []domain.EventDate) []EventDateResponse {
	out := make([]EventDateResponse, len(dates))
	for i, d := range dates {
		out[i] = ToEventDateResponse(d)
	}
	return out
}

// ToGuestResponse converts a domain Guest to a GuestResponse
func ToGuestResponse(g *domain.Guest) GuestResponse {
	return GuestResponse{
		GuestID: g.GuestID,
		Email:   g.Email,
		Token:   g.Token,
	}
}

// ToInvitationResponse converts a domain Invitation to an InvitationResponse
func ToInvitationResponse(i *domain.Invitation) InvitationResponse {
	return InvitationResponse{
		InvitationID: i.InvitationID,
		EventID:      i.EventID,
		GuestID:      i.GuestID,
		GuestName:    i.GuestName,
		Accepted:     i.Accepted,
	}
}
