package domain

import "time"

// Event is the aggregate root: an occasion with candidate dates, invited
// guests, a shared-expense ledger and a discussion feed.
type Event struct {
	EventID       string `json:"eventID"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	OrganizerName string `json:"organizerName"` // display name of the creating user for this event
	CreatorUserID string `json:"creatorUserID"`
}

// EventDate is a candidate date proposed for an event, carrying the current
// preference score derived from guest responses.
type EventDate struct {
	EventDateID  string    `json:"eventDateID"`
	EventID      string    `json:"eventID"`
	ProposedDate time.Time `json:"proposedDate"`
	Score        int       `json:"score"`
}
