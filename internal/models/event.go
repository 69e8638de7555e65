package models

import "time"

// Event maps to the events table.
type Event struct {
	EventID       string
	Title         string
	Description   string
	Location      string
	OrganizerName string
	CreatorUserID string
}

// EventDate maps to the event_dates table.
type EventDate struct {
	EventDateID  string
	EventID      string
	ProposedDate time.Time
	Score        int
}
