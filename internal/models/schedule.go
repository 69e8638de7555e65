package models

// GuestResponse maps to the guest_responses table. A unique index on
// (invitation_id, event_date_id) enforces latest-write-wins upserts.
type GuestResponse struct {
	ResponseID   string
	InvitationID string
	EventDateID  string
	Accepted     bool
	RankOrder    *int
}
