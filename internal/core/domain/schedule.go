package domain

// GuestResponse is a guest's per-date answer for an event invitation. At most
// one response exists per (invitation, date) pair; the latest write wins.
// RankOrder is 1 for the guest's most preferred date and nil when the guest
// did not rank the date.
type GuestResponse struct {
	ResponseID   string `json:"responseID"`
	InvitationID string `json:"invitationID"`
	EventDateID  string `json:"eventDateID"`
	Accepted     bool   `json:"accepted"`
	RankOrder    *int   `json:"rankOrder"`
}
