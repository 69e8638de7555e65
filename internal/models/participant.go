package models

// ParticipantKind discriminates user vs guest rows when both can fill the
// same role (payer, share holder, post author).
type ParticipantKind string

const (
	KindUser  ParticipantKind = "user"
	KindGuest ParticipantKind = "guest"
)

// User maps to the users table.
type User struct {
	UserID string
	Email  string
	Token  string
}

// Guest maps to the guests table.
type Guest struct {
	GuestID string
	Email   string
	Token   string
}

// Invitation maps to the invitations table. Accepted stays NULL until the
// guest responds.
type Invitation struct {
	InvitationID string
	EventID      string
	GuestID      string
	GuestName    string
	Accepted     *bool
}
