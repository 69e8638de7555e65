package domain

// ParticipantKind discriminates the two actor types that can take part in an
// event. IDs are not globally unique across kinds, so identity is always the
// (kind, id) pair.
type ParticipantKind string

const (
	KindUser  ParticipantKind = "user"
	KindGuest ParticipantKind = "guest"
)

// ParticipantRef identifies a single event participant, either the creating
// user or an invited guest.
type ParticipantRef struct {
	Kind ParticipantKind `json:"kind"`
	ID   string          `json:"id"`
}

// Participant is a resolved participant with its display name.
type Participant struct {
	ParticipantRef
	DisplayName string `json:"displayName"`
}

// User is a registered event organizer, identified by email and holding an
// opaque access token.
type User struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// Guest is an invited person. Guests are created lazily on first invitation
// and authenticate with an opaque token of their own.
type Guest struct {
	GuestID string `json:"guestID"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

// Invitation links a guest to an event. Accepted is nil until the guest has
// responded to the invite.
type Invitation struct {
	InvitationID string `json:"invitationID"`
	EventID      string `json:"eventID"`
	GuestID      string `json:"guestID"`
	GuestName    string `json:"guestName"`
	Accepted     *bool  `json:"accepted"`
}

// IsAccepted reports whether the guest has responded and accepted.
func (i Invitation) IsAccepted() bool {
	return i.Accepted != nil && *i.Accepted
}
