package mapping

import (
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gathr-app/gathr_backend/internal/models"
)

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID: m.UserID,
		Email:  m.Email,
		Token:  m.Token,
	}
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID: d.UserID,
		Email:  d.Email,
		Token:  d.Token,
	}
}

// ToDomainGuest converts a model Guest to a domain Guest
func ToDomainGuest(m models.Guest) domain.Guest {
	return domain.Guest{
		GuestID: m.GuestID,
		Email:   m.Email,
		Token:   m.Token,
	}
}

// ToModelGuest converts a domain Guest to a model Guest
func ToModelGuest(d domain.Guest) models.Guest {
	return models.Guest{
		GuestID: d.GuestID,
		Email:   d.Email,
		Token:   d.Token,
	}
}

// ToDomainInvitation converts a model Invitation to a domain Invitation
func ToDomainInvitation(m models.Invitation) domain.Invitation {
	return domain.Invitation{
		InvitationID: m.InvitationID,
		EventID:      m.EventID,
		GuestID:      m.GuestID,
		GuestName:    m.GuestName,
		Accepted:     m.Accepted,
	}
}

// ToModelInvitation converts a domain Invitation to a model Invitation
func ToModelInvitation(d domain.Invitation) models.Invitation {
	return models.Invitation{
		InvitationID: d.InvitationID,
		EventID:      d.EventID,
		GuestID:      d.GuestID,
		GuestName:    d.GuestName,
		Accepted:     d.Accepted,
	}
}

// ToDomainParticipantRef builds a domain ParticipantRef from a stored
// (kind, id) pair.
func ToDomainParticipantRef(kind models.ParticipantKind, id string) domain.ParticipantRef {
	return domain.ParticipantRef{
		Kind: domain.ParticipantKind(kind),
		ID:   id,
	}
}
