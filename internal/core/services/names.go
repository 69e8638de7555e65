package services

import "github.com/gathr-app/gathr_backend/internal/core/domain"

// buildNameIndex maps participant references to the display names known for
// an event: the organizer name for the creator and the invitation guest name
// for every invited guest, responded or not. References outside the index
// resolve to the empty string.
func buildNameIndex(event *domain.Event, invitations []domain.Invitation) map[domain.ParticipantRef]string {
	names := make(map[domain.ParticipantRef]string, len(invitations)+1)
	names[domain.ParticipantRef{Kind: domain.KindUser, ID: event.CreatorUserID}] = event.OrganizerName
	for _, inv := range invitations {
		names[domain.ParticipantRef{Kind: domain.KindGuest, ID: inv.GuestID}] = inv.GuestName
	}
	return names
}
