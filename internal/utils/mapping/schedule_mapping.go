package mapping

import (
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gathr-app/gathr_backend/internal/models"
)

// ToDomainGuestResponse converts a model GuestResponse to a domain GuestResponse
func ToDomainGuestResponse(m models.GuestResponse) domain.GuestResponse {
	return domain.GuestResponse{
		ResponseID:   m.ResponseID,
		InvitationID: m.InvitationID,
		EventDateID:  m.EventDateID,
		Accepted:     m.Accepted,
		RankOrder:    m.RankOrder,
	}
}

// ToModelGuestResponse converts a domain GuestResponse to a model GuestResponse
func ToModelGuestResponse(d domain.GuestResponse) models.GuestResponse {
	return models.GuestResponse{
		ResponseID:   d.ResponseID,
		InvitationID: d.InvitationID,
		EventDateID:  d.EventDateID,
		Accepted:     d.Accepted,
		RankOrder:    d.RankOrder,
	}
}

// ToDomainGuestResponseSlice converts model GuestResponses to domain GuestResponses
func ToDomainGuestResponseSlice(ms []models.GuestResponse) []domain.GuestResponse {
	ds := make([]domain.GuestResponse, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGuestResponse(m)
	}
	return ds
}
