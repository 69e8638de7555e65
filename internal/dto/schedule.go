package dto

import "github.com/gathr-app/gathr_backend/internal/core/domain"

// DateResponseRequest is a guest's answer for one candidate date. RankOrder is
// 1 for the most preferred date; omit it to leave the date unranked.
type DateResponseRequest struct {
	EventDateID string `json:"eventDateID" binding:"required"`
	Accepted    *bool  `json:"accepted" binding:"required"`
	RankOrder   *int   `json:"rankOrder" binding:"omitempty,min=1"`
}

// RecordResponsesRequest is the payload a guest submits when responding to an
// invitation. Accepted is the overall attendance flag for the event.
type RecordResponsesRequest struct {
	GuestName string                `json:"guestName" binding:"required"`
	Accepted  *bool                 `json:"accepted" binding:"required"`
	Responses []DateResponseRequest `json:"responses" binding:"dive"`
}

// GuestDateResponse is one recorded per-date answer returned to the guest.
type GuestDateResponse struct {
	EventDateID string `json:"eventDateID"`
	Accepted    bool   `json:"accepted"`
	RankOrder   *int   `json:"rankOrder"`
}

// GuestResponsesResponse returns a guest's recorded answers for an event.
type GuestResponsesResponse struct {
	GuestName string              `json:"guestName"`
	Accepted  *bool               `json:"accepted"`
	Responses []GuestDateResponse `json:"responses"`
}

// FavoriteDatesResponse carries the candidate date(s) tied at the maximum
// positive score. None is true when no date has a positive score yet.
type FavoriteDatesResponse struct {
	Dates []EventDateResponse `json:"dates"`
	None  bool                `json:"none"`
}

// ToGuestDateResponses converts domain GuestResponses to GuestDateResponses
func ToGuestDateResponses(rs []domain.GuestResponse) []GuestDateResponse {
	out := make([]GuestDateResponse, len(rs))
	for i, r := range rs {
		out[i] = GuestDateResponse{
			EventDateID: r.EventDateID,
			Accepted:    r.Accepted,
			RankOrder:   r.RankOrder,
		}
	}
	return out
}
