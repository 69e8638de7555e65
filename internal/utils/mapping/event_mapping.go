package mapping

import (
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gathr-app/gathr_backend/internal/models"
)

// ToDomainEvent converts a model Event to a domain Event
func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:       m.EventID,
		Title:         m.Title,
		Description:   m.Description,
		Location:      m.Location,
		OrganizerName: m.OrganizerName,
		CreatorUserID: m.CreatorUserID,
	}
}

// ToModelEvent converts a domain Event to a model Event
func ToModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:       d.EventID,
		Title:         d.Title,
		Description:   d.Description,
		Location:      d.Location,
		OrganizerName: d.OrganizerName,
		CreatorUserID: d.CreatorUserID,
	}
}

// ToDomainEventDate converts a model EventDate to a domain EventDate
func ToDomainEventDate(m models.EventDate) domain.EventDate {
	return domain.EventDate{
		EventDateID:  m.EventDateID,
		EventID:      m.EventID,
		ProposedDate: m.ProposedDate,
		Score:        m.Score,
	}
}

// ToModelEventDate converts a domain EventDate to a model EventDate
func ToModelEventDate(d domain.EventDate) models.EventDate {
	return models.EventDate{
		EventDateID:  d.EventDateID,
		EventID:      d.EventID,
		ProposedDate: d.ProposedDate,
		Score:        d.Score,
	}
}

// ToDomainEventDateSlice converts a slice of model EventDates to domain EventDates
func ToDomainEventDateSlice(ms []models.EventDate) []domain.EventDate {
	ds := make([]domain.EventDate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEventDate(m)
	}
	return ds
}
