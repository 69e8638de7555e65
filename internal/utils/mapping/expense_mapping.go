package mapping

import (
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gathr-app/gathr_backend/internal/models"
)

// ToDomainExpense converts a model Expense to a domain Expense. Shares are
// loaded separately and attached by the caller when needed.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		EventID:      m.EventID,
		Amount:       m.Amount,
		Description:  m.Description,
		Date:         m.Date,
		Payer:        ToDomainParticipantRef(m.PayerKind, m.PayerID),
		Distribution: domain.DistributionMode(m.Distribution),
	}
}

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:    d.ExpenseID,
		EventID:      d.EventID,
		Amount:       d.Amount,
		Description:  d.Description,
		Date:         d.Date,
		PayerKind:    models.ParticipantKind(d.Payer.Kind),
		PayerID:      d.Payer.ID,
		Distribution: string(d.Distribution),
	}
}

// ToDomainExpenseShare converts a model ExpenseShare to a domain ExpenseShare
func ToDomainExpenseShare(m models.ExpenseShare) domain.ExpenseShare {
	return domain.ExpenseShare{
		ShareID:     m.ShareID,
		ExpenseID:   m.ExpenseID,
		Participant: ToDomainParticipantRef(m.ParticipantKind, m.ParticipantID),
		ShareValue:  m.ShareValue,
	}
}

// ToModelExpenseShare converts a domain ExpenseShare to a model ExpenseShare
func ToModelExpenseShare(d domain.ExpenseShare) models.ExpenseShare {
	return models.ExpenseShare{
		ShareID:         d.ShareID,
		ExpenseID:       d.ExpenseID,
		ParticipantKind: models.ParticipantKind(d.Participant.Kind),
		ParticipantID:   d.Participant.ID,
		ShareValue:      d.ShareValue,
	}
}

// ToDomainExpenseShareSlice converts model ExpenseShares to domain ExpenseShares
func ToDomainExpenseShareSlice(ms []models.ExpenseShare) []domain.ExpenseShare {
	ds := make([]domain.ExpenseShare, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpenseShare(m)
	}
	return ds
}
