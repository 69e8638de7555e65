package mapping

import (
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gathr-app/gathr_backend/internal/models"
)

// ToDomainSettlementTransfer converts a model SettlementTransfer to a domain SettlementTransfer
func ToDomainSettlementTransfer(m models.SettlementTransfer) domain.SettlementTransfer {
	return domain.SettlementTransfer{
		TransferID:   m.TransferID,
		EventID:      m.EventID,
		Sender:       ToDomainParticipantRef(m.SenderKind, m.SenderID),
		SenderName:   m.SenderName,
		Receiver:     ToDomainParticipantRef(m.ReceiverKind, m.ReceiverID),
		ReceiverName: m.ReceiverName,
		Amount:       m.Amount,
	}
}

// ToModelSettlementTransfer converts a domain SettlementTransfer to a model SettlementTransfer
func ToModelSettlementTransfer(d domain.SettlementTransfer) models.SettlementTransfer {
	return models.SettlementTransfer{
		TransferID:   d.TransferID,
		EventID:      d.EventID,
		SenderKind:   models.ParticipantKind(d.Sender.Kind),
		SenderID:     d.Sender.ID,
		SenderName:   d.SenderName,
		ReceiverKind: models.ParticipantKind(d.Receiver.Kind),
		ReceiverID:   d.Receiver.ID,
		ReceiverName: d.ReceiverName,
		Amount:       d.Amount,
	}
}

// ToDomainSettlementTransferSlice converts model transfers to domain transfers
func ToDomainSettlementTransferSlice(ms []models.SettlementTransfer) []domain.SettlementTransfer {
	ds := make([]domain.SettlementTransfer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSettlementTransfer(m)
	}
	return ds
}
