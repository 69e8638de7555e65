package models

import "github.com/shopspring/decimal"

// SettlementTransfer maps to the settlement_transfers table. The whole set
// for an event is replaced atomically whenever the ledger changes.
type SettlementTransfer struct {
	TransferID   string
	EventID      string
	SenderKind   ParticipantKind
	SenderID     string
	SenderName   string
	ReceiverKind ParticipantKind
	ReceiverID   string
	ReceiverName string
	Amount       decimal.Decimal
}
