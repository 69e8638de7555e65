package domain

import "github.com/shopspring/decimal"

// Balance is a participant's net monetary position for an event: amounts paid
// in minus owed shares. Positive means the participant is owed money. Balances
// are derived from the expense ledger, never stored.
type Balance struct {
	Participant ParticipantRef  `json:"participant"`
	DisplayName string          `json:"displayName"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

// SettlementTransfer is a single debtor-to-creditor payment instruction.
// Applying the full transfer set of an event drives every balance to zero.
type SettlementTransfer struct {
	TransferID   string          `json:"transferID"`
	EventID      string          `json:"eventID"`
	Sender       ParticipantRef  `json:"sender"`
	SenderName   string          `json:"senderName"`
	Receiver     ParticipantRef  `json:"receiver"`
	ReceiverName string          `json:"receiverName"`
	Amount       decimal.Decimal `json:"amount"`
}
