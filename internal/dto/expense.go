package dto

import (
	"time"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseParticipantRequest identifies one participant of an expense.
type ExpenseParticipantRequest struct {
	Kind string `json:"kind" binding:"required,oneof=user guest"`
	ID   string `json:"id" binding:"required"`
}

// CreateExpenseRequest is the payload to record an expense. The payer is
// resolved from the caller's token, not from the body.
type CreateExpenseRequest struct {
	Amount       decimal.Decimal             `json:"amount" binding:"required"`
	Description  string                      `json:"description" binding:"required"`
	Date         time.Time                   `json:"date" binding:"required"`
	Distribution string                      `json:"distribution" binding:"required,oneof=equal amount share"`
	Participants []ExpenseParticipantRequest `json:"participants" binding:"required,min=1,dive"`
}

// UpdateExpenseRequest is the payload to update an expense. The share set is
// rebuilt from the participant list.
type UpdateExpenseRequest struct {
	Amount       decimal.Decimal             `json:"amount" binding:"required"`
	Description  string                      `json:"description" binding:"required"`
	Date         time.Time                   `json:"date" binding:"required"`
	Participants []ExpenseParticipantRequest `json:"participants" binding:"required,min=1,dive"`
}

// ExpenseResponse is a ledger listing entry with the payer's display name.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	PayerKind   string          `json:"payerKind"`
	PayerName   string          `json:"payerName"`
}

// ExpenseShareResponse is one share of an expense with the participant's name.
type ExpenseShareResponse struct {
	Participant domain.ParticipantRef `json:"participant"`
	Name        string                `json:"name"`
	ShareValue  decimal.Decimal       `json:"shareValue"`
}

// ExpenseDetailResponse is the full expense view with its shares.
type ExpenseDetailResponse struct {
	ExpenseResponse
	Distribution string                 `json:"distribution"`
	Shares       []ExpenseShareResponse `json:"shares"`
}

// ListExpensesResponse lists an event's expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// BalanceResponse is one participant's net position for an event.
type BalanceResponse struct {
	Participant domain.ParticipantRef `json:"participant"`
	Name        string                `json:"name"`
	NetAmount   decimal.Decimal       `json:"netAmount"`
}

// ListBalancesResponse lists the net positions of an event.
type ListBalancesResponse struct {
	Balances []BalanceResponse `json:"balances"`
}

// SettlementTransferResponse is one debtor-to-creditor payment instruction.
type SettlementTransferResponse struct {
	Sender       domain.ParticipantRef `json:"sender"`
	SenderName   string                `json:"senderName"`
	Receiver     domain.ParticipantRef `json:"receiver"`
	ReceiverName string                `json:"receiverName"`
	Amount       decimal.Decimal       `json:"amount"`
}

// ListSettlementsResponse lists the current transfer set of an event.
type ListSettlementsResponse struct {
	Transfers []SettlementTransferResponse `json:"transfers"`
}

// ToBalanceResponses converts domain Balances to BalanceResponses
func ToBalanceResponses(balances []domain.Balance) []BalanceResponse {
	out := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = BalanceResponse{
			Participant: b.Participant,
			Name:        b.DisplayName,
			NetAmount:   b.NetAmount,
		}
	}
	return out
}

// ToSettlementTransferResponses converts domain transfers to responses
func ToSettlementTransferResponses(ts []domain.SettlementTransfer) []SettlementTransferResponse {
	out := make([]SettlementTransferResponse, len(ts))
	for i, t := range ts {
		out[i] = SettlementTransferResponse{
			Sender:       t.Sender,
			SenderName:   t.SenderName,
			Receiver:     t.Receiver,
			ReceiverName: t.ReceiverName,
			Amount:       t.Amount,
		}
	}
	return out
}
