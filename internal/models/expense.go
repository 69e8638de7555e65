package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense maps to the expenses table. The payer is stored as a
// (payer_kind, payer_id) pair because user and guest IDs are separate
// sequences.
type Expense struct {
	ExpenseID    string
	EventID      string
	Amount       decimal.Decimal
	Description  string
	Date         time.Time
	PayerKind    ParticipantKind
	PayerID      string
	Distribution string
}

// ExpenseShare maps to the expense_shares table.
type ExpenseShare struct {
	ShareID         string
	ExpenseID       string
	ParticipantKind ParticipantKind
	ParticipantID   string
	ShareValue      decimal.Decimal
}
