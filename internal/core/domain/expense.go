package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DistributionMode is the rule by which an expense amount is divided into
// shares. Only equal division is computed today; the share model allows
// arbitrary per-share values for the other modes.
type DistributionMode string

const (
	DistributionEqual  DistributionMode = "equal"
	DistributionAmount DistributionMode = "amount"
	DistributionShare  DistributionMode = "share"
)

// Expense is a single ledger entry for an event: one payer, a set of shares.
type Expense struct {
	ExpenseID    string           `json:"expenseID"`
	EventID      string           `json:"eventID"`
	Amount       decimal.Decimal  `json:"amount"`
	Description  string           `json:"description"`
	Date         time.Time        `json:"date"`
	Payer        ParticipantRef   `json:"payer"`
	Distribution DistributionMode `json:"distribution"`
	Shares       []ExpenseShare   `json:"shares,omitempty"`
}

// ExpenseShare is one participant's owed portion of an expense. The sum of
// shares is not required to equal the expense amount.
type ExpenseShare struct {
	ShareID     string          `json:"shareID"`
	ExpenseID   string          `json:"expenseID"`
	Participant ParticipantRef  `json:"participant"`
	ShareValue  decimal.Decimal `json:"shareValue"`
}
