package services

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
	"github.com/gathr-app/gathr_backend/internal/dto"
)

// ExpenseReaderSvc defines read operations for the expense ledger
type ExpenseReaderSvc interface {
	// GetExpense retrieves an expense with its shares and resolved names.
	GetExpense(ctx context.Context, eventID, expenseID string) (*dto.ExpenseDetailResponse, error)

	// ListExpenses lists the event's expenses with resolved payer names.
	ListExpenses(ctx context.Context, eventID string) (*dto.ListExpensesResponse, error)
}

// ExpenseWriterSvc defines write operations for the expense ledger. Every
// mutation is followed by a settlement regeneration; the mutation succeeds
// only if the regeneration does.
type ExpenseWriterSvc interface {
	// CreateExpense records an expense paid by the given participant, splits
	// it over the listed participants and regenerates settlements.
	CreateExpense(ctx context.Context, eventID string, payer domain.ParticipantRef, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpense rewrites an expense and its share set, then regenerates
	// settlements.
	UpdateExpense(ctx context.Context, eventID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense, then regenerates settlements.
	DeleteExpense(ctx context.Context, eventID, expenseID string) error
}

// ExpenseSvcFacade combines all expense service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
