package repositories

import (
	"context"

	"github.com/gathr-app/gathr_backend/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense with its shares.
	FindExpenseByID(ctx context.Context, eventID, expenseID string) (*domain.Expense, error)

	// ListExpensesByEvent retrieves all expenses of an event with their shares.
	ListExpensesByEvent(ctx context.Context, eventID string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists an expense and its shares in one transaction.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense updates an expense and replaces its share set in one
	// transaction.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense and its shares.
	DeleteExpense(ctx context.Context, eventID, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
