package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portsrepo "github.com/gathr-app/gathr_backend/internal/core/ports/repositories"
	"github.com/gathr-app/gathr_backend/internal/models"
	"github.com/gathr-app/gathr_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense ledger data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, event_id, amount, description, expense_date, payer_kind, payer_id, distribution`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.EventID,
		&m.Amount,
		&m.Description,
		&m.Date,
		&m.PayerKind,
		&m.PayerID,
		&m.Distribution,
	)
	return m, err
}

// FindExpenseByID retrieves an expense with its shares.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, eventID, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE event_id = $1 AND expense_id = $2;
	`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, eventID, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	expense := mapping.ToDomainExpense(m)
	shares, err := r.listShares(ctx, []string{expenseID})
	if err != nil {
		return nil, err
	}
	expense.Shares = shares[expenseID]
	return &expense, nil
}

// ListExpensesByEvent retrieves all expenses of an event with their shares, in
// expense date order.
func (r *PgxExpenseRepository) ListExpensesByEvent(ctx context.Context, eventID string) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE event_id = $1
		ORDER BY expense_date, expense_id;
	`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	ids := make([]string, len(modelExpenses))
	expenses := make([]domain.Expense, len(modelExpenses))
	for i, m := range modelExpenses {
		ids[i] = m.ExpenseID
		expenses[i] = mapping.ToDomainExpense(m)
	}

	shares, err := r.listShares(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range expenses {
		expenses[i].Shares = shares[expenses[i].ExpenseID]
	}
	return expenses, nil
}

// listShares loads the shares of the given expenses, keyed by expense ID.
func (r *PgxExpenseRepository) listShares(ctx context.Context, expenseIDs []string) (map[string][]domain.ExpenseShare, error) {
	out := make(map[string][]domain.ExpenseShare, len(expenseIDs))
	if len(expenseIDs) == 0 {
		return out, nil
	}

	query := `
		SELECT share_id, expense_id, participant_kind, participant_id, share_value
		FROM expense_shares
		WHERE expense_id = ANY($1)
		ORDER BY expense_id, share_id;
	`
	rows, err := r.Pool.Query(ctx, query, expenseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense shares: %w", err)
	}
	defer rows.Close()

	modelShares, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExpenseShare, error) {
		var m models.ExpenseShare
		err := row.Scan(&m.ShareID, &m.ExpenseID, &m.ParticipantKind, &m.ParticipantID, &m.ShareValue)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense shares: %w", err)
	}

	for _, m := range modelShares {
		out[m.ExpenseID] = append(out[m.ExpenseID], mapping.ToDomainExpenseShare(m))
	}
	return out, nil
}

// SaveExpense persists an expense and its shares in one transaction.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertExpense := `
		INSERT INTO expenses (expense_id, event_id, amount, description, expense_date, payer_kind, payer_id, distribution)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, insertExpense,
		m.ExpenseID,
		m.EventID,
		m.Amount,
		m.Description,
		m.Date,
		m.PayerKind,
		m.PayerID,
		m.Distribution,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense %s: %w", m.ExpenseID, err)
	}

	if err := insertShares(ctx, tx, expense.Shares); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateExpense updates an expense and replaces its share set in one
// transaction.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateExpense := `
		UPDATE expenses
		SET amount = $3, description = $4, expense_date = $5, distribution = $6
		WHERE event_id = $1 AND expense_id = $2;
	`
	tag, err := tx.Exec(ctx, updateExpense,
		m.EventID,
		m.ExpenseID,
		m.Amount,
		m.Description,
		m.Date,
		m.Distribution,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM expense_shares WHERE expense_id = $1;`, m.ExpenseID); err != nil {
		return fmt.Errorf("failed to clear shares of expense %s: %w", m.ExpenseID, err)
	}
	if err := insertShares(ctx, tx, expense.Shares); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertShares(ctx context.Context, tx pgx.Tx, shares []domain.ExpenseShare) error {
	if len(shares) == 0 {
		return nil
	}
	insertShare := `
		INSERT INTO expense_shares (share_id, expense_id, participant_kind, participant_id, share_value)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, s := range shares {
		ms := mapping.ToModelExpenseShare(s)
		batch.Queue(insertShare, ms.ShareID, ms.ExpenseID, ms.ParticipantKind, ms.ParticipantID, ms.ShareValue)
	}
	results := tx.SendBatch(ctx, batch)
	for range shares {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert expense share: %w", err)
		}
	}
	return results.Close()
}

// DeleteExpense removes an expense; its shares go with it via cascade.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, eventID, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE event_id = $1 AND expense_id = $2;`, eventID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
