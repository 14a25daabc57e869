// ABOUTME: Expense CRUD and aggregation for relational storage.
// ABOUTME: Implements Repository methods for the expenses table.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/lifeos/internal/models"
)

const expenseColumns = `id, amount, category, description, transaction_date, created_at`

// CreateExpense stores a new expense in the database.
func (d *DB) CreateExpense(ctx context.Context, e *models.Expense) error {
	return d.createExpense(ctx, d.db, e)
}

func (d *DB) createExpense(ctx context.Context, q queryer, e *models.Expense) error {
	query := `
		INSERT INTO expenses (id, amount, category, description, transaction_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := q.ExecContext(ctx, d.rebind(query),
		e.ID.String(),
		e.Amount,
		e.Category,
		e.Description,
		e.TransactionDate.String(),
		formatTimestamp(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID.
func (d *DB) GetExpense(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = ?`
	e, err := scanExpense(d.db.QueryRowContext(ctx, d.rebind(query), id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("expense %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// ListExpenses retrieves expenses matching the filter, oldest first.
func (d *DB) ListExpenses(ctx context.Context, filter ExpenseFilter) ([]*models.Expense, error) {
	conds, args := filter.DateRange.conditions("transaction_date", nil, nil)
	if filter.Category != "" {
		conds = append(conds, d.lower("category")+` LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(strings.ToLower(filter.Category))+"%")
	}

	query := `SELECT ` + expenseColumns + ` FROM expenses` + whereClause(conds) +
		` ORDER BY transaction_date ASC, created_at ASC, id ASC`

	rows, err := d.db.QueryContext(ctx, d.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("list expenses: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// DeleteExpense removes an expense by ID.
func (d *DB) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	result, err := d.db.ExecContext(ctx, d.rebind("DELETE FROM expenses WHERE id = ?"), id.String())
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", id, ErrNotFound)
	}

	return nil
}

// SumExpensesByCategory totals amounts per category. Categories without
// matching rows are absent from the result.
func (d *DB) SumExpensesByCategory(ctx context.Context, r DateRange) (map[string]float64, error) {
	conds, args := r.conditions("transaction_date", nil, nil)
	query := `SELECT category, SUM(amount) FROM expenses` + whereClause(conds) + ` GROUP BY category`

	rows, err := d.db.QueryContext(ctx, d.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("sum expenses: %w", err)
	}
	defer rows.Close()

	summary := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("scan expense sum: %w", err)
		}
		summary[category] = total
	}
	return summary, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	var e models.Expense
	var description sql.NullString
	var createdAt timestamp

	err := row.Scan(&e.ID, &e.Amount, &e.Category, &description, &e.TransactionDate, &createdAt)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		e.Description = &description.String
	}
	e.CreatedAt = createdAt.t

	return &e, nil
}

// conditions appends inclusive bounds on column for the non-zero ends of r.
func (r DateRange) conditions(column string, conds []string, args []any) ([]string, []any) {
	if !r.From.IsZero() {
		conds = append(conds, column+" >= ?")
		args = append(args, r.From.String())
	}
	if !r.To.IsZero() {
		conds = append(conds, column+" <= ?")
		args = append(args, r.To.String())
	}
	return conds, args
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
