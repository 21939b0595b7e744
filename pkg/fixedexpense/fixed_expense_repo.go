package fixedexpense

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/grana/grana/internal/money"
	log "github.com/sirupsen/logrus"
)

const maxRows = 1000

type Repo interface {
	Store(ctx context.Context, expense FixedExpense) error
	Find(ctx context.Context, filter Filter) ([]FixedExpense, error)
	// SetPaid returns the updated expense, or nil when no row matched.
	SetPaid(ctx context.Context, id string, paid bool) (*FixedExpense, error)
	// Delete returns the removed expense, or nil when no row matched.
	Delete(ctx context.Context, id string) (*FixedExpense, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, expense FixedExpense) error {
	query := `INSERT INTO fixed_expenses (id, name, amount, due_day, paid, month, year, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		expense.ID,
		expense.Name,
		int64(expense.Amount),
		expense.DueDay,
		expense.Paid,
		expense.Month,
		expense.Year,
		expense.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		err := fmt.Errorf("could not store fixed expense: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) Find(ctx context.Context, filter Filter) ([]FixedExpense, error) {
	query := "SELECT id, name, amount, due_day, paid, month, year, created_at FROM fixed_expenses"
	var args []any
	if filter.Year != 0 && filter.Month != 0 {
		query += " WHERE month = ? AND year = ?"
		args = append(args, filter.Month, filter.Year)
	} else if filter.Year != 0 {
		query += " WHERE year = ?"
		args = append(args, filter.Year)
	}
	query += fmt.Sprintf(" ORDER BY due_day LIMIT %d", maxRows)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query fixed expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var expenses []FixedExpense
	for rows.Next() {
		expense, err := scanFixedExpense(rows.Scan)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		expenses = append(expenses, *expense)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return expenses, nil
}

func (r *RepoImpl) SetPaid(ctx context.Context, id string, paid bool) (*FixedExpense, error) {
	query := `UPDATE fixed_expenses SET paid = ? WHERE id = ?
			  RETURNING id, name, amount, due_day, paid, month, year, created_at`
	row := r.db.QueryRowContext(ctx, query, paid, id)

	expense, err := scanFixedExpense(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Error(err)
		return nil, err
	}
	return expense, nil
}

func (r *RepoImpl) Delete(ctx context.Context, id string) (*FixedExpense, error) {
	query := `DELETE FROM fixed_expenses WHERE id = ?
			  RETURNING id, name, amount, due_day, paid, month, year, created_at`
	row := r.db.QueryRowContext(ctx, query, id)

	expense, err := scanFixedExpense(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Error(err)
		return nil, err
	}
	return expense, nil
}

func scanFixedExpense(scan func(dest ...any) error) (*FixedExpense, error) {
	var expense FixedExpense
	var amount int64
	var createdAt string
	if err := scan(
		&expense.ID,
		&expense.Name,
		&amount,
		&expense.DueDay,
		&expense.Paid,
		&expense.Month,
		&expense.Year,
		&createdAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("could not scan fixed expense: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("could not parse fixed expense creation time: %w", err)
	}
	expense.Amount = money.Money(amount)
	expense.CreatedAt = ts
	return &expense, nil
}
