package transaction

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/grana/grana/internal/money"
	log "github.com/sirupsen/logrus"
)

// maxRows caps every listing query so an unbounded period can not blow up a
// single response.
const maxRows = 1000

type Repo interface {
	Store(ctx context.Context, tx Transaction) error
	Find(ctx context.Context, filter Filter) ([]Transaction, error)
	// Delete returns the removed transaction, or nil when no row matched.
	Delete(ctx context.Context, id string) (*Transaction, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, tx Transaction) error {
	query := `INSERT INTO transactions (id, kind, amount, description, timestamp, month, year)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		string(tx.Kind),
		int64(tx.Amount),
		tx.Description,
		tx.Timestamp.Format(time.RFC3339Nano),
		tx.Month,
		tx.Year,
	)
	if err != nil {
		err := fmt.Errorf("could not store transaction: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) Find(ctx context.Context, filter Filter) ([]Transaction, error) {
	query := "SELECT id, kind, amount, description, timestamp, month, year FROM transactions"
	var args []any
	if filter.Year != 0 && filter.Month != 0 {
		query += " WHERE month = ? AND year = ?"
		args = append(args, filter.Month, filter.Year)
	} else if filter.Year != 0 {
		query += " WHERE year = ?"
		args = append(args, filter.Year)
	}
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT %d", maxRows)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		var tx Transaction
		var kind string
		var amount int64
		var timestamp string
		if err := rows.Scan(&tx.ID, &kind, &amount, &tx.Description, &timestamp, &tx.Month, &tx.Year); err != nil {
			err := fmt.Errorf("could not scan transaction: %w", err)
			log.Error(err)
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			err := fmt.Errorf("could not parse transaction timestamp: %w", err)
			log.Error(err)
			return nil, err
		}
		tx.Kind = Kind(kind)
		tx.Amount = money.Money(amount)
		tx.Timestamp = ts
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return transactions, nil
}

func (r *RepoImpl) Delete(ctx context.Context, id string) (*Transaction, error) {
	query := "DELETE FROM transactions WHERE id = ? RETURNING id, kind, amount, description, timestamp, month, year"
	row := r.db.QueryRowContext(ctx, query, id)

	var tx Transaction
	var kind string
	var amount int64
	var timestamp string
	if err := row.Scan(&tx.ID, &kind, &amount, &tx.Description, &timestamp, &tx.Month, &tx.Year); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		err := fmt.Errorf("could not delete transaction: %w", err)
		log.Error(err)
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		err := fmt.Errorf("could not parse transaction timestamp: %w", err)
		log.Error(err)
		return nil, err
	}
	tx.Kind = Kind(kind)
	tx.Amount = money.Money(amount)
	tx.Timestamp = ts
	return &tx, nil
}
