package alert

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/grana/grana/internal/money"
	log "github.com/sirupsen/logrus"
)

const maxRows = 1000

type Repo interface {
	Store(ctx context.Context, config AlertConfig) error
	FindAll(ctx context.Context) ([]AlertConfig, error)
	// FindActiveForPeriod returns the active config for the period, or nil
	// when none exists.
	FindActiveForPeriod(ctx context.Context, month, year int) (*AlertConfig, error)
	// DeleteForPeriod removes every config for the period and returns the
	// number of removed rows.
	DeleteForPeriod(ctx context.Context, month, year int) (int, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, config AlertConfig) error {
	query := `INSERT INTO alerts (id, monthly_limit, month, year, active) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		config.ID,
		int64(config.MonthlyLimit),
		config.Month,
		config.Year,
		config.Active,
	)
	if err != nil {
		err := fmt.Errorf("could not store alert config: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) FindAll(ctx context.Context) ([]AlertConfig, error) {
	query := fmt.Sprintf("SELECT id, monthly_limit, month, year, active FROM alerts ORDER BY year, month LIMIT %d", maxRows)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query alert configs: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var configs []AlertConfig
	for rows.Next() {
		var config AlertConfig
		var limit int64
		if err := rows.Scan(&config.ID, &limit, &config.Month, &config.Year, &config.Active); err != nil {
			err := fmt.Errorf("could not scan alert config: %w", err)
			log.Error(err)
			return nil, err
		}
		config.MonthlyLimit = money.Money(limit)
		configs = append(configs, config)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return configs, nil
}

func (r *RepoImpl) FindActiveForPeriod(ctx context.Context, month, year int) (*AlertConfig, error) {
	query := "SELECT id, monthly_limit, month, year, active FROM alerts WHERE month = ? AND year = ? AND active = 1"
	row := r.db.QueryRowContext(ctx, query, month, year)

	var config AlertConfig
	var limit int64
	if err := row.Scan(&config.ID, &limit, &config.Month, &config.Year, &config.Active); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		err := fmt.Errorf("could not scan alert config: %w", err)
		log.Error(err)
		return nil, err
	}
	config.MonthlyLimit = money.Money(limit)
	return &config, nil
}

func (r *RepoImpl) DeleteForPeriod(ctx context.Context, month, year int) (int, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM alerts WHERE month = ? AND year = ?", month, year)
	if err != nil {
		err := fmt.Errorf("could not delete alert configs: %w", err)
		log.Error(err)
		return 0, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(rowsAffected), nil
}
