package report

import (
	"context"
	"sync"

	"github.com/grana/grana/internal/event_bus"
	"github.com/grana/grana/pkg/alert"
	"github.com/grana/grana/pkg/fixedexpense"
	"github.com/grana/grana/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	MonthlyReport(ctx context.Context, month, year int) (MonthlyReport, error)
	YearSummary(ctx context.Context, year int) ([]MonthSummary, error)
}

type period struct {
	month int
	year  int
}

type ServiceImpl struct {
	transactionRepo  transaction.Repo
	fixedExpenseRepo fixedexpense.Repo
	alertRepo        alert.Repo

	mu    sync.RWMutex
	cache map[period]MonthlyReport
	gens  map[period]uint64
}

// NewService builds the aggregation service. It subscribes to the event bus so
// that every write touching a period drops that period's cached report before
// the write call returns.
func NewService(
	transactionRepo transaction.Repo,
	fixedExpenseRepo fixedexpense.Repo,
	alertRepo alert.Repo,
	bus *event_bus.EventBus,
) *ServiceImpl {
	s := &ServiceImpl{
		transactionRepo:  transactionRepo,
		fixedExpenseRepo: fixedExpenseRepo,
		alertRepo:        alertRepo,
		cache:            map[period]MonthlyReport{},
		gens:             map[period]uint64{},
	}
	bus.Subscribe(event_bus.PeriodChangedEvent, func(e event_bus.Event) error {
		changed, ok := e.Data.(event_bus.PeriodChanged)
		if !ok {
			return nil
		}
		s.invalidate(changed.Month, changed.Year)
		return nil
	})
	return s
}

// MonthlyReport aggregates the period's transactions and fixed expenses and
// checks them against the active alert config. An empty period yields a report
// with zero totals, not an error; a failed fetch propagates instead of
// producing a partial report.
func (s *ServiceImpl) MonthlyReport(ctx context.Context, month, year int) (MonthlyReport, error) {
	if err := validatePeriod(month, year); err != nil {
		return MonthlyReport{}, err
	}

	key := period{month, year}

	s.mu.RLock()
	cached, ok := s.cache[key]
	gen := s.gens[key]
	s.mu.RUnlock()
	if ok {
		log.Tracef("serving cached report for period %d/%d", month, year)
		return cached, nil
	}

	report, err := s.compute(ctx, month, year)
	if err != nil {
		return MonthlyReport{}, err
	}

	// A write may have invalidated the period while compute was reading the
	// repositories; caching that snapshot would keep it stale until the next
	// write. Store it only if the generation is unchanged.
	s.mu.Lock()
	if s.gens[key] == gen {
		s.cache[key] = report
	}
	s.mu.Unlock()

	return report, nil
}

func (s *ServiceImpl) compute(ctx context.Context, month, year int) (MonthlyReport, error) {
	transactions, err := s.transactionRepo.Find(ctx, transaction.Filter{Month: month, Year: year})
	if err != nil {
		return MonthlyReport{}, err
	}

	report := MonthlyReport{
		Month:        month,
		Year:         year,
		Transactions: transactions,
	}
	for _, tx := range transactions {
		switch tx.Kind {
		case transaction.KindIncome:
			report.TotalIncome += tx.Amount
		case transaction.KindExpense:
			report.TotalVariableExpenses += tx.Amount
		}
	}

	expenses, err := s.fixedExpenseRepo.Find(ctx, fixedexpense.Filter{Month: month, Year: year})
	if err != nil {
		return MonthlyReport{}, err
	}
	report.FixedExpenses = expenses
	for _, expense := range expenses {
		report.TotalFixedExpenses += expense.Amount
		if expense.Paid {
			report.FixedPaidTotal += expense.Amount
		} else {
			report.FixedPendingTotal += expense.Amount
		}
	}

	report.Balance = report.TotalIncome - report.CombinedExpenses()

	config, err := s.alertRepo.FindActiveForPeriod(ctx, month, year)
	if err != nil {
		return MonthlyReport{}, err
	}
	if config != nil {
		limit := config.MonthlyLimit
		report.ConfiguredLimit = &limit
		report.LimitExceeded = report.CombinedExpenses() > limit
	}

	return report, nil
}

// YearSummary returns exactly 12 entries, months 1..12 in order. Months with
// no data yield zero-valued summaries rather than being omitted.
func (s *ServiceImpl) YearSummary(ctx context.Context, year int) ([]MonthSummary, error) {
	if err := validatePeriod(1, year); err != nil {
		return nil, err
	}

	summaries := make([]MonthSummary, 0, 12)
	for month := 1; month <= 12; month++ {
		report, err := s.MonthlyReport(ctx, month, year)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, MonthSummary{
			Month:            month,
			Income:           report.TotalIncome,
			CombinedExpenses: report.CombinedExpenses(),
			VariableExpenses: report.TotalVariableExpenses,
			FixedExpenses:    report.TotalFixedExpenses,
			Balance:          report.Balance,
		})
	}
	return summaries, nil
}

func (s *ServiceImpl) invalidate(month, year int) {
	s.mu.Lock()
	delete(s.cache, period{month, year})
	s.gens[period{month, year}]++
	s.mu.Unlock()
	log.Tracef("invalidated cached report for period %d/%d", month, year)
}
