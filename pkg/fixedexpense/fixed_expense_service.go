package fixedexpense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grana/grana/internal/event_bus"
	"github.com/grana/grana/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Create(ctx context.Context, expense FixedExpense) (FixedExpense, error)
	List(ctx context.Context, filter Filter) ([]FixedExpense, error)
	SetPaid(ctx context.Context, id string, paid bool) error
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo  Repo
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: utils.SystemClock{}}
}

func (s *ServiceImpl) Create(ctx context.Context, expense FixedExpense) (FixedExpense, error) {
	if expense.Amount < 0 {
		return FixedExpense{}, ErrNegativeAmount
	}
	if expense.DueDay < 1 || expense.DueDay > 31 {
		return FixedExpense{}, ErrInvalidDueDay
	}
	if expense.Month < 1 || expense.Month > 12 || expense.Year < 1 || expense.Year > 9999 {
		return FixedExpense{}, ErrInvalidPeriod
	}

	expense.ID = uuid.NewString()
	expense.Paid = false
	expense.CreatedAt = s.clock.Now()

	if err := s.repo.Store(ctx, expense); err != nil {
		return FixedExpense{}, err
	}
	log.Debugf("created fixed expense %s for period %d/%d", expense.ID, expense.Month, expense.Year)

	s.publishPeriodChanged(expense.Month, expense.Year)
	return expense, nil
}

func (s *ServiceImpl) List(ctx context.Context, filter Filter) ([]FixedExpense, error) {
	return s.repo.Find(ctx, filter)
}

// SetPaid toggles the paid flag, the only mutable field of a fixed expense.
// The updated row carries the period for the invalidation event.
func (s *ServiceImpl) SetPaid(ctx context.Context, id string, paid bool) error {
	updated, err := s.repo.SetPaid(ctx, id, paid)
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("%w: %s", ErrFixedExpenseNotFound, id)
	}

	s.publishPeriodChanged(updated.Month, updated.Year)
	return nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return fmt.Errorf("%w: %s", ErrFixedExpenseNotFound, id)
	}

	s.publishPeriodChanged(deleted.Month, deleted.Year)
	return nil
}

func (s *ServiceImpl) publishPeriodChanged(month, year int) {
	s.bus.Publish(event_bus.NewEvent(event_bus.PeriodChangedEvent, event_bus.PeriodChanged{
		Month: month,
		Year:  year,
	}))
}
