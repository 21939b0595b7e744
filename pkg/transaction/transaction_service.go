package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grana/grana/internal/event_bus"
	"github.com/grana/grana/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Create(ctx context.Context, tx Transaction) (Transaction, error)
	List(ctx context.Context, filter Filter) ([]Transaction, error)
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

// Create stores a new transaction. The timestamp defaults to the current time
// when the caller does not supply one; month and year are derived from it here
// and never recomputed afterwards.
func (s *ServiceImpl) Create(ctx context.Context, tx Transaction) (Transaction, error) {
	if !tx.Kind.IsValid() {
		return Transaction{}, ErrInvalidKind
	}
	if tx.Amount < 0 {
		return Transaction{}, ErrNegativeAmount
	}

	tx.ID = uuid.NewString()
	if tx.Timestamp.IsZero() {
		tx.Timestamp = s.clock.Now()
	}
	tx.Month = int(tx.Timestamp.Month())
	tx.Year = tx.Timestamp.Year()

	if err := s.repo.Store(ctx, tx); err != nil {
		return Transaction{}, err
	}
	log.Debugf("created transaction %s (%s) for period %d/%d", tx.ID, tx.Kind, tx.Month, tx.Year)

	s.bus.Publish(event_bus.NewEvent(event_bus.PeriodChangedEvent, event_bus.PeriodChanged{
		Month: tx.Month,
		Year:  tx.Year,
	}))

	return tx, nil
}

func (s *ServiceImpl) List(ctx context.Context, filter Filter) ([]Transaction, error) {
	return s.repo.Find(ctx, filter)
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	// The removed row carries the period for the invalidation event.
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}

	s.bus.Publish(event_bus.NewEvent(event_bus.PeriodChangedEvent, event_bus.PeriodChanged{
		Month: deleted.Month,
		Year:  deleted.Year,
	}))
	return nil
}
