package alert

import (
	"context"

	"github.com/google/uuid"
	"github.com/grana/grana/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Create(ctx context.Context, config AlertConfig) (AlertConfig, error)
	List(ctx context.Context) ([]AlertConfig, error)
	GetForPeriod(ctx context.Context, month, year int) (*AlertConfig, error)
}

type ServiceImpl struct {
	repo Repo
	bus  *event_bus.EventBus
}

func NewService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

// Create replaces any existing config for the period before inserting the new
// one, so a period never holds more than one active config. The two store
// calls are not atomic; a concurrent reader may briefly observe no config,
// which matches the store's consistency model.
func (s *ServiceImpl) Create(ctx context.Context, config AlertConfig) (AlertConfig, error) {
	if config.Month < 1 || config.Month > 12 || config.Year < 1 || config.Year > 9999 {
		return AlertConfig{}, ErrInvalidPeriod
	}

	config.ID = uuid.NewString()
	config.Active = true

	removed, err := s.repo.DeleteForPeriod(ctx, config.Month, config.Year)
	if err != nil {
		return AlertConfig{}, err
	}
	if removed > 0 {
		log.Debugf("replaced %d alert config(s) for period %d/%d", removed, config.Month, config.Year)
	}

	if err := s.repo.Store(ctx, config); err != nil {
		return AlertConfig{}, err
	}

	s.bus.Publish(event_bus.NewEvent(event_bus.PeriodChangedEvent, event_bus.PeriodChanged{
		Month: config.Month,
		Year:  config.Year,
	}))

	return config, nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]AlertConfig, error) {
	return s.repo.FindAll(ctx)
}

func (s *ServiceImpl) GetForPeriod(ctx context.Context, month, year int) (*AlertConfig, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, ErrInvalidPeriod
	}
	return s.repo.FindActiveForPeriod(ctx, month, year)
}
