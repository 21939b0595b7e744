package alert

import (
	"context"
	"sort"
)

type StubRepo struct {
	data map[string]AlertConfig
}

func NewStubRepo() *StubRepo {
	return &StubRepo{data: map[string]AlertConfig{}}
}

func (s *StubRepo) Store(ctx context.Context, config AlertConfig) error {
	s.data[config.ID] = config
	return nil
}

func (s *StubRepo) FindAll(ctx context.Context) ([]AlertConfig, error) {
	configs := make([]AlertConfig, 0, len(s.data))
	for _, config := range s.data {
		configs = append(configs, config)
	}
	sort.Slice(configs, func(i, j int) bool {
		if configs[i].Year != configs[j].Year {
			return configs[i].Year < configs[j].Year
		}
		return configs[i].Month < configs[j].Month
	})
	return configs, nil
}

func (s *StubRepo) FindActiveForPeriod(ctx context.Context, month, year int) (*AlertConfig, error) {
	for _, config := range s.data {
		if config.Month == month && config.Year == year && config.Active {
			return &config, nil
		}
	}
	return nil, nil
}

func (s *StubRepo) DeleteForPeriod(ctx context.Context, month, year int) (int, error) {
	removed := 0
	for id, config := range s.data {
		if config.Month == month && config.Year == year {
			delete(s.data, id)
			removed++
		}
	}
	return removed, nil
}

func (s *StubRepo) Cleanup() {
	s.data = map[string]AlertConfig{}
}
