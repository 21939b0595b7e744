package fixedexpense

import (
	"context"
	"sort"
)

type StubRepo struct {
	data map[string]FixedExpense
}

func NewStubRepo() *StubRepo {
	return &StubRepo{data: map[string]FixedExpense{}}
}

func (s *StubRepo) Store(ctx context.Context, expense FixedExpense) error {
	s.data[expense.ID] = expense
	return nil
}

func (s *StubRepo) Find(ctx context.Context, filter Filter) ([]FixedExpense, error) {
	expenses := make([]FixedExpense, 0, len(s.data))
	for _, expense := range s.data {
		if filter.Year != 0 && filter.Month != 0 {
			if expense.Month != filter.Month || expense.Year != filter.Year {
				continue
			}
		} else if filter.Year != 0 && expense.Year != filter.Year {
			continue
		}
		expenses = append(expenses, expense)
	}
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].DueDay < expenses[j].DueDay
	})
	return expenses, nil
}

func (s *StubRepo) SetPaid(ctx context.Context, id string, paid bool) (*FixedExpense, error) {
	expense, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	expense.Paid = paid
	s.data[id] = expense
	return &expense, nil
}

func (s *StubRepo) Delete(ctx context.Context, id string) (*FixedExpense, error) {
	expense, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	delete(s.data, id)
	return &expense, nil
}

func (s *StubRepo) Cleanup() {
	s.data = map[string]FixedExpense{}
}
