package transaction

import (
	"context"
	"sort"
)

type StubRepo struct {
	data map[string]Transaction
}

func NewStubRepo() *StubRepo {
	return &StubRepo{data: map[string]Transaction{}}
}

func (s *StubRepo) Store(ctx context.Context, tx Transaction) error {
	s.data[tx.ID] = tx
	return nil
}

func (s *StubRepo) Find(ctx context.Context, filter Filter) ([]Transaction, error) {
	transactions := make([]Transaction, 0, len(s.data))
	for _, tx := range s.data {
		if filter.Year != 0 && filter.Month != 0 {
			if tx.Month != filter.Month || tx.Year != filter.Year {
				continue
			}
		} else if filter.Year != 0 && tx.Year != filter.Year {
			continue
		}
		transactions = append(transactions, tx)
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.After(transactions[j].Timestamp)
	})
	return transactions, nil
}

func (s *StubRepo) Delete(ctx context.Context, id string) (*Transaction, error) {
	tx, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	delete(s.data, id)
	return &tx, nil
}

func (s *StubRepo) Cleanup() {
	s.data = map[string]Transaction{}
}
