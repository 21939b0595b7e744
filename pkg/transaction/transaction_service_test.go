package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/grana/grana/internal/event_bus"
	"github.com/grana/grana/internal/money"
	"github.com/grana/grana/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var repoStub = NewStubRepo()

var service *ServiceImpl

func setup(t *testing.T) func() {
	service = NewService(repoStub, event_bus.NewEventBus())
	service.clock = &utils.MockClock{FixedNow: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should derive month and year from the given timestamp", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		timestamp := time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)

		// when
		created, err := service.Create(ctx, Transaction{
			Kind:      KindExpense,
			Amount:    money.FromFloat(12.34),
			Timestamp: timestamp,
		})

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 1, created.Month)
		assert.Equal(t, 2024, created.Year)
		assert.Equal(t, timestamp, created.Timestamp)
	})

	t.Run("should default the timestamp to the current time", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Transaction{Kind: KindIncome, Amount: 100})

		// then
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), created.Timestamp)
		assert.Equal(t, 3, created.Month)
		assert.Equal(t, 2024, created.Year)
	})

	t.Run("should reject an unknown kind", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Transaction{Kind: "transfer", Amount: 100})

		// then
		assert.ErrorIs(t, err, ErrInvalidKind)
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Transaction{Kind: KindExpense, Amount: -1})

		// then
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})
}

func TestServiceImpl_List(t *testing.T) {
	t.Run("should filter by month and year", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, Transaction{
			Kind: KindIncome, Amount: 100,
			Timestamp: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		_, err = service.Create(ctx, Transaction{
			Kind: KindIncome, Amount: 200,
			Timestamp: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		// when
		result, err := service.List(ctx, Filter{Month: 1, Year: 2024})

		// then
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, money.Money(100), result[0].Amount)
	})

	t.Run("should filter by year only", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, Transaction{
			Kind: KindIncome, Amount: 100,
			Timestamp: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		_, err = service.Create(ctx, Transaction{
			Kind: KindIncome, Amount: 200,
			Timestamp: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		// when
		result, err := service.List(ctx, Filter{Year: 2023})

		// then
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 2023, result[0].Year)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	t.Run("should delete an existing transaction", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, Transaction{Kind: KindExpense, Amount: 100})
		require.NoError(t, err)

		// when
		err = service.Delete(ctx, created.ID)

		// then
		assert.NoError(t, err)
		remaining, err := service.List(ctx, Filter{})
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("should announce the removed transaction's period", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		localBus := event_bus.NewEventBus()
		svc := NewService(repoStub, localBus)
		created, err := svc.Create(ctx, Transaction{
			Kind: KindIncome, Amount: 100,
			Timestamp: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		var changed []event_bus.PeriodChanged
		localBus.Subscribe(event_bus.PeriodChangedEvent, func(e event_bus.Event) error {
			if data, ok := e.Data.(event_bus.PeriodChanged); ok {
				changed = append(changed, data)
			}
			return nil
		})

		// when
		err = svc.Delete(ctx, created.ID)

		// then
		require.NoError(t, err)
		require.Len(t, changed, 1)
		assert.Equal(t, event_bus.PeriodChanged{Month: 1, Year: 2024}, changed[0])
	})

	t.Run("should fail with not found and leave the store unchanged", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, Transaction{Kind: KindExpense, Amount: 100})
		require.NoError(t, err)

		// when
		err = service.Delete(ctx, "unknown-id")

		// then
		assert.ErrorIs(t, err, ErrTransactionNotFound)
		remaining, err := service.List(ctx, Filter{})
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})
}
