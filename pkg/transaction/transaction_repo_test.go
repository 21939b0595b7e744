package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/grana/grana/internal/money"
	"github.com/grana/grana/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (context.Context, *RepoImpl) {
	db := test_utils.SetupTestDB(t)
	return context.Background(), NewRepo(db)
}

func testTransaction(kind Kind, amount int64, ts time.Time) Transaction {
	return Transaction{
		ID:          "tx-" + ts.Format("20060102150405"),
		Kind:        kind,
		Amount:      money.Money(amount),
		Description: "test",
		Timestamp:   ts,
		Month:       int(ts.Month()),
		Year:        ts.Year(),
	}
}

func TestRepoImpl_StoreAndFind(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	jan := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Store(ctx, testTransaction(KindIncome, 50000, jan)))
	require.NoError(t, repo.Store(ctx, testTransaction(KindExpense, 12000, feb)))

	// when
	all, err := repo.Find(ctx, Filter{})

	// then
	require.NoError(t, err)
	assert.Len(t, all, 2)

	january, err := repo.Find(ctx, Filter{Month: 1, Year: 2024})
	require.NoError(t, err)
	require.Len(t, january, 1)
	assert.Equal(t, KindIncome, january[0].Kind)
	assert.Equal(t, jan, january[0].Timestamp)
}

func TestRepoImpl_Find_OrdersByTimestampDescending(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	older := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Store(ctx, testTransaction(KindExpense, 100, older)))
	require.NoError(t, repo.Store(ctx, testTransaction(KindExpense, 200, newer)))

	// when
	result, err := repo.Find(ctx, Filter{Month: 1, Year: 2024})

	// then
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, newer, result[0].Timestamp)
	assert.Equal(t, older, result[1].Timestamp)
}

func TestRepoImpl_Delete(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	tx := testTransaction(KindIncome, 100, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Store(ctx, tx))

	// when
	removed, err := repo.Delete(ctx, tx.ID)

	// then the removed row comes back with its period
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, tx.ID, removed.ID)
	assert.Equal(t, 1, removed.Month)
	assert.Equal(t, 2024, removed.Year)

	removed, err = repo.Delete(ctx, tx.ID)
	require.NoError(t, err)
	assert.Nil(t, removed)
}
