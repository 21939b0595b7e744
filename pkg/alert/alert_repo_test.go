package alert

import (
	"context"
	"testing"

	"github.com/grana/grana/internal/money"
	"github.com/grana/grana/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (context.Context, *RepoImpl) {
	db := test_utils.SetupTestDB(t)
	return context.Background(), NewRepo(db)
}

func testAlertConfig(id string, month, year int) AlertConfig {
	return AlertConfig{
		ID:           id,
		MonthlyLimit: money.Money(200000),
		Month:        month,
		Year:         year,
		Active:       true,
	}
}

func TestRepoImpl_StoreAndFindAll(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	require.NoError(t, repo.Store(ctx, testAlertConfig("ac-1", 3, 2024)))
	require.NoError(t, repo.Store(ctx, testAlertConfig("ac-2", 1, 2024)))

	// when
	configs, err := repo.FindAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, configs, 2)
	// ordered by period
	assert.Equal(t, "ac-2", configs[0].ID)
	assert.Equal(t, "ac-1", configs[1].ID)
	assert.Equal(t, money.Money(200000), configs[0].MonthlyLimit)
}

func TestRepoImpl_FindActiveForPeriod(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	require.NoError(t, repo.Store(ctx, testAlertConfig("ac-1", 1, 2024)))

	// when
	config, err := repo.FindActiveForPeriod(ctx, 1, 2024)

	// then
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "ac-1", config.ID)

	config, err = repo.FindActiveForPeriod(ctx, 2, 2024)
	require.NoError(t, err)
	assert.Nil(t, config)
}

func TestRepoImpl_DeleteForPeriod(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	require.NoError(t, repo.Store(ctx, testAlertConfig("ac-1", 1, 2024)))
	require.NoError(t, repo.Store(ctx, testAlertConfig("ac-2", 2, 2024)))

	// when
	removed, err := repo.DeleteForPeriod(ctx, 1, 2024)

	// then
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	configs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "ac-2", configs[0].ID)

	removed, err = repo.DeleteForPeriod(ctx, 1, 2024)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}
