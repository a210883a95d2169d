package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/repository"
)

func TestFarmRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewFarmRepository()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateFarm(ctx, domain.NewFarmState("p1", "alice", now)))

	st, err := repo.GetFarm(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "alice", st.Username)

	// Reads hand out copies, not aliases.
	st.Balance = 999
	again, err := repo.GetFarm(ctx, "p1")
	require.NoError(t, err)
	assert.EqualValues(t, domain.InitialBalance, again.Balance)
}

func TestFarmRepositoryUnknownPlayer(t *testing.T) {
	ctx := context.Background()
	repo := NewFarmRepository()

	_, err := repo.GetFarm(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.ErrorIs(t, repo.DeleteFarm(ctx, "ghost"), domain.ErrPlayerNotFound)
}

func TestFarmTxCommitPersistsChanges(t *testing.T) {
	ctx := context.Background()
	repo := NewFarmRepository()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateFarm(ctx, domain.NewFarmState("p1", "alice", now)))

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	st, err := tx.GetFarmForUpdate(ctx, "p1")
	require.NoError(t, err)
	st.CreditBalance(5)
	require.NoError(t, tx.SaveFarm(ctx, st))
	require.NoError(t, tx.Commit(ctx))

	saved, err := repo.GetFarm(ctx, "p1")
	require.NoError(t, err)
	assert.EqualValues(t, domain.InitialBalance+5, saved.Balance)
}

func TestFarmTxRollbackDiscardsChanges(t *testing.T) {
	ctx := context.Background()
	repo := NewFarmRepository()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateFarm(ctx, domain.NewFarmState("p1", "alice", now)))

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	st, err := tx.GetFarmForUpdate(ctx, "p1")
	require.NoError(t, err)
	st.CreditBalance(5)
	require.NoError(t, tx.SaveFarm(ctx, st))
	repository.SafeRollback(ctx, tx)

	saved, err := repo.GetFarm(ctx, "p1")
	require.NoError(t, err)
	assert.EqualValues(t, domain.InitialBalance, saved.Balance)

	// Double rollback reports the closed tx.
	assert.ErrorIs(t, tx.Rollback(ctx), domain.ErrTxClosed)
}
