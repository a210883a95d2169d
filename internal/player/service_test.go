package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkorzh/farmbox/internal/database/memory"
	"github.com/dmkorzh/farmbox/internal/domain"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type testHarness struct {
	svc  *service
	repo *memory.FarmRepository
	now  time.Time
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	h := &testHarness{repo: memory.NewFarmRepository(), now: testStart}
	h.svc = &service{
		repo:  h.repo,
		cache: newSnapshotCache(snapshotCacheSize, snapshotCacheTTL),
		now:   func() time.Time { return h.now },
	}
	return h
}

func TestRegisterCreatesStartingFarm(t *testing.T) {
	h := newHarness(t)

	resp, err := h.svc.Register(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEmpty(t, resp.PlayerID)

	snap := resp.Snapshot
	require.NotNil(t, snap)
	assert.Equal(t, "alice", snap.Username)
	assert.EqualValues(t, domain.InitialBalance, snap.Balance)
	assert.Len(t, snap.Slots, domain.InitialSlots)
	assert.Equal(t, domain.InitialGreenSeeds, snap.Resources[domain.ResourceGreenSeed])
	assert.Equal(t, domain.WaterMax, snap.Water.Current)
	assert.Len(t, snap.Workers, domain.InitialWorkers)
	assert.Equal(t, domain.AdViewDailyLimit, snap.AdViewsLeft)
}

func TestRegisterAssignsDistinctIDs(t *testing.T) {
	h := newHarness(t)

	a, err := h.svc.Register(context.Background(), "alice")
	require.NoError(t, err)
	b, err := h.svc.Register(context.Background(), "bob")
	require.NoError(t, err)
	assert.NotEqual(t, a.PlayerID, b.PlayerID)
}

func TestGetSnapshotProjectsWithoutPersisting(t *testing.T) {
	h := newHarness(t)

	resp, err := h.svc.Register(context.Background(), "alice")
	require.NoError(t, err)
	id := resp.PlayerID

	// Start a plant directly in the store.
	ctx := context.Background()
	tx, err := h.repo.BeginTx(ctx)
	require.NoError(t, err)
	st, err := tx.GetFarmForUpdate(ctx, id)
	require.NoError(t, err)
	st.Slots[0].State = domain.SlotGrowing
	st.Slots[0].Plant = domain.PlantGreen
	st.Slots[0].PlantedAt = testStart
	st.Slots[0].GrowthDuration = time.Minute
	require.NoError(t, tx.SaveFarm(ctx, st))
	require.NoError(t, tx.Commit(ctx))

	// Past the growth duration the projection shows Ready, but the stored
	// record is untouched until a command runs.
	h.now = testStart.Add(2 * time.Minute)
	snap, err := h.svc.GetSnapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotReady, snap.Slots[0].State)
	assert.EqualValues(t, 0, snap.Slots[0].RemainingSeconds)

	stored, err := h.repo.GetFarm(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotGrowing, stored.Slots[0].State)
}

func TestGetSnapshotUnknownPlayer(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.GetSnapshot(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestGetSnapshotServesCachedCopy(t *testing.T) {
	h := newHarness(t)

	resp, err := h.svc.Register(context.Background(), "alice")
	require.NoError(t, err)

	first, err := h.svc.GetSnapshot(context.Background(), resp.PlayerID)
	require.NoError(t, err)

	// A second read within the TTL returns the same projection.
	second, err := h.svc.GetSnapshot(context.Background(), resp.PlayerID)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestResetKeepsIdentityDropsProgress(t *testing.T) {
	h := newHarness(t)

	resp, err := h.svc.Register(context.Background(), "alice")
	require.NoError(t, err)
	id := resp.PlayerID

	ctx := context.Background()
	tx, err := h.repo.BeginTx(ctx)
	require.NoError(t, err)
	st, err := tx.GetFarmForUpdate(ctx, id)
	require.NoError(t, err)
	st.Balance = 5000
	st.Credit(domain.ResourceGoldFruit, 10)
	require.NoError(t, tx.SaveFarm(ctx, st))
	require.NoError(t, tx.Commit(ctx))

	snap, err := h.svc.Reset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, snap.PlayerID)
	assert.Equal(t, "alice", snap.Username)
	assert.EqualValues(t, domain.InitialBalance, snap.Balance)
	assert.Zero(t, snap.Resources[domain.ResourceGoldFruit])
}

func TestResetUnknownPlayer(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Reset(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
