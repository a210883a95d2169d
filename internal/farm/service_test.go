package farm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkorzh/farmbox/internal/database/memory"
	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/reward"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// testHarness wires a service against the in-memory repository with a
// controllable clock and pinned random draws.
type testHarness struct {
	svc  *service
	repo *memory.FarmRepository
	now  time.Time
}

func newHarness(t *testing.T, draws ...float64) *testHarness {
	t.Helper()
	if len(draws) == 0 {
		draws = []float64{0.5}
	}
	i := 0
	rnd := func() float64 {
		d := draws[i%len(draws)]
		i++
		return d
	}

	h := &testHarness{repo: memory.NewFarmRepository(), now: testStart}
	h.svc = &service{
		repo:     h.repo,
		resolver: reward.NewResolver(rnd),
		rnd:      rnd,
		now:      func() time.Time { return h.now },
	}
	require.NoError(t, h.repo.CreateFarm(context.Background(), domain.NewFarmState("p1", "alice", testStart)))
	return h
}

func (h *testHarness) state(t *testing.T) *domain.FarmState {
	t.Helper()
	st, err := h.repo.GetFarm(context.Background(), "p1")
	require.NoError(t, err)
	return st
}

func TestPlantDebitsSeedAndWater(t *testing.T) {
	h := newHarness(t)

	resp, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.SlotIndex)
	assert.Equal(t, testStart.Add(time.Minute), resp.ReadyAt)
	assert.Equal(t, domain.WaterMax-domain.PlantWaterCost, resp.WaterLeft)

	st := h.state(t)
	assert.Equal(t, domain.InitialGreenSeeds-1, st.ResourceCount(domain.ResourceGreenSeed))
	assert.Equal(t, domain.SlotGrowing, st.Slots[0].State)
	assert.EqualValues(t, 1, st.Stats.PlantsPlanted)
}

func TestPlantOccupiedSlot(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)

	_, err = h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	assert.ErrorIs(t, err, domain.ErrSlotOccupied)
}

func TestPlantWithoutSeeds(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGold)
	assert.ErrorIs(t, err, domain.ErrInsufficientResource)

	// Failed command leaves nothing half-applied.
	st := h.state(t)
	assert.Equal(t, domain.WaterMax, st.Water.Current)
	assert.Equal(t, domain.SlotEmpty, st.Slots[0].State)
}

func TestPlantUnknownSlot(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Plant(context.Background(), "p1", 42, domain.PlantGreen)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestPlantAllStopsAtSeedShortage(t *testing.T) {
	h := newHarness(t)

	resp, err := h.svc.PlantAll(context.Background(), "p1", domain.PlantGreen)
	require.NoError(t, err)

	// Three starting seeds, five slots: only three plantings land.
	assert.Equal(t, domain.InitialGreenSeeds, resp.Planted)
	assert.Equal(t, []int{0, 1, 2}, resp.SlotIndexes)

	st := h.state(t)
	assert.Equal(t, 0, st.ResourceCount(domain.ResourceGreenSeed))
	assert.Equal(t, domain.SlotEmpty, st.Slots[3].State)
}

func TestHarvestBeforeReady(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)

	h.now = testStart.Add(30 * time.Second)
	_, err = h.svc.Harvest(context.Background(), "p1", 0)
	assert.ErrorIs(t, err, domain.ErrNotReady)
}

func TestHarvestCreditsRewardsAndClearsSlot(t *testing.T) {
	// Draws: harvest branch 0.5 (common), seed count 0.99 (3), fruit 0.99 (1),
	// level-up roll 0.5 (no).
	h := newHarness(t, 0.5, 0.99, 0.99, 0.5)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)

	h.now = testStart.Add(time.Minute)
	resp, err := h.svc.Harvest(context.Background(), "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, domain.PlantGreen, resp.Plant)
	assert.False(t, resp.LeveledUp)

	st := h.state(t)
	assert.Equal(t, domain.SlotEmpty, st.Slots[0].State)
	// 3 starting - 1 planted + 3 rewarded.
	assert.Equal(t, 5, st.ResourceCount(domain.ResourceGreenSeed))
	assert.Equal(t, 1, st.ResourceCount(domain.ResourceGreenFruit))
	assert.EqualValues(t, 1, st.Stats.HarvestsCollected)
}

func TestHarvestLevelUpRoll(t *testing.T) {
	// Mutation branch (0.95) keeps the draw count at one, then 0.01 wins the
	// level-up roll.
	h := newHarness(t, 0.95, 0.01)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)

	h.now = testStart.Add(time.Minute)
	resp, err := h.svc.Harvest(context.Background(), "p1", 0)
	require.NoError(t, err)
	assert.True(t, resp.LeveledUp)
	assert.Equal(t, 2, resp.SlotLevel)

	st := h.state(t)
	assert.Equal(t, 1, st.ResourceCount(domain.ResourceGoldSeed))
	assert.Equal(t, 2, st.Slots[0].Level)
}

func TestHarvestAllCollectsOnlyReady(t *testing.T) {
	h := newHarness(t, 0.95, 0.5)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)

	h.now = testStart.Add(30 * time.Second)
	_, err = h.svc.Plant(context.Background(), "p1", 1, domain.PlantGreen)
	require.NoError(t, err)

	// Slot 0 matured, slot 1 still growing.
	h.now = testStart.Add(70 * time.Second)
	resp, err := h.svc.HarvestAll(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Harvested)

	st := h.state(t)
	assert.Equal(t, domain.SlotEmpty, st.Slots[0].State)
	assert.Equal(t, domain.SlotGrowing, st.Slots[1].State)
}

func TestHarvestAllEmptyFarm(t *testing.T) {
	h := newHarness(t)

	resp, err := h.svc.HarvestAll(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Harvested)
	assert.Empty(t, resp.Rewards)
}

func TestRemoveForfeitsPlant(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)

	resp, err := h.svc.Remove(context.Background(), "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Cleared)

	// No refund of the seed or water.
	st := h.state(t)
	assert.Equal(t, domain.InitialGreenSeeds-1, st.ResourceCount(domain.ResourceGreenSeed))
	assert.Equal(t, domain.WaterMax-1, st.Water.Current)
	assert.Equal(t, domain.SlotEmpty, st.Slots[0].State)
}

func TestRemoveEmptySlotIsNoop(t *testing.T) {
	h := newHarness(t)

	resp, err := h.svc.Remove(context.Background(), "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Cleared)
}

func TestAccelerateRetainsTenPercent(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)

	// 60s remain; acceleration keeps 6s.
	resp, err := h.svc.Accelerate(context.Background(), "p1", 0, false)
	require.NoError(t, err)
	assert.Equal(t, testStart.Add(6*time.Second), resp.ReadyAt)
	assert.Equal(t, domain.AdViewDailyLimit-1, resp.AdViewsLeft)
	assert.False(t, resp.UsedAccelerator)
}

func TestAccelerateWithAcceleratorItem(t *testing.T) {
	h := newHarness(t)
	seedAccelerator(t, h)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)

	resp, err := h.svc.Accelerate(context.Background(), "p1", 0, true)
	require.NoError(t, err)
	assert.True(t, resp.UsedAccelerator)
	// Item path leaves the ad quota untouched.
	assert.Equal(t, domain.AdViewDailyLimit, resp.AdViewsLeft)

	st := h.state(t)
	assert.Equal(t, 0, st.ResourceCount(domain.ResourceAccelerator))
}

func TestAccelerateQuotaExhaustion(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)

	// With a frozen clock the retained remainder never hits zero, so the same
	// slot absorbs every ad view of the day.
	for i := 0; i < domain.AdViewDailyLimit; i++ {
		_, err = h.svc.Accelerate(context.Background(), "p1", 0, false)
		require.NoError(t, err)
	}

	_, err = h.svc.Accelerate(context.Background(), "p1", 0, false)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestAccelerateNonGrowingSlot(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Accelerate(context.Background(), "p1", 0, false)
	assert.ErrorIs(t, err, domain.ErrNotReady)
}

func TestUseWaterBottle(t *testing.T) {
	h := newHarness(t)
	seedWaterBottle(t, h)

	// Drain some water first so the refill is visible.
	for i := 0; i < 3; i++ {
		_, err := h.svc.Plant(context.Background(), "p1", i, domain.PlantGreen)
		require.NoError(t, err)
	}

	resp, err := h.svc.UseWaterBottle(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Restored)
	assert.Equal(t, domain.WaterMax, resp.WaterLeft)
}

func TestUseWaterBottleWithoutBottle(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.UseWaterBottle(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrInsufficientResource)
}

func TestTickGrowthCatchesUp(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)

	h.now = testStart.Add(2 * time.Minute)
	resp, err := h.svc.TickGrowth(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.NewlyReady)

	st := h.state(t)
	assert.Equal(t, domain.SlotReady, st.Slots[0].State)
}

func TestTickWaterRecovers(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Plant(context.Background(), "p1", 0, domain.PlantGreen)
	require.NoError(t, err)

	h.now = testStart.Add(5 * time.Minute)
	resp, err := h.svc.TickWater(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.WaterRecovered)

	st := h.state(t)
	assert.Equal(t, domain.WaterMax, st.Water.Current)
}

func TestCommandsForUnknownPlayer(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Plant(context.Background(), "ghost", 0, domain.PlantGreen)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

// seedAccelerator credits one accelerator item outside the service API.
func seedAccelerator(t *testing.T, h *testHarness) {
	t.Helper()
	grantResource(t, h, domain.ResourceAccelerator, 1)
}

// seedWaterBottle credits one water bottle outside the service API.
func seedWaterBottle(t *testing.T, h *testHarness) {
	t.Helper()
	grantResource(t, h, domain.ResourceWaterBottle, 1)
}

func grantResource(t *testing.T, h *testHarness, kind domain.ResourceKind, qty int) {
	t.Helper()
	ctx := context.Background()
	tx, err := h.repo.BeginTx(ctx)
	require.NoError(t, err)
	st, err := tx.GetFarmForUpdate(ctx, "p1")
	require.NoError(t, err)
	st.Credit(kind, qty)
	require.NoError(t, tx.SaveFarm(ctx, st))
	require.NoError(t, tx.Commit(ctx))
}
