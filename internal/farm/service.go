package farm

import (
	"context"
	"fmt"
	"time"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/logger"
	"github.com/dmkorzh/farmbox/internal/metrics"
	"github.com/dmkorzh/farmbox/internal/repository"
	"github.com/dmkorzh/farmbox/internal/reward"
	"github.com/dmkorzh/farmbox/internal/utils"
)

// Service defines the farm plot business logic
type Service interface {
	// Plant sows a seed of the given kind into one empty slot
	Plant(ctx context.Context, playerID string, slotIndex int, kind domain.PlantKind) (*domain.PlantResponse, error)

	// PlantAll sows seeds into every empty slot until seeds or water run out
	PlantAll(ctx context.Context, playerID string, kind domain.PlantKind) (*domain.PlantAllResponse, error)

	// Harvest collects one ready slot and resolves its reward bundle
	Harvest(ctx context.Context, playerID string, slotIndex int) (*domain.HarvestResponse, error)

	// HarvestAll collects every ready slot in one pass
	HarvestAll(ctx context.Context, playerID string) (*domain.HarvestAllResponse, error)

	// Remove clears one occupied slot without any refund
	Remove(ctx context.Context, playerID string, slotIndex int) (*domain.RemoveResponse, error)

	// RemoveAll clears every occupied slot without any refund
	RemoveAll(ctx context.Context, playerID string) (*domain.RemoveResponse, error)

	// Accelerate cuts the remaining growth time of one growing slot
	Accelerate(ctx context.Context, playerID string, slotIndex int, useAccelerator bool) (*domain.AccelerateResponse, error)

	// UseWaterBottle consumes one water bottle to partially refill the pool
	UseWaterBottle(ctx context.Context, playerID string) (*domain.WaterResponse, error)

	// TickGrowth runs the growth clock for one player
	TickGrowth(ctx context.Context, playerID string) (*domain.TickResponse, error)

	// TickWater runs the water recovery clock for one player
	TickWater(ctx context.Context, playerID string) (*domain.TickResponse, error)
}

type service struct {
	repo     repository.Farm
	resolver *reward.Resolver
	rnd      func() float64 // For slot level-up rolls
	now      func() time.Time
}

// NewService creates a new farm service
func NewService(repo repository.Farm, resolver *reward.Resolver) Service {
	return &service{
		repo:     repo,
		resolver: resolver,
		rnd:      utils.RandomFloat,
		now:      time.Now,
	}
}

// mutate runs one locked load-advance-mutate-save cycle for a player. Every
// command goes through here so catch-up always happens before the mutation.
func (s *service) mutate(ctx context.Context, playerID string, fn func(st *domain.FarmState, now time.Time, tick domain.TickReport) error) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	st, err := tx.GetFarmForUpdate(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to load farm: %w", err)
	}

	now := s.now()
	tick := domain.Advance(st, now)

	if err := fn(st, now, tick); err != nil {
		return err
	}

	st.UpdatedAt = now
	if err := tx.SaveFarm(ctx, st); err != nil {
		return fmt.Errorf("failed to save farm: %w", err)
	}
	return tx.Commit(ctx)
}

// Plant sows a seed of the given kind into one empty slot
func (s *service) Plant(ctx context.Context, playerID string, slotIndex int, kind domain.PlantKind) (*domain.PlantResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Plant called", "playerID", playerID, "slot", slotIndex, "kind", kind)

	cfg, err := domain.ConfigForPlant(kind)
	if err != nil {
		return nil, err
	}

	var resp *domain.PlantResponse
	err = s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time, tick domain.TickReport) error {
		slot, err := st.Slot(slotIndex)
		if err != nil {
			return err
		}
		if err := plantInto(st, slot, cfg, now); err != nil {
			return err
		}

		resp = &domain.PlantResponse{
			SlotIndex: slot.Index,
			Plant:     kind,
			ReadyAt:   slot.ReadyAt(),
			WaterLeft: st.Water.Current,
			Message:   fmt.Sprintf("Planted %s in slot %d", kind, slot.Index),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PlantsPlanted.WithLabelValues(string(kind)).Inc()
	return resp, nil
}

// PlantAll sows seeds into every empty slot until seeds or water run out
func (s *service) PlantAll(ctx context.Context, playerID string, kind domain.PlantKind) (*domain.PlantAllResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("PlantAll called", "playerID", playerID, "kind", kind)

	cfg, err := domain.ConfigForPlant(kind)
	if err != nil {
		return nil, err
	}

	var resp *domain.PlantAllResponse
	err = s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time, tick domain.TickReport) error {
		var planted []int
		for i := range st.Slots {
			slot := &st.Slots[i]
			if slot.Occupied() {
				continue
			}
			// Stop at the first shortage; earlier plantings stand.
			if err := plantInto(st, slot, cfg, now); err != nil {
				break
			}
			planted = append(planted, slot.Index)
		}

		resp = &domain.PlantAllResponse{
			Planted:     len(planted),
			SlotIndexes: planted,
			WaterLeft:   st.Water.Current,
			Message:     fmt.Sprintf("Planted %d %s seeds", len(planted), kind),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PlantsPlanted.WithLabelValues(string(kind)).Add(float64(resp.Planted))
	return resp, nil
}

// plantInto performs the seed debit, water spend and slot transition shared
// by Plant and PlantAll.
func plantInto(st *domain.FarmState, slot *domain.Slot, cfg domain.PlantConfig, now time.Time) error {
	if slot.Occupied() {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotOccupied, slot.Index)
	}
	if err := st.Debit(cfg.SeedCost, 1); err != nil {
		return err
	}
	if err := st.Water.Consume(cfg.WaterCost); err != nil {
		return err
	}

	slot.State = domain.SlotGrowing
	slot.Plant = cfg.Kind
	slot.PlantedAt = now
	slot.GrowthDuration = cfg.GrowthDuration
	st.Stats.PlantsPlanted++
	return nil
}

// Harvest collects one ready slot and resolves its reward bundle
func (s *service) Harvest(ctx context.Context, playerID string, slotIndex int) (*domain.HarvestResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Harvest called", "playerID", playerID, "slot", slotIndex)

	var resp *domain.HarvestResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time, tick domain.TickReport) error {
		slot, err := st.Slot(slotIndex)
		if err != nil {
			return err
		}

		r, err := s.harvestSlot(st, slot)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.HarvestsCollected.WithLabelValues(string(resp.Plant)).Inc()
	return resp, nil
}

// HarvestAll collects every ready slot in one pass
func (s *service) HarvestAll(ctx context.Context, playerID string) (*domain.HarvestAllResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("HarvestAll called", "playerID", playerID)

	plantCounts := make(map[domain.PlantKind]int)

	var resp *domain.HarvestAllResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time, tick domain.TickReport) error {
		merged := make(map[domain.ResourceKind]int)
		harvested, leveled := 0, 0

		for i := range st.Slots {
			slot := &st.Slots[i]
			if slot.State != domain.SlotReady {
				continue
			}
			r, err := s.harvestSlot(st, slot)
			if err != nil {
				return err
			}
			harvested++
			plantCounts[r.Plant]++
			if r.LeveledUp {
				leveled++
			}
			for _, d := range r.Rewards {
				merged[d.Kind] += d.Quantity
			}
		}

		resp = &domain.HarvestAllResponse{
			Harvested:      harvested,
			Rewards:        mergedDeltas(merged),
			SlotsLeveledUp: leveled,
			Message:        fmt.Sprintf("Harvested %d plants", harvested),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for kind, n := range plantCounts {
		metrics.HarvestsCollected.WithLabelValues(string(kind)).Add(float64(n))
	}
	return resp, nil
}

// harvestSlot resolves rewards for one ready slot, applies them and clears
// the slot. The level-up roll happens per harvest.
func (s *service) harvestSlot(st *domain.FarmState, slot *domain.Slot) (*domain.HarvestResponse, error) {
	if slot.State != domain.SlotReady {
		return nil, fmt.Errorf("%w: slot %d is %s", domain.ErrNotReady, slot.Index, slot.State)
	}

	kind := slot.Plant
	rewards, err := s.resolver.Harvest(kind)
	if err != nil {
		return nil, err
	}
	st.ApplyDeltas(rewards)

	leveledUp := false
	if s.rnd() < domain.SlotLevelUpChance {
		slot.Level++
		leveledUp = true
	}

	slot.Clear()
	st.Stats.HarvestsCollected++

	return &domain.HarvestResponse{
		SlotIndex: slot.Index,
		Plant:     kind,
		Rewards:   rewards,
		SlotLevel: slot.Level,
		LeveledUp: leveledUp,
		Message:   fmt.Sprintf("Harvested %s from slot %d", kind, slot.Index),
	}, nil
}

func mergedDeltas(m map[domain.ResourceKind]int) []domain.ResourceDelta {
	deltas := make([]domain.ResourceDelta, 0, len(m))
	for _, kind := range domain.AllResources() {
		if qty, ok := m[kind]; ok && qty > 0 {
			deltas = append(deltas, domain.ResourceDelta{Kind: kind, Quantity: qty})
		}
	}
	return deltas
}

// Remove clears one occupied slot without any refund
func (s *service) Remove(ctx context.Context, playerID string, slotIndex int) (*domain.RemoveResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Remove called", "playerID", playerID, "slot", slotIndex)

	var resp *domain.RemoveResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time, tick domain.TickReport) error {
		slot, err := st.Slot(slotIndex)
		if err != nil {
			return err
		}

		// Clearing an empty slot is a no-op, not an error.
		cleared := 0
		if slot.Occupied() {
			slot.Clear()
			cleared = 1
		}
		resp = &domain.RemoveResponse{
			Cleared: cleared,
			Message: fmt.Sprintf("Cleared slot %d", slot.Index),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RemoveAll clears every occupied slot without any refund
func (s *service) RemoveAll(ctx context.Context, playerID string) (*domain.RemoveResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("RemoveAll called", "playerID", playerID)

	var resp *domain.RemoveResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time, tick domain.TickReport) error {
		cleared := 0
		for i := range st.Slots {
			if st.Slots[i].Occupied() {
				st.Slots[i].Clear()
				cleared++
			}
		}
		resp = &domain.RemoveResponse{
			Cleared: cleared,
			Message: fmt.Sprintf("Cleared %d slots", cleared),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Accelerate cuts the remaining growth time of one growing slot. The slot
// keeps a fixed share of its remaining time; paying with an accelerator item
// skips the daily ad quota.
func (s *service) Accelerate(ctx context.Context, playerID string, slotIndex int, useAccelerator bool) (*domain.AccelerateResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Accelerate called", "playerID", playerID, "slot", slotIndex, "useAccelerator", useAccelerator)

	var resp *domain.AccelerateResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time, tick domain.TickReport) error {
		slot, err := st.Slot(slotIndex)
		if err != nil {
			return err
		}
		if slot.State != domain.SlotGrowing {
			return fmt.Errorf("%w: slot %d is %s", domain.ErrNotReady, slot.Index, slot.State)
		}

		if useAccelerator {
			if err := st.Debit(domain.ResourceAccelerator, 1); err != nil {
				return err
			}
		} else {
			if err := st.AdQuota.Use(now, domain.AdViewDailyLimit); err != nil {
				return err
			}
		}

		// Rebase the slot so only the retained share remains.
		retained := slot.Remaining(now) * domain.AccelerateRetainPercent / 100
		slot.PlantedAt = now
		slot.GrowthDuration = retained
		domain.AdvanceGrowth(st, now)

		resp = &domain.AccelerateResponse{
			SlotIndex:       slot.Index,
			ReadyAt:         slot.ReadyAt(),
			UsedAccelerator: useAccelerator,
			AdViewsLeft:     st.AdQuota.RemainingToday(now, domain.AdViewDailyLimit),
			Message:         fmt.Sprintf("Accelerated slot %d", slot.Index),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// UseWaterBottle consumes one water bottle to partially refill the pool
func (s *service) UseWaterBottle(ctx context.Context, playerID string) (*domain.WaterResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("UseWaterBottle called", "playerID", playerID)

	var resp *domain.WaterResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time, tick domain.TickReport) error {
		if err := st.Debit(domain.ResourceWaterBottle, 1); err != nil {
			return err
		}

		before := st.Water.Current
		st.Water.Refill(domain.WaterBottleRefill)

		resp = &domain.WaterResponse{
			Restored:  st.Water.Current - before,
			WaterLeft: st.Water.Current,
			Message:   "Water bottle used",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// TickGrowth runs the growth clock for one player
func (s *service) TickGrowth(ctx context.Context, playerID string) (*domain.TickResponse, error) {
	var resp *domain.TickResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time, tick domain.TickReport) error {
		resp = &domain.TickResponse{
			NewlyReady: tick.NewlyReady,
			WagesPaid:  tick.WagesPaid,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// TickWater runs the water recovery clock for one player
func (s *service) TickWater(ctx context.Context, playerID string) (*domain.TickResponse, error) {
	var resp *domain.TickResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time, tick domain.TickReport) error {
		resp = &domain.TickResponse{
			WaterRecovered: tick.WaterRecovered,
			WagesPaid:      tick.WagesPaid,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
