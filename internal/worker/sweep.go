package worker

import (
	"context"
	"fmt"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/farm"
	"github.com/dmkorzh/farmbox/internal/logger"
	"github.com/dmkorzh/farmbox/internal/repository"
)

// TickFunc runs one clock pass for a single player.
type TickFunc func(ctx context.Context, playerID string) (*domain.TickResponse, error)

// SweepJob runs a clock pass over every registered player. One failing player
// never aborts the sweep; the failure is logged and the pass moves on.
type SweepJob struct {
	name string
	repo repository.Farm
	tick TickFunc
}

// NewGrowthSweep returns the periodic growth clock sweep.
func NewGrowthSweep(repo repository.Farm, svc farm.Service) *SweepJob {
	return &SweepJob{name: "growth", repo: repo, tick: svc.TickGrowth}
}

// NewWaterSweep returns the periodic water recovery sweep.
func NewWaterSweep(repo repository.Farm, svc farm.Service) *SweepJob {
	return &SweepJob{name: "water", repo: repo, tick: svc.TickWater}
}

// Process runs the sweep once
func (j *SweepJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSweepStarting, "sweep", j.name)

	ids, err := j.repo.ListPlayerIDs(ctx)
	if err != nil {
		log.Error(LogMsgSweepListFailed, "sweep", j.name, "error", err)
		return fmt.Errorf("failed to list players: %w", err)
	}

	failed := 0
	for _, id := range ids {
		if _, err := j.tick(ctx, id); err != nil {
			failed++
			log.Error(LogMsgSweepPlayerFailed, "sweep", j.name, "playerID", id, "error", err)
		}
	}

	log.Debug(LogMsgSweepCompleted, "sweep", j.name, "players", len(ids), "failed", failed)
	return nil
}
