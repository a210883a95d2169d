package player

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/logger"
	"github.com/dmkorzh/farmbox/internal/repository"
)

const (
	// Snapshot cache tuning. The TTL is short on purpose: snapshots are the
	// hot read path and a couple of seconds of staleness is acceptable.
	snapshotCacheSize = 1024
	snapshotCacheTTL  = 2 * time.Second
)

// Service defines the player account business logic
type Service interface {
	// Register creates a new player with the starting farm
	Register(ctx context.Context, username string) (*domain.RegisterResponse, error)

	// Reset replaces a player's farm with a fresh starting farm
	Reset(ctx context.Context, playerID string) (*domain.FarmSnapshot, error)

	// GetSnapshot returns the read-model projection of one farm
	GetSnapshot(ctx context.Context, playerID string) (*domain.FarmSnapshot, error)
}

type service struct {
	repo  repository.Farm
	cache *snapshotCache
	now   func() time.Time
}

// NewService creates a new player service
func NewService(repo repository.Farm) Service {
	return &service{
		repo:  repo,
		cache: newSnapshotCache(snapshotCacheSize, snapshotCacheTTL),
		now:   time.Now,
	}
}

// Register creates a new player with the starting farm
func (s *service) Register(ctx context.Context, username string) (*domain.RegisterResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Register called", "username", username)

	now := s.now()
	st := domain.NewFarmState(uuid.NewString(), username, now)

	if err := s.repo.CreateFarm(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to create farm: %w", err)
	}

	snap := buildSnapshot(st, now)
	s.cache.Set(st.PlayerID, snap)

	return &domain.RegisterResponse{
		PlayerID: st.PlayerID,
		Snapshot: snap,
		Message:  fmt.Sprintf("Welcome to the farm, %s", username),
	}, nil
}

// Reset replaces a player's farm with a fresh starting farm. The player keeps
// their identity and loses everything else.
func (s *service) Reset(ctx context.Context, playerID string) (*domain.FarmSnapshot, error) {
	log := logger.FromContext(ctx)
	log.Info("Reset called", "playerID", playerID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	old, err := tx.GetFarmForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load farm: %w", err)
	}

	now := s.now()
	fresh := domain.NewFarmState(old.PlayerID, old.Username, now)
	fresh.CreatedAt = old.CreatedAt

	if err := tx.SaveFarm(ctx, fresh); err != nil {
		return nil, fmt.Errorf("failed to save farm: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.cache.Invalidate(playerID)
	return buildSnapshot(fresh, now), nil
}

// GetSnapshot returns the read-model projection of one farm. The projection
// runs the clocks on a private copy, so reads never write catch-up state back.
func (s *service) GetSnapshot(ctx context.Context, playerID string) (*domain.FarmSnapshot, error) {
	if snap, ok := s.cache.Get(playerID); ok {
		return snap, nil
	}

	st, err := s.repo.GetFarm(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load farm: %w", err)
	}

	now := s.now()
	view := st.Clone()
	domain.Advance(view, now)

	snap := buildSnapshot(view, now)
	s.cache.Set(playerID, snap)
	return snap, nil
}

// buildSnapshot projects an already caught-up state into the client view.
func buildSnapshot(st *domain.FarmState, now time.Time) *domain.FarmSnapshot {
	slots := make([]domain.SlotView, len(st.Slots))
	for i, slot := range st.Slots {
		slots[i] = domain.SlotView{
			Index:            slot.Index,
			State:            slot.State,
			Plant:            slot.Plant,
			Level:            slot.Level,
			RemainingSeconds: int64(slot.Remaining(now) / time.Second),
		}
	}

	workers := make([]domain.WorkerView, len(st.Workers))
	for i, w := range st.Workers {
		var remaining int64
		if w.Status == domain.WorkerWorking {
			remaining = int64(w.EndsAt.Sub(now) / time.Second)
			if remaining < 0 {
				remaining = 0
			}
		}
		workers[i] = domain.WorkerView{
			ID:               w.ID,
			Status:           w.Status,
			RemainingSeconds: remaining,
		}
	}

	resources := make(map[domain.ResourceKind]int, len(st.Resources))
	for k, v := range st.Resources {
		resources[k] = v
	}

	return &domain.FarmSnapshot{
		PlayerID:    st.PlayerID,
		Username:    st.Username,
		Balance:     st.Balance,
		SlotPrice:   st.SlotPrice,
		Premium:     st.Premium,
		Resources:   resources,
		Slots:       slots,
		Water:       st.Water,
		Workers:     workers,
		AdViewsLeft: st.AdQuota.RemainingToday(now, domain.AdViewDailyLimit),
		Stats:       st.Stats,
		GeneratedAt: now,
	}
}
