package dump

import (
	"context"
	"fmt"
	"time"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/logger"
	"github.com/dmkorzh/farmbox/internal/metrics"
	"github.com/dmkorzh/farmbox/internal/repository"
	"github.com/dmkorzh/farmbox/internal/reward"
)

// Service defines the dump-sink business logic
type Service interface {
	// Dump sacrifices one unit of a resource for a chance at a drop
	Dump(ctx context.Context, playerID string, kind domain.ResourceKind) (*domain.DumpResponse, error)

	// DropTable returns the dump drop table for display
	DropTable(ctx context.Context) []reward.DumpEntry
}

type service struct {
	repo     repository.Farm
	resolver *reward.Resolver
	now      func() time.Time
}

// NewService creates a new dump service
func NewService(repo repository.Farm, resolver *reward.Resolver) Service {
	return &service{
		repo:     repo,
		resolver: resolver,
		now:      time.Now,
	}
}

// Dump sacrifices one unit of a resource for a chance at a drop. The dumped
// resource's tier gates which table entries are reachable; low-tier dumps can
// come back empty-handed.
func (s *service) Dump(ctx context.Context, playerID string, kind domain.ResourceKind) (*domain.DumpResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Dump called", "playerID", playerID, "kind", kind)

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownResource, kind)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	st, err := tx.GetFarmForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load farm: %w", err)
	}

	now := s.now()
	domain.Advance(st, now)

	if err := st.Debit(kind, 1); err != nil {
		return nil, err
	}

	tier := kind.DumpTier()
	resp := &domain.DumpResponse{
		Dumped:  kind,
		Tier:    tier,
		Message: fmt.Sprintf("Dumped 1 %s", kind),
	}

	if entry, ok := s.resolver.ResolveDump(tier); ok {
		st.Credit(entry.Kind, entry.Quantity)
		resp.Reward = &domain.ResourceDelta{Kind: entry.Kind, Quantity: entry.Quantity}
		resp.Message = fmt.Sprintf("Dumped 1 %s, found %d %s", kind, entry.Quantity, entry.Kind)
	}

	st.Stats.ResourcesDumped++
	st.UpdatedAt = now

	if err := tx.SaveFarm(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save farm: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ResourcesDumped.WithLabelValues(string(kind)).Inc()
	return resp, nil
}

// DropTable returns the dump drop table for display
func (s *service) DropTable(_ context.Context) []reward.DumpEntry {
	return reward.DumpTable()
}
