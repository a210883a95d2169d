package repository

import (
	"context"

	"github.com/dmkorzh/farmbox/internal/domain"
)

// Farm handles farm state persistence. Every mutating service operation goes
// through BeginTx so the state row stays locked for the whole command.
type Farm interface {
	// CreateFarm stores a freshly initialized farm state.
	CreateFarm(ctx context.Context, state *domain.FarmState) error

	// GetFarm retrieves the farm state without locking it.
	GetFarm(ctx context.Context, playerID string) (*domain.FarmState, error)

	// ListPlayerIDs returns the IDs of all registered players, for tick sweeps.
	ListPlayerIDs(ctx context.Context) ([]string, error)

	// DeleteFarm removes a farm state entirely.
	DeleteFarm(ctx context.Context, playerID string) error

	// BeginTx starts a transaction and returns a FarmTx.
	BeginTx(ctx context.Context) (FarmTx, error)
}

// FarmTx defines the interface for farm state transactions.
type FarmTx interface {
	// GetFarmForUpdate retrieves the farm state with a FOR UPDATE lock.
	GetFarmForUpdate(ctx context.Context, playerID string) (*domain.FarmState, error)

	// SaveFarm persists the mutated farm state.
	SaveFarm(ctx context.Context, state *domain.FarmState) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
