package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/repository"
)

// FarmRepository is an in-memory farm repository. It backs the memory storage
// mode and the service test suites. A single mutex stands in for row locks,
// which preserves the run-to-completion guarantee commands rely on.
type FarmRepository struct {
	mu     sync.Mutex
	states map[string]*domain.FarmState
}

// NewFarmRepository creates an empty in-memory farm repository
func NewFarmRepository() *FarmRepository {
	return &FarmRepository{states: make(map[string]*domain.FarmState)}
}

// CreateFarm stores a freshly initialized farm state
func (r *FarmRepository) CreateFarm(_ context.Context, state *domain.FarmState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[state.PlayerID] = state.Clone()
	return nil
}

// GetFarm retrieves a copy of the farm state
func (r *FarmRepository) GetFarm(_ context.Context, playerID string) (*domain.FarmState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.states[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return st.Clone(), nil
}

// ListPlayerIDs returns the IDs of all registered players
func (r *FarmRepository) ListPlayerIDs(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.states))
	for id := range r.states {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// DeleteFarm removes a farm state entirely
func (r *FarmRepository) DeleteFarm(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.states[playerID]; !ok {
		return domain.ErrPlayerNotFound
	}
	delete(r.states, playerID)
	return nil
}

// BeginTx locks the store and returns a FarmTx holding the lock until
// Commit or Rollback.
func (r *FarmRepository) BeginTx(_ context.Context) (repository.FarmTx, error) {
	r.mu.Lock()
	return &farmTx{repo: r}, nil
}

type farmTx struct {
	repo    *FarmRepository
	pending map[string]*domain.FarmState
	done    bool
}

func (t *farmTx) GetFarmForUpdate(_ context.Context, playerID string) (*domain.FarmState, error) {
	st, ok := t.repo.states[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return st.Clone(), nil
}

func (t *farmTx) SaveFarm(_ context.Context, state *domain.FarmState) error {
	if _, ok := t.repo.states[state.PlayerID]; !ok {
		return domain.ErrPlayerNotFound
	}
	if t.pending == nil {
		t.pending = make(map[string]*domain.FarmState)
	}
	t.pending[state.PlayerID] = state.Clone()
	return nil
}

func (t *farmTx) Commit(_ context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	for id, st := range t.pending {
		t.repo.states[id] = st
	}
	t.finish()
	return nil
}

func (t *farmTx) Rollback(_ context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *farmTx) finish() {
	t.done = true
	t.pending = nil
	t.repo.mu.Unlock()
}
