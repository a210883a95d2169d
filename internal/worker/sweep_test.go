package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkorzh/farmbox/internal/database/memory"
	"github.com/dmkorzh/farmbox/internal/domain"
)

func TestSweepVisitsEveryPlayer(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFarmRepository()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, repo.CreateFarm(ctx, domain.NewFarmState(id, "u-"+id, now)))
	}

	visited := make(map[string]int)
	job := &SweepJob{
		name: "test",
		repo: repo,
		tick: func(_ context.Context, playerID string) (*domain.TickResponse, error) {
			visited[playerID]++
			return &domain.TickResponse{}, nil
		},
	}

	require.NoError(t, job.Process(ctx))
	assert.Equal(t, map[string]int{"p1": 1, "p2": 1, "p3": 1}, visited)
}

func TestSweepContinuesPastFailingPlayer(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFarmRepository()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, repo.CreateFarm(ctx, domain.NewFarmState(id, "u-"+id, now)))
	}

	var visited []string
	job := &SweepJob{
		name: "test",
		repo: repo,
		tick: func(_ context.Context, playerID string) (*domain.TickResponse, error) {
			visited = append(visited, playerID)
			if playerID == "p2" {
				return nil, assert.AnError
			}
			return &domain.TickResponse{}, nil
		},
	}

	// Individual failures are logged, not returned.
	require.NoError(t, job.Process(ctx))
	assert.Equal(t, []string{"p1", "p2", "p3"}, visited)
}
