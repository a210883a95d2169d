package job

import (
	"context"
	"fmt"
	"time"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/logger"
	"github.com/dmkorzh/farmbox/internal/metrics"
	"github.com/dmkorzh/farmbox/internal/repository"
)

// Service defines the worker shift business logic
type Service interface {
	// HireWorker pays the hire cost and sends a free worker on shift
	HireWorker(ctx context.Context, playerID string, workerID int) (*domain.HireWorkerResponse, error)

	// FireWorker recalls a working worker early, forfeiting cost and wage
	FireWorker(ctx context.Context, playerID string, workerID int) (*domain.FireWorkerResponse, error)
}

type service struct {
	repo repository.Farm
	now  func() time.Time
}

// NewService creates a new job service
func NewService(repo repository.Farm) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

// mutate runs one locked load-advance-mutate-save cycle for a player.
func (s *service) mutate(ctx context.Context, playerID string, fn func(st *domain.FarmState, now time.Time) error) error {
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
	domain.Advance(st, now)

	if err := fn(st, now); err != nil {
		return err
	}

	st.UpdatedAt = now
	if err := tx.SaveFarm(ctx, st); err != nil {
		return fmt.Errorf("failed to save farm: %w", err)
	}
	return tx.Commit(ctx)
}

// HireWorker pays the hire cost and sends a free worker on shift. The wage is
// locked into the worker at hire time and settles lazily once the shift ends.
func (s *service) HireWorker(ctx context.Context, playerID string, workerID int) (*domain.HireWorkerResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("HireWorker called", "playerID", playerID, "workerID", workerID)

	var resp *domain.HireWorkerResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time) error {
		w, err := st.Worker(workerID)
		if err != nil {
			return err
		}
		if w.Status == domain.WorkerWorking {
			return fmt.Errorf("%w: worker %d", domain.ErrWorkerBusy, w.ID)
		}
		if err := st.DebitBalance(domain.WorkerHireCost); err != nil {
			return err
		}

		w.Status = domain.WorkerWorking
		w.StartedAt = now
		w.EndsAt = now.Add(domain.WorkerShiftDuration)
		w.Wage = domain.WorkerWage
		st.Stats.WorkersHired++

		resp = &domain.HireWorkerResponse{
			WorkerID: w.ID,
			EndsAt:   w.EndsAt,
			Wage:     w.Wage,
			Balance:  st.Balance,
			Message:  fmt.Sprintf("Worker %d hired until %s", w.ID, w.EndsAt.Format(time.RFC3339)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.WorkersHired.Inc()
	return resp, nil
}

// FireWorker recalls a working worker early. The hire cost stays spent and no
// wage is ever paid for the abandoned shift.
func (s *service) FireWorker(ctx context.Context, playerID string, workerID int) (*domain.FireWorkerResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("FireWorker called", "playerID", playerID, "workerID", workerID)

	var resp *domain.FireWorkerResponse
	err := s.mutate(ctx, playerID, func(st *domain.FarmState, now time.Time) error {
		w, err := st.Worker(workerID)
		if err != nil {
			return err
		}
		if w.Status != domain.WorkerWorking {
			return fmt.Errorf("%w: worker %d", domain.ErrWorkerAlreadyFree, w.ID)
		}

		w.Release()
		resp = &domain.FireWorkerResponse{
			WorkerID: w.ID,
			Message:  fmt.Sprintf("Worker %d recalled", w.ID),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
