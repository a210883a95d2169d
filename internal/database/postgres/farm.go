package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/repository"
)

// FarmRepository implements the farm repository for PostgreSQL. State is
// stored as one JSONB record per player so a command can lock, mutate and
// write back the whole aggregate in a single row.
type FarmRepository struct {
	db *pgxpool.Pool
}

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *pgxpool.Pool) *FarmRepository {
	return &FarmRepository{db: db}
}

// CreateFarm stores a freshly initialized farm state
func (r *FarmRepository) CreateFarm(ctx context.Context, state *domain.FarmState) error {
	playerUUID, err := uuid.Parse(state.PlayerID)
	if err != nil {
		return fmt.Errorf("invalid player ID: %w", err)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal farm state: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO farm_states (player_id, state, created_at, updated_at)
		 VALUES ($1, $2, $3, $3)`,
		playerUUID, data, state.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create farm state: %w", err)
	}
	return nil
}

// GetFarm retrieves the farm state without locking it
func (r *FarmRepository) GetFarm(ctx context.Context, playerID string) (*domain.FarmState, error) {
	return fetchFarm(ctx, r.db, playerID, false)
}

// ListPlayerIDs returns the IDs of all registered players
func (r *FarmRepository) ListPlayerIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT player_id FROM farm_states ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan player ID: %w", err)
		}
		ids = append(ids, id.String())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return ids, nil
}

// DeleteFarm removes a farm state entirely
func (r *FarmRepository) DeleteFarm(ctx context.Context, playerID string) error {
	playerUUID, err := uuid.Parse(playerID)
	if err != nil {
		return fmt.Errorf("invalid player ID: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM farm_states WHERE player_id = $1`, playerUUID)
	if err != nil {
		return fmt.Errorf("failed to delete farm state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// BeginTx starts a transaction and returns a FarmTx
func (r *FarmRepository) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin farm transaction: %w", err)
	}
	return &farmTx{tx: tx}, nil
}

// farmTx implements repository.FarmTx
type farmTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *farmTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *farmTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetFarmForUpdate retrieves the farm state with a FOR UPDATE lock
func (t *farmTx) GetFarmForUpdate(ctx context.Context, playerID string) (*domain.FarmState, error) {
	return fetchFarm(ctx, t.tx, playerID, true)
}

// SaveFarm persists the mutated farm state
func (t *farmTx) SaveFarm(ctx context.Context, state *domain.FarmState) error {
	playerUUID, err := uuid.Parse(state.PlayerID)
	if err != nil {
		return fmt.Errorf("invalid player ID: %w", err)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal farm state: %w", err)
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE farm_states SET state = $2, updated_at = NOW() WHERE player_id = $1`,
		playerUUID, data)
	if err != nil {
		return fmt.Errorf("failed to save farm state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// querier abstracts pool and transaction query execution
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func fetchFarm(ctx context.Context, q querier, playerID string, forUpdate bool) (*domain.FarmState, error) {
	playerUUID, err := uuid.Parse(playerID)
	if err != nil {
		return nil, fmt.Errorf("invalid player ID: %w", err)
	}

	query := `SELECT state FROM farm_states WHERE player_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var data []byte
	if err := q.QueryRow(ctx, query, playerUUID).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get farm state: %w", err)
	}

	var state domain.FarmState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal farm state: %w", err)
	}
	return &state, nil
}
