package player

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dmkorzh/farmbox/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedSnapshotEntry wraps a snapshot with version metadata for cache invalidation
type cachedSnapshotEntry struct {
	Version  string              `json:"version"`
	Snapshot *domain.FarmSnapshot `json:"snapshot"`
	CachedAt time.Time           `json:"cached_at"`
}

// snapshotCache provides an in-memory LRU cache for farm snapshots with
// time-based expiration. Snapshots are pure projections, so a short TTL keeps
// read-heavy clients off the database without ever serving stale writes for long.
type snapshotCache struct {
	lru *expirable.LRU[string, *cachedSnapshotEntry]
}

// newSnapshotCache creates a new snapshot cache with the specified size and TTL.
func newSnapshotCache(size int, ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		lru: expirable.NewLRU[string, *cachedSnapshotEntry](size, nil, ttl),
	}
}

// Get retrieves a snapshot from the cache.
func (c *snapshotCache) Get(playerID string) (*domain.FarmSnapshot, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}

	// Check version - auto-invalidate if mismatch
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return nil, false
	}

	return entry.Snapshot, true
}

// Set stores a snapshot in the cache with current schema version.
func (c *snapshotCache) Set(playerID string, snap *domain.FarmSnapshot) {
	c.lru.Add(playerID, &cachedSnapshotEntry{
		Version:  CacheSchemaVersion,
		Snapshot: snap,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a snapshot from the cache.
func (c *snapshotCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}
