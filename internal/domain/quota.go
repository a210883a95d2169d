package domain

import (
	"fmt"
	"time"
)

// AdQuota tracks per-day speedup credits. The counter resets lazily when the
// UTC calendar day changes; no reset job is required.
type AdQuota struct {
	Day  string `json:"day"`
	Used int    `json:"used"`
}

// Use consumes one credit, resetting the counter on a day rollover.
// Returns ErrQuotaExceeded once the daily limit is spent.
func (q *AdQuota) Use(now time.Time, limit int) error {
	day := now.UTC().Format(AdQuotaDayFormat)
	if q.Day != day {
		q.Day = day
		q.Used = 0
	}
	if q.Used >= limit {
		return fmt.Errorf("%w: %d ad views used today", ErrQuotaExceeded, q.Used)
	}
	q.Used++
	return nil
}

// RemainingToday returns the credits left for the given time's UTC day.
func (q *AdQuota) RemainingToday(now time.Time, limit int) int {
	if q.Day != now.UTC().Format(AdQuotaDayFormat) {
		return limit
	}
	remaining := limit - q.Used
	if remaining < 0 {
		return 0
	}
	return remaining
}
