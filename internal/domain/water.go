package domain

import (
	"fmt"
	"time"
)

// WaterPool is a capped resource that regenerates at a fixed per-minute rate.
// Recovery is recomputed from the last-recovery timestamp, so elapsed offline
// time is caught up correctly on the next tick.
type WaterPool struct {
	Current           int       `json:"current"`
	Max               int       `json:"max"`
	RecoveryPerMinute int       `json:"recovery_per_minute"`
	LastRecovery      time.Time `json:"last_recovery"`
}

// NewWaterPool returns a full pool with the default recovery rate.
func NewWaterPool(now time.Time) WaterPool {
	return WaterPool{
		Current:           WaterMax,
		Max:               WaterMax,
		RecoveryPerMinute: WaterRecoveryPerMinute,
		LastRecovery:      now,
	}
}

// Recover adds whole-minute regeneration up to now and returns the amount
// gained. The last-recovery timestamp advances only by the whole minutes
// consumed, preserving the fractional remainder for the next tick. A full
// pool snaps the timestamp to now so no recovery is banked while capped.
func (p *WaterPool) Recover(now time.Time) int {
	if now.Before(p.LastRecovery) {
		return 0
	}
	if p.Current >= p.Max {
		p.LastRecovery = now
		return 0
	}

	minutes := int(now.Sub(p.LastRecovery) / time.Minute)
	if minutes <= 0 {
		return 0
	}

	recovered := minutes * p.RecoveryPerMinute
	if p.Current+recovered > p.Max {
		recovered = p.Max - p.Current
	}
	p.Current += recovered
	p.LastRecovery = p.LastRecovery.Add(time.Duration(minutes) * time.Minute)
	return recovered
}

// Consume removes qty units, failing atomically if the pool is short.
func (p *WaterPool) Consume(qty int) error {
	if qty < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	if p.Current < qty {
		return fmt.Errorf("%w: water %d/%d", ErrInsufficientResource, p.Current, qty)
	}
	p.Current -= qty
	return nil
}

// Refill adds qty units, clamped to the pool maximum.
func (p *WaterPool) Refill(qty int) {
	if qty <= 0 {
		return
	}
	p.Current += qty
	if p.Current > p.Max {
		p.Current = p.Max
	}
}
