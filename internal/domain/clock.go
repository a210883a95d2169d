package domain

import "time"

// The clocks below are periodic re-evaluation passes, not scheduled
// callbacks: every pass recomputes entity state from absolute timestamps, so
// time elapsed while the process was down is caught up on the next call.

// AdvanceGrowth flags every Growing slot whose duration has elapsed as Ready.
// Idempotent: re-ticking a Ready slot is a no-op. Returns the newly-ready count.
func AdvanceGrowth(s *FarmState, now time.Time) int {
	ready := 0
	for i := range s.Slots {
		slot := &s.Slots[i]
		if slot.State != SlotGrowing {
			continue
		}
		if now.Sub(slot.PlantedAt) >= slot.GrowthDuration {
			slot.State = SlotReady
			ready++
		}
	}
	return ready
}

// RecoverWater applies whole-minute water regeneration and returns the amount
// gained.
func RecoverWater(s *FarmState, now time.Time) int {
	return s.Water.Recover(now)
}

// SettleWorkers releases workers whose shift lapsed and credits their wages.
// Each wage is paid exactly once no matter how many passes observe the lapsed
// timer. Returns the total TON credited.
func SettleWorkers(s *FarmState, now time.Time) int64 {
	var paid int64
	for i := range s.Workers {
		w := &s.Workers[i]
		if !w.ShiftDone(now) {
			continue
		}
		paid += w.Wage
		s.CreditBalance(w.Wage)
		s.Stats.TonEarned += w.Wage
		w.Release()
	}
	return paid
}

// TickReport summarizes one catch-up pass over all clocks.
type TickReport struct {
	NewlyReady     int
	WaterRecovered int
	WagesPaid      int64
}

// Advance runs all clocks up to now. Every command calls this on the freshly
// loaded aggregate before mutating, so state is always current regardless of
// how recently the background tick ran.
func Advance(s *FarmState, now time.Time) TickReport {
	return TickReport{
		NewlyReady:     AdvanceGrowth(s, now),
		WaterRecovered: RecoverWater(s, now),
		WagesPaid:      SettleWorkers(s, now),
	}
}
