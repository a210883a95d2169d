package domain

import (
	"fmt"
	"time"
)

// FarmState is the complete per-player game-state aggregate: ledger, slots,
// water pool, workers, quotas and stats. The core is its sole mutator; the
// view layer only ever sees copies. The whole struct serializes to one flat
// JSON record, which is what the repository persists.
type FarmState struct {
	PlayerID  string               `json:"player_id"`
	Username  string               `json:"username"`
	Balance   int64                `json:"balance"`
	SlotPrice int64                `json:"slot_price"`
	Premium   bool                 `json:"premium"`
	Resources map[ResourceKind]int `json:"resources"`
	Slots     []Slot               `json:"slots"`
	Water     WaterPool            `json:"water"`
	Workers   []Worker             `json:"workers"`
	AdQuota   AdQuota              `json:"ad_quota"`
	Stats     Stats                `json:"stats"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// NewFarmState returns the starting farm for a freshly registered player:
// five empty slots, the wallet-connect seed bonus, a full water pool and two
// free workers.
func NewFarmState(playerID, username string, now time.Time) *FarmState {
	slots := make([]Slot, InitialSlots)
	for i := range slots {
		slots[i] = NewSlot(i)
	}
	workers := make([]Worker, InitialWorkers)
	for i := range workers {
		workers[i] = NewWorker(i)
	}

	return &FarmState{
		PlayerID:  playerID,
		Username:  username,
		Balance:   InitialBalance,
		SlotPrice: BaseSlotPrice,
		Resources: map[ResourceKind]int{ResourceGreenSeed: InitialGreenSeeds},
		Slots:     slots,
		Water:     NewWaterPool(now),
		Workers:   workers,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ResourceCount returns the ledger quantity for a kind (zero when absent).
func (s *FarmState) ResourceCount(kind ResourceKind) int {
	return s.Resources[kind]
}

// Credit adds qty units of a resource to the ledger. Non-positive quantities
// are ignored so reward bundles with zero entries stay harmless.
func (s *FarmState) Credit(kind ResourceKind, qty int) {
	if qty <= 0 {
		return
	}
	if s.Resources == nil {
		s.Resources = make(map[ResourceKind]int)
	}
	s.Resources[kind] += qty
}

// Debit removes qty units of a resource, failing atomically when the ledger
// is short. A quantity can never go negative.
func (s *FarmState) Debit(kind ResourceKind, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	have := s.Resources[kind]
	if have < qty {
		return fmt.Errorf("%w: %s %d/%d", ErrInsufficientResource, kind, have, qty)
	}
	s.Resources[kind] = have - qty
	if s.Resources[kind] == 0 {
		delete(s.Resources, kind)
	}
	return nil
}

// CreditBalance adds TON to the balance. Non-positive amounts are ignored.
func (s *FarmState) CreditBalance(amount int64) {
	if amount <= 0 {
		return
	}
	s.Balance += amount
}

// DebitBalance removes TON from the balance, failing atomically when short.
func (s *FarmState) DebitBalance(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, amount)
	}
	if s.Balance < amount {
		return fmt.Errorf("%w: balance %d, need %d", ErrInsufficientFunds, s.Balance, amount)
	}
	s.Balance -= amount
	return nil
}

// ApplyDeltas credits a reward bundle to the ledger.
func (s *FarmState) ApplyDeltas(deltas []ResourceDelta) {
	for _, d := range deltas {
		s.Credit(d.Kind, d.Quantity)
	}
}

// Slot returns a pointer into the slot collection, or ErrSlotNotFound.
func (s *FarmState) Slot(index int) (*Slot, error) {
	if index < 0 || index >= len(s.Slots) {
		return nil, fmt.Errorf("%w: index %d", ErrSlotNotFound, index)
	}
	return &s.Slots[index], nil
}

// Worker returns a pointer into the worker set, or ErrWorkerNotFound.
func (s *FarmState) Worker(id int) (*Worker, error) {
	for i := range s.Workers {
		if s.Workers[i].ID == id {
			return &s.Workers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrWorkerNotFound, id)
}

// AppendSlot grows the farm by one empty slot and returns it.
func (s *FarmState) AppendSlot() *Slot {
	s.Slots = append(s.Slots, NewSlot(len(s.Slots)))
	return &s.Slots[len(s.Slots)-1]
}

// Clone returns a deep copy suitable for read-only snapshots.
func (s *FarmState) Clone() *FarmState {
	c := *s
	c.Resources = make(map[ResourceKind]int, len(s.Resources))
	for k, v := range s.Resources {
		c.Resources[k] = v
	}
	c.Slots = make([]Slot, len(s.Slots))
	copy(c.Slots, s.Slots)
	c.Workers = make([]Worker, len(s.Workers))
	copy(c.Workers, s.Workers)
	return &c
}

// NextSlotPrice returns the escalated price for the purchase after this one.
func NextSlotPrice(current int64) int64 {
	return current * SlotPriceNumerator / SlotPriceDivisor
}
