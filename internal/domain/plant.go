package domain

import (
	"fmt"
	"time"
)

// PlantKind identifies a plant variety.
type PlantKind string

const (
	PlantGreen PlantKind = "green"
	PlantGold  PlantKind = "gold"
)

// Valid reports whether k is a known plant kind.
func (k PlantKind) Valid() bool {
	return k == PlantGreen || k == PlantGold
}

// PlantConfig is the static per-kind tuning. Immutable at runtime: growth
// duration is captured into the slot at plant time, so tuning changes never
// retroactively alter in-flight plants.
type PlantConfig struct {
	Kind           PlantKind
	SeedCost       ResourceKind
	WaterCost      int
	GrowthDuration time.Duration
}

var plantConfigs = map[PlantKind]PlantConfig{
	PlantGreen: {
		Kind:           PlantGreen,
		SeedCost:       ResourceGreenSeed,
		WaterCost:      PlantWaterCost,
		GrowthDuration: time.Minute,
	},
	PlantGold: {
		Kind:           PlantGold,
		SeedCost:       ResourceGoldSeed,
		WaterCost:      PlantWaterCost,
		GrowthDuration: 3 * time.Minute,
	},
}

// ConfigForPlant returns the static config for a plant kind.
func ConfigForPlant(kind PlantKind) (PlantConfig, error) {
	cfg, ok := plantConfigs[kind]
	if !ok {
		return PlantConfig{}, fmt.Errorf("%w: %s", ErrUnknownPlant, kind)
	}
	return cfg, nil
}

// SlotState is the lifecycle state of a planting slot.
type SlotState string

const (
	SlotEmpty   SlotState = "empty"
	SlotGrowing SlotState = "growing"
	SlotReady   SlotState = "ready"
)

// Slot is a single planting position. Empty slots carry no plant data.
type Slot struct {
	Index          int           `json:"index"`
	State          SlotState     `json:"state"`
	Plant          PlantKind     `json:"plant,omitempty"`
	PlantedAt      time.Time     `json:"planted_at,omitzero"`
	GrowthDuration time.Duration `json:"growth_duration,omitempty"`
	Level          int           `json:"level"`
}

// NewSlot returns an empty slot at the given index.
func NewSlot(index int) Slot {
	return Slot{Index: index, State: SlotEmpty, Level: 1}
}

// Occupied reports whether the slot currently holds a plant.
func (s *Slot) Occupied() bool {
	return s.State != SlotEmpty
}

// ReadyAt returns the absolute time the plant finishes growing.
func (s *Slot) ReadyAt() time.Time {
	return s.PlantedAt.Add(s.GrowthDuration)
}

// Remaining returns the growth time left at now, floored at zero.
func (s *Slot) Remaining(now time.Time) time.Duration {
	if s.State != SlotGrowing {
		return 0
	}
	remaining := s.ReadyAt().Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Clear resets the slot to Empty, dropping all plant data but keeping the level.
func (s *Slot) Clear() {
	s.State = SlotEmpty
	s.Plant = ""
	s.PlantedAt = time.Time{}
	s.GrowthDuration = 0
}
