package domain

// ResourceKind identifies a stackable resource in the farm ledger.
type ResourceKind string

const (
	ResourceGreenSeed   ResourceKind = "seed_green"
	ResourceGoldSeed    ResourceKind = "seed_gold"
	ResourceGreenFruit  ResourceKind = "fruit_green"
	ResourceGoldFruit   ResourceKind = "fruit_gold"
	ResourceFertilizer  ResourceKind = "fertilizer"
	ResourceWaterBottle ResourceKind = "water_bottle"
	ResourceAccelerator ResourceKind = "accelerator"
	ResourceFarmTicket  ResourceKind = "farm_ticket"
)

// AllResources lists every ledger resource kind.
func AllResources() []ResourceKind {
	return []ResourceKind{
		ResourceGreenSeed,
		ResourceGoldSeed,
		ResourceGreenFruit,
		ResourceGoldFruit,
		ResourceFertilizer,
		ResourceWaterBottle,
		ResourceAccelerator,
		ResourceFarmTicket,
	}
}

// Valid reports whether k is a known resource kind.
func (k ResourceKind) Valid() bool {
	switch k {
	case ResourceGreenSeed, ResourceGoldSeed, ResourceGreenFruit, ResourceGoldFruit,
		ResourceFertilizer, ResourceWaterBottle, ResourceAccelerator, ResourceFarmTicket:
		return true
	}
	return false
}

// DumpTier returns the dump-sink tier a resource feeds when sacrificed.
// Higher tiers unlock more of the drop table.
func (k ResourceKind) DumpTier() int {
	switch k {
	case ResourceGreenSeed, ResourceGreenFruit:
		return 1
	case ResourceGoldSeed, ResourceGoldFruit, ResourceFertilizer:
		return 2
	case ResourceWaterBottle, ResourceAccelerator, ResourceFarmTicket:
		return 3
	}
	return 0
}

// ResourceDelta is a signed bundle entry produced by the reward resolver.
type ResourceDelta struct {
	Kind     ResourceKind `json:"kind"`
	Quantity int          `json:"quantity"`
}
