package reward

import "github.com/dmkorzh/farmbox/internal/domain"

// Harvest outcome tuning.
const (
	greenCommonChance   = 0.9 // common branch; the remainder is the mutation branch
	greenSeedMin        = 1
	greenSeedMax        = 3
	greenFruitMax       = 1
	goldFruitChance     = 0.7
	goldBonusSeedAmount = 1
)

// DumpEntry is one row of the dump-sink drop table. MinTier gates which dumped
// resources can reach the entry.
type DumpEntry struct {
	Kind       domain.ResourceKind `json:"kind"`
	Quantity   int                 `json:"quantity"`
	DropChance float64             `json:"drop_chance"`
	MinTier    int                 `json:"min_tier"`
}

// dumpTable returns the fixed drop table for the dump sink.
// Selection among eligible entries is uniform; DropChance is carried for
// display and tuning but is not a selection weight (see Resolver.ResolveDump).
func dumpTable() []DumpEntry {
	return []DumpEntry{
		{Kind: domain.ResourceGreenSeed, Quantity: 2, DropChance: 0.40, MinTier: 1},
		{Kind: domain.ResourceFertilizer, Quantity: 1, DropChance: 0.50, MinTier: 1},
		{Kind: domain.ResourceGreenFruit, Quantity: 1, DropChance: 0.35, MinTier: 1},
		{Kind: domain.ResourceGoldSeed, Quantity: 1, DropChance: 0.25, MinTier: 2},
		{Kind: domain.ResourceGoldFruit, Quantity: 1, DropChance: 0.20, MinTier: 2},
		{Kind: domain.ResourceWaterBottle, Quantity: 1, DropChance: 0.30, MinTier: 2},
		{Kind: domain.ResourceAccelerator, Quantity: 1, DropChance: 0.15, MinTier: 3},
		{Kind: domain.ResourceFarmTicket, Quantity: 1, DropChance: 0.10, MinTier: 3},
	}
}

// DumpTable exposes a copy of the drop table for the query API.
func DumpTable() []DumpEntry {
	return dumpTable()
}
