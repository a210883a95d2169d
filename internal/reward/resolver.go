package reward

import (
	"fmt"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/utils"
)

// Resolver draws randomized reward bundles from the fixed outcome tables.
// It is stateless given its random source, which is injected so tests can
// drive outcomes deterministically.
type Resolver struct {
	rnd func() float64
}

// NewResolver creates a resolver. A nil rnd falls back to the shared game RNG.
func NewResolver(rnd func() float64) *Resolver {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Resolver{rnd: rnd}
}

// Harvest resolves the reward bundle for harvesting a plant of the given kind.
//
// Green plants: 90% common branch with 1-3 green seeds and 0-1 green fruits,
// otherwise a mutation yielding a single gold seed. Gold plants: always one
// green seed, plus a 70% chance of one gold fruit.
func (r *Resolver) Harvest(kind domain.PlantKind) ([]domain.ResourceDelta, error) {
	switch kind {
	case domain.PlantGreen:
		if r.rnd() < greenCommonChance {
			return []domain.ResourceDelta{
				{Kind: domain.ResourceGreenSeed, Quantity: r.randInt(greenSeedMin, greenSeedMax)},
				{Kind: domain.ResourceGreenFruit, Quantity: r.randInt(0, greenFruitMax)},
			}, nil
		}
		return []domain.ResourceDelta{
			{Kind: domain.ResourceGoldSeed, Quantity: 1},
		}, nil

	case domain.PlantGold:
		deltas := []domain.ResourceDelta{
			{Kind: domain.ResourceGreenSeed, Quantity: goldBonusSeedAmount},
		}
		if r.rnd() < goldFruitChance {
			deltas = append(deltas, domain.ResourceDelta{Kind: domain.ResourceGoldFruit, Quantity: 1})
		}
		return deltas, nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPlant, kind)
}

// ResolveDump resolves the drop for sacrificing one resource unit at the
// given tier. Entries are filtered to those whose MinTier the dump reaches,
// then one is selected uniformly; when nothing qualifies there is no drop.
// DropChance does not weight the selection.
func (r *Resolver) ResolveDump(tier int) (DumpEntry, bool) {
	var eligible []DumpEntry
	for _, entry := range dumpTable() {
		if tier >= entry.MinTier {
			eligible = append(eligible, entry)
		}
	}
	if len(eligible) == 0 {
		return DumpEntry{}, false
	}
	return eligible[r.randInt(0, len(eligible)-1)], true
}

// randInt maps a draw of the injected source onto [min, max] inclusive.
func (r *Resolver) randInt(min, max int) int {
	if min >= max {
		return min
	}
	n := min + int(r.rnd()*float64(max-min+1))
	if n > max {
		n = max
	}
	return n
}
