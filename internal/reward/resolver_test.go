package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkorzh/farmbox/internal/domain"
)

// seqRnd returns a random source replaying the given draws in order.
func seqRnd(draws ...float64) func() float64 {
	i := 0
	return func() float64 {
		d := draws[i%len(draws)]
		i++
		return d
	}
}

func findDelta(t *testing.T, deltas []domain.ResourceDelta, kind domain.ResourceKind) domain.ResourceDelta {
	t.Helper()
	for _, d := range deltas {
		if d.Kind == kind {
			return d
		}
	}
	t.Fatalf("delta for %s not found", kind)
	return domain.ResourceDelta{}
}

func TestHarvestGreenCommonBranch(t *testing.T) {
	// Branch roll 0.5 < 0.9, then max seeds and one fruit.
	r := NewResolver(seqRnd(0.5, 0.99, 0.99))

	deltas, err := r.Harvest(domain.PlantGreen)
	require.NoError(t, err)

	seeds := findDelta(t, deltas, domain.ResourceGreenSeed)
	assert.GreaterOrEqual(t, seeds.Quantity, 1)
	assert.LessOrEqual(t, seeds.Quantity, 3)
	assert.Equal(t, 3, seeds.Quantity)
	assert.Equal(t, 1, findDelta(t, deltas, domain.ResourceGreenFruit).Quantity)
}

func TestHarvestGreenMutationBranch(t *testing.T) {
	r := NewResolver(seqRnd(0.95))

	deltas, err := r.Harvest(domain.PlantGreen)
	require.NoError(t, err)
	require.Len(t, deltas, 1)
	assert.Equal(t, domain.ResourceGoldSeed, deltas[0].Kind)
	assert.Equal(t, 1, deltas[0].Quantity)
}

func TestHarvestGoldAlwaysYieldsGreenSeed(t *testing.T) {
	t.Run("with fruit", func(t *testing.T) {
		r := NewResolver(seqRnd(0.1))
		deltas, err := r.Harvest(domain.PlantGold)
		require.NoError(t, err)
		assert.Equal(t, 1, findDelta(t, deltas, domain.ResourceGreenSeed).Quantity)
		assert.Equal(t, 1, findDelta(t, deltas, domain.ResourceGoldFruit).Quantity)
	})

	t.Run("without fruit", func(t *testing.T) {
		r := NewResolver(seqRnd(0.8))
		deltas, err := r.Harvest(domain.PlantGold)
		require.NoError(t, err)
		require.Len(t, deltas, 1)
		assert.Equal(t, domain.ResourceGreenSeed, deltas[0].Kind)
	})
}

func TestHarvestUnknownPlant(t *testing.T) {
	r := NewResolver(seqRnd(0.5))
	_, err := r.Harvest(domain.PlantKind("cactus"))
	assert.ErrorIs(t, err, domain.ErrUnknownPlant)
}

func TestResolveDumpTierGating(t *testing.T) {
	r := NewResolver(seqRnd(0.0))

	t.Run("tier zero yields nothing", func(t *testing.T) {
		_, ok := r.ResolveDump(0)
		assert.False(t, ok)
	})

	t.Run("tier one never drops gated entries", func(t *testing.T) {
		for _, draw := range []float64{0.0, 0.3, 0.6, 0.99} {
			entry, ok := NewResolver(seqRnd(draw)).ResolveDump(1)
			require.True(t, ok)
			assert.LessOrEqual(t, entry.MinTier, 1)
		}
	})

	t.Run("tier three reaches the full table", func(t *testing.T) {
		seen := make(map[domain.ResourceKind]bool)
		for i := 0; i < len(dumpTable()); i++ {
			draw := (float64(i) + 0.5) / float64(len(dumpTable()))
			entry, ok := NewResolver(seqRnd(draw)).ResolveDump(3)
			require.True(t, ok)
			seen[entry.Kind] = true
		}
		assert.Len(t, seen, len(dumpTable()))
	})
}
