package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomIntBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := RandomInt(1, 3)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 3)
	}
}

func TestRandomIntDegenerateRange(t *testing.T) {
	assert.Equal(t, 5, RandomInt(5, 5))
	assert.Equal(t, 7, RandomInt(7, 2))
}

func TestRandomFloatBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		f := RandomFloat()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
