package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	assert.NotZero(t, r.Next(), "zero seed must not lock xorshift at zero")
}

func TestIntRangeBounds(t *testing.T) {
	sources := map[string]Rand{
		"fast":   NewFastRand(7),
		"system": NewSystemRand(),
	}

	for name, r := range sources {
		t.Run(name, func(t *testing.T) {
			seen := make(map[int]bool)
			for i := 0; i < 2000; i++ {
				v := IntRange(r, 2, 6)
				assert.GreaterOrEqual(t, v, 2)
				assert.LessOrEqual(t, v, 6)
				seen[v] = true
			}
			assert.Len(t, seen, 5, "every value in range should appear")
		})
	}
}

func TestIntnNonPositive(t *testing.T) {
	assert.Equal(t, 0, NewFastRand(1).Intn(0))
	assert.Equal(t, 0, NewSystemRand().Intn(-3))
	assert.Equal(t, 4, IntRange(NewFastRand(1), 4, 4))
}
