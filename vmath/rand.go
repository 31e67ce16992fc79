// Package vmath holds the randomness used by placement, round generation and glyph selection.
package vmath

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the single injectable random source shared by the game
type Rand interface {
	// Intn returns a uniform value in [0, n); n <= 0 returns 0
	Intn(n int) int
}

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; a zero seed is replaced with 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Bool returns true with probability 1/2
func Bool(r Rand) bool {
	return r.Intn(2) == 1
}

// IntRange returns a uniform value in [lo, hi]
func IntRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// SystemRand wraps a PCG source seeded from the wall clock, safe for concurrent use
type SystemRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSystemRand creates the process-wide random source
func NewSystemRand() *SystemRand {
	seed := uint64(time.Now().UnixNano())
	return &SystemRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *SystemRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}
