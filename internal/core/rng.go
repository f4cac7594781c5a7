package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Stream derives an independent RNG for the i-th consumer of a seed, so
// sibling simulations built from one seed do not share a sequence.
func Stream(seed int64, i int) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), uint64(i)+1))}
}

// Float32 returns a uniform value in [0, 1).
func (r *RNG) Float32() float32 {
	return r.r.Float32()
}
