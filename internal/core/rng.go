package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. One instance is created at startup and handed explicitly to the
// AI and to ball resets so tests can pin the sequence.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FloatN returns a random float64 in [-n, n].
func (r *RNG) FloatN(n float64) float64 {
	return (r.r.Float64()*2 - 1) * n
}

// Sign returns -1 or +1 with equal probability.
func (r *RNG) Sign() float64 {
	if r.r.IntN(2) == 1 {
		return 1
	}
	return -1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
