package random

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Everything that consumes randomness takes an *RNG explicitly;
// there is no package-level generator.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Byte returns a uniformly distributed uint8.
func (r *RNG) Byte() uint8 {
	return uint8(r.r.IntN(256))
}

// Uint8n returns a random uint8 in [0, n). A zero bound is an empty range
// and yields 0.
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// IntN returns a random int in [0, n). Panics if n <= 0.
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
