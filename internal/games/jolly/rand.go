package jolly

import "math/rand"

// Rand is the random source the simulation draws from.
// *rand.Rand satisfies it; tests inject scripted sources to pin outcomes.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRand returns a seeded source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform returns a value in [0, k).
func uniform(rng Rand, k float64) float64 {
	return rng.Float64() * k
}
