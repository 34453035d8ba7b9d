package runner

import (
	"math"
	"math/rand"
)

// chanceResolution is the number of buckets a probability is rolled against.
const chanceResolution = 10000

// RNG draws uniform integers over closed ranges.
type RNG interface {
	IntRange(lo, hi int) int
}

// SeededRNG is the default RNG, backed by math/rand with an explicit seed.
type SeededRNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG for the given seed.
func NewRNG(seed int64) *SeededRNG {
	return &SeededRNG{r: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [lo, hi].
func (s *SeededRNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// roll returns true with probability p.
func roll(rng RNG, p float64) bool {
	threshold := int(math.Round(p * chanceResolution))
	return rng.IntRange(0, chanceResolution-1) < threshold
}
