package dice

import (
	"math/rand/v2"
)

// Source is the random generator consumed by the rolls. *rand.Rand
// satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// NewSource returns a deterministic generator for the given seed. Two
// sources built from the same seed produce the same sequence.
func NewSource(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// RandomSource returns a generator seeded from the runtime entropy source.
func RandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
