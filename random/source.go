// Package random provides the randomness abstraction used by the engine.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// Source is the randomness provider for every probabilistic roll.
//
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a non-negative pseudo-random int in [0, n). n must be > 0.
	Intn(n int) int
	// Perm returns a pseudo-random permutation of [0, n).
	Perm(n int) []int
}

// New returns a Source seeded with seed. The same seed always yields the
// same sequence.
func New(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Bernoulli runs n independent trials with success probability p and returns
// the number of successes.
func Bernoulli(src Source, n int, p float64) int {
	hits := 0
	for i := 0; i < n; i++ {
		if src.Float64() < p {
			hits++
		}
	}
	return hits
}

// Uniform returns a draw from [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
