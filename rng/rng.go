// Package rng provides the explicit, per-chain and per-generation random
// streams required by spec.md §8 property 10 and §9 "Design notes" (no
// global math/rand state), derived deterministically from a single master
// seed.
package rng

import (
	"math/rand"
)

// Stream is a thin wrapper over *rand.Rand exposing exactly the operations
// the SA/GA packages need, so callers never reach for the global
// math/rand functions.
type Stream struct {
	r *rand.Rand
}

// New builds a Stream seeded deterministically from seed.
func New(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// Child derives an independent, deterministic sub-stream for chain/generation
// index i, so that (masterSeed, i) always reproduces the same stream
// regardless of goroutine scheduling order (spec.md §5 "Determinism").
func Child(masterSeed int64, i int) *Stream {
	return New(masterSeed*1_000_003 + int64(i))
}

// Float64 returns a pseudo-random number in [0,1).
func (s *Stream) Float64() float64 { return s.r.Float64() }

// NormFloat64 returns a standard-normal sample.
func (s *Stream) NormFloat64() float64 { return s.r.NormFloat64() }

// Intn returns a pseudo-random int in [0,n).
func (s *Stream) Intn(n int) int { return s.r.Intn(n) }

// Uniform returns a pseudo-random float64 in [lo,hi).
func (s *Stream) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

// Bool returns true with probability p.
func (s *Stream) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

// Perm returns a pseudo-random permutation of [0,n).
func (s *Stream) Perm(n int) []int { return s.r.Perm(n) }

// Shuffle shuffles a slice of length n in place using swap(i, j).
func (s *Stream) Shuffle(n int, swap func(i, j int)) { s.r.Shuffle(n, swap) }
