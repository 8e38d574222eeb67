// Package rng provides the seedable random streams used by the simulation.
//
// Every simulated strategy owns its own FastRNG, so no locking is needed and
// results do not depend on how strategies are scheduled across goroutines.
package rng

import (
	"math/bits"
	"time"
)

const golden = 0x9e3779b97f4a7c15

// FastRNG is a per-goroutine RNG state to avoid locking.
type FastRNG struct {
	state uint64
}

func NewFastRNG(seed int64) *FastRNG {
	return &FastRNG{state: uint64(seed)}
}

// Uint64 advances the splitmix64 state and returns the mixed output.
func (r *FastRNG) Uint64() uint64 {
	r.state += golden
	return mix(r.state)
}

// IntN returns a uniform value in [0, n). It panics if n <= 0, like
// math/rand/v2.
func (r *FastRNG) IntN(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to IntN")
	}
	bound := uint64(n)
	hi, lo := bits.Mul64(r.Uint64(), bound)
	if lo < bound {
		// Lemire's rejection step keeps the draw unbiased.
		thresh := -bound % bound
		for lo < thresh {
			hi, lo = bits.Mul64(r.Uint64(), bound)
		}
	}
	return int(hi)
}

// Shuffle performs a Fisher-Yates shuffle of n elements using swap.
func (r *FastRNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.IntN(i+1))
	}
}

// Derive returns the seed for stream number stream under base. Distinct
// streams of the same base never share a seed.
func Derive(base int64, stream int) int64 {
	return int64(mix(uint64(base) ^ mix(uint64(stream)+golden)))
}

// Seed returns seed unchanged unless it is zero, in which case a time based
// seed is returned.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
