// Package rng provides a small deterministic pseudo-random state with value
// semantics.
//
// Unlike math/rand, a Rand is an immutable value: drawing from it returns
// the drawn value together with the advanced state, so random state can be
// threaded explicitly through a purely functional loop and a check can be
// replayed from its seed.
package rng

import "time"

// 48-bit linear congruential generator constants.
const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	mask       = (1 << 48) - 1
)

// Rand is an immutable pseudo-random state. All methods leave the receiver
// untouched and return the advanced state alongside the drawn value.
type Rand struct {
	seed int64
}

// New returns a Rand initialized from the provided seed. The same seed
// always yields the same sequence of values.
func New(seed int64) Rand {
	return Rand{seed: (seed ^ multiplier) & mask}
}

// Default returns a Rand seeded from the wall clock. It is the fallback
// used when the caller does not provide a seed of its own.
func Default() Rand {
	return New(time.Now().UnixNano())
}

// next advances the state and returns the requested number of random bits
// (at most 48) together with the new state.
func (r Rand) next(bits int) (int64, Rand) {
	seed := (r.seed*multiplier + addend) & mask
	return seed >> (48 - bits), Rand{seed: seed}
}

// Int returns a non-negative pseudo-random int and the advanced state.
func (r Rand) Int() (int, Rand) {
	v, next := r.next(47)
	return int(v), next
}

// Int64 returns a pseudo-random int64 spanning the full value range and the
// advanced state.
func (r Rand) Int64() (int64, Rand) {
	hi, r1 := r.next(32)
	lo, r2 := r1.next(32)
	return hi<<32 | lo, r2
}

// IntN returns a pseudo-random int in [0, n) and the advanced state.
// n must be positive.
func (r Rand) IntN(n int) (int, Rand) {
	if n <= 0 {
		panic("rng: IntN called with non-positive n")
	}
	v, next := r.next(31)
	return int(v % int64(n)), next
}

// ChooseInt returns a pseudo-random int in [min, max] (both bounds
// inclusive) and the advanced state. A degenerate range collapses to min
// without advancing the state.
func (r Rand) ChooseInt(min, max int) (int, Rand) {
	if min >= max {
		return min, r
	}
	v, next := r.IntN(max - min + 1)
	return min + v, next
}

// Bool returns a pseudo-random boolean and the advanced state.
func (r Rand) Bool() (bool, Rand) {
	v, next := r.next(1)
	return v == 1, next
}
