// Package generator defines the value-generation capability consumed by the
// check engine.
//
// A Generator produces values of a single type from a size bound, an
// edge-case pool and a random state. The engine owns the pool and the
// random state for the duration of a check and threads both through every
// call, so generators themselves stay stateless.
package generator

import (
	"math"

	"golang.org/x/exp/slices"

	"propcheck/rng"
)

// SizeParam bounds the size of a single generated value.
type SizeParam struct {
	// MinSize is the smallest allowed size.
	MinSize int
	// SizeRange is the span above MinSize, so MaxSize = MinSize + SizeRange.
	SizeRange int
	// Size is the size selected for this particular draw. It always lies in
	// [MinSize, MaxSize].
	Size int
}

// MaxSize returns the largest allowed size.
func (sp SizeParam) MaxSize() int {
	return sp.MinSize + sp.SizeRange
}

// Generator produces values of type T.
type Generator[T any] interface {
	// InitEdges returns up to maxCount edge-case candidates for the pool the
	// engine seeds before the first evaluation, together with the advanced
	// random state.
	InitEdges(maxCount int, r rng.Rand) ([]T, rng.Rand)

	// Next produces a single value. Implementations consume the edge pool
	// front to back before falling back to random generation and return the
	// remaining pool together with the advanced random state.
	Next(sp SizeParam, edges []T, r rng.Rand) (T, []T, rng.Rand)
}

type constGen[T any] struct {
	value T
}

// Const returns a generator that always produces the provided value and has
// no edge cases.
func Const[T any](value T) Generator[T] {
	return constGen[T]{value: value}
}

func (g constGen[T]) InitEdges(maxCount int, r rng.Rand) ([]T, rng.Rand) {
	return nil, r
}

func (g constGen[T]) Next(sp SizeParam, edges []T, r rng.Rand) (T, []T, rng.Rand) {
	return g.value, edges, r
}

type intGen struct{}

// Int returns a generator for ints with boundary values as edge cases.
func Int() Generator[int] {
	return intGen{}
}

func (intGen) InitEdges(maxCount int, r rng.Rand) ([]int, rng.Rand) {
	edges := []int{0, 1, -1, math.MaxInt, math.MinInt}
	return truncateEdges(edges, maxCount), r
}

func (intGen) Next(sp SizeParam, edges []int, r rng.Rand) (int, []int, rng.Rand) {
	if len(edges) > 0 {
		return edges[0], edges[1:], r
	}
	v, next := r.Int64()
	return int(v), edges, next
}

type intRangeGen struct {
	min, max int
}

// IntRange returns a generator for ints in [min, max] with the bounds as
// edge cases.
func IntRange(min, max int) Generator[int] {
	if min > max {
		min, max = max, min
	}
	return intRangeGen{min: min, max: max}
}

func (g intRangeGen) InitEdges(maxCount int, r rng.Rand) ([]int, rng.Rand) {
	edges := []int{g.min}
	if g.max != g.min {
		edges = append(edges, g.max)
	}
	if g.min < 0 && g.max > 0 {
		edges = append(edges, 0)
	}
	return truncateEdges(edges, maxCount), r
}

func (g intRangeGen) Next(sp SizeParam, edges []int, r rng.Rand) (int, []int, rng.Rand) {
	if len(edges) > 0 {
		return edges[0], edges[1:], r
	}
	v, next := r.ChooseInt(g.min, g.max)
	return v, edges, next
}

type boolGen struct{}

// Bool returns a generator for booleans. Both values are considered common
// enough that no edge cases are seeded.
func Bool() Generator[bool] {
	return boolGen{}
}

func (boolGen) InitEdges(maxCount int, r rng.Rand) ([]bool, rng.Rand) {
	return nil, r
}

func (boolGen) Next(sp SizeParam, edges []bool, r rng.Rand) (bool, []bool, rng.Rand) {
	if len(edges) > 0 {
		return edges[0], edges[1:], r
	}
	v, next := r.Bool()
	return v, edges, next
}

// truncateEdges bounds an edge candidate list to maxCount entries. A
// non-positive maxCount disables edge seeding entirely.
func truncateEdges[T any](edges []T, maxCount int) []T {
	if maxCount <= 0 {
		return nil
	}
	if len(edges) > maxCount {
		edges = edges[:maxCount]
	}
	return slices.Clone(edges)
}
