package propcheck

import (
	"golang.org/x/exp/slices"

	"propcheck/rng"
)

// maxPlannedSizes is the length of the pre-planned size sequence of a
// check.
const maxPlannedSizes = 10

// planSizes computes the sizes tried by the first iterations of a check:
// nine random sizes in [minSize, maxSize] with minSize prepended, sorted
// ascending. The smallest size is therefore always tried first and early
// iterations are biased towards small inputs, which are cheap to produce
// and tend to reveal bugs. Once the plan is consumed the loop falls back to
// drawing a uniform random size per iteration.
func planSizes(minSize, maxSize int, r rng.Rand) ([]int, rng.Rand) {
	sizes := make([]int, 0, maxPlannedSizes)
	sizes = append(sizes, minSize)
	for len(sizes) < maxPlannedSizes {
		var s int
		s, r = r.ChooseInt(minSize, maxSize)
		sizes = append(sizes, s)
	}
	slices.Sort(sizes)
	return sizes, r
}
