package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propcheck/rng"
)

func TestConstAlwaysYieldsValue(t *testing.T) {
	g := Const("fixed")
	r := rng.New(1)

	edges, r := g.InitEdges(5, r)
	assert.Empty(t, edges)

	for i := 0; i < 10; i++ {
		var v string
		v, edges, r = g.Next(SizeParam{Size: i}, edges, r)
		require.Equal(t, "fixed", v)
	}
}

func TestIntEdgesConsumedFrontToBack(t *testing.T) {
	g := Int()
	r := rng.New(1)

	edges, r := g.InitEdges(5, r)
	require.Equal(t, []int{0, 1, -1, math.MaxInt, math.MinInt}, edges)

	var got []int
	for len(edges) > 0 {
		var v int
		v, edges, r = g.Next(SizeParam{}, edges, r)
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, -1, math.MaxInt, math.MinInt}, got)
}

func TestIntEdgesTruncatedToMaxCount(t *testing.T) {
	g := Int()

	edges, _ := g.InitEdges(2, rng.New(1))
	assert.Equal(t, []int{0, 1}, edges)

	edges, _ = g.InitEdges(0, rng.New(1))
	assert.Empty(t, edges)

	edges, _ = g.InitEdges(-1, rng.New(1))
	assert.Empty(t, edges)
}

func TestIntRangeStaysWithinBounds(t *testing.T) {
	g := IntRange(-5, 5)
	r := rng.New(7)

	edges, r := g.InitEdges(10, r)
	assert.Equal(t, []int{-5, 5, 0}, edges)

	for i := 0; i < 500; i++ {
		var v int
		v, edges, r = g.Next(SizeParam{}, edges, r)
		require.GreaterOrEqual(t, v, -5)
		require.LessOrEqual(t, v, 5)
	}
}

func TestIntRangeSwapsInvertedBounds(t *testing.T) {
	g := IntRange(9, 3)
	r := rng.New(3)

	var edges []int
	for i := 0; i < 100; i++ {
		var v int
		v, edges, r = g.Next(SizeParam{}, edges, r)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 9)
	}
}

func TestBoolYieldsBothValues(t *testing.T) {
	g := Bool()
	r := rng.New(1)

	seen := map[bool]bool{}
	var edges []bool
	for i := 0; i < 100; i++ {
		var v bool
		v, edges, r = g.Next(SizeParam{}, edges, r)
		seen[v] = true
	}
	assert.Len(t, seen, 2)
}

func TestSizeParamMaxSize(t *testing.T) {
	sp := SizeParam{MinSize: 3, SizeRange: 4, Size: 5}
	assert.Equal(t, 7, sp.MaxSize())
}
