package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
)

func TestBoundsOf(t *testing.T) {
	b := core.BoundsOf(core.C(3, 4), core.C(1, 6), core.C(5, 0))
	assert.Equal(t, core.C(1, 0), b.TopLeft)
	assert.Equal(t, core.C(5, 6), b.BottomRight)
	assert.Equal(t, 5, b.Width())
	assert.Equal(t, 7, b.Height())
	assert.Equal(t, 35, b.Area())
	assert.Equal(t, "(1,0)-(5,6)", b.String())
}

func TestBounds_SingleCoord(t *testing.T) {
	b := core.BoundsOf(core.C(2, 2))
	assert.True(t, b.Contains(core.C(2, 2)))
	assert.False(t, b.Contains(core.C(2, 3)))
	assert.Equal(t, 1, b.Area())
}

func TestBounds_Contains(t *testing.T) {
	b := core.Bounds{TopLeft: core.C(0, 0), BottomRight: core.C(2, 1)}
	for _, c := range []core.Coord{{0, 0}, {2, 1}, {1, 1}} {
		assert.Truef(t, b.Contains(c), "Contains(%v)", c)
	}
	for _, c := range []core.Coord{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.Falsef(t, b.Contains(c), "Contains(%v)", c)
	}
}

func TestBounds_Inverted(t *testing.T) {
	b := core.Bounds{TopLeft: core.C(3, 3), BottomRight: core.C(1, 1)}
	assert.Equal(t, 0, b.Width())
	assert.Equal(t, 0, b.Area())
	assert.False(t, b.Contains(core.C(2, 2)))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, core.Manhattan(core.C(1, 1), core.C(1, 1)))
	assert.Equal(t, 8, core.Manhattan(core.C(0, 0), core.C(5, 3)))
	assert.Equal(t, 8, core.Manhattan(core.C(5, 3), core.C(0, 0)))
}

func TestCardinalNeighbors_Order(t *testing.T) {
	b := core.Bounds{TopLeft: core.C(0, 0), BottomRight: core.C(4, 4)}
	got := core.CardinalNeighbors(core.C(2, 2), b)
	want := []core.Coord{{1, 2}, {3, 2}, {2, 1}, {2, 3}}
	assert.Equal(t, want, got)
}

func TestCardinalNeighbors_Clipped(t *testing.T) {
	b := core.Bounds{TopLeft: core.C(0, 0), BottomRight: core.C(4, 4)}
	assert.Equal(t, []core.Coord{{1, 0}, {0, 1}}, core.CardinalNeighbors(core.C(0, 0), b))
	assert.Equal(t, []core.Coord{{3, 4}, {4, 3}}, core.CardinalNeighbors(core.C(4, 4), b))
}

func TestPathFrom(t *testing.T) {
	parents := map[core.Coord]core.Coord{
		{2, 0}: {1, 0},
		{1, 0}: {0, 0},
	}
	lookup := func(c core.Coord) (core.Coord, bool) {
		p, ok := parents[c]
		return p, ok
	}

	path := core.PathFrom(core.C(2, 0), lookup)
	require.Len(t, path, 3)
	assert.Equal(t, []core.Coord{{0, 0}, {1, 0}, {2, 0}}, path)

	// the root on its own is a path of length 1
	assert.Equal(t, []core.Coord{{0, 0}}, core.PathFrom(core.C(0, 0), lookup))
}
