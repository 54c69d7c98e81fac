package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
)

// singleGap:
//
//	S..###
//	.#....
//	.#.###
//	.#.#.E
//	.#...#
var singleGap = []core.Coord{
	{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0},
	{X: 1, Y: 1},
	{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 2},
	{X: 1, Y: 3}, {X: 3, Y: 3},
	{X: 1, Y: 4}, {X: 5, Y: 4},
}

// multiRoute:
//
//	S..###
//	.#....
//	.#.##.
//	.#.#.E
//	.....#
var multiRoute = []core.Coord{
	{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0},
	{X: 1, Y: 1},
	{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2},
	{X: 1, Y: 3}, {X: 3, Y: 3},
	{X: 5, Y: 4},
}

// staggered is a 7×7 field where moving up is made expensive in tests:
//
//	S......
//	.#####.
//	.#.....
//	.#.####
//	.#.....
//	.#####E
//	.......
var staggered = []core.Coord{
	{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 1},
	{X: 1, Y: 2},
	{X: 1, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}, {X: 6, Y: 3},
	{X: 1, Y: 4},
	{X: 1, Y: 5}, {X: 2, Y: 5}, {X: 3, Y: 5}, {X: 4, Y: 5}, {X: 5, Y: 5},
}

func staggeredSearch(opts ...dijkstra.Option) *dijkstra.Search {
	base := []dijkstra.Option{
		dijkstra.WithBounds(core.C(0, 0), core.C(6, 6)),
		dijkstra.WithObstacles(staggered...),
	}
	return dijkstra.NewSearch(core.C(0, 0), core.C(6, 5), append(base, opts...)...)
}

// upIsExpensive charges 10 for a move up and 1 otherwise.
func upIsExpensive(in dijkstra.CostInput) int {
	if in.Origin.Y > in.Next.Y {
		return in.Cost + 10
	}
	return in.Cost + 1
}

func TestSearch_SingleGap(t *testing.T) {
	res := dijkstra.NewSearch(core.C(0, 0), core.C(5, 3), dijkstra.WithObstacles(singleGap...)).Run()
	require.True(t, res.Found())

	path, ok := res.Path()
	require.True(t, ok)
	want := []core.Coord{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 3}, {X: 5, Y: 3},
	}
	assert.Equal(t, want, path)

	cost, ok := res.Cost()
	require.True(t, ok)
	assert.Equal(t, 10, cost)
}

func TestSearch_MultiRoute(t *testing.T) {
	res := dijkstra.NewSearch(core.C(0, 0), core.C(5, 3), dijkstra.WithObstacles(multiRoute...)).Run()
	path, ok := res.Path()
	require.True(t, ok)
	want := []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3}}
	assert.Equal(t, want, path)
}

func TestSearch_StaggeredUniform(t *testing.T) {
	path, ok := staggeredSearch().Run().Path()
	require.True(t, ok)
	want := []core.Coord{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4}, {X: 0, Y: 5}, {X: 0, Y: 6},
		{X: 1, Y: 6}, {X: 2, Y: 6}, {X: 3, Y: 6}, {X: 4, Y: 6}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5},
	}
	assert.Equal(t, want, path)
}

func TestSearch_StaggeredUpIsExpensive(t *testing.T) {
	res := staggeredSearch(dijkstra.WithCostFunc(upIsExpensive)).Run()
	path, ok := res.Path()
	require.True(t, ok)
	want := []core.Coord{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0},
		{X: 6, Y: 1}, {X: 6, Y: 2}, {X: 5, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2},
		{X: 2, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 5},
	}
	assert.Equal(t, want, path)
	assert.Len(t, path, 20)

	cost, _ := res.Cost()
	assert.Equal(t, 19, cost)
	for i := 1; i < len(path); i++ {
		assert.GreaterOrEqualf(t, path[i].Y, path[i-1].Y, "upward move %v→%v", path[i-1], path[i])
	}
}

func TestSearch_DirectionalCostMatchesClosure(t *testing.T) {
	want, _ := staggeredSearch(dijkstra.WithCostFunc(upIsExpensive)).Run().Path()
	got, ok := staggeredSearch(dijkstra.WithCostFunc(dijkstra.DirectionalCost(10, 1, 1, 1))).Run().Path()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

// TestSearch_UniformMatchesBFS checks that the default cost function yields
// the same path length as breadth-first search on the same layout.
func TestSearch_UniformMatchesBFS(t *testing.T) {
	cases := []struct {
		name        string
		walls       []core.Coord
		start, end  core.Coord
		bottomRight core.Coord
	}{
		{"singleGap", singleGap, core.C(0, 0), core.C(5, 3), core.C(5, 4)},
		{"singleGapWide", singleGap, core.C(0, 0), core.C(5, 3), core.C(6, 6)},
		{"multiRoute", multiRoute, core.C(0, 0), core.C(5, 3), core.C(5, 4)},
		{"staggered", staggered, core.C(0, 0), core.C(6, 5), core.C(6, 6)},
		{"sealed", []core.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}, core.C(3, 3), core.C(0, 0), core.C(3, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tl := core.C(0, 0)
			wres := dijkstra.NewSearch(tc.start, tc.end,
				dijkstra.WithObstacles(tc.walls...), dijkstra.WithBounds(tl, tc.bottomRight)).Run()
			bres, ok := bfs.NewSearch(tc.start, tc.end,
				bfs.WithObstacles(tc.walls...), bfs.WithBounds(tl, tc.bottomRight)).Run()

			require.Equal(t, ok, wres.Found())
			if !ok {
				return
			}
			wpath, _ := wres.Path()
			assert.Equal(t, bres.Len(), len(wpath))
			cost, _ := wres.Cost()
			assert.Equal(t, bres.Steps(), cost)
		})
	}
}

// TestSearch_Monotonic raises the cost of a single edge on the optimal route
// and checks that the optimum never gets cheaper.
func TestSearch_Monotonic(t *testing.T) {
	base := dijkstra.NewSearch(core.C(0, 0), core.C(5, 3), dijkstra.WithObstacles(multiRoute...)).Run()
	baseCost, ok := base.Cost()
	require.True(t, ok)

	from, to := core.C(3, 1), core.C(4, 1)
	for _, extra := range []int{0, 1, 2, 5, 50} {
		penalised := func(in dijkstra.CostInput) int {
			if in.Origin == from && in.Next == to {
				return in.Cost + 1 + extra
			}
			return in.Cost + 1
		}
		res := dijkstra.NewSearch(core.C(0, 0), core.C(5, 3),
			dijkstra.WithObstacles(multiRoute...),
			dijkstra.WithCostFunc(penalised),
		).Run()
		cost, ok := res.Cost()
		require.True(t, ok)
		assert.GreaterOrEqualf(t, cost, baseCost, "extra=%d", extra)
		// the detour round the bottom costs 10, so the optimum is capped there
		assert.Equalf(t, min(baseCost+extra, 10), cost, "extra=%d", extra)
	}
}

func TestSearch_NoPath(t *testing.T) {
	walls := []core.Coord{{X: 3, Y: 2}, {X: 5, Y: 2}, {X: 4, Y: 1}, {X: 4, Y: 3}}
	res := dijkstra.NewSearch(core.C(0, 0), core.C(4, 2),
		dijkstra.WithObstacles(walls...),
		dijkstra.WithBounds(core.C(0, 0), core.C(6, 6)),
	).Run()
	assert.False(t, res.Found())

	path, ok := res.Path()
	assert.False(t, ok)
	assert.Nil(t, path)

	_, ok = res.Cost()
	assert.False(t, ok)
	assert.Greater(t, res.Reached(), 1, "reachable cells still carry costs")
}

func TestSearch_StartIsEnd(t *testing.T) {
	res := dijkstra.NewSearch(core.C(1, 1), core.C(1, 1)).Run()
	path, ok := res.Path()
	require.True(t, ok)
	assert.Equal(t, []core.Coord{{X: 1, Y: 1}}, path)
	cost, _ := res.Cost()
	assert.Equal(t, 0, cost)
}

func TestSearch_CostAt(t *testing.T) {
	res := dijkstra.NewSearch(core.C(0, 0), core.C(2, 2)).Run()
	c, ok := res.CostAt(core.C(1, 1))
	require.True(t, ok)
	assert.Equal(t, 2, c)
	_, ok = res.CostAt(core.C(7, 7))
	assert.False(t, ok)
	assert.Positive(t, res.Relaxations())
}

func TestSearch_AddObstacles(t *testing.T) {
	srch := dijkstra.NewSearch(core.C(0, 0), core.C(2, 0))
	assert.Equal(t, core.BoundsOf(core.C(0, 0), core.C(2, 0)), srch.Bounds())

	srch.AddObstacles(core.C(1, 0), core.C(2, 1))
	assert.True(t, srch.IsObstacle(core.C(1, 0)))
	// (2,0) is now enclosed by (1,0) and (2,1)
	assert.False(t, srch.Run().Found())
}

func TestWithCostFunc_Nil(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrNilCostFunc, func() {
		dijkstra.NewSearch(core.C(0, 0), core.C(1, 1), dijkstra.WithCostFunc(nil))
	})
}

func TestDirectionalCost(t *testing.T) {
	fn := dijkstra.DirectionalCost(4, 3, 2, -1)
	o := core.C(5, 5)
	assert.Equal(t, 14, fn(dijkstra.CostInput{Origin: o, Next: core.C(5, 4), Cost: 10}))
	assert.Equal(t, 13, fn(dijkstra.CostInput{Origin: o, Next: core.C(5, 6), Cost: 10}))
	assert.Equal(t, 12, fn(dijkstra.CostInput{Origin: o, Next: core.C(4, 5), Cost: 10}))
	// negative weights clamp to zero
	assert.Equal(t, 10, fn(dijkstra.CostInput{Origin: o, Next: core.C(6, 5), Cost: 10}))
}
