package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
)

// randomWalls scatters roughly density*n*n obstacles over an n×n square,
// keeping both corners free.
func randomWalls(n int, density float64, seed int64) []core.Coord {
	r := rand.New(rand.NewSource(seed))
	var walls []core.Coord
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x == 0 && y == 0) || (x == n-1 && y == n-1) {
				continue
			}
			if r.Float64() < density {
				walls = append(walls, core.C(x, y))
			}
		}
	}
	return walls
}

// BenchmarkBreadthFirst_Open measures BFS corner to corner on an empty 200×200 grid.
// Complexity: O(W×H)
func BenchmarkBreadthFirst_Open(b *testing.B) {
	const n = 200
	srch := bfs.NewSearch(core.C(0, 0), core.C(n-1, n-1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = srch.Run()
	}
}

// BenchmarkBreadthFirst_Random measures BFS on a 200×200 grid with 25% walls.
func BenchmarkBreadthFirst_Random(b *testing.B) {
	const n = 200
	srch := bfs.NewSearch(core.C(0, 0), core.C(n-1, n-1),
		bfs.WithObstacles(randomWalls(n, 0.25, 42)...),
		bfs.WithBounds(core.C(0, 0), core.C(n-1, n-1)),
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = srch.Run()
	}
}

// BenchmarkDepthFirst_Random is the depth-first counterpart of BenchmarkBreadthFirst_Random.
func BenchmarkDepthFirst_Random(b *testing.B) {
	const n = 200
	srch := bfs.NewSearch(core.C(0, 0), core.C(n-1, n-1),
		bfs.WithObstacles(randomWalls(n, 0.25, 42)...),
		bfs.WithBounds(core.C(0, 0), core.C(n-1, n-1)),
		bfs.WithDFS(),
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = srch.Run()
	}
}
