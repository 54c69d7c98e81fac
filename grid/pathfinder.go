package grid

import (
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
)

// PathFinder binds a Grid to the bfs and dijkstra searches. Endpoints and
// obstacles come either from explicit coordinates or from marker values
// looked up in the grid.
type PathFinder[K Key, D comparable] struct {
	g          *Grid[K, D]
	start, end *core.Coord
	obstacles  []core.Coord
	withinGrid bool
}

// PathFinder returns an unconfigured PathFinder over g.
func (g *Grid[K, D]) PathFinder() *PathFinder[K, D] {
	return &PathFinder[K, D]{g: g}
}

// WithStartCoord sets the start coordinate.
func (pf *PathFinder[K, D]) WithStartCoord(c core.Coord) *PathFinder[K, D] {
	pf.start = &c
	return pf
}

// WithStart sets the start to the first cell holding marker. If no cell
// holds it the start becomes unresolved.
func (pf *PathFinder[K, D]) WithStart(marker D) *PathFinder[K, D] {
	pf.start = pf.locate(marker)
	return pf
}

// WithEndCoord sets the end coordinate.
func (pf *PathFinder[K, D]) WithEndCoord(c core.Coord) *PathFinder[K, D] {
	pf.end = &c
	return pf
}

// WithEnd sets the end to the first cell holding marker. If no cell holds it
// the end becomes unresolved.
func (pf *PathFinder[K, D]) WithEnd(marker D) *PathFinder[K, D] {
	pf.end = pf.locate(marker)
	return pf
}

// WithObstacleCoords adds explicit obstacles.
func (pf *PathFinder[K, D]) WithObstacleCoords(coords ...core.Coord) *PathFinder[K, D] {
	pf.obstacles = append(pf.obstacles, coords...)
	return pf
}

// WithObstacles adds every cell holding marker as an obstacle.
func (pf *PathFinder[K, D]) WithObstacles(marker D) *PathFinder[K, D] {
	for p := range pf.g.CollectCellsIter(marker) {
		pf.obstacles = append(pf.obstacles, p.Coord())
	}
	return pf
}

// WithinGrid limits the searches to the grid's bounding rectangle instead of
// the box around the endpoints and obstacles.
func (pf *PathFinder[K, D]) WithinGrid() *PathFinder[K, D] {
	pf.withinGrid = true
	return pf
}

// Bounds returns the bounding rectangle of the stored cells.
func (pf *PathFinder[K, D]) Bounds() (core.Bounds, bool) {
	xr, okX := pf.g.XRange()
	yr, okY := pf.g.YRange()
	if !okX || !okY {
		return core.Bounds{}, false
	}
	return core.Bounds{
		TopLeft:     core.C(int(xr.Start), int(yr.Start)),
		BottomRight: core.C(int(xr.End), int(yr.End)),
	}, true
}

// BFS returns an unweighted search loaded with the endpoints and obstacles.
// opts are applied after them. Panics with ErrMissingEndpoint if start or end
// is unresolved.
func (pf *PathFinder[K, D]) BFS(opts ...bfs.Option) *bfs.Search {
	start, end := pf.endpoints()
	base := []bfs.Option{bfs.WithObstacles(pf.obstacles...)}
	if b, ok := pf.Bounds(); ok && pf.withinGrid {
		base = append(base, bfs.WithBounds(b.TopLeft, b.BottomRight))
	}
	return bfs.NewSearch(start, end, append(base, opts...)...)
}

// Dijkstra returns a weighted search loaded with the endpoints and obstacles.
// opts are applied after them. Panics with ErrMissingEndpoint if start or end
// is unresolved.
func (pf *PathFinder[K, D]) Dijkstra(opts ...dijkstra.Option) *dijkstra.Search {
	start, end := pf.endpoints()
	base := []dijkstra.Option{dijkstra.WithObstacles(pf.obstacles...)}
	if b, ok := pf.Bounds(); ok && pf.withinGrid {
		base = append(base, dijkstra.WithBounds(b.TopLeft, b.BottomRight))
	}
	return dijkstra.NewSearch(start, end, append(base, opts...)...)
}

func (pf *PathFinder[K, D]) endpoints() (core.Coord, core.Coord) {
	if pf.start == nil || pf.end == nil {
		panic(ErrMissingEndpoint)
	}
	return *pf.start, *pf.end
}

func (pf *PathFinder[K, D]) locate(marker D) *core.Coord {
	p, ok := pf.g.FindCoord(marker)
	if !ok {
		return nil
	}
	c := p.Coord()
	return &c
}
