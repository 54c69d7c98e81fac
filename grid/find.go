package grid

import "iter"

// CollectCellsIter yields, in row-major order, every point holding value.
func (g *Grid[K, D]) CollectCellsIter(value D) iter.Seq[Point[K]] {
	return func(yield func(Point[K]) bool) {
		for p, v := range g.All() {
			if v == value && !yield(p) {
				return
			}
		}
	}
}

// CollectCells returns every point holding value.
func (g *Grid[K, D]) CollectCells(value D) []Point[K] {
	var out []Point[K]
	for p := range g.CollectCellsIter(value) {
		out = append(out, p)
	}
	return out
}

// FindCoord returns the first point, in row-major order, holding value.
func (g *Grid[K, D]) FindCoord(value D) (Point[K], bool) {
	for p := range g.CollectCellsIter(value) {
		return p, true
	}
	return Point[K]{}, false
}
