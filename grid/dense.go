package grid

import "iter"

// GridIter returns an Iterator over the bounding rectangle of the stored
// cells. An empty grid yields the single point (0, 0); check IsEmpty first
// when that matters.
func (g *Grid[K, D]) GridIter() *Iterator[K] {
	xr, okX := g.XRange()
	yr, okY := g.YRange()
	if !okX || !okY {
		return NewIterator(Range[K]{}, Range[K]{})
	}
	return NewIterator(xr, yr)
}

// IterRange walks every coordinate of the bounding rectangle in row-major
// order, present or not.
func (g *Grid[K, D]) IterRange() iter.Seq2[Point[K], Slot[D]] {
	return func(yield func(Point[K], Slot[D]) bool) {
		for p := range g.GridIter().All() {
			v, ok := g.Get(p.X, p.Y)
			if !yield(p, Slot[D]{Value: v, Present: ok}) {
				return
			}
		}
	}
}

// ForEachEntryRange calls fn with an Entry for every coordinate of the
// bounding rectangle. The rectangle is fixed before the first call, so fn may
// insert into gaps.
func (g *Grid[K, D]) ForEachEntryRange(fn func(Entry[K, D])) {
	for p := range g.GridIter().All() {
		fn(g.Entry(p.X, p.Y))
	}
}

// FillEmpty stores value in every empty cell of the bounding rectangle.
func (g *Grid[K, D]) FillEmpty(value D) {
	if g.IsEmpty() {
		return
	}
	g.ForEachEntryRange(func(e Entry[K, D]) {
		e.OrInsert(value)
	})
}
