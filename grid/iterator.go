package grid

import "iter"

// Iterator produces every Point of a rectangle in row-major order: for each
// Y from the first to the last row, each X from the first to the last column.
//
// It keeps independent head and tail cursors, so it can be consumed from the
// front (Next), from the back (NextBack) or from both; once the cursors meet
// the sequence is exhausted at both ends. A consumed Iterator cannot be
// rewound. Derive a fresh one with Clone, XIter or YIter instead.
type Iterator[K Key] struct {
	xRange, yRange Range[K]
	one            K
	head, tail     Point[K]
	done           bool
}

// NewIterator returns an Iterator over xRange × yRange. If either range is
// empty the Iterator yields nothing.
func NewIterator[K Key](xRange, yRange Range[K]) *Iterator[K] {
	return &Iterator[K]{
		xRange: xRange,
		yRange: yRange,
		one:    K(1),
		head:   Point[K]{X: xRange.Start, Y: yRange.Start},
		tail:   Point[K]{X: xRange.End, Y: yRange.End},
		done:   xRange.Empty() || yRange.Empty(),
	}
}

// One returns the unit step of K.
func (it *Iterator[K]) One() K {
	return it.one
}

// XRange returns the column span.
func (it *Iterator[K]) XRange() Range[K] { return it.xRange }

// YRange returns the row span.
func (it *Iterator[K]) YRange() Range[K] { return it.yRange }

// Clone returns a fresh Iterator over the same rectangle.
func (it *Iterator[K]) Clone() *Iterator[K] {
	return NewIterator(it.xRange, it.yRange)
}

// XIter walks only the columns; every Point has Y == One().
func (it *Iterator[K]) XIter() *Iterator[K] {
	return NewIterator(it.xRange, Range[K]{Start: it.one, End: it.one})
}

// YIter walks only the rows; every Point has X == One().
func (it *Iterator[K]) YIter() *Iterator[K] {
	return NewIterator(Range[K]{Start: it.one, End: it.one}, it.yRange)
}

// Next returns the point under the head cursor and advances it.
func (it *Iterator[K]) Next() (Point[K], bool) {
	if it.done {
		return Point[K]{}, false
	}
	p := it.head
	if it.head == it.tail {
		it.done = true
		return p, true
	}
	// head != tail guarantees another row exists when wrapping.
	if it.head.X == it.xRange.End {
		it.head.X = it.xRange.Start
		it.head.Y += it.one
	} else {
		it.head.X += it.one
	}
	return p, true
}

// NextBack returns the point under the tail cursor and moves it backwards.
func (it *Iterator[K]) NextBack() (Point[K], bool) {
	if it.done {
		return Point[K]{}, false
	}
	p := it.tail
	if it.tail == it.head {
		it.done = true
		return p, true
	}
	if it.tail.X == it.xRange.Start {
		it.tail.X = it.xRange.End
		it.tail.Y -= it.one
	} else {
		it.tail.X -= it.one
	}
	return p, true
}

// All consumes the Iterator from the front.
func (it *Iterator[K]) All() iter.Seq[Point[K]] {
	return func(yield func(Point[K]) bool) {
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Backward consumes the Iterator from the back.
func (it *Iterator[K]) Backward() iter.Seq[Point[K]] {
	return func(yield func(Point[K]) bool) {
		for p, ok := it.NextBack(); ok; p, ok = it.NextBack() {
			if !yield(p) {
				return
			}
		}
	}
}

// Collect drains the remaining points from the front into a slice.
func (it *Iterator[K]) Collect() []Point[K] {
	var out []Point[K]
	for p := range it.All() {
		out = append(out, p)
	}
	return out
}

// Len returns the number of points the full rectangle holds.
func (it *Iterator[K]) Len() int {
	if it.xRange.Empty() || it.yRange.Empty() {
		return 0
	}
	w := int(it.xRange.End) - int(it.xRange.Start) + 1
	h := int(it.yRange.End) - int(it.yRange.Start) + 1
	return w * h
}
