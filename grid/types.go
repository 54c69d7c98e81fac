package grid

import "github.com/katalvlaran/gridpath/core"

// Key is the set of types usable as row and column keys. Every member can
// represent the unit step 1, which the coordinate iterator relies on.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Point is an (X, Y) position keyed by K. X selects the column, Y the row.
type Point[K Key] struct {
	X, Y K
}

// P is shorthand for Point[K]{X: x, Y: y}.
func P[K Key](x, y K) Point[K] {
	return Point[K]{X: x, Y: y}
}

// Coord converts p to the int-based coordinate used by the search packages.
func (p Point[K]) Coord() core.Coord {
	return core.Coord{X: int(p.X), Y: int(p.Y)}
}

// Cell is a snapshot of one stored cell.
type Cell[K Key, D any] struct {
	X, Y  K
	Value D
}

// Range is an inclusive span of keys on one axis.
type Range[K Key] struct {
	Start, End K
}

// Contains reports whether k lies within r.
func (r Range[K]) Contains(k K) bool {
	return k >= r.Start && k <= r.End
}

// Empty reports whether r contains no keys.
func (r Range[K]) Empty() bool {
	return r.Start > r.End
}

// Slot is a cell position in a dense view: Present is false for empty cells.
type Slot[D any] struct {
	Value   D
	Present bool
}
