package grid

import (
	"iter"

	"github.com/tidwall/btree"
)

// Grid is a two-level ordered map: row key (Y) → column key (X) → value.
//
// A row exists only while it holds at least one cell, and an absent cell is
// "empty", distinct from any stored value. The zero value is not usable;
// construct with New, FromString, FromRunes or ParseDigits.
//
// A Grid is not safe for concurrent mutation. Clone produces an independent
// copy that may be used from another goroutine.
type Grid[K Key, D comparable] struct {
	rows *btree.Map[K, *btree.Map[K, D]]
}

// New returns an empty Grid.
func New[K Key, D comparable]() *Grid[K, D] {
	return &Grid[K, D]{rows: new(btree.Map[K, *btree.Map[K, D]])}
}

// FromCells builds a Grid from a sequence of points and values.
// Later duplicates overwrite earlier ones.
func FromCells[K Key, D comparable](cells iter.Seq2[Point[K], D]) *Grid[K, D] {
	g := New[K, D]()
	for p, v := range cells {
		g.Insert(p.X, p.Y, v)
	}
	return g
}

// FromPoints builds a Grid storing value at every point.
func FromPoints[K Key, D comparable](points []Point[K], value D) *Grid[K, D] {
	g := New[K, D]()
	for _, p := range points {
		g.Insert(p.X, p.Y, value)
	}
	return g
}

// Clear removes every cell.
func (g *Grid[K, D]) Clear() {
	g.rows = new(btree.Map[K, *btree.Map[K, D]])
}

// Clone returns a deep copy: both map levels are copied, so mutations of the
// clone and the original never affect each other.
func (g *Grid[K, D]) Clone() *Grid[K, D] {
	out := New[K, D]()
	g.rows.Scan(func(y K, r *btree.Map[K, D]) bool {
		out.rows.Set(y, r.Copy())
		return true
	})
	return out
}

// Insert stores value at (x, y) and returns the previous value, if any.
func (g *Grid[K, D]) Insert(x, y K, value D) (D, bool) {
	r, ok := g.rows.Get(y)
	if !ok {
		r = new(btree.Map[K, D])
		g.rows.Set(y, r)
	}
	return r.Set(x, value)
}

// Get returns the value at (x, y). It never creates entries.
func (g *Grid[K, D]) Get(x, y K) (D, bool) {
	if r, ok := g.rows.Get(y); ok {
		return r.Get(x)
	}
	var zero D
	return zero, false
}

// GetAt is Get keyed by a Point.
func (g *Grid[K, D]) GetAt(p Point[K]) (D, bool) {
	return g.Get(p.X, p.Y)
}

// ContainsKey reports whether a cell is stored at (x, y).
func (g *Grid[K, D]) ContainsKey(x, y K) bool {
	_, ok := g.Get(x, y)
	return ok
}

// Update replaces the value at (x, y) with fn(value) when the cell is
// present, and reports whether it was.
func (g *Grid[K, D]) Update(x, y K, fn func(D) D) bool {
	r, ok := g.rows.Get(y)
	if !ok {
		return false
	}
	v, ok := r.Get(x)
	if !ok {
		return false
	}
	r.Set(x, fn(v))
	return true
}

// UpdateAll replaces every stored value with fn(point, value).
func (g *Grid[K, D]) UpdateAll(fn func(Point[K], D) D) {
	for _, c := range g.Cells() {
		r, _ := g.rows.Get(c.Y)
		r.Set(c.X, fn(Point[K]{X: c.X, Y: c.Y}, c.Value))
	}
}

// Remove deletes the cell at (x, y) and returns its value. Removing the last
// cell of a row removes the row.
func (g *Grid[K, D]) Remove(x, y K) (D, bool) {
	var zero D
	r, ok := g.rows.Get(y)
	if !ok {
		return zero, false
	}
	v, ok := r.Delete(x)
	if !ok {
		return zero, false
	}
	if r.Len() == 0 {
		g.rows.Delete(y)
	}
	return v, true
}

// RemoveEntry is Remove returning the removed cell with its coordinates.
func (g *Grid[K, D]) RemoveEntry(x, y K) (Cell[K, D], bool) {
	v, ok := g.Remove(x, y)
	if !ok {
		return Cell[K, D]{}, false
	}
	return Cell[K, D]{X: x, Y: y, Value: v}, true
}

// Retain keeps only the cells for which keep returns true. keep may modify
// the value through the pointer; the modification is stored for kept cells.
// Rows left empty are removed.
func (g *Grid[K, D]) Retain(keep func(x, y K, value *D) bool) {
	var emptied []K
	g.rows.Scan(func(y K, r *btree.Map[K, D]) bool {
		var drop []K
		var changed []Cell[K, D]
		r.Scan(func(x K, v D) bool {
			nv := v
			if !keep(x, y, &nv) {
				drop = append(drop, x)
			} else if nv != v {
				changed = append(changed, Cell[K, D]{X: x, Y: y, Value: nv})
			}
			return true
		})
		for _, x := range drop {
			r.Delete(x)
		}
		for _, c := range changed {
			r.Set(c.X, c.Value)
		}
		if r.Len() == 0 {
			emptied = append(emptied, y)
		}
		return true
	})
	for _, y := range emptied {
		g.rows.Delete(y)
	}
}

// Len returns the number of stored cells.
func (g *Grid[K, D]) Len() int {
	n := 0
	g.rows.Scan(func(_ K, r *btree.Map[K, D]) bool {
		n += r.Len()
		return true
	})
	return n
}

// IsEmpty reports whether no cell is stored.
func (g *Grid[K, D]) IsEmpty() bool {
	return g.rows.Len() == 0
}

// All iterates present cells in row-major order.
func (g *Grid[K, D]) All() iter.Seq2[Point[K], D] {
	return func(yield func(Point[K], D) bool) {
		g.rows.Scan(func(y K, r *btree.Map[K, D]) bool {
			more := true
			r.Scan(func(x K, v D) bool {
				more = yield(Point[K]{X: x, Y: y}, v)
				return more
			})
			return more
		})
	}
}

// Keys iterates the coordinates of present cells in row-major order.
func (g *Grid[K, D]) Keys() iter.Seq[Point[K]] {
	return func(yield func(Point[K]) bool) {
		for p := range g.All() {
			if !yield(p) {
				return
			}
		}
	}
}

// Values iterates present values in row-major order.
func (g *Grid[K, D]) Values() iter.Seq[D] {
	return func(yield func(D) bool) {
		for _, v := range g.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells returns a row-major snapshot of every present cell.
func (g *Grid[K, D]) Cells() []Cell[K, D] {
	out := make([]Cell[K, D], 0, g.Len())
	for p, v := range g.All() {
		out = append(out, Cell[K, D]{X: p.X, Y: p.Y, Value: v})
	}
	return out
}

// Row iterates the present cells of row y as column → value.
func (g *Grid[K, D]) Row(y K) iter.Seq2[K, D] {
	return func(yield func(K, D) bool) {
		if r, ok := g.rows.Get(y); ok {
			r.Scan(yield)
		}
	}
}

// Column iterates the present cells of column x as row → value.
func (g *Grid[K, D]) Column(x K) iter.Seq2[K, D] {
	return func(yield func(K, D) bool) {
		g.rows.Scan(func(y K, r *btree.Map[K, D]) bool {
			if v, ok := r.Get(x); ok {
				return yield(y, v)
			}
			return true
		})
	}
}

// RowSorted returns the cells of row y in ascending column order.
func (g *Grid[K, D]) RowSorted(y K) []Cell[K, D] {
	var out []Cell[K, D]
	for x, v := range g.Row(y) {
		out = append(out, Cell[K, D]{X: x, Y: y, Value: v})
	}
	return out
}

// ColumnSorted returns the cells of column x in ascending row order.
func (g *Grid[K, D]) ColumnSorted(x K) []Cell[K, D] {
	var out []Cell[K, D]
	for y, v := range g.Column(x) {
		out = append(out, Cell[K, D]{X: x, Y: y, Value: v})
	}
	return out
}

// Width returns the length of the longest present row. It describes
// occupancy, not the span of the bounding rectangle.
func (g *Grid[K, D]) Width() int {
	w := 0
	g.rows.Scan(func(_ K, r *btree.Map[K, D]) bool {
		w = max(w, r.Len())
		return true
	})
	return w
}

// Height returns the number of present rows.
func (g *Grid[K, D]) Height() int {
	return g.rows.Len()
}

// Size returns (Width(), Height()).
func (g *Grid[K, D]) Size() (int, int) {
	return g.Width(), g.Height()
}

// XRange returns the inclusive span of present column keys.
func (g *Grid[K, D]) XRange() (Range[K], bool) {
	var out Range[K]
	found := false
	g.rows.Scan(func(_ K, r *btree.Map[K, D]) bool {
		lo, _, _ := r.Min()
		hi, _, _ := r.Max()
		if !found {
			out, found = Range[K]{Start: lo, End: hi}, true
			return true
		}
		out.Start = min(out.Start, lo)
		out.End = max(out.End, hi)
		return true
	})
	return out, found
}

// YRange returns the inclusive span of present row keys.
func (g *Grid[K, D]) YRange() (Range[K], bool) {
	lo, _, ok := g.rows.Min()
	if !ok {
		return Range[K]{}, false
	}
	hi, _, _ := g.rows.Max()
	return Range[K]{Start: lo, End: hi}, true
}
