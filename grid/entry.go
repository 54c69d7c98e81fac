package grid

// Entry is a handle on one coordinate of a Grid, present or not.
// It stays valid across mutations of the grid; every call re-reads the cell.
type Entry[K Key, D comparable] struct {
	g    *Grid[K, D]
	x, y K
}

// Entry returns a handle on (x, y).
func (g *Grid[K, D]) Entry(x, y K) Entry[K, D] {
	return Entry[K, D]{g: g, x: x, y: y}
}

// Point returns the entry's coordinate.
func (e Entry[K, D]) Point() Point[K] {
	return Point[K]{X: e.x, Y: e.y}
}

// Occupied reports whether a value is stored at the entry.
func (e Entry[K, D]) Occupied() bool {
	return e.g.ContainsKey(e.x, e.y)
}

// Get returns the stored value, if any.
func (e Entry[K, D]) Get() (D, bool) {
	return e.g.Get(e.x, e.y)
}

// Set stores value and returns the previous one, if any.
func (e Entry[K, D]) Set(value D) (D, bool) {
	return e.g.Insert(e.x, e.y, value)
}

// OrInsert stores value if the entry is vacant and returns the value now held.
func (e Entry[K, D]) OrInsert(value D) D {
	if v, ok := e.Get(); ok {
		return v
	}
	e.Set(value)
	return value
}

// OrInsertWith is OrInsert with a lazily computed default.
func (e Entry[K, D]) OrInsertWith(fn func() D) D {
	if v, ok := e.Get(); ok {
		return v
	}
	v := fn()
	e.Set(v)
	return v
}

// AndModify applies fn to an occupied entry and returns the entry for chaining.
func (e Entry[K, D]) AndModify(fn func(D) D) Entry[K, D] {
	e.g.Update(e.x, e.y, fn)
	return e
}

// Remove deletes the stored value, if any.
func (e Entry[K, D]) Remove() (D, bool) {
	return e.g.Remove(e.x, e.y)
}
