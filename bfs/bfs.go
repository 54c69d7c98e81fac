// Package bfs finds a path between two coordinates on a grid of obstacles,
// either breadth-first (shortest, unit step cost) or depth-first (any path).
package bfs

import (
	"github.com/katalvlaran/gridpath/core"
)

// Search is a configured, runnable unweighted path search.
// It may be run several times; every Run owns its own working state.
type Search struct {
	start, end core.Coord
	opts       Options

	// bounds caches the inferred rectangle once resolved.
	bounds *core.Bounds
}

// NewSearch returns a Search from start to end, applying any number of
// functional Options. With no options it runs breadth-first within the
// bounding box of start and end.
func NewSearch(start, end core.Coord, opts ...Option) *Search {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Search{start: start, end: end, opts: o, bounds: o.Bounds}
}

// Start returns the start coordinate.
func (s *Search) Start() core.Coord { return s.start }

// End returns the end coordinate.
func (s *Search) End() core.Coord { return s.end }

// Mode returns the configured traversal mode.
func (s *Search) Mode() Mode { return s.opts.Mode }

// AddObstacles extends the obstacle set before the search is run.
// Inferred bounds are recomputed on the next Run.
func (s *Search) AddObstacles(coords ...core.Coord) *Search {
	WithObstacles(coords...)(&s.opts)
	if s.opts.Bounds == nil {
		s.bounds = nil
	}
	return s
}

// IsObstacle reports whether c is in the obstacle set.
func (s *Search) IsObstacle(c core.Coord) bool {
	_, ok := s.opts.Obstacles[c]
	return ok
}

// Bounds returns the rectangle the search is confined to: the explicit bounds
// if configured, otherwise the bounding box of start, end and obstacles.
// The inferred value is cached.
func (s *Search) Bounds() core.Bounds {
	if s.bounds != nil {
		return *s.bounds
	}
	b := core.BoundsOf(s.start, s.end)
	for c := range s.opts.Obstacles {
		b = b.Extend(c)
	}
	s.bounds = &b
	return b
}

// Run executes the search. It returns the path and true when end is
// reachable, or nil and false when the frontier empties first.
//
// Complexity: O(A) time and memory, A = area of the bounds.
func (s *Search) Run() (*Result, bool) {
	w := &walker{
		search:  s,
		bounds:  s.Bounds(),
		queue:   []core.Coord{s.start},
		visited: map[core.Coord]bool{s.start: true},
		parent:  make(map[core.Coord]core.Coord),
	}
	return w.loop()
}

// walker encapsulates the mutable state of one Run.
type walker struct {
	search  *Search
	bounds  core.Bounds
	queue   []core.Coord
	visited map[core.Coord]bool
	parent  map[core.Coord]core.Coord
}

// loop takes coordinates from the frontier until end is found or the
// frontier is empty.
func (w *walker) loop() (*Result, bool) {
	for len(w.queue) > 0 {
		cur := w.next()
		if cur == w.search.end {
			return &Result{
				path:    core.PathFrom(cur, w.parentOf),
				visited: len(w.visited),
				mode:    w.search.opts.Mode,
			}, true
		}
		w.enqueueNeighbors(cur)
	}
	return nil, false
}

// next removes one coordinate from the front (BreadthFirst) or the back
// (DepthFirst) of the frontier.
func (w *walker) next() core.Coord {
	if w.search.opts.Mode == DepthFirst {
		last := len(w.queue) - 1
		cur := w.queue[last]
		w.queue = w.queue[:last]
		return cur
	}
	cur := w.queue[0]
	w.queue = w.queue[1:]
	return cur
}

// enqueueNeighbors records cur as the parent of every unseen, passable,
// in-bounds neighbour and appends it to the frontier.
func (w *walker) enqueueNeighbors(cur core.Coord) {
	for _, nbr := range core.CardinalNeighbors(cur, w.bounds) {
		if w.search.IsObstacle(nbr) || w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.parent[nbr] = cur
		w.queue = append(w.queue, nbr)
	}
}

func (w *walker) parentOf(c core.Coord) (core.Coord, bool) {
	p, ok := w.parent[c]
	return p, ok
}
