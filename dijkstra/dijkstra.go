// Package dijkstra implements a label-correcting shortest-path search on a
// grid of obstacles with a caller-supplied step cost.
//
// The work queue is a plain FIFO rather than a priority queue. A coordinate
// may be improved and re-queued several times when a cheaper route through it
// turns up later; acceptance is always "strictly cheaper than the recorded
// cost", so the final costs are minimal for non-negative, monotonic cost
// functions.
//
// Complexity (A = area of the bounds):
//
//   - Time:  O(A) relaxations for uniform costs; worst case grows with the
//     number of times a cell can be improved.
//   - Space: O(A) for the best-known map plus the queue.
//
// Notes on implementation choices:
//
//   - The end coordinate is a sink: its cost can still be lowered, but it is
//     never queued for expansion.
//   - Queue entries carry the cost they were queued with. An entry made stale
//     by a later improvement is still expanded; its candidates simply fail the
//     strictly-cheaper test.
package dijkstra

import (
	"github.com/katalvlaran/gridpath/core"
)

// Search is a configured, runnable weighted path search.
type Search struct {
	start, end core.Coord
	opts       Options
	bounds     *core.Bounds
}

// NewSearch returns a Search from start to end configured by opts.
func NewSearch(start, end core.Coord, opts ...Option) *Search {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Search{start: start, end: end, opts: cfg, bounds: cfg.Bounds}
}

// Start returns the start coordinate.
func (s *Search) Start() core.Coord { return s.start }

// End returns the end coordinate.
func (s *Search) End() core.Coord { return s.end }

// AddObstacles extends the obstacle set before the search is run.
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

// Bounds returns the explicit bounds, or the cached bounding box of start,
// end and obstacles.
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

// Run executes the search until the work queue drains and returns the
// best-known costs. Inspect Result.Found to tell whether end was reached.
func (s *Search) Run() *Result {
	r := &runner{
		search:  s,
		bounds:  s.Bounds(),
		queue:   []queueItem{{at: s.start, cost: 0}},
		entries: map[core.Coord]entry{s.start: {cost: 0}},
	}
	r.process()
	return &Result{
		start:       s.start,
		end:         s.end,
		entries:     r.entries,
		relaxations: r.pops,
	}
}

// queueItem pairs a coordinate with the cost it was queued at.
type queueItem struct {
	at   core.Coord
	cost int
}

// runner holds the mutable state of one Run.
type runner struct {
	search  *Search
	bounds  core.Bounds
	queue   []queueItem
	entries map[core.Coord]entry
	pops    int
}

// process pops from the front of the queue until it is empty.
func (r *runner) process() {
	for len(r.queue) > 0 {
		item := r.queue[0]
		r.queue = r.queue[1:]
		r.pops++
		r.relax(item)
	}
}

// relax offers every passable in-bounds neighbour of item a candidate cost,
// records strictly cheaper ones and queues them unless they are the end.
func (r *runner) relax(item queueItem) {
	costFn := r.search.opts.CostFunc
	for _, nbr := range core.CardinalNeighbors(item.at, r.bounds) {
		if r.search.IsObstacle(nbr) {
			continue
		}
		next := costFn(CostInput{Origin: item.at, Next: nbr, Cost: item.cost})
		if known, ok := r.entries[nbr]; ok && known.cost <= next {
			continue
		}
		r.entries[nbr] = entry{cost: next, parent: item.at, hasParent: true}
		if nbr != r.search.end {
			r.queue = append(r.queue, queueItem{at: nbr, cost: next})
		}
	}
}
