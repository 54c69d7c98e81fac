// Package dijkstra defines configuration options and result types for
// weighted path search on a coordinate grid.
//
// Options:
//
//	– WithObstacles / WithObstacleSet: coordinates that are never entered.
//	– WithBounds:   explicit inclusive bounds; otherwise the bounding box of
//	                start, end and obstacles.
//	– WithCostFunc: how the accumulated cost grows on each step; defaults
//	                to UniformCost (+1 per step).
//
// Errors (sentinel):
//
//	– ErrNilCostFunc   panic value when WithCostFunc receives nil.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/gridpath/core"
)

// Sentinel errors of the dijkstra package.
var (
	// ErrNilCostFunc is the panic value for WithCostFunc(nil).
	ErrNilCostFunc = errors.New("dijkstra: cost function is nil")
)

// CostInput is passed to a CostFunc for every candidate step.
type CostInput struct {
	Origin core.Coord // cell being expanded
	Next   core.Coord // neighbour being reached
	Cost   int        // accumulated cost at Origin
}

// CostFunc returns the accumulated cost at in.Next when stepping from
// in.Origin.
//
// The result must not be lower than in.Cost. Functions that can decrease
// the running cost (negative step weights, or weights that depend on path
// length in a non-monotonic way) are unsupported: the search still
// terminates but the reported path is not guaranteed to be optimal.
type CostFunc func(in CostInput) int

// UniformCost charges 1 per step.
func UniformCost(in CostInput) int {
	return in.Cost + 1
}

// DirectionalCost charges a fixed amount depending on the direction of the
// step. Negative amounts are clamped to zero.
func DirectionalCost(up, down, left, right int) CostFunc {
	up, down, left, right = max(up, 0), max(down, 0), max(left, 0), max(right, 0)
	return func(in CostInput) int {
		switch {
		case in.Next.Y < in.Origin.Y:
			return in.Cost + up
		case in.Next.Y > in.Origin.Y:
			return in.Cost + down
		case in.Next.X < in.Origin.X:
			return in.Cost + left
		default:
			return in.Cost + right
		}
	}
}

// Options configures a Search.
//
// Obstacles – cells never entered; accumulates across options.
// Bounds    – explicit bounds, or nil to infer them.
// CostFunc  – step cost; UniformCost when unset.
type Options struct {
	Obstacles map[core.Coord]struct{}
	Bounds    *core.Bounds
	CostFunc  CostFunc
}

// Option represents a functional option for configuring a Search.
type Option func(*Options)

// DefaultOptions returns Options with no obstacles, inferred bounds and
// UniformCost.
func DefaultOptions() Options {
	return Options{
		Obstacles: make(map[core.Coord]struct{}),
		Bounds:    nil,
		CostFunc:  UniformCost,
	}
}

// WithObstacles adds coords to the obstacle set; may be passed several times.
func WithObstacles(coords ...core.Coord) Option {
	return func(o *Options) {
		for _, c := range coords {
			o.Obstacles[c] = struct{}{}
		}
	}
}

// WithObstacleSet adds every member of set to the obstacle set.
func WithObstacleSet(set map[core.Coord]struct{}) Option {
	return func(o *Options) {
		for c := range set {
			o.Obstacles[c] = struct{}{}
		}
	}
}

// WithBounds enforces explicit inclusive search bounds.
func WithBounds(topLeft, bottomRight core.Coord) Option {
	return func(o *Options) {
		o.Bounds = &core.Bounds{TopLeft: topLeft, BottomRight: bottomRight}
	}
}

// WithCostFunc replaces the step cost function.
// Passing nil panics with ErrNilCostFunc.
func WithCostFunc(fn CostFunc) Option {
	return func(o *Options) {
		if fn == nil {
			// Panic to signal invalid configuration early.
			panic(ErrNilCostFunc)
		}
		o.CostFunc = fn
	}
}

// entry is the best-known state of one reached coordinate.
type entry struct {
	cost      int
	parent    core.Coord
	hasParent bool
}

// Result exposes the best-known costs after the work queue has drained.
type Result struct {
	start, end  core.Coord
	entries     map[core.Coord]entry
	relaxations int
}

// Found reports whether the end coordinate was reached.
func (r *Result) Found() bool {
	_, ok := r.entries[r.end]
	return ok
}

// Cost returns the minimal accumulated cost at the end coordinate.
func (r *Result) Cost() (int, bool) {
	return r.CostAt(r.end)
}

// CostAt returns the best-known accumulated cost at c.
func (r *Result) CostAt(c core.Coord) (int, bool) {
	e, ok := r.entries[c]
	return e.cost, ok
}

// Path returns the minimal-cost path from start to end inclusive, or
// (nil, false) when the end was never reached.
func (r *Result) Path() ([]core.Coord, bool) {
	if !r.Found() {
		return nil, false
	}
	// A path never has more links than there are reached coordinates.
	budget := len(r.entries)
	return core.PathFrom(r.end, func(c core.Coord) (core.Coord, bool) {
		if budget--; budget < 0 {
			return core.Coord{}, false
		}
		return r.parentOf(c)
	}), true
}

// Reached returns the number of coordinates with a recorded cost.
func (r *Result) Reached() int {
	return len(r.entries)
}

// Relaxations returns how many queue entries were expanded.
func (r *Result) Relaxations() int {
	return r.relaxations
}

// parentOf stops at the start coordinate even if an unsupported cost
// function overwrote its entry.
func (r *Result) parentOf(c core.Coord) (core.Coord, bool) {
	if c == r.start {
		return core.Coord{}, false
	}
	e := r.entries[c]
	return e.parent, e.hasParent
}
