// Package bfs provides tunable options and result types for unweighted
// path search over a coordinate grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// ErrBadMode is the panic value for an unknown traversal Mode.
var ErrBadMode = errors.New("bfs: unknown traversal mode")

// Mode selects which end of the frontier the search consumes.
type Mode int

const (
	// BreadthFirst takes from the front of the frontier (FIFO). The first
	// path found is a shortest one when every step costs the same.
	BreadthFirst Mode = iota
	// DepthFirst takes from the back of the frontier (LIFO). Any path found
	// is valid, but it need not be the shortest.
	DepthFirst
)

// String returns "bfs" or "dfs".
func (m Mode) String() string {
	switch m {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Option configures a Search via functional arguments.
type Option func(*Options)

// Options holds the configuration of a single Search.
type Options struct {
	// Obstacles are never entered. Options accumulate into this set.
	Obstacles map[core.Coord]struct{}

	// Bounds, if non-nil, restricts the search to this rectangle. When nil the
	// bounding box of start, end and obstacles is used.
	Bounds *core.Bounds

	// Mode selects breadth-first (default) or depth-first traversal.
	Mode Mode
}

// DefaultOptions returns Options with:
//   - no obstacles
//   - inferred bounds
//   - BreadthFirst traversal
func DefaultOptions() Options {
	return Options{
		Obstacles: make(map[core.Coord]struct{}),
		Bounds:    nil,
		Mode:      BreadthFirst,
	}
}

// WithObstacles adds coords to the obstacle set. May be passed several times.
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

// WithBounds enforces explicit search bounds instead of inferring them from
// start, end and obstacles.
func WithBounds(topLeft, bottomRight core.Coord) Option {
	return func(o *Options) {
		o.Bounds = &core.Bounds{TopLeft: topLeft, BottomRight: bottomRight}
	}
}

// WithDFS switches to depth-first traversal.
func WithDFS() Option {
	return WithMode(DepthFirst)
}

// WithMode sets the traversal mode. It panics with ErrBadMode for values
// other than BreadthFirst and DepthFirst.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != BreadthFirst && m != DepthFirst {
			panic(fmt.Errorf("%w: %d", ErrBadMode, int(m)))
		}
		o.Mode = m
	}
}

// Result holds the outcome of a successful search:
//   - path:    coordinates from start to end inclusive
//   - visited: number of coordinates discovered before the end was reached
//   - mode:    traversal that produced the path
type Result struct {
	path    []core.Coord
	visited int
	mode    Mode
}

// Path returns the coordinates from start to end inclusive.
// A single-element path means start == end.
func (r *Result) Path() []core.Coord {
	return r.path
}

// Len returns the number of coordinates on the path.
func (r *Result) Len() int {
	return len(r.path)
}

// Steps returns the number of moves on the path (Len()-1).
func (r *Result) Steps() int {
	return len(r.path) - 1
}

// Visited returns how many coordinates were discovered during the search.
func (r *Result) Visited() int {
	return r.visited
}

// Mode reports the traversal that produced r.
func (r *Result) Mode() Mode {
	return r.mode
}
