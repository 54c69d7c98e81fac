package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrNoPath is returned when the search exhausts without reaching the end.
	ErrNoPath = errors.New("gridpath: no path")
	// ErrUnknownMode rejects a --mode outside bfs, dfs and dijkstra.
	ErrUnknownMode = errors.New("gridpath: unknown mode")
	// ErrMarkerNotFound means the start or end marker is absent from the input.
	ErrMarkerNotFound = errors.New("gridpath: marker not found")
)

// Search modes accepted by --mode, in the order compare reports them.
const (
	modeBFS      = "bfs"
	modeDFS      = "dfs"
	modeDijkstra = "dijkstra"
)

var allModes = []string{modeBFS, modeDFS, modeDijkstra}

type gridRunes = grid.Grid[int, rune]

// outcome is one timed search.
type outcome struct {
	Mode    string
	Found   bool
	Path    []core.Coord
	Cost    int
	Visited int
	Elapsed time.Duration
}

// readGrid parses the file at path, or stdin when path is "-".
func readGrid(path string, stdin io.Reader) (*gridRunes, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return grid.FromRunes(string(raw)), nil
}

// solve runs one search over g with the markers and costs of cfg.
func solve(g *gridRunes, cfg Config, mode string) (outcome, error) {
	out := outcome{Mode: mode}
	for _, m := range []rune{cfg.Markers.start(), cfg.Markers.end()} {
		if _, ok := g.FindCoord(m); !ok {
			return out, fmt.Errorf("%w: %q", ErrMarkerNotFound, m)
		}
	}

	pf := g.PathFinder().
		WithStart(cfg.Markers.start()).
		WithEnd(cfg.Markers.end()).
		WithObstacles(cfg.Markers.wall())
	if cfg.WithinGrid {
		pf.WithinGrid()
	}

	started := time.Now()
	switch mode {
	case modeBFS, modeDFS:
		var opts []bfs.Option
		if mode == modeDFS {
			opts = append(opts, bfs.WithDFS())
		}
		res, ok := pf.BFS(opts...).Run()
		out.Elapsed = time.Since(started)
		if ok {
			out.Found, out.Path, out.Cost, out.Visited = true, res.Path(), res.Steps(), res.Visited()
		}
	case modeDijkstra:
		c := cfg.Costs
		res := pf.Dijkstra(dijkstra.WithCostFunc(dijkstra.DirectionalCost(c.Up, c.Down, c.Left, c.Right))).Run()
		out.Elapsed = time.Since(started)
		out.Visited = res.Reached()
		if path, ok := res.Path(); ok {
			out.Found, out.Path = true, path
			out.Cost, _ = res.Cost()
		}
	default:
		return out, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return out, nil
}

// render draws g, marking the interior of path with the configured mark.
func render(g *gridRunes, cfg Config, legend bool, path []core.Coord) string {
	p := g.Printer().WithCellWidth(cfg.Render.CellWidth)
	if legend {
		p.WithLegend()
	}
	for _, f := range cfg.Render.Fill {
		p.WithCellFill(firstRune(f))
	}
	if len(path) > 2 {
		onPath := make(map[core.Coord]struct{}, len(path))
		for _, c := range path[1 : len(path)-1] {
			onPath[c] = struct{}{}
		}
		p.WithCellOverride(func(pt grid.Point[int]) (string, bool) {
			_, ok := onPath[pt.Coord()]
			return cfg.Render.PathMark, ok
		})
	}
	return p.String()
}

// summary is the one-line report printed after a search.
func (o outcome) summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-8s ", o.Mode)
	if !o.Found {
		sb.WriteString("no path")
	} else {
		fmt.Fprintf(&sb, "steps=%d cost=%d", len(o.Path)-1, o.Cost)
	}
	fmt.Fprintf(&sb, " visited=%d", o.Visited)
	return sb.String()
}
