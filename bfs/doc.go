// Package bfs finds a route between two cells of a grid whose only
// structure is a set of obstacle coordinates.
//
// What
//
//   - Explore from a start coordinate through the four cardinal neighbours
//     of each cell, never entering an obstacle or leaving the bounds.
//   - BreadthFirst (default) consumes the frontier FIFO and returns a
//     shortest path when every step costs the same.
//   - DepthFirst (WithDFS) consumes the frontier LIFO and returns some valid
//     path, not necessarily the shortest.
//   - Every discovered cell records its parent, so the path is rebuilt by
//     walking parents back from the end and reversing.
//   - Bounds are explicit (WithBounds) or the bounding box of start, end and
//     obstacles, resolved once and cached.
//
// Determinism
//
//	Neighbours are enumerated left, right, up, down. Results are therefore
//	reproducible for a given configuration in both modes.
//
// Caveat
//
//	Breadth-first shortest paths assume uniform step cost. On a grid whose
//	moves have different costs use package dijkstra instead; bfs will
//	silently return the path with the fewest steps.
//
// Complexity (A = area of the bounds)
//
//   - Time:   O(A)   (each cell is discovered at most once)
//   - Memory: O(A)   (frontier, visited set, parent map)
//
// Usage
//
//	res, ok := bfs.NewSearch(
//	    core.C(0, 0), core.C(5, 3),
//	    bfs.WithObstacles(walls...),
//	).Run()
//	if !ok {
//	    // no route
//	}
//	fmt.Println(res.Path())
//
// Options
//
//   - WithObstacles(coords...):   add obstacles (cumulative).
//   - WithObstacleSet(set):       add obstacles from a set.
//   - WithBounds(tl, br):         explicit inclusive bounds.
//   - WithDFS() / WithMode(m):    traversal order; unknown modes panic with ErrBadMode.
//
// A search that cannot reach the end is not an error: Run returns (nil, false).
package bfs
