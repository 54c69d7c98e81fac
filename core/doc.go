// Package core defines the coordinate vocabulary shared by the grid and the
// path-search packages.
//
// What:
//
//   - Coord is a single (X, Y) cell position; X grows to the right, Y grows down.
//   - Bounds is an inclusive axis-aligned rectangle of Coords.
//   - CardinalNeighbors enumerates the in-bounds cells directly left, right,
//     above and below a Coord, always in that order.
//   - PathFrom rebuilds a start→end path from a parent lookup.
//
// Determinism:
//
//	Neighbour order is fixed (left, right, up, down). Depth-first results and
//	tie-breaking between equal-cost routes in bfs and dijkstra follow it.
//
// Complexity:
//
//   - CardinalNeighbors: O(1).
//   - BoundsOf:          O(n) over the supplied coordinates.
//   - PathFrom:          O(L) where L is the path length.
package core
