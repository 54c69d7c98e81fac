// Package grid stores sparse, coordinate-keyed cells and connects them to
// the bfs and dijkstra searches.
//
// What:
//
//   - Grid[K, D] is a two-level ordered map (row key → column key → value)
//     on tidwall/btree. Only present cells are stored; a row disappears with
//     its last cell. Every traversal is row-major.
//   - Iterator walks a rectangle of points from either end.
//   - GridIter, IterRange and FillEmpty give a dense view of the bounding
//     rectangle, where absent cells show up as empty Slots.
//   - Transpose and ToDiagonal re-key every cell in place.
//   - Printer renders the bounding rectangle as text with an optional legend,
//     fixed cell width, fill values and per-point overrides.
//   - PathFinder resolves start, end and obstacles from coordinates or
//     marker values and returns a ready bfs.Search or dijkstra.Search.
//
// Why:
//
//   - Puzzle and map inputs arrive as text: FromRunes and ParseDigits turn a
//     blob into a grid keyed by (column, line).
//   - Sparse storage handles unbounded or mostly empty planes, where a dense
//     [][]D would waste memory or need resizing.
//
// Shape:
//
//	Width is the length of the longest row and Height the number of rows.
//	Both count occupancy: a grid holding one far-away cell has size 1×1.
//	XRange and YRange give the bounding rectangle instead.
//
// Complexity:
//
//   - Insert, Get, Remove: O(log R + log C) for R rows of at most C cells.
//   - All, Cells, Len, Width: O(N) for N stored cells.
//   - IterRange, FillEmpty, Printer: O(A·log C) over the bounding area A.
//   - Clone, Transpose, ToDiagonal: O(N·log N).
//
// Errors:
//
//   - ErrInvalidDigit: ParseDigits met a non-digit character.
//   - ErrMissingEndpoint: panic from PathFinder.BFS/Dijkstra without both
//     endpoints.
//   - ErrBadCellWidth: panic from Printer.WithCellWidth for width < 1.
//
// Concurrency:
//
//	A Grid is not synchronised. Clone copies both levels of the map, so
//	clones may be handed to other goroutines.
//
// Usage:
//
//	g := grid.FromRunes("S..\n.#.\n..E")
//	res, ok := g.PathFinder().
//	    WithStart('S').WithEnd('E').WithObstacles('#').
//	    BFS().Run()
package grid
