// Package gridpath finds routes across character grids: sparse storage,
// text rendering, and breadth-first, depth-first and weighted search.
//
// What is gridpath?
//
//	A small set of packages for puzzle maps, mazes and terrain:
//		• grid      – sparse Grid[K, D] on ordered maps, parsing, rendering,
//		              transforms, marker lookup and the PathFinder adapter
//		• bfs       – unweighted search (FIFO) with a depth-first variant (LIFO)
//		• dijkstra  – label-correcting weighted search with pluggable costs
//		• core      – the shared Coord and Bounds vocabulary
//
// Why gridpath?
//
//   - Text in, paths out – FromRunes and ParseDigits read puzzle input directly
//   - Deterministic – neighbours are always visited left, right, up, down
//   - Synchronous – every search runs to completion in one call; clone a
//     grid to search it from several goroutines
//
// Quick start:
//
//	g := grid.FromRunes(maze)
//	res, ok := g.PathFinder().
//	    WithStart('S').WithEnd('E').WithObstacles('#').
//	    BFS().Run()
//
// The gridpath command (cmd/gridpath) wraps the same flow for files on disk:
//
//	gridpath path maze.txt --mode dijkstra --config gridpath.yaml
package gridpath
