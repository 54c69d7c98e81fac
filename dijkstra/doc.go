// Package dijkstra finds the minimum-cost route between two cells of a grid
// of obstacles, where the cost of every step comes from a pluggable
// function.
//
// What
//
//   - A FIFO work queue seeded with (start, 0) and a best-known map
//     coordinate → {cost, parent}.
//   - Each expanded cell offers its in-bounds, non-obstacle cardinal
//     neighbours a candidate cost computed by the CostFunc. A candidate is
//     recorded only when no entry exists yet or it is strictly cheaper.
//   - Improved neighbours are queued again (label correcting), except the end
//     coordinate, which is recorded but never expanded.
//   - After the queue drains, Result.Found / Result.Path / Result.Cost report
//     the outcome. Not finding the end is a normal result, not an error.
//
// Why not a heap?
//
//	Grid costs in the intended use are small and fairly uniform, so a FIFO
//	with re-queueing stays close to linear and keeps the cost function free
//	to depend on the origin, the destination and the running total.
//
// Cost functions
//
//	UniformCost (default) adds 1 per step, making the search equivalent to
//	breadth-first search. DirectionalCost prices each direction separately.
//	Cost functions must never lower the running total; see CostFunc.
//
// Usage
//
//	res := dijkstra.NewSearch(
//	    core.C(0, 0), core.C(6, 5),
//	    dijkstra.WithBounds(core.C(0, 0), core.C(6, 6)),
//	    dijkstra.WithObstacles(walls...),
//	    dijkstra.WithCostFunc(dijkstra.DirectionalCost(10, 1, 1, 1)),
//	).Run()
//	if path, ok := res.Path(); ok {
//	    fmt.Println(path)
//	}
package dijkstra
