package grid

// Regions groups the present cells accepted by match into 4-connected
// regions. Regions are ordered by their first cell in row-major order and
// each lists its points in discovery order.
//
// Time:   O(N·log N) for N present cells.
// Memory: O(N) for the seen set and output.
func (g *Grid[K, D]) Regions(match func(D) bool) [][]Point[K] {
	seen := make(map[Point[K]]struct{})
	var regions [][]Point[K]

	for p0, v := range g.All() {
		if !match(v) {
			continue
		}
		if _, ok := seen[p0]; ok {
			continue
		}
		// flood fill
		seen[p0] = struct{}{}
		queue := []Point[K]{p0}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, n := range g.CardinalNeighbors(u.X, u.Y) {
				if _, ok := seen[n]; ok {
					continue
				}
				if nv, ok := g.Get(n.X, n.Y); ok && match(nv) {
					seen[n] = struct{}{}
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}
