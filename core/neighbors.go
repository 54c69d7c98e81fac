package core

// cardinalOffsets lists neighbour steps in enumeration order: left, right, up, down.
var cardinalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// CardinalNeighbors returns the cells directly left, right, above and below c
// that lie inside b, in that order.
// Complexity: O(1).
func CardinalNeighbors(c Coord, b Bounds) []Coord {
	out := make([]Coord, 0, len(cardinalOffsets))
	for _, d := range cardinalOffsets {
		n := c.Add(d[0], d[1])
		if b.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// PathFrom rebuilds the path ending at end by following parent links until a
// coordinate without a parent is reached, then reverses it so that the root
// comes first.
//
// The parent function must describe a tree (no cycles); both search packages
// only ever record a parent for a coordinate discovered from an already
// rooted one.
func PathFrom(end Coord, parent func(Coord) (Coord, bool)) []Coord {
	path := []Coord{end}
	for cur := end; ; {
		prev, ok := parent(cur)
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get root → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
