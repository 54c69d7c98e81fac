package grid

// CardinalNeighbors returns the four orthogonally adjacent points in the
// order left, up, right, down. Steps that would leave the range of K are
// omitted. Points outside the stored cells are still returned.
func (g *Grid[K, D]) CardinalNeighbors(x, y K) []Point[K] {
	out := make([]Point[K], 0, 4)
	l, okL := dec(x)
	u, okU := dec(y)
	r, okR := inc(x)
	d, okD := inc(y)
	if okL {
		out = append(out, Point[K]{X: l, Y: y})
	}
	if okU {
		out = append(out, Point[K]{X: x, Y: u})
	}
	if okR {
		out = append(out, Point[K]{X: r, Y: y})
	}
	if okD {
		out = append(out, Point[K]{X: x, Y: d})
	}
	return out
}

// AllNeighbors returns up to eight adjacent points, diagonals included,
// clipped at the range of K like CardinalNeighbors.
func (g *Grid[K, D]) AllNeighbors(x, y K) []Point[K] {
	out := make([]Point[K], 0, 8)
	l, okL := dec(x)
	u, okU := dec(y)
	r, okR := inc(x)
	d, okD := inc(y)
	add := func(ok bool, px, py K) {
		if ok {
			out = append(out, Point[K]{X: px, Y: py})
		}
	}
	add(okL, l, y)
	add(okL && okD, l, d)
	add(okL && okU, l, u)
	add(okU, x, u)
	add(okR && okU, r, u)
	add(okR, r, y)
	add(okD, x, d)
	add(okR && okD, r, d)
	return out
}

func dec[K Key](k K) (K, bool) {
	n := k - 1
	return n, n < k
}

func inc[K Key](k K) (K, bool) {
	n := k + 1
	return n, n > k
}
