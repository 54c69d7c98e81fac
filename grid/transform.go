package grid

// Transpose swaps the row and column of every cell in place.
func (g *Grid[K, D]) Transpose() {
	cells := g.Cells()
	g.Clear()
	for _, c := range cells {
		g.Insert(c.Y, c.X, c.Value)
	}
}

// ToDiagonal rotates the grid 45° clockwise in place. The cell at (x, y)
// moves to row x+y and column (maxY-y)+x, where maxY is the last row key
// before the rotation. The result spans width+height-1 rows and columns, so
// repeated calls keep growing the grid.
func (g *Grid[K, D]) ToDiagonal() {
	yr, ok := g.YRange()
	if !ok {
		return
	}
	cells := g.Cells()
	g.Clear()
	for _, c := range cells {
		g.Insert(yr.End-c.Y+c.X, c.X+c.Y, c.Value)
	}
}
