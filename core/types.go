package core

import "fmt"

// Coord is a cell position on a two-dimensional grid.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c moved by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String formats c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Bounds is an inclusive rectangle spanning TopLeft to BottomRight.
// A Bounds with TopLeft beyond BottomRight on either axis contains nothing.
type Bounds struct {
	TopLeft, BottomRight Coord
}

// BoundsOf returns the smallest Bounds containing every supplied coordinate.
func BoundsOf(first Coord, rest ...Coord) Bounds {
	b := Bounds{TopLeft: first, BottomRight: first}
	for _, c := range rest {
		b = b.Extend(c)
	}
	return b
}

// Extend returns the smallest Bounds containing both b and c.
func (b Bounds) Extend(c Coord) Bounds {
	b.TopLeft.X = min(b.TopLeft.X, c.X)
	b.TopLeft.Y = min(b.TopLeft.Y, c.Y)
	b.BottomRight.X = max(b.BottomRight.X, c.X)
	b.BottomRight.Y = max(b.BottomRight.Y, c.Y)
	return b
}

// Contains reports whether c lies inside b (edges included).
func (b Bounds) Contains(c Coord) bool {
	return c.X >= b.TopLeft.X && c.X <= b.BottomRight.X &&
		c.Y >= b.TopLeft.Y && c.Y <= b.BottomRight.Y
}

// Width is the number of columns covered by b.
func (b Bounds) Width() int {
	return max(0, b.BottomRight.X-b.TopLeft.X+1)
}

// Height is the number of rows covered by b.
func (b Bounds) Height() int {
	return max(0, b.BottomRight.Y-b.TopLeft.Y+1)
}

// Area is Width()*Height().
func (b Bounds) Area() int {
	return b.Width() * b.Height()
}

// String formats b as "(x0,y0)-(x1,y1)".
func (b Bounds) String() string {
	return b.TopLeft.String() + "-" + b.BottomRight.String()
}
