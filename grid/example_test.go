package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleGrid_Transpose swaps rows and columns of a parsed block.
func ExampleGrid_Transpose() {
	g := grid.FromRunes("123\n456\n789")
	g.Transpose()
	fmt.Println(g)
	// Output:
	// 147
	// 258
	// 369
}

// ExamplePrinter_WithLegend labels rows and columns.
func ExamplePrinter_WithLegend() {
	g, _ := grid.ParseDigits("907\n120")
	fmt.Println(g.Printer().WithLegend())
	// Output:
	//  012
	// 0907
	// 1120
}

// ExampleGrid_PathFinder finds markers in text and overlays the route.
func ExampleGrid_PathFinder() {
	g := grid.FromRunes("S.#\n..#\n#.E")
	res, ok := g.PathFinder().WithStart('S').WithEnd('E').WithObstacles('#').BFS().Run()
	if !ok {
		fmt.Println("no path")
		return
	}
	onPath := make(map[core.Coord]bool)
	for _, c := range res.Path()[1 : res.Len()-1] {
		onPath[c] = true
	}
	fmt.Println(res.Steps())
	fmt.Println(g.Printer().WithCellOverride(func(p grid.Point[int]) (string, bool) {
		return "o", onPath[p.Coord()]
	}))
	// Output:
	// 4
	// So#
	// .o#
	// #oE
}
