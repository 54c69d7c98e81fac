// Command gridpath renders character grids and finds routes through them
// with the grid, bfs and dijkstra packages.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
