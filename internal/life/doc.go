// Package life implements the Game of Life core on a toroidal grid.
//
// The package is UI-agnostic and has no global state:
//
//   - [Cell]: two-state cell value (Dead or Alive)
//   - [Board]: fixed-size W x H grid of cells, row-major, wrapping at the edges
//   - [Neighbors]: live-neighbor count over the 8 wrapped offsets
//   - [Step]: next generation under Conway's rule (B3/S23)
//   - [Rule]: birth/survival tables in B/S notation for other life-like rules
//
// # Example
//
//	b, _ := life.NewBoard(50, 50)
//	_ = b.Set(1, 0, life.Alive)
//	_ = b.Set(1, 1, life.Alive)
//	_ = b.Set(1, 2, life.Alive)
//	next := life.Step(b) // horizontal blinker
//
// # Small boards
//
// Neighbor offsets are wrapped independently, so on boards narrower than 3
// cells in an axis the same cell can be counted more than once. On a 1x1
// board a live cell counts itself eight times.
//
// # Thread Safety
//
// Board values are NOT safe for concurrent mutation. Step never mutates its
// input, so any number of goroutines may step the same board concurrently.
package life
