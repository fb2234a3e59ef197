package model

import (
	"fmt"
	"math/rand"

	"lifeterm/rules"
)

// Grid is the game board for one generation: a fixed-size matrix of binary
// cell states with toroidal topology. Coordinates are zero-based (row, col)
// and wrap modulo the dimensions, so every cell has exactly 8 neighbors and
// there are no special-cased edges. Dimensions never change after creation.
type Grid struct {
	rows, cols int
	cells      [][]bool
}

// NewGrid allocates a dead grid with the given dimensions.
// It panics when either dimension is not positive; user-facing bounds are
// validated before the engine ever sees them.
func NewGrid(rows, cols int) *Grid {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", rows, cols))
	}
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// NewRandomGrid allocates a grid and seeds it via Randomize.
func NewRandomGrid(rng *rand.Rand, rows, cols int, liveProbability float64) *Grid {
	g := NewGrid(rows, cols)
	g.Randomize(rng, liveProbability)
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Get returns the state of the cell at (row, col).
func (g *Grid) Get(row, col int) bool { return g.cells[row][col] }

// Set sets the cell at (row, col) to alive (true) or dead (false).
func (g *Grid) Set(row, col int, alive bool) { g.cells[row][col] = alive }

// Randomize sets every cell alive independently with the given probability.
// The random source is injected so a run can be reproduced from its seed.
func (g *Grid) Randomize(rng *rand.Rand, liveProbability float64) {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = rng.Float64() < liveProbability
		}
	}
}

// LiveNeighbors counts the live cells among the 8 neighbors of (row, col).
// Coordinates wrap: row -1 reads row rows-1, row rows reads row 0, and
// symmetrically for columns. The result is always in [0, 8].
// Out-of-range coordinates are a caller bug and panic.
func (g *Grid) LiveNeighbors(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("model: neighbor count at (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr + g.rows) % g.rows
			nc := (col + dc + g.cols) % g.cols
			if g.cells[nr][nc] {
				count++
			}
		}
	}
	return count
}

// Next computes the generation following cur into next by the B3/S23 rule.
// Every decision reads only from cur, so next must be a distinct buffer of
// the same dimensions; Next panics otherwise, since writing into cur would
// corrupt neighbor counts for cells not yet visited.
func Next(cur, next *Grid) {
	checkBuffers(cur, next)
	for r := 0; r < cur.rows; r++ {
		nextRow(cur, next, r)
	}
}

func nextRow(cur, next *Grid, r int) {
	for c := 0; c < cur.cols; c++ {
		next.cells[r][c] = rules.NextState(cur.LiveNeighbors(r, c), cur.cells[r][c])
	}
}

func checkBuffers(cur, next *Grid) {
	if cur == next {
		panic("model: next-generation buffer aliases the current grid")
	}
	if cur.rows != next.rows || cur.cols != next.cols {
		panic(fmt.Sprintf("model: grid dimensions differ: %dx%d vs %dx%d",
			cur.rows, cur.cols, next.rows, next.cols))
	}
}

// Equal reports whether both grids hold identical cell states. The scan is
// row-major and exits on the first difference. Two equal consecutive
// generations mean the population reached a steady state, extinction included.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// CountLiving returns the total number of live cells.
func (g *Grid) CountLiving() (count int) {
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}
