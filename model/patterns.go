package model

// Pattern seeding helpers. Coordinates wrap like everything else on the
// torus, so patterns may be placed anywhere, including across an edge.

func (g *Grid) set(row, col int, alive bool) {
	g.cells[(row%g.rows+g.rows)%g.rows][(col%g.cols+g.cols)%g.cols] = alive
}

// AddGlider places the classic glider with its bounding box anchored at
// (row, col).
func (g *Grid) AddGlider(row, col int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	for r, cells := range pattern {
		for c, alive := range cells {
			g.set(row+r, col+c, alive)
		}
	}
}

// AddBlinker places a horizontal blinker, a period-2 oscillator, starting at
// (row, col).
func (g *Grid) AddBlinker(row, col int) {
	g.set(row, col, true)
	g.set(row, col+1, true)
	g.set(row, col+2, true)
}

// AddBlock places a 2x2 block, the smallest still life, anchored at (row, col).
func (g *Grid) AddBlock(row, col int) {
	g.set(row, col, true)
	g.set(row, col+1, true)
	g.set(row+1, col, true)
	g.set(row+1, col+1, true)
}
