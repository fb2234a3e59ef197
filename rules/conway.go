package rules

/*
NextState applies the classic B3/S23 Game of Life rule to a single cell.

A cell is alive in the next generation when it has exactly three live
neighbors, or when it is already alive and has exactly two: birth on 3,
survival on 2 or 3, death from under- or overpopulation otherwise.
*/
func NextState(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
