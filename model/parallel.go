package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NextParallel computes the same transition as Next with the rows split into
// one band per CPU. Cells read only from cur, so the bands are independent
// and need no locking. Output is identical to Next for the same input.
func NextParallel(cur, next *Grid) {
	checkBuffers(cur, next)

	var (
		eg          errgroup.Group
		workers     = runtime.NumCPU()
		rowsPerBand = (cur.rows + workers - 1) / workers
	)
	for i := 0; i < workers; i++ {
		start := i * rowsPerBand
		if start >= cur.rows {
			break
		}
		end := min(start+rowsPerBand, cur.rows)

		eg.Go(func() error {
			for r := start; r < end; r++ {
				nextRow(cur, next, r)
			}
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = eg.Wait()
}
