package sim

import (
	"context"
	"math/rand"
	"time"

	"lifeterm/model"
)

// RenderFunc receives the current grid and its generation number, once per
// displayed generation. Implementations must treat the grid as read-only.
type RenderFunc func(g *model.Grid, generation int)

// Options configure a run.
type Options struct {
	Generations int           // inclusive upper bound on generation numbers, >= 1
	Interval    time.Duration // pause between frames; 0 disables pacing
	Parallel    bool          // row-banded next-generation computation
}

// Result summarizes a finished run.
type Result struct {
	Generations int   // generation number held when the loop stopped
	Stable      bool  // the run ended on a steady state rather than the limit
	Population  []int // live-cell count per rendered generation
}

// Loop drives the engine across generations over a pair of buffers. It owns
// both grids for the duration of a run; nothing else mutates them. Each step
// is computed fully into the alternate buffer and the roles are swapped, so a
// rendered grid is never partially updated.
type Loop struct {
	cur, next *model.Grid
	render    RenderFunc
	opts      Options
}

// New seeds two independently random grids and prepares a loop over them.
func New(rng *rand.Rand, rows, cols int, liveProbability float64, opts Options, render RenderFunc) *Loop {
	return NewWithGrids(
		model.NewRandomGrid(rng, rows, cols, liveProbability),
		model.NewRandomGrid(rng, rows, cols, liveProbability),
		opts, render,
	)
}

// NewWithGrids prepares a loop over caller-supplied buffers, for seeded
// patterns and deterministic tests.
func NewWithGrids(cur, next *model.Grid, opts Options, render RenderFunc) *Loop {
	return &Loop{cur: cur, next: next, render: render, opts: opts}
}

// Run advances generations until the board stabilizes, the generation limit
// is exhausted, or ctx is cancelled at a generation boundary. Exactly one
// final render happens after the loop, at the last generation number it held.
func (l *Loop) Run(ctx context.Context) Result {
	var res Result
	gen := 1

loop:
	for ; gen <= l.opts.Generations; gen++ {
		select {
		case <-ctx.Done():
			break loop
		default:
		}

		// The alternate buffer still holds the previous generation; equality
		// means the population stopped changing.
		if l.cur.Equal(l.next) {
			res.Stable = true
			break
		}

		l.render(l.cur, gen)
		res.Population = append(res.Population, l.cur.CountLiving())

		l.step()
		l.sleep(ctx)
		l.cur, l.next = l.next, l.cur
	}

	if gen > l.opts.Generations {
		gen = l.opts.Generations
	}
	l.render(l.cur, gen)
	res.Population = append(res.Population, l.cur.CountLiving())
	res.Generations = gen
	return res
}

func (l *Loop) step() {
	if l.opts.Parallel {
		model.NextParallel(l.cur, l.next)
		return
	}
	model.Next(l.cur, l.next)
}

// sleep paces the frame rate. Cancellation cuts the wait short so the loop
// can exit at the next generation boundary.
func (l *Loop) sleep(ctx context.Context) {
	if l.opts.Interval <= 0 {
		return
	}
	t := time.NewTimer(l.opts.Interval)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
