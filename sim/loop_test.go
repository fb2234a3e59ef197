package sim

import (
	"context"
	"math/rand"
	"testing"

	"lifeterm/model"
)

// recorder captures every render call.
type recorder struct {
	generations []int
	populations []int
}

func (r *recorder) render(g *model.Grid, generation int) {
	r.generations = append(r.generations, generation)
	r.populations = append(r.populations, g.CountLiving())
}

func blinkerGrid(rows, cols int) *model.Grid {
	g := model.NewGrid(rows, cols)
	g.AddBlinker(rows/2, cols/2)
	return g
}

func TestRunStopsImmediatelyWhenBuffersEqual(t *testing.T) {
	rec := &recorder{}
	loop := NewWithGrids(model.NewGrid(5, 5), model.NewGrid(5, 5),
		Options{Generations: 100}, rec.render)

	res := loop.Run(context.Background())

	if !res.Stable {
		t.Error("identical buffers not reported stable")
	}
	if res.Generations != 1 {
		t.Errorf("Generations = %d, want 1", res.Generations)
	}
	// Only the single post-loop render.
	if len(rec.generations) != 1 || rec.generations[0] != 1 {
		t.Errorf("render calls = %v, want exactly [1]", rec.generations)
	}
}

func TestRunStopsWhenPopulationStabilizes(t *testing.T) {
	cur := model.NewGrid(6, 6)
	cur.AddBlock(2, 2)
	rec := &recorder{}
	loop := NewWithGrids(cur, model.NewGrid(6, 6), Options{Generations: 100}, rec.render)

	res := loop.Run(context.Background())

	// Generation 1 renders in-loop; the block maps to itself, so generation 2
	// finds equal buffers and only the final render follows.
	if !res.Stable {
		t.Error("still life not reported stable")
	}
	if res.Generations != 2 {
		t.Errorf("Generations = %d, want 2", res.Generations)
	}
	want := []int{1, 2}
	if len(rec.generations) != len(want) {
		t.Fatalf("render generations = %v, want %v", rec.generations, want)
	}
	for i := range want {
		if rec.generations[i] != want[i] {
			t.Fatalf("render generations = %v, want %v", rec.generations, want)
		}
	}
}

func TestRunExhaustsGenerationLimit(t *testing.T) {
	// A blinker never equals its predecessor, so only the limit stops the run.
	rec := &recorder{}
	loop := NewWithGrids(blinkerGrid(5, 5), model.NewGrid(5, 5),
		Options{Generations: 4}, rec.render)

	res := loop.Run(context.Background())

	if res.Stable {
		t.Error("oscillator incorrectly reported stable")
	}
	if res.Generations != 4 {
		t.Errorf("Generations = %d, want 4", res.Generations)
	}
	// Generations 1-4 render in-loop, then one final render at the last-held
	// generation number.
	want := []int{1, 2, 3, 4, 4}
	if len(rec.generations) != len(want) {
		t.Fatalf("render generations = %v, want %v", rec.generations, want)
	}
	for i := range want {
		if rec.generations[i] != want[i] {
			t.Fatalf("render generations = %v, want %v", rec.generations, want)
		}
	}
	if len(res.Population) != len(want) {
		t.Errorf("population history has %d entries, want %d", len(res.Population), len(want))
	}
}

func TestRunBlinkerPopulationConstant(t *testing.T) {
	rec := &recorder{}
	loop := NewWithGrids(blinkerGrid(7, 7), model.NewGrid(7, 7),
		Options{Generations: 6}, rec.render)

	loop.Run(context.Background())

	for i, pop := range rec.populations {
		if pop != 3 {
			t.Fatalf("render %d saw population %d, want 3", i, pop)
		}
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	loop := NewWithGrids(blinkerGrid(5, 5), model.NewGrid(5, 5),
		Options{Generations: 100}, rec.render)

	res := loop.Run(ctx)

	if res.Stable {
		t.Error("cancelled run reported stable")
	}
	if res.Generations != 1 {
		t.Errorf("Generations = %d, want 1", res.Generations)
	}
	if len(rec.generations) != 1 {
		t.Errorf("render calls = %v, want only the final render", rec.generations)
	}
}

func TestRunParallelMatchesSerial(t *testing.T) {
	seedGrids := func() (*model.Grid, *model.Grid) {
		rng := rand.New(rand.NewSource(11))
		return model.NewRandomGrid(rng, 12, 24, 0.125),
			model.NewRandomGrid(rng, 12, 24, 0.125)
	}

	var serialPops, parallelPops []int
	cur, next := seedGrids()
	NewWithGrids(cur, next, Options{Generations: 10}, func(g *model.Grid, _ int) {
		serialPops = append(serialPops, g.CountLiving())
	}).Run(context.Background())

	cur, next = seedGrids()
	NewWithGrids(cur, next, Options{Generations: 10, Parallel: true}, func(g *model.Grid, _ int) {
		parallelPops = append(parallelPops, g.CountLiving())
	}).Run(context.Background())

	if len(serialPops) != len(parallelPops) {
		t.Fatalf("serial rendered %d frames, parallel %d", len(serialPops), len(parallelPops))
	}
	for i := range serialPops {
		if serialPops[i] != parallelPops[i] {
			t.Fatalf("frame %d: serial population %d, parallel %d", i, serialPops[i], parallelPops[i])
		}
	}
}

func TestNewSeedsIndependentBuffers(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	loop := New(rng, 10, 10, 0.5, Options{Generations: 1}, func(*model.Grid, int) {})

	if loop.cur == loop.next {
		t.Fatal("loop buffers alias each other")
	}
	// With p=0.5 on 100 cells, two independent draws colliding would be
	// astronomically unlikely; equality means the buffers share state.
	if loop.cur.Equal(loop.next) {
		t.Error("independently seeded buffers are identical")
	}
}
