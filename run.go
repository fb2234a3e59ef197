package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lifeterm/model"
	"lifeterm/sim"
	"lifeterm/term"
	"lifeterm/tui"
	"lifeterm/utils"
)

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	cur, next := buildGrids(cfg, rng)

	if useTUI {
		_, err = tea.NewProgram(tui.NewModel(cur, next, cfg), tea.WithAltScreen()).Run()
		return err
	}

	renderer := term.NewRenderer(os.Stdout)
	if !noResize {
		renderer.Resize(cfg.Rows, cfg.Cols)
	}

	stats := utils.NewStats()
	loop := sim.NewWithGrids(cur, next, sim.Options{
		Generations: cfg.Generations,
		Interval:    cfg.FrameInterval(),
		Parallel:    cfg.Parallel,
	}, func(g *model.Grid, generation int) {
		renderer.Frame(g, generation)
		stats.Update(generation, g.CountLiving())
	})

	// Ctrl-C lands at the next generation boundary, which still gets the
	// final render and the summary.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result := loop.Run(ctx)
	fmt.Println()
	fmt.Print(stats.Summary(result.Stable))
	return nil
}

// buildConfig layers the config file, flag overrides, and interactive prompts
// for whatever dimensions remain unset.
func buildConfig(cmd *cobra.Command) (utils.Config, error) {
	cfg := utils.DefaultConfig()
	if configFile != "" {
		loaded, err := utils.LoadConfig(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("probability") {
		cfg.LiveProbability = probability
	}
	if cmd.Flags().Changed("interval") {
		cfg.IntervalMS = intervalMS
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = parallel
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = pattern
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Dimensions and the limit come from flags when given, the config file
	// when loaded, and otherwise from the same prompts the original game used.
	in := bufio.NewReader(os.Stdin)
	skipPrompts := cmd.Flags().Changed("rows") || cmd.Flags().Changed("cols") ||
		cmd.Flags().Changed("generations") || configFile != ""
	if cmd.Flags().Changed("rows") {
		cfg.Rows = rows
	}
	if cmd.Flags().Changed("cols") {
		cfg.Cols = cols
	}
	if cmd.Flags().Changed("generations") {
		cfg.Generations = generations
	}
	if !skipPrompts {
		var err error
		if cfg.Rows, err = term.PromptInt(in, os.Stdout, "Enter the number of rows", utils.MinRows, utils.MaxRows); err != nil {
			return cfg, err
		}
		if cfg.Cols, err = term.PromptInt(in, os.Stdout, "Enter the number of cols", utils.MinCols, utils.MaxCols); err != nil {
			return cfg, err
		}
		if cfg.Generations, err = term.PromptInt(in, os.Stdout, "Enter the number of generations", utils.MinGenerations, utils.MaxGenerations); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// buildGrids seeds the two generation buffers: independently random boards by
// default, or a fixed pattern centered on an otherwise dead board.
func buildGrids(cfg utils.Config, rng *rand.Rand) (cur, next *model.Grid) {
	if cfg.Pattern == "" {
		cur = model.NewRandomGrid(rng, cfg.Rows, cfg.Cols, cfg.LiveProbability)
		next = model.NewRandomGrid(rng, cfg.Rows, cfg.Cols, cfg.LiveProbability)
		return cur, next
	}

	cur = model.NewGrid(cfg.Rows, cfg.Cols)
	row, col := cfg.Rows/2, cfg.Cols/2
	switch cfg.Pattern {
	case "glider":
		cur.AddGlider(row, col)
	case "blinker":
		cur.AddBlinker(row, col)
	case "block":
		cur.AddBlock(row, col)
	}
	return cur, model.NewGrid(cfg.Rows, cfg.Cols)
}
