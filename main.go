package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile  string
	rows        int
	cols        int
	generations int
	probability float64
	intervalMS  int
	seed        int64
	parallel    bool
	pattern     string
	useTUI      bool
	noResize    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifeterm",
		Short: "Conway's Game of Life on a toroidal grid, in your terminal",
		Long: "lifeterm simulates Conway's Game of Life on an edge-wrapping grid and\n" +
			"renders each generation until the population stabilizes or the\n" +
			"generation limit runs out. Dimensions not given as flags are prompted for.",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().IntVar(&rows, "rows", 0, "grid rows (10-60, prompted when omitted)")
	rootCmd.Flags().IntVar(&cols, "cols", 0, "grid columns (10-118, prompted when omitted)")
	rootCmd.Flags().IntVar(&generations, "generations", 0, "generation limit (1-100000, prompted when omitted)")
	rootCmd.Flags().Float64Var(&probability, "probability", 0, "live-cell seeding probability in (0,1]")
	rootCmd.Flags().IntVar(&intervalMS, "interval", 0, "milliseconds between frames")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	rootCmd.Flags().BoolVar(&parallel, "parallel", false, "compute generations with one worker per CPU")
	rootCmd.Flags().StringVar(&pattern, "pattern", "", "seed a fixed pattern instead of random cells (glider, blinker, block)")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "run the interactive live view")
	rootCmd.Flags().BoolVar(&noResize, "no-resize", false, "skip the terminal resize escape")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
