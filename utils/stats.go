package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
)

// Stats accumulates timing and population readings over a run for the
// post-run summary.
type Stats struct {
	StartTime            time.Time
	TotalGenerations     int
	GenerationsPerSecond float64
	AveragePopulation    float64
	History              []float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one rendered generation.
func (s *Stats) Update(generation, population int) {
	s.TotalGenerations = generation
	s.History = append(s.History, float64(population))

	if elapsed := time.Since(s.StartTime).Seconds(); elapsed > 0 {
		s.GenerationsPerSecond = float64(generation) / elapsed
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary renders the closing report, with a population-over-time plot when
// there is more than one reading.
func (s *Stats) Summary(stable bool) string {
	outcome := "generation limit reached"
	if stable {
		outcome = "population stabilized"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Run ended after %d generations (%s)\n", s.TotalGenerations, outcome)
	fmt.Fprintf(&b, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		s.GenerationsPerSecond, s.AveragePopulation, time.Since(s.StartTime).Seconds())

	if len(s.History) > 1 {
		b.WriteByte('\n')
		b.WriteString(asciigraph.Plot(s.History,
			asciigraph.Height(8),
			asciigraph.Caption("population by generation")))
		b.WriteByte('\n')
	}
	return b.String()
}
