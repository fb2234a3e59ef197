package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Bounds enforced on user-supplied values. The engine itself accepts any
// positive dimensions; these keep boards readable in a terminal.
const (
	MinRows, MaxRows               = 10, 60
	MinCols, MaxCols               = 10, 118
	MinGenerations, MaxGenerations = 1, 100000
)

// Config holds the settings for one run.
type Config struct {
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
	Generations     int     `yaml:"generations"`
	LiveProbability float64 `yaml:"live_probability"`
	IntervalMS      int     `yaml:"interval_ms"`
	Parallel        bool    `yaml:"parallel"`
	Seed            int64   `yaml:"seed"`    // 0 means seed from the clock
	Pattern         string  `yaml:"pattern"` // "", "glider", "blinker" or "block"
}

// DefaultConfig mirrors the classic run: 1-in-8 live seeding at 5 frames per
// second.
func DefaultConfig() Config {
	return Config{
		Rows:            30,
		Cols:            60,
		Generations:     1000,
		LiveProbability: 0.125,
		IntervalMS:      200,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", path)
	}

	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", path)
	}

	return cfg, nil
}

// FrameInterval returns the pause between rendered generations.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Validate checks the config against the same bounds the interactive prompts
// enforce.
func (c Config) Validate() error {
	if c.Rows < MinRows || c.Rows > MaxRows {
		return fmt.Errorf("rows must be within [%d,%d], got %d", MinRows, MaxRows, c.Rows)
	}
	if c.Cols < MinCols || c.Cols > MaxCols {
		return fmt.Errorf("cols must be within [%d,%d], got %d", MinCols, MaxCols, c.Cols)
	}
	if c.Generations < MinGenerations || c.Generations > MaxGenerations {
		return fmt.Errorf("generations must be within [%d,%d], got %d", MinGenerations, MaxGenerations, c.Generations)
	}
	if c.LiveProbability <= 0 || c.LiveProbability > 1 {
		return fmt.Errorf("live_probability must be in (0,1], got %g", c.LiveProbability)
	}
	if c.IntervalMS < 0 {
		return fmt.Errorf("interval_ms must not be negative, got %d", c.IntervalMS)
	}
	switch c.Pattern {
	case "", "glider", "blinker", "block":
	default:
		return fmt.Errorf("unknown pattern %q", c.Pattern)
	}
	return nil
}
