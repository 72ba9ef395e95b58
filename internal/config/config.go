// Package config provides YAML-based configuration loading for the
// octoflash animation.
package config

import (
	"github.com/octoterm/octoflash/internal/sim"
)

// Config contains all tunable parameters for the animation.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
}

// GridConfig defines the field dimensions and seeding.
type GridConfig struct {
	Size    int    `yaml:"size"`     // Rows and columns (square grid)
	MaxSize int    `yaml:"max_size"` // Upper bound for interactive resizing
	Pattern string `yaml:"pattern"`  // Seed pattern name
}

// TimingConfig defines the cadence of the animation loop.
type TimingConfig struct {
	TickRate    int `yaml:"tick_rate"`     // Simulation steps per second
	MinTickRate int `yaml:"min_tick_rate"` // Lower bound for interactive speed control
	MaxTickRate int `yaml:"max_tick_rate"` // Upper bound for interactive speed control
}

// DisplayConfig defines presentation options.
type DisplayConfig struct {
	ShowZeros bool `yaml:"show_zeros"` // Render zero cells as digits instead of dots
	CellWidth int  `yaml:"cell_width"` // Horizontal cells per grid column (spacing)
}

// Normalize clamps out-of-range values to usable ones. A zero value
// in any field falls back to its default.
func (c *Config) Normalize() {
	def := Default()

	if c.Grid.MaxSize <= 0 {
		c.Grid.MaxSize = def.Grid.MaxSize
	}
	if c.Grid.MaxSize > sim.MaxSize {
		c.Grid.MaxSize = sim.MaxSize
	}
	if c.Grid.Size <= 0 {
		c.Grid.Size = def.Grid.Size
	}
	if c.Grid.Size > c.Grid.MaxSize {
		c.Grid.Size = c.Grid.MaxSize
	}
	if c.Grid.Pattern == "" {
		c.Grid.Pattern = def.Grid.Pattern
	}

	if c.Timing.MinTickRate <= 0 {
		c.Timing.MinTickRate = def.Timing.MinTickRate
	}
	if c.Timing.MaxTickRate <= 0 {
		c.Timing.MaxTickRate = def.Timing.MaxTickRate
	}
	if c.Timing.MaxTickRate < c.Timing.MinTickRate {
		c.Timing.MaxTickRate = c.Timing.MinTickRate
	}
	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = def.Timing.TickRate
	}
	if c.Timing.TickRate < c.Timing.MinTickRate {
		c.Timing.TickRate = c.Timing.MinTickRate
	}
	if c.Timing.TickRate > c.Timing.MaxTickRate {
		c.Timing.TickRate = c.Timing.MaxTickRate
	}

	if c.Display.CellWidth <= 0 {
		c.Display.CellWidth = def.Display.CellWidth
	}
}
