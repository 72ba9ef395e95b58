package config

import (
	_ "embed"
)

//go:embed defaults/octoflash.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the
// last-resort fallback when the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size:    14,
			MaxSize: 20,
			Pattern: "random",
		},
		Timing: TimingConfig{
			TickRate:    10,
			MinTickRate: 1,
			MaxTickRate: 60,
		},
		Display: DisplayConfig{
			ShowZeros: false,
			CellWidth: 2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, useful
// for writing a starter config for users to edit.
func DefaultYAML() []byte {
	return defaultYAML
}
