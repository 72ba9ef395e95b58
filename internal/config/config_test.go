package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	def := Default()
	if cfg.Grid.Size != def.Grid.Size {
		t.Errorf("Grid.Size = %d, expected %d", cfg.Grid.Size, def.Grid.Size)
	}
	if cfg.Grid.MaxSize != def.Grid.MaxSize {
		t.Errorf("Grid.MaxSize = %d, expected %d", cfg.Grid.MaxSize, def.Grid.MaxSize)
	}
	if cfg.Timing.TickRate != def.Timing.TickRate {
		t.Errorf("Timing.TickRate = %d, expected %d", cfg.Timing.TickRate, def.Timing.TickRate)
	}
	if cfg.Grid.Pattern != "random" {
		t.Errorf("Grid.Pattern = %q, expected %q", cfg.Grid.Pattern, "random")
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
grid:
  size: 8
  pattern: ring
timing:
  tick_rate: 20
display:
  show_zeros: true
  cell_width: 3
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Grid.Size != 8 {
		t.Errorf("Grid.Size = %d, expected 8", cfg.Grid.Size)
	}
	if cfg.Grid.Pattern != "ring" {
		t.Errorf("Grid.Pattern = %q, expected %q", cfg.Grid.Pattern, "ring")
	}
	if cfg.Timing.TickRate != 20 {
		t.Errorf("Timing.TickRate = %d, expected 20", cfg.Timing.TickRate)
	}
	if !cfg.Display.ShowZeros {
		t.Error("Display.ShowZeros should be true")
	}
	if cfg.Display.CellWidth != 3 {
		t.Errorf("Display.CellWidth = %d, expected 3", cfg.Display.CellWidth)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing explicit config path")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := Config{
		Grid:   GridConfig{Size: 99, MaxSize: 50},
		Timing: TimingConfig{TickRate: 1000, MinTickRate: 1, MaxTickRate: 60},
	}
	cfg.Normalize()

	if cfg.Grid.MaxSize != 20 {
		t.Errorf("Grid.MaxSize = %d, expected clamp to 20", cfg.Grid.MaxSize)
	}
	if cfg.Grid.Size != 20 {
		t.Errorf("Grid.Size = %d, expected clamp to 20", cfg.Grid.Size)
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("Timing.TickRate = %d, expected clamp to 60", cfg.Timing.TickRate)
	}
}

func TestNormalizeFillsZeroValues(t *testing.T) {
	var cfg Config
	cfg.Normalize()

	def := Default()
	if cfg.Grid.Size != def.Grid.Size || cfg.Grid.Pattern != def.Grid.Pattern {
		t.Errorf("Zero config not filled with defaults: %+v", cfg.Grid)
	}
	if cfg.Timing.TickRate != def.Timing.TickRate {
		t.Errorf("Timing.TickRate = %d, expected %d", cfg.Timing.TickRate, def.Timing.TickRate)
	}
	if cfg.Display.CellWidth != def.Display.CellWidth {
		t.Errorf("Display.CellWidth = %d, expected %d", cfg.Display.CellWidth, def.Display.CellWidth)
	}
}
