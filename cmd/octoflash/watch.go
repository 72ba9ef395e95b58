package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/octoterm/octoflash/internal/config"
	"github.com/octoterm/octoflash/internal/core"
	"github.com/octoterm/octoflash/internal/pattern"
	"github.com/octoterm/octoflash/internal/platform/tui"
	"github.com/octoterm/octoflash/internal/storage"
)

var (
	flagSize        int
	flagPattern     string
	flagWatchConfig string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the cascade animation",
	Long: `Start the animation and watch the cascade evolve.

Controls:
  +/-        - Grow/shrink the grid (reseeds)
  R          - Reseed with a fresh grid
  P          - Pause
  [/]        - Slower/faster
  Z          - Toggle showing zeros as digits
  Q/Ctrl+C   - Quit

Examples:
  octoflash watch
  octoflash watch --pattern ring
  octoflash watch --size 18 --fps 20
  octoflash watch --config ./my-octoflash.yaml`,
	Run: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagSize, "size", 0, "Grid size (0 = from config)")
	watchCmd.Flags().StringVar(&flagPattern, "pattern", "", "Seed pattern (see 'runs' for recorded ones)")
	watchCmd.Flags().StringVar(&flagWatchConfig, "config", "", "Path to custom config YAML")
}

func runWatch(cmd *cobra.Command, args []string) {
	anim, err := config.Load(flagWatchConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	patternName := anim.Grid.Pattern
	if flagPattern != "" {
		patternName = flagPattern
	}
	if !pattern.Exists(patternName) {
		fmt.Fprintf(os.Stderr, "Error: unknown pattern %q\n", patternName)
		names := pattern.List()
		fmt.Fprint(os.Stderr, "Known patterns:")
		for _, info := range names {
			fmt.Fprintf(os.Stderr, " %s", info.Name)
		}
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}

	gridSize := anim.Grid.Size
	if flagSize > 0 {
		gridSize = flagSize
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		GridSize: gridSize,
		Pattern:  patternName,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - animation still works
		store = nil
	}

	runErr := tui.Run(store, cfg, anim)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running animation: %v\n", runErr)
		os.Exit(1)
	}
}
