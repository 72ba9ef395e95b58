package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/octoterm/octoflash/internal/platform/tui"
	"github.com/octoterm/octoflash/internal/storage"
)

var (
	flagRunsLimit   int
	flagClear       bool
	flagInteractive bool
	flagBest        string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded run history",
	Long: `Display the most recent recorded runs.

Every watch session that advanced at least one step is recorded:
pattern, grid size, seed, steps, flashes, and the step where the grid
first synchronized (if it did).

Examples:
  octoflash runs
  octoflash runs --limit 50
  octoflash runs --interactive
  octoflash runs --best random
  octoflash runs --clear`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	runsCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in an interactive table")
	runsCmd.Flags().StringVar(&flagBest, "best", "", "Show the fastest synchronization for a pattern")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if clearErr := store.ClearRuns(); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagBest != "" {
		best, bestErr := store.BestSync(flagBest)
		if bestErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", bestErr)
			os.Exit(1)
		}
		if best == nil {
			fmt.Printf("No synchronized runs recorded for %q yet.\n", flagBest)
			return
		}
		fmt.Printf("Fastest sync for %q: step %d (%dx%d grid, seed %d, %s)\n",
			best.Pattern, best.SyncStep, best.Rows, best.Cols, best.Seed,
			best.CreatedAt.Format("2006-01-02 15:04"))
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if histErr := tui.RunHistory(store, width, height); histErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'octoflash watch' to record the first one.")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-7s  %-8s  %-9s  %s\n", "When", "Pattern", "Size", "Steps", "Flashes", "Sync")
	fmt.Printf("  %-16s  %-10s  %-7s  %-8s  %-9s  %s\n", "----", "-------", "----", "-----", "-------", "----")

	for _, r := range runs {
		sync := "-"
		if r.SyncStep > 0 {
			sync = fmt.Sprintf("%d", r.SyncStep)
		}
		fmt.Printf("  %-16s  %-10s  %-7s  %-8d  %-9d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Pattern,
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			r.Steps,
			r.Flashes,
			sync,
		)
	}

	total, err := store.TotalFlashes()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total flashes across all runs: %d\n", total)
	}
}
