// octoflash animates flash cascades on a grid of energy levels in the terminal.
//
// Usage:
//
//	octoflash watch             - Watch the cascade animation
//	octoflash step              - Step a grid from a file or stdin
//	octoflash runs              - Show recorded run history
//	octoflash serve             - Start SSH server for remote watching
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 10)
//	--seed <value>  - Set RNG seed for reproducible cascades
//	--db <path>     - Set database path (default: ~/.octoflash/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "octoflash",
	Short: "octoflash - Flash cascades in your terminal",
	Long: `octoflash runs a cellular cascade on a grid of energy levels.
Every tick each cell charges by one; a cell at level 9 flashes and
charges its eight neighbors, which can chain into avalanches.

Available commands:
  watch    - Watch the animation live
  step     - Step a grid from a file or stdin and print flash counts
  runs     - View recorded run history
  serve    - Start SSH server for remote watching

Examples:
  octoflash watch
  octoflash watch --pattern ring --size 18
  octoflash step grid.txt --steps 10
  octoflash runs
  octoflash serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Tick rate (steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.octoflash/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
