package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/octoterm/octoflash/internal/sim"
)

var (
	flagSteps     int
	flagUntilSync bool
	flagSyncLimit int
)

var stepCmd = &cobra.Command{
	Use:   "step [file]",
	Short: "Step a grid and print flash counts",
	Long: `Read a grid of digits (0-9) from a file or stdin, apply steps,
and print the flash count of every step followed by the final grid.

The input is one row per line, all rows the same length. Blank lines
and lines are trimmed of surrounding whitespace.

Examples:
  octoflash step grid.txt
  octoflash step grid.txt --steps 100
  octoflash step --until-sync < grid.txt
  echo 99/99 | tr / '\n' | octoflash step --steps 3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStep,
}

func init() {
	stepCmd.Flags().IntVar(&flagSteps, "steps", 1, "Number of steps to apply")
	stepCmd.Flags().BoolVar(&flagUntilSync, "until-sync", false, "Step until every cell flashes in the same step")
	stepCmd.Flags().IntVar(&flagSyncLimit, "limit", 1000, "Step limit for --until-sync")
}

func runStep(cmd *cobra.Command, args []string) {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	grid, err := readGrid(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading grid: %v\n", err)
		os.Exit(1)
	}

	if flagUntilSync {
		runUntilSync(grid)
		return
	}

	total := 0
	for i := 1; i <= flagSteps; i++ {
		flashes, stepErr := grid.Step()
		if stepErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", stepErr)
			os.Exit(1)
		}
		total += flashes
		fmt.Printf("step %d: %d flashes\n", i, flashes)
	}

	fmt.Printf("total: %d flashes\n\n", total)
	printGrid(grid)
}

func runUntilSync(grid *sim.Grid) {
	want := grid.Rows() * grid.Cols()

	for i := 1; i <= flagSyncLimit; i++ {
		flashes, err := grid.Step()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if flashes == want {
			fmt.Printf("synchronized after %d steps\n\n", i)
			printGrid(grid)
			return
		}
	}

	fmt.Printf("no sync within %d steps\n\n", flagSyncLimit)
	printGrid(grid)
}

func readGrid(in io.Reader) (*sim.Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sim.Parse(lines)
}

func printGrid(grid *sim.Grid) {
	for _, line := range grid.Lines() {
		fmt.Println(line)
	}
}
