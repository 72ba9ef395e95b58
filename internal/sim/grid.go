// Package sim implements the flash-cascade simulation: a rectangular
// grid of single-digit energy levels advanced one step at a time.
// This package is UI-agnostic and deterministic.
package sim

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxLevel is the highest energy level a cell holds at rest.
	// A cell flashes when it sits at MaxLevel and receives energy.
	MaxLevel = 9

	// MaxSize is the largest supported grid dimension.
	MaxSize = 20

	// DefaultSize is the grid dimension used when none is configured.
	DefaultSize = 14
)

// ErrInvalidGrid is returned when a grid is empty, ragged, or holds
// cells outside the '0'..'9' digit range.
var ErrInvalidGrid = errors.New("sim: invalid grid")

// Grid is a rectangular field of energy levels, stored as rows of
// ASCII digit bytes. All rows have equal length. At rest every cell
// is in '0'..'9'; values only exceed '9' transiently inside Step.
type Grid struct {
	rows [][]byte
}

// New creates a grid of the given dimensions with every cell at zero.
func New(rows, cols int) *Grid {
	g := &Grid{rows: make([][]byte, rows)}
	for r := range g.rows {
		g.rows[r] = []byte(strings.Repeat("0", cols))
	}
	return g
}

// Parse builds a grid from equal-length digit strings, row-major.
// This is the boundary format: one string per row, '0'..'9' per cell.
func Parse(lines []string) (*Grid, error) {
	g := &Grid{rows: make([][]byte, len(lines))}
	for r, line := range lines {
		g.rows[r] = []byte(line)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the at-rest invariants: non-empty, rectangular,
// every cell a decimal digit. Wraps ErrInvalidGrid on failure.
func (g *Grid) Validate() error {
	if len(g.rows) == 0 || len(g.rows[0]) == 0 {
		return fmt.Errorf("%w: grid is empty", ErrInvalidGrid)
	}
	want := len(g.rows[0])
	for r, row := range g.rows {
		if len(row) != want {
			return fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidGrid, r, len(row), want)
		}
		for c, b := range row {
			if b < '0' || b > '9' {
				return fmt.Errorf("%w: cell (%d,%d) is %q, want digit", ErrInvalidGrid, r, c, b)
			}
		}
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// InBounds returns true if (r, c) is a valid coordinate.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows() && c >= 0 && c < g.Cols()
}

// At returns the energy level at (r, c) as an int in [0, 9].
// Returns 0 for out-of-bounds coordinates.
func (g *Grid) At(r, c int) int {
	if !g.InBounds(r, c) {
		return 0
	}
	return int(g.rows[r][c] - '0')
}

// Set stores an energy level at (r, c). Levels are clamped to
// [0, MaxLevel]; out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(r, c, level int) {
	if !g.InBounds(r, c) {
		return
	}
	if level < 0 {
		level = 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	g.rows[r][c] = byte('0' + level)
}

// Lines emits the grid in the boundary format: one digit string per row.
func (g *Grid) Lines() []string {
	lines := make([]string, len(g.rows))
	for r, row := range g.rows {
		lines[r] = string(row)
	}
	return lines
}

// String renders the grid as newline-joined rows.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	rows := make([][]byte, len(g.rows))
	for r, row := range g.rows {
		rows[r] = append([]byte(nil), row...)
	}
	return &Grid{rows: rows}
}

// Equal returns true if two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows() != other.Rows() || g.Cols() != other.Cols() {
		return false
	}
	for r := range g.rows {
		if string(g.rows[r]) != string(other.rows[r]) {
			return false
		}
	}
	return true
}
