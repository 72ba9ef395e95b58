package sim

import (
	"errors"
	"math/rand"
	"testing"
)

func mustParse(t *testing.T, lines []string) *Grid {
	t.Helper()
	g, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse(%v) failed: %v", lines, err)
	}
	return g
}

func assertLines(t *testing.T, g *Grid, want []string) {
	t.Helper()
	got := g.Lines()
	if len(got) != len(want) {
		t.Fatalf("grid has %d rows, want %d", len(got), len(want))
	}
	for r := range want {
		if got[r] != want[r] {
			t.Errorf("row %d: got %q, want %q", r, got[r], want[r])
		}
	}
}

func TestStepTrivialFlash(t *testing.T) {
	g := mustParse(t, []string{"9"})

	flashes, err := g.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if flashes != 1 {
		t.Errorf("Expected 1 flash, got %d", flashes)
	}
	assertLines(t, g, []string{"0"})
}

func TestStepNoFlash(t *testing.T) {
	g := mustParse(t, []string{"00", "00"})

	flashes, err := g.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if flashes != 0 {
		t.Errorf("Expected 0 flashes, got %d", flashes)
	}
	assertLines(t, g, []string{"11", "11"})
}

func TestStepAdjacentCascade(t *testing.T) {
	g := mustParse(t, []string{"9", "9"})

	flashes, err := g.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if flashes != 2 {
		t.Errorf("Expected 2 flashes, got %d", flashes)
	}
	assertLines(t, g, []string{"0", "0"})
}

func TestStepCanonicalCascade(t *testing.T) {
	g := mustParse(t, []string{
		"11111",
		"19991",
		"19191",
		"19991",
		"11111",
	})

	flashes, err := g.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if flashes != 9 {
		t.Errorf("Step 1: expected 9 flashes, got %d", flashes)
	}
	assertLines(t, g, []string{
		"34543",
		"40004",
		"50005",
		"40004",
		"34543",
	})

	flashes, err = g.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if flashes != 0 {
		t.Errorf("Step 2: expected 0 flashes, got %d", flashes)
	}
	assertLines(t, g, []string{
		"45654",
		"51115",
		"61116",
		"51115",
		"45654",
	})
}

func TestStepRaggedGridFailsUntouched(t *testing.T) {
	g := &Grid{rows: [][]byte{[]byte("00"), []byte("0")}}

	flashes, err := g.Step()
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("Expected ErrInvalidGrid, got %v", err)
	}
	if flashes != 0 {
		t.Errorf("Expected 0 flashes on error, got %d", flashes)
	}
	// Grid must be left exactly as it was.
	if string(g.rows[0]) != "00" || string(g.rows[1]) != "0" {
		t.Errorf("Grid was mutated on precondition failure: %v", g.Lines())
	}
}

func TestStepEmptyGridFails(t *testing.T) {
	g := &Grid{}
	if _, err := g.Step(); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("Expected ErrInvalidGrid for empty grid, got %v", err)
	}
}

func TestStepBoundsInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := Random(12, 17, rng)

	for step := 0; step < 50; step++ {
		flashes, err := g.Step()
		if err != nil {
			t.Fatalf("Step %d failed: %v", step, err)
		}
		if flashes < 0 || flashes > g.Rows()*g.Cols() {
			t.Fatalf("Step %d: flash count %d outside [0, %d]", step, flashes, g.Rows()*g.Cols())
		}
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				if v := g.At(r, c); v < 0 || v > MaxLevel {
					t.Fatalf("Step %d: cell (%d,%d) = %d outside [0, %d]", step, r, c, v, MaxLevel)
				}
			}
		}
	}
}

func TestStepDeterminism(t *testing.T) {
	a := Random(10, 10, rand.New(rand.NewSource(42)))
	b := a.Clone()

	for step := 0; step < 30; step++ {
		fa, err := a.Step()
		if err != nil {
			t.Fatalf("Step %d failed: %v", step, err)
		}
		fb, err := b.Step()
		if err != nil {
			t.Fatalf("Step %d failed: %v", step, err)
		}
		if fa != fb {
			t.Fatalf("Step %d: flash counts diverged: %d vs %d", step, fa, fb)
		}
		if !a.Equal(b) {
			t.Fatalf("Step %d: grids diverged:\n%s\nvs\n%s", step, a, b)
		}
	}
}

func TestStepSingleFlashPerCell(t *testing.T) {
	// A flashed cell resets to 0 at the end of the step. If any cell
	// flashed twice the count would exceed the cell total.
	g := mustParse(t, []string{
		"999",
		"999",
		"999",
	})

	flashes, err := g.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if flashes != 9 {
		t.Errorf("Expected every cell to flash exactly once (9), got %d", flashes)
	}
	assertLines(t, g, []string{"000", "000", "000"})
}

func TestRunAccumulatesFlashes(t *testing.T) {
	g := mustParse(t, []string{
		"11111",
		"19991",
		"19191",
		"19991",
		"11111",
	})

	total, err := g.Run(2)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if total != 9 {
		t.Errorf("Expected 9 total flashes over 2 steps, got %d", total)
	}
}

func TestFirstSyncAllNines(t *testing.T) {
	g := mustParse(t, []string{"99", "99"})

	step, err := g.FirstSync(10)
	if err != nil {
		t.Fatalf("FirstSync() failed: %v", err)
	}
	if step != 1 {
		t.Errorf("Expected sync at step 1, got %d", step)
	}
}

func TestFirstSyncNotReached(t *testing.T) {
	// A lone zero never reaches 9 within 5 steps.
	g := mustParse(t, []string{"0"})

	step, err := g.FirstSync(5)
	if err != nil {
		t.Fatalf("FirstSync() failed: %v", err)
	}
	if step != 0 {
		t.Errorf("Expected 0 (no sync within limit), got %d", step)
	}
}
