package pattern

import (
	"math/rand"
	"testing"

	"github.com/octoterm/octoflash/internal/sim"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"random", "calm", "critical", "ring"} {
		if !Exists(name) {
			t.Errorf("Expected builtin pattern %q to be registered", name)
		}
	}
	if Exists("no-such-pattern") {
		t.Error("Exists should be false for unregistered names")
	}
}

func TestListSorted(t *testing.T) {
	infos := List()
	if len(infos) < 4 {
		t.Fatalf("Expected at least 4 patterns, got %d", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Name >= infos[i].Name {
			t.Errorf("List not sorted: %q before %q", infos[i-1].Name, infos[i].Name)
		}
	}
}

func TestSeedUnknownPattern(t *testing.T) {
	if _, err := Seed("no-such-pattern", 5, 5, rand.New(rand.NewSource(1))); err == nil {
		t.Error("Expected error for unknown pattern")
	}
}

func TestSeedsProduceValidGrids(t *testing.T) {
	for _, info := range List() {
		g, err := Seed(info.Name, 7, 9, rand.New(rand.NewSource(3)))
		if err != nil {
			t.Fatalf("Seed(%q) failed: %v", info.Name, err)
		}
		if g.Rows() != 7 || g.Cols() != 9 {
			t.Errorf("%q: expected 7x9 grid, got %dx%d", info.Name, g.Rows(), g.Cols())
		}
		if err := g.Validate(); err != nil {
			t.Errorf("%q: seeded grid invalid: %v", info.Name, err)
		}
	}
}

func TestCriticalSynchronizesImmediately(t *testing.T) {
	g, err := Seed("critical", 4, 4, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}

	step, err := g.FirstSync(3)
	if err != nil {
		t.Fatalf("FirstSync() failed: %v", err)
	}
	if step != 1 {
		t.Errorf("critical pattern should sync at step 1, got %d", step)
	}
}

func TestCalmHasNoEarlyFlashes(t *testing.T) {
	g, err := Seed("calm", 6, 6, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}

	// Cells start at most at 4, so the first four steps cannot flash.
	for i := 0; i < 4; i++ {
		flashes, err := g.Step()
		if err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		if flashes != 0 {
			t.Errorf("calm pattern flashed at step %d", i+1)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register("random", "dup", func(rows, cols int, rng *rand.Rand) *sim.Grid {
		return sim.New(rows, cols)
	})
}
