package pattern

import (
	"math/rand"

	"github.com/octoterm/octoflash/internal/sim"
)

// Default is the pattern used when none is configured.
const Default = "random"

func init() {
	Register("random", "uniform random digit per cell", randomSeed)
	Register("calm", "low energy everywhere, rare flashes", calmSeed)
	Register("critical", "every cell at 9, synchronizes immediately", criticalSeed)
	Register("ring", "rings of 9s primed to cascade", ringSeed)
}

func randomSeed(rows, cols int, rng *rand.Rand) *sim.Grid {
	return sim.Random(rows, cols, rng)
}

// calmSeed keeps cells in [0, 4] so the field simmers for several
// steps before the first cascade.
func calmSeed(rows, cols int, rng *rand.Rand) *sim.Grid {
	g := sim.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(r, c, rng.Intn(5))
		}
	}
	return g
}

func criticalSeed(rows, cols int, _ *rand.Rand) *sim.Grid {
	g := sim.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(r, c, sim.MaxLevel)
		}
	}
	return g
}

// ringSeed draws concentric square rings alternating between 1 and 9
// from the border inward, priming a cascade that sweeps the field.
func ringSeed(rows, cols int, _ *rand.Rand) *sim.Grid {
	g := sim.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			depth := r
			if c < depth {
				depth = c
			}
			if rows-1-r < depth {
				depth = rows - 1 - r
			}
			if cols-1-c < depth {
				depth = cols - 1 - c
			}
			if depth%2 == 1 {
				g.Set(r, c, sim.MaxLevel)
			} else {
				g.Set(r, c, 1)
			}
		}
	}
	return g
}
