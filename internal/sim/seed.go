package sim

import "math/rand"

// Random creates a grid of the given dimensions with a uniformly
// random digit per cell, drawn from the provided source.
func Random(rows, cols int, rng *rand.Rand) *Grid {
	g := New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.rows[r][c] = byte('0' + rng.Intn(MaxLevel+1))
		}
	}
	return g
}
