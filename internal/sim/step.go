package sim

// coord identifies one cell. The step queue holds coords, and the
// same coord may be queued several times: a cell next to two flashing
// neighbors must receive two increments. Deduplicating would change
// the cascade semantics.
type coord struct {
	r, c int
}

// Step advances the grid by one time step and returns how many cells
// flashed. The grid is mutated in place.
//
// Every cell is enqueued once in row-major order, guaranteeing one
// increment per cell per step. A cell sitting at exactly MaxLevel
// when dequeued flashes: it counts once and enqueues its up-to-8
// neighbors, each enqueue being one more future increment. After the
// queue drains, any cell pushed past MaxLevel resets to zero.
//
// A cell cannot flash twice in one step: once incremented past
// MaxLevel it never equals MaxLevel again until the final reset, so
// later dequeues of the same cell only accumulate energy.
//
// On a precondition violation (empty or ragged grid, non-digit cell)
// Step returns an error wrapping ErrInvalidGrid and leaves the grid
// untouched.
func (g *Grid) Step() (int, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}

	rows, cols := g.Rows(), g.Cols()
	queue := make([]coord, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			queue = append(queue, coord{r, c})
		}
	}

	flashes := 0
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if g.rows[cur.r][cur.c] == '0'+MaxLevel {
			flashes++
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if g.InBounds(cur.r+dr, cur.c+dc) {
						queue = append(queue, coord{cur.r + dr, cur.c + dc})
					}
				}
			}
		}
		g.rows[cur.r][cur.c]++
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if g.rows[r][c] > '0'+MaxLevel {
				g.rows[r][c] = '0'
			}
		}
	}

	return flashes, nil
}

// Run applies n steps and returns the total flash count.
func (g *Grid) Run(n int) (int, error) {
	total := 0
	for i := 0; i < n; i++ {
		flashes, err := g.Step()
		if err != nil {
			return total, err
		}
		total += flashes
	}
	return total, nil
}

// FirstSync steps the grid until a step where every cell flashes at
// once, returning the 1-based step number. Returns 0 if no such step
// occurs within limit steps.
func (g *Grid) FirstSync(limit int) (int, error) {
	all := g.Rows() * g.Cols()
	for step := 1; step <= limit; step++ {
		flashes, err := g.Step()
		if err != nil {
			return 0, err
		}
		if flashes == all {
			return step, nil
		}
	}
	return 0, nil
}
