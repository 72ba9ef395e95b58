// Package pattern provides a global registry for grid seed patterns.
// Patterns register themselves in init() functions, allowing the CLI
// and TUI to discover seeders without hardcoded dependencies.
package pattern

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/octoterm/octoflash/internal/sim"
)

// Seeder produces a fresh grid of the given dimensions. The source is
// used for any randomness so that a run is reproducible per seed.
type Seeder func(rows, cols int, rng *rand.Rand) *sim.Grid

// Info contains metadata about a registered pattern.
type Info struct {
	Name        string
	Description string
}

var (
	seeders      = make(map[string]Seeder)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a seed pattern to the registry.
// Panics if a pattern with the same name is already registered.
func Register(name, description string, s Seeder) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := seeders[name]; exists {
		panic(fmt.Sprintf("pattern: %q already registered", name))
	}
	seeders[name] = s
	descriptions[name] = description
}

// List returns information about all registered patterns, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(seeders))
	for name := range seeders {
		result = append(result, Info{Name: name, Description: descriptions[name]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Exists checks if a pattern with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := seeders[name]
	return ok
}

// Seed builds a grid using the named pattern.
// Returns an error if the pattern is not registered.
func Seed(name string, rows, cols int, rng *rand.Rand) (*sim.Grid, error) {
	mu.RLock()
	s, ok := seeders[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("pattern: unknown pattern %q", name)
	}
	return s(rows, cols, rng), nil
}
