// Package registry maps game ids to factories. Each tilt-dodge variant
// registers itself from an init function, and the CLI looks variants up
// by id.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// Game is a simulation driven one tick at a time. Timing, input sampling
// and presentation belong to the driver.
type Game interface {
	// ID is the registry key, e.g. "tiltdodge" or "tiltdodge_classic".
	ID() string

	// Title is the human-readable variant name.
	Title() string

	// Reset builds a fresh world for the given play area and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick and reports the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Snapshot returns a copy of the drawable state.
	Snapshot() core.Snapshot

	// State returns score, game over and pause flags.
	State() core.GameState
}

// summarizer is implemented by variants that describe how they differ.
type summarizer interface {
	Summary() string
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID      string
	Title   string
	Summary string
}

// Factory builds a fresh, unreset game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a variant. It panics on a duplicate id, or when the
// factory builds a game whose ID differs from id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds %q", id, g.ID()))
	}
	info := GameInfo{ID: id, Title: g.Title()}
	if s, ok := g.(summarizer); ok {
		info.Summary = s.Summary()
	}

	factories[id] = f
	infos[id] = info
}

// List returns every registered variant sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create builds a new game by id. The error for an unknown id names the
// registered ones.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		known := make([]string, 0, len(factories))
		for k := range factories {
			known = append(known, k)
		}
		slices.Sort(known)
		return nil, fmt.Errorf("registry: unknown game %q (known: %s)", id, strings.Join(known, ", "))
	}
	return f(), nil
}
