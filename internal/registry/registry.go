// Package registry keeps the catalog of playable game modes.
// Modes register a factory from init(); the platform lists and creates them
// by ID without importing their packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-memorize/internal/core"
)

// Game is the interface every playable mode implements.
// Implementations hold pure game logic and never touch the terminal.
type Game interface {
	// ID returns a unique identifier (e.g., "memorize_static"), used by the
	// CLI and score storage.
	ID() string

	// Title returns a human-readable name (e.g., "MemorizeIT 2D").
	Title() string

	// Reset starts a new session for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the session into a screen buffer.
	Render(dst *core.Screen)

	// State returns the current state (score, game over).
	State() core.GameState
}

// Describer is implemented by games that provide a one-line description for
// menus and the list command.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
