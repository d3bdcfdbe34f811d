// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	"github.com/vovakirdan/circuit-arcade/internal/core"
	"github.com/vovakirdan/circuit-arcade/internal/engine"
)

// Game is the interface every arcade game implements. Simulation lives in an
// engine.Controller; the platform owns timing, input mapping and rendering
// and talks to the game only through these methods.
type Game interface {
	// ID returns a unique identifier (e.g., "blocks"). Used for CLI commands
	// and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset rebuilds the game in the idle phase with the given seed.
	Reset(cfg core.RuntimeConfig)

	// Dispatch applies a lifecycle or directional action.
	Dispatch(a core.Action) bool

	// Tick advances the simulation by one step while playing.
	Tick() bool

	// Running reports whether ticks should be scheduled.
	Running() bool
	// Pausable reports whether the clock can be stopped mid-run.
	Pausable() bool

	// Interval is the delay until the next tick.
	Interval() time.Duration

	// Generation changes whenever scheduled ticks become stale.
	Generation() uint64

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (phase, score, lives, level).
	State() core.GameState

	// OnTransition registers a phase change observer.
	OnTransition(fn engine.TransitionFunc)
}

// Options are passed to a factory when a game is created.
type Options struct {
	ConfigPath string                  // explicit YAML config, empty for the search path
	Preset     config.DifficultyPreset // empty for the config as loaded
	Seed       int64
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func(opts Options) (Game, error)

// ErrUnknownGame is returned by Create for unregistered IDs.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %s: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display title for id, or id itself if unregistered.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
