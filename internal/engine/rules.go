// Package engine implements the game loop shared by every grid game: the
// idle/playing/paused/game_over state machine, input gating, tick dispatch
// and the clock that drives it. Game-specific board updates and collision
// predicates live behind the Rules interface.
package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/circuit-arcade/internal/core"
)

// Rules is one game variant's simulation. A Controller owns exactly one Rules
// value and is the only caller of its methods, so implementations need no
// locking.
type Rules[S any] interface {
	// Reset rebuilds the board, counters and entities for a new session.
	// The rng is owned by the controller and stays valid until the next Reset.
	Reset(rng *rand.Rand)

	// Step runs one simulation tick: advance obstacles, resolve collisions,
	// then advance the active entity where the variant does so.
	Step()

	// Apply speculatively performs a directional action against the current
	// state. It returns false, leaving the state untouched, when the move is
	// invalid or the action means nothing to this variant.
	Apply(a core.Action) bool

	// Over reports whether the last Step or Apply reached a terminal condition.
	Over() bool

	// Interval is the time between ticks for the current state.
	Interval() time.Duration

	// Pausable reports whether the variant supports pause/resume.
	Pausable() bool

	// Summary returns the counters the platform needs without a full snapshot.
	Summary() core.GameState

	// Snapshot returns a deep copy of the state for rendering.
	Snapshot() S
}
