package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/circuit-arcade/internal/core"
)

// TransitionFunc observes phase changes. It is called synchronously after
// the phase has changed.
type TransitionFunc func(from, to core.Phase)

// Frame is an immutable view of a controller at one point in time.
type Frame[S any] struct {
	Phase      core.Phase
	Tick       uint64
	Generation uint64
	State      S
}

// Controller runs a Rules variant through the game lifecycle.
//
// Every phase change bumps the generation counter. Hosts tag their scheduled
// ticks with the generation that armed them and drop ticks whose generation
// is stale, so a tick armed before a pause or restart can never mutate the
// state that replaced it.
//
// A Controller is not safe for concurrent use.
type Controller[S any] struct {
	rules      Rules[S]
	rng        *rand.Rand
	phase      core.Phase
	tick       uint64
	generation uint64
	onChange   TransitionFunc
}

// NewController creates a controller in the idle phase. The rules are reset
// immediately so snapshots taken before Start show a valid empty layout.
func NewController[S any](rules Rules[S], seed int64) *Controller[S] {
	c := &Controller[S]{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
		phase: core.PhaseIdle,
	}
	c.rules.Reset(c.rng)
	return c
}

// Reload swaps in new rules and seed and returns to idle.
func (c *Controller[S]) Reload(rules Rules[S], seed int64) {
	c.rules = rules
	c.rng = rand.New(rand.NewSource(seed))
	c.tick = 0
	c.rules.Reset(c.rng)
	c.setPhase(core.PhaseIdle)
}

// OnTransition registers a hook for phase changes, replacing any previous one.
func (c *Controller[S]) OnTransition(fn TransitionFunc) {
	c.onChange = fn
}

func (c *Controller[S]) setPhase(p core.Phase) {
	prev := c.phase
	c.phase = p
	c.generation++
	if c.onChange != nil && prev != p {
		c.onChange(prev, p)
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller[S]) Phase() core.Phase {
	return c.phase
}

// Generation returns the clock generation. It changes whenever the clock
// must be re-armed or cancelled.
func (c *Controller[S]) Generation() uint64 {
	return c.generation
}

// Running reports whether the clock should be scheduling ticks.
func (c *Controller[S]) Running() bool {
	return c.phase == core.PhasePlaying
}

// Interval returns the delay until the next tick.
func (c *Controller[S]) Interval() time.Duration {
	return c.rules.Interval()
}

// Pausable reports whether the variant supports pause/resume.
func (c *Controller[S]) Pausable() bool {
	return c.rules.Pausable()
}

// Ticks returns the number of steps run since the last reset.
func (c *Controller[S]) Ticks() uint64 {
	return c.tick
}

// Start begins a session from idle. It returns false in any other phase.
func (c *Controller[S]) Start() bool {
	if c.phase != core.PhaseIdle {
		return false
	}
	c.begin()
	return true
}

// Restart performs a full reset and enters playing from any phase.
func (c *Controller[S]) Restart() {
	c.begin()
}

func (c *Controller[S]) begin() {
	c.tick = 0
	c.rules.Reset(c.rng)
	if c.rules.Over() {
		c.setPhase(core.PhaseGameOver)
		return
	}
	c.setPhase(core.PhasePlaying)
}

// Pause stops the clock. It returns false if the variant cannot pause or the
// game is not playing.
func (c *Controller[S]) Pause() bool {
	if !c.rules.Pausable() || c.phase != core.PhasePlaying {
		return false
	}
	c.setPhase(core.PhasePaused)
	return true
}

// Resume restarts the clock after a pause.
func (c *Controller[S]) Resume() bool {
	if c.phase != core.PhasePaused {
		return false
	}
	c.setPhase(core.PhasePlaying)
	return true
}

// TogglePause pauses a playing game or resumes a paused one.
func (c *Controller[S]) TogglePause() bool {
	if c.phase == core.PhasePaused {
		return c.Resume()
	}
	return c.Pause()
}

// Tick runs one simulation step. It is a no-op outside the playing phase.
func (c *Controller[S]) Tick() bool {
	if c.phase != core.PhasePlaying {
		return false
	}
	c.tick++
	c.rules.Step()
	c.settle()
	return true
}

// HandleInput applies a directional action while playing. Rejected moves
// and input outside the playing phase return false and change nothing.
func (c *Controller[S]) HandleInput(a core.Action) bool {
	if c.phase != core.PhasePlaying || a.IsLifecycle() {
		return false
	}
	ok := c.rules.Apply(a)
	c.settle()
	return ok
}

// Dispatch routes an action to the lifecycle command or the input handler.
func (c *Controller[S]) Dispatch(a core.Action) bool {
	switch a {
	case core.ActionStart:
		return c.Start()
	case core.ActionPause:
		return c.TogglePause()
	case core.ActionRestart:
		c.Restart()
		return true
	}
	return c.HandleInput(a)
}

func (c *Controller[S]) settle() {
	if c.rules.Over() && c.phase != core.PhaseGameOver {
		c.setPhase(core.PhaseGameOver)
	}
}

// State returns the game-agnostic summary with the current phase.
func (c *Controller[S]) State() core.GameState {
	s := c.rules.Summary()
	s.Phase = c.phase
	return s
}

// Snapshot returns an immutable frame of the current state.
func (c *Controller[S]) Snapshot() Frame[S] {
	return Frame[S]{
		Phase:      c.phase,
		Tick:       c.tick,
		Generation: c.generation,
		State:      c.rules.Snapshot(),
	}
}
