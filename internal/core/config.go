package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle state of a game instance.
type Phase int

const (
	PhaseIdle     Phase = iota // not started yet
	PhasePlaying               // clock running, input accepted
	PhasePaused                // clock stopped, input inert
	PhaseGameOver              // terminal until restart
)

// String returns the snake_case name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the game-agnostic summary the platform uses for HUD-less
// decisions (score saving, back-to-menu gating).
type GameState struct {
	Phase Phase
	Score int
	Lives int // 0 for games without lives
	Level int // 0 for games without levels
}

// GameOver reports whether the game reached its terminal phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether the game is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}
