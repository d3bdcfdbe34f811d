package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// Games interpret directional actions in their own terms (Up rotates a falling
// piece but moves a lane-crossing avatar forward).
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionDrop           // Space - hard drop
	ActionStart          // Enter - start a game from idle
	ActionPause          // P - pause/resume
	ActionRestart        // R - restart from any phase
	ActionBack           // B, Escape - back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionDrop:
		return "Drop"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsLifecycle reports whether the action drives the game state machine rather
// than the active entity.
func (a Action) IsLifecycle() bool {
	switch a {
	case ActionStart, ActionPause, ActionRestart:
		return true
	}
	return false
}

// ParseAction converts a lowercase action name (as used in scripts and the
// sim command) to an Action. Unknown names map to ActionNone.
func ParseAction(name string) Action {
	for a := ActionLeft; a <= ActionQuit; a++ {
		if strings.ToLower(a.String()) == name {
			return a
		}
	}
	return ActionNone
}
