// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen is the game
// generation the tick was scheduled for; a tick whose generation no longer
// matches the game's is stale and dropped.
type TickMsg struct {
	Gen uint64
}

// tickCmd schedules one tick after d.
func tickCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}
