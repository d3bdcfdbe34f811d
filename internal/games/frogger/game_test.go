package frogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	"github.com/vovakirdan/circuit-arcade/internal/core"
	"github.com/vovakirdan/circuit-arcade/internal/registry"
)

func TestPauseUnavailable(t *testing.T) {
	g := New(config.DefaultFroggerConfig(), 1)
	require.True(t, g.Dispatch(core.ActionStart))

	assert.False(t, g.Dispatch(core.ActionPause))
	assert.Equal(t, core.PhasePlaying, g.Phase())
	assert.True(t, g.Running())
}

func TestInputInertBeforeStart(t *testing.T) {
	g := New(config.DefaultFroggerConfig(), 1)

	assert.False(t, g.Dispatch(core.ActionUp))
	assert.Equal(t, 12, g.Snapshot().State.FrogY)
}

func TestGameOverThenRestartKeepsHigh(t *testing.T) {
	g := New(config.DefaultFroggerConfig(), 1)
	g.Dispatch(core.ActionStart)

	// score once, then walk into the river until the lives run out
	g.Dispatch(core.ActionUp)
	for i := 0; i < 1000 && g.Phase() != core.PhaseGameOver; i++ {
		for row := 12; row > 6; row-- {
			if g.Phase() == core.PhaseGameOver {
				break
			}
			g.Dispatch(core.ActionUp)
			g.Tick()
		}
	}
	require.Equal(t, core.PhaseGameOver, g.Phase())

	high := g.Snapshot().State.High
	require.Positive(t, high)
	assert.False(t, g.Tick(), "no ticks after game over")
	assert.False(t, g.Dispatch(core.ActionUp), "no input after game over")

	require.True(t, g.Dispatch(core.ActionRestart))
	s := g.Snapshot().State
	assert.Equal(t, core.PhasePlaying, g.Phase())
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, high, s.High)
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(config.DefaultFroggerConfig(), 99)
		g.Dispatch(core.ActionStart)
		for i := range 500 {
			if i%7 == 0 {
				g.Dispatch(core.ActionUp)
			}
			if i%13 == 0 {
				g.Dispatch(core.ActionLeft)
			}
			g.Tick()
		}
		return g.Snapshot().State
	}
	assert.Equal(t, run(), run())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	g := New(config.DefaultFroggerConfig(), 1)
	snap := g.Snapshot().State
	snap.Lanes[0].Obstacles[0].X = 100

	assert.NotEqual(t, 100.0, g.Snapshot().State.Lanes[0].Obstacles[0].X)
}

func TestRender(t *testing.T) {
	g := New(config.DefaultFroggerConfig(), 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.Row(0), "Lives: ♥♥♥")
	assert.Contains(t, screen.String(), "Press Enter to start")

	g.Dispatch(core.ActionStart)
	screen.Clear()
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "@")
	assert.Contains(t, out, "~")
	assert.Contains(t, out, "=")
	assert.Contains(t, out, "Esc leaves")
}

func TestRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g, err := registry.Create(ID, registry.Options{Preset: config.DifficultyEasy})
	require.NoError(t, err)
	assert.Equal(t, "Frogger", g.Title())
	assert.Equal(t, 5, g.State().Lives)
}
