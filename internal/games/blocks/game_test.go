package blocks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	"github.com/vovakirdan/circuit-arcade/internal/core"
	"github.com/vovakirdan/circuit-arcade/internal/registry"
)

func TestDeterminism(t *testing.T) {
	script := []core.Action{
		core.ActionLeft, core.ActionUp, core.ActionDrop,
		core.ActionRight, core.ActionRight, core.ActionDown, core.ActionDrop,
		core.ActionUp, core.ActionUp, core.ActionLeft, core.ActionDrop,
	}

	run := func() Snapshot {
		g := New(config.DefaultBlocksConfig(), 12345)
		g.Dispatch(core.ActionStart)
		for i := 0; i < 200; i++ {
			g.Dispatch(script[i%len(script)])
			g.Tick()
		}
		return g.Snapshot().State
	}

	assert.Equal(t, run(), run())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	g := New(config.DefaultBlocksConfig(), 1)
	g.Dispatch(core.ActionStart)

	snap := g.Snapshot().State
	snap.Cells[19][0] = KindZ
	snap.Piece.Shape[0][0] = !snap.Piece.Shape[0][0]

	fresh := g.Snapshot().State
	assert.Equal(t, KindEmpty, fresh.Cells[19][0])
	assert.NotEqual(t, snap.Piece.Shape, fresh.Piece.Shape)
}

func TestPausedGameIgnoresInput(t *testing.T) {
	g := New(config.DefaultBlocksConfig(), 1)
	g.Dispatch(core.ActionStart)
	require.True(t, g.Dispatch(core.ActionPause))

	before := g.Snapshot()
	assert.False(t, g.Dispatch(core.ActionLeft))
	assert.False(t, g.Dispatch(core.ActionDrop))
	assert.False(t, g.Tick())
	assert.Equal(t, before, g.Snapshot())
}

func TestResetReturnsToIdle(t *testing.T) {
	g := New(config.DefaultBlocksConfig(), 1)
	g.Dispatch(core.ActionStart)
	g.Dispatch(core.ActionDrop)

	g.Reset(core.RuntimeConfig{Seed: 2})
	assert.Equal(t, core.PhaseIdle, g.Phase())
	assert.Equal(t, 0, g.State().Score)
}

func TestRender(t *testing.T) {
	g := New(config.DefaultBlocksConfig(), 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.Row(0), "Score: 0")
	assert.Contains(t, screen.String(), "Press Enter to start")

	g.Dispatch(core.ActionStart)
	screen.Clear()
	g.Render(screen)
	assert.NotContains(t, screen.String(), "Press Enter")
	assert.Contains(t, screen.String(), "Next")
	assert.True(t, strings.ContainsRune(screen.String(), '█'), "falling piece drawn")

	g.Dispatch(core.ActionPause)
	screen.Clear()
	g.Render(screen)
	assert.Contains(t, screen.String(), "Paused")
}

func TestRenderTooSmall(t *testing.T) {
	g := New(config.DefaultBlocksConfig(), 1)
	screen := core.NewScreen(30, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g, err := registry.Create(ID, registry.Options{Preset: config.DifficultyHard, Seed: 3})
	require.NoError(t, err)
	assert.Equal(t, "Blocks", g.Title())
	assert.Equal(t, 5, g.State().Level)
}
