package sim

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	"github.com/vovakirdan/circuit-arcade/internal/core"
	"github.com/vovakirdan/circuit-arcade/internal/games/blocks"
	"github.com/vovakirdan/circuit-arcade/internal/games/frogger"
)

func quiet() *log.Logger {
	return log.New(io.Discard)
}

func withTimeout(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRunUntilGameOver(t *testing.T) {
	g := blocks.New(config.DefaultBlocksConfig(), 3)

	// untouched pieces stack in the spawn column until one cannot spawn
	res, err := Run(withTimeout(t), g, Options{Speed: 1000, Logger: quiet()})
	require.NoError(t, err)

	assert.Equal(t, core.PhaseGameOver, res.State.Phase)
	assert.Positive(t, res.Ticks)
	assert.Zero(t, res.Inputs)
	assert.Equal(t, 1, res.State.Level)
}

func TestRunStopsAtMaxTicks(t *testing.T) {
	g := frogger.New(config.DefaultFroggerConfig(), 3)

	res, err := Run(withTimeout(t), g, Options{MaxTicks: 100, Speed: 1000, Logger: quiet()})
	require.NoError(t, err)

	assert.Equal(t, 100, res.Ticks)
	assert.Equal(t, core.PhasePlaying, res.State.Phase)
	assert.Equal(t, 3, res.State.Lives, "the start row is safe")
}

func TestRunBotPresses(t *testing.T) {
	g := frogger.New(config.DefaultFroggerConfig(), 3)

	res, err := Run(withTimeout(t), g, Options{
		MaxTicks:  400,
		Speed:     1000,
		MoveEvery: 5,
		Moves:     []core.Action{core.ActionUp},
		Seed:      9,
		Logger:    quiet(),
	})
	require.NoError(t, err)

	assert.Positive(t, res.Inputs)
	assert.GreaterOrEqual(t, res.State.Score, 10)
}

func TestRunRequiresIdleGame(t *testing.T) {
	g := blocks.New(config.DefaultBlocksConfig(), 3)
	require.True(t, g.Dispatch(core.ActionStart))

	_, err := Run(withTimeout(t), g, Options{Speed: 1000, Logger: quiet()})
	assert.ErrorIs(t, err, ErrNotStarted)
}
