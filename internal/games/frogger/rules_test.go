package frogger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	"github.com/vovakirdan/circuit-arcade/internal/core"
)

func newRules(t *testing.T, cfg config.FroggerConfig) *Rules {
	t.Helper()
	r := NewRules(cfg)
	r.Reset(rand.New(rand.NewSource(1)))
	return r
}

func place(r *Rules, x float64, y int) {
	r.x, r.y = x, y
}

func TestStartState(t *testing.T) {
	r := newRules(t, config.DefaultFroggerConfig())

	assert.Equal(t, 6.0, r.x)
	assert.Equal(t, 12, r.y)
	assert.Equal(t, 3, r.lives)
	assert.Equal(t, 50*time.Millisecond, r.Interval())
	assert.False(t, r.Pausable())

	assert.Equal(t, TerrainGoal, r.TerrainAt(0))
	assert.Equal(t, TerrainWater, r.TerrainAt(1))
	assert.Equal(t, TerrainWater, r.TerrainAt(5))
	assert.Equal(t, TerrainSafe, r.TerrainAt(6))
	assert.Equal(t, TerrainRoad, r.TerrainAt(7))
	assert.Equal(t, TerrainRoad, r.TerrainAt(10))
	assert.Equal(t, TerrainSafe, r.TerrainAt(11))
	assert.Equal(t, TerrainSafe, r.TerrainAt(12))
}

func TestDrownWithoutLog(t *testing.T) {
	r := newRules(t, config.DefaultFroggerConfig())
	// row 2 logs cover cells 1-4 and 8-10 after one tick
	place(r, 6, 2)

	r.Step()

	assert.Equal(t, 2, r.lives)
	assert.Equal(t, 6.0, r.x)
	assert.Equal(t, 12, r.y)
	assert.Equal(t, EventDrowned, r.event)
	assert.False(t, r.Over())
}

func TestLastLifeEndsGame(t *testing.T) {
	r := newRules(t, config.DefaultFroggerConfig())
	r.lives = 1
	r.score = 40
	place(r, 6, 2)

	r.Step()

	assert.True(t, r.Over())
	assert.Equal(t, 0, r.lives)
	assert.Equal(t, 40, r.Snapshot().High)
}

func TestReachGoal(t *testing.T) {
	r := newRules(t, config.DefaultFroggerConfig())
	place(r, 6, 1)

	require.True(t, r.Apply(core.ActionUp))

	// forward step plus goal bonus
	assert.Equal(t, 110, r.score)
	assert.Equal(t, 6.0, r.x)
	assert.Equal(t, 12, r.y)
	assert.Equal(t, 3, r.lives)
	assert.Equal(t, EventHome, r.event)
}

func TestForwardScoresOnlyUpward(t *testing.T) {
	r := newRules(t, config.DefaultFroggerConfig())

	require.True(t, r.Apply(core.ActionUp))
	assert.Equal(t, 10, r.score)
	require.True(t, r.Apply(core.ActionDown))
	require.True(t, r.Apply(core.ActionLeft))
	require.True(t, r.Apply(core.ActionRight))
	assert.Equal(t, 10, r.score)
}

func TestMovesClampToGrid(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		y      int
		action core.Action
	}{
		{"left edge", 0, 12, core.ActionLeft},
		{"right edge", 12, 12, core.ActionRight},
		{"bottom edge", 6, 12, core.ActionDown},
		{"not a move", 6, 12, core.ActionDrop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRules(t, config.DefaultFroggerConfig())
			place(r, tt.x, tt.y)
			before := r.Snapshot()

			assert.False(t, r.Apply(tt.action))
			assert.Equal(t, before, r.Snapshot())
		})
	}
}

func TestRoadCollision(t *testing.T) {
	// row 7 cars cover cells 0-1 and 6-7 after one tick
	tests := []struct {
		name string
		x    float64
		hit  bool
	}{
		{"inside car", 6, true},
		{"leading cell", 7, true},
		{"trailing edge is clear", 8, false},
		{"gap", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRules(t, config.DefaultFroggerConfig())
			place(r, tt.x, 7)

			r.Step()

			if tt.hit {
				assert.Equal(t, 2, r.lives)
				assert.Equal(t, EventHit, r.event)
				assert.Equal(t, 12, r.y)
			} else {
				assert.Equal(t, 3, r.lives)
				assert.Equal(t, 7, r.y)
				assert.Equal(t, tt.x, r.x)
			}
		})
	}
}

func TestLogCarriesAvatar(t *testing.T) {
	r := newRules(t, config.DefaultFroggerConfig())
	place(r, 1, 1)

	r.Step()

	assert.Equal(t, 3, r.lives)
	assert.InDelta(t, 1.04, r.x, 1e-9)
	assert.Equal(t, 1, r.y)
}

func TestLogCarriesOffBoard(t *testing.T) {
	tests := []struct {
		name string
		log  config.ObstacleConfig
		x    float64
	}{
		{"right edge", config.ObstacleConfig{X: 10.5, Width: 3, Speed: 0.04}, 12.97},
		{"left edge", config.ObstacleConfig{X: 0, Width: 3, Speed: -0.05}, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultFroggerConfig()
			cfg.Rivers[0].Obstacles = []config.ObstacleConfig{tt.log}
			r := newRules(t, cfg)
			place(r, tt.x, 1)

			r.Step()

			assert.Equal(t, 2, r.lives)
			assert.Equal(t, EventSwept, r.event)
			assert.Equal(t, 12, r.y)
		})
	}
}

func TestSafeRowsAreInert(t *testing.T) {
	r := newRules(t, config.DefaultFroggerConfig())
	place(r, 3, 6)

	for range 100 {
		r.Step()
	}
	assert.Equal(t, 3, r.lives)
	assert.Equal(t, 3.0, r.x)
}

func TestWrapContinuity(t *testing.T) {
	const cols = 13
	for _, speed := range []float64{0.05, -0.07, 0.045, -0.08} {
		o := Obstacle{X: 4, Width: 3, Speed: speed}
		wraps := 0
		for range 5000 {
			prev := o.X
			o.advance(speed, cols)

			if speed > 0 && o.X < prev {
				wraps++
				assert.InDelta(t, -3.0, o.X, speed+1e-9, "re-enters at -width")
				assert.InDelta(t, prev+speed-float64(cols+3), o.X, 1e-9)
			}
			if speed < 0 && o.X > prev {
				wraps++
				assert.InDelta(t, float64(cols), o.X, -speed+1e-9, "re-enters at cols")
				assert.InDelta(t, prev+speed+float64(cols+3), o.X, 1e-9)
			}
			require.GreaterOrEqual(t, o.X, -3.0-1e-9)
			require.LessOrEqual(t, o.X, float64(cols)+1e-9)
		}
		assert.Positive(t, wraps, "speed %v never wrapped", speed)
	}
}

func TestDifficultyScalesSpeed(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	config.ApplyFroggerPreset(&cfg, config.DifficultyHard)
	r := newRules(t, cfg)

	lane, _ := r.layout.at(7)
	x0 := lane.Obstacles[0].X
	r.Step()
	lane, _ = r.layout.at(7)

	assert.InDelta(t, 0.05*1.7, lane.Obstacles[0].X-x0, 1e-9)
	assert.Equal(t, 2, r.lives)
}

func TestRandomPlayInvariants(t *testing.T) {
	r := newRules(t, config.DefaultFroggerConfig())
	rng := rand.New(rand.NewSource(11))
	moves := []core.Action{core.ActionUp, core.ActionUp, core.ActionUp, core.ActionLeft, core.ActionRight, core.ActionDown}

	prevScore, prevLives := 0, r.lives
	for i := 0; i < 20000 && !r.Over(); i++ {
		if rng.Intn(4) == 0 {
			r.Apply(moves[rng.Intn(len(moves))])
		} else {
			r.Step()
		}
		require.GreaterOrEqual(t, r.score, prevScore)
		require.LessOrEqual(t, r.lives, prevLives)
		require.GreaterOrEqual(t, r.x, 0.0)
		require.Less(t, r.x, float64(r.cfg.Grid.Cols))
		prevScore, prevLives = r.score, r.lives
	}
}
