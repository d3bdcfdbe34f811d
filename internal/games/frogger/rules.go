package frogger

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	"github.com/vovakirdan/circuit-arcade/internal/core"
)

// Event is the most recent notable outcome, shown in the HUD.
type Event int

const (
	EventNone Event = iota
	EventHit        // run over on a road row
	EventDrowned    // on a water row with no log underneath
	EventSwept      // carried off the board by a log
	EventHome       // reached the goal row
)

// String returns a short description of the event.
func (e Event) String() string {
	switch e {
	case EventHit:
		return "Splat!"
	case EventDrowned:
		return "Splash!"
	case EventSwept:
		return "Swept away!"
	case EventHome:
		return "Home!"
	default:
		return ""
	}
}

// Rules is the lane-crossing simulation.
type Rules struct {
	cfg    config.FroggerConfig
	diff   *config.DifficultyManager
	layout layout

	x float64 // continuous so logs can carry the avatar between cells
	y int

	score int
	lives int
	high  int
	ticks uint64
	event Event
	over  bool
}

// NewRules creates rules for cfg. A config without a grid or lanes falls
// back to the defaults.
func NewRules(cfg config.FroggerConfig) *Rules {
	if cfg.Grid.Cols <= 0 || cfg.Grid.Rows <= 0 || len(cfg.Roads)+len(cfg.Rivers) == 0 {
		cfg = config.DefaultFroggerConfig()
	}
	if cfg.Lives <= 0 {
		cfg.Lives = 3
	}
	if cfg.TickMs <= 0 {
		cfg.TickMs = 50
	}
	return &Rules{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Reset rebuilds the lanes and puts the avatar on the start cell. The session
// high score survives.
func (r *Rules) Reset(*rand.Rand) {
	r.layout = newLayout(r.cfg)
	r.toStart()
	r.score = 0
	r.lives = r.cfg.Lives
	r.ticks = 0
	r.event = EventNone
	r.over = false
}

func (r *Rules) toStart() {
	r.x = float64(r.cfg.Start.X)
	r.y = r.cfg.Start.Y
}

// velocity returns the per-tick displacement of o at the current difficulty.
func (r *Rules) velocity(o Obstacle) float64 {
	return r.diff.Speed(o.Speed, r.score, r.ticks)
}

// Step advances every obstacle, then resolves the avatar against its row.
func (r *Rules) Step() {
	r.ticks++
	cols := r.cfg.Grid.Cols
	for i := range r.layout.lanes {
		lane := &r.layout.lanes[i]
		for j := range lane.Obstacles {
			o := &lane.Obstacles[j]
			o.advance(r.velocity(*o), cols)
		}
	}

	lane, ok := r.layout.at(r.y)
	if !ok {
		return
	}
	switch lane.Terrain {
	case TerrainWater:
		log, ok := r.overlapping(lane)
		if !ok {
			r.lose(EventDrowned)
			return
		}
		x := r.x + r.velocity(log)
		if x < 0 || x >= float64(cols) {
			r.lose(EventSwept)
			return
		}
		r.x = x
	case TerrainRoad:
		if _, hit := r.overlapping(lane); hit {
			r.lose(EventHit)
		}
	}
}

// overlapping returns the first obstacle in lane containing the avatar.
func (r *Rules) overlapping(lane *Lane) (Obstacle, bool) {
	for _, o := range lane.Obstacles {
		if o.Span().Contains(r.x) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// lose costs a life and returns the avatar to the start, ending the game
// when no lives remain.
func (r *Rules) lose(e Event) {
	r.event = e
	r.lives--
	r.toStart()
	if r.lives <= 0 {
		r.lives = 0
		r.over = true
		r.high = max(r.high, r.score)
	}
}

// Apply moves the avatar one cell, clamped to the grid. Moving to a lower
// row index scores; reaching row 0 scores the goal bonus and restarts the
// crossing.
func (r *Rules) Apply(a core.Action) bool {
	dx, dy := 0, 0
	switch a {
	case core.ActionLeft:
		dx = -1
	case core.ActionRight:
		dx = 1
	case core.ActionUp:
		dy = -1
	case core.ActionDown:
		dy = 1
	default:
		return false
	}

	g := r.cfg.Grid
	x := core.ClampF(r.x+float64(dx), 0, float64(g.Cols-1))
	y := core.Clamp(r.y+dy, 0, g.Rows-1)
	if x == r.x && y == r.y {
		return false
	}

	if y < r.y {
		r.score += r.cfg.Scoring.Forward
	}
	r.x, r.y = x, y

	if y == 0 {
		r.score += r.cfg.Scoring.Goal
		r.event = EventHome
		r.toStart()
	}
	return true
}

// Over reports whether the last life was lost.
func (r *Rules) Over() bool {
	return r.over
}

// Interval returns the fixed tick period.
func (r *Rules) Interval() time.Duration {
	return time.Duration(r.cfg.TickMs) * time.Millisecond
}

// Pausable is false: the crossing runs until the last life is lost.
func (r *Rules) Pausable() bool {
	return false
}

// Summary returns score and lives.
func (r *Rules) Summary() core.GameState {
	return core.GameState{Score: r.score, Lives: r.lives}
}

// TerrainAt classifies a row.
func (r *Rules) TerrainAt(row int) Terrain {
	if row == 0 {
		return TerrainGoal
	}
	if lane, ok := r.layout.at(row); ok {
		return lane.Terrain
	}
	return TerrainSafe
}

// Snapshot returns a deep copy of lanes, avatar and counters.
func (r *Rules) Snapshot() Snapshot {
	terrain := make([]Terrain, r.cfg.Grid.Rows)
	for row := range terrain {
		terrain[row] = r.TerrainAt(row)
	}
	return Snapshot{
		Cols:    r.cfg.Grid.Cols,
		Rows:    r.cfg.Grid.Rows,
		Terrain: terrain,
		Lanes:   r.layout.clone(),
		FrogX:   r.x,
		FrogY:   r.y,
		Score:   r.score,
		Lives:   r.lives,
		High:    max(r.high, r.score),
		Event:   r.event,
		Over:    r.over,
	}
}
