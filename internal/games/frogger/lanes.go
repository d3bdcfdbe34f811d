package frogger

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	"github.com/vovakirdan/circuit-arcade/internal/core"
)

// Terrain is the kind of a row.
type Terrain int

const (
	TerrainSafe Terrain = iota
	TerrainRoad
	TerrainWater
	TerrainGoal
)

// String returns the lowercase terrain name.
func (t Terrain) String() string {
	switch t {
	case TerrainRoad:
		return "road"
	case TerrainWater:
		return "water"
	case TerrainGoal:
		return "goal"
	default:
		return "safe"
	}
}

// Obstacle is a car on a road row or a log on a water row.
type Obstacle struct {
	X     float64 // left edge, continuous
	Width int
	Speed float64 // base cells per tick, sign is direction
}

// Span returns the cells the obstacle covers for overlap tests.
func (o Obstacle) Span() core.Span {
	return core.SpanAt(o.X, o.Width)
}

// advance moves the obstacle by v and wraps it to the opposite edge.
// An obstacle travelling right re-enters at -Width once its left edge passes
// cols; one travelling left re-enters at cols once it is fully past -Width.
// The overshoot is carried so spacing within a row never drifts.
func (o *Obstacle) advance(v float64, cols int) {
	o.X += v
	period := float64(cols + o.Width)
	switch {
	case v > 0 && o.X > float64(cols):
		o.X -= period
	case v < 0 && o.X < -float64(o.Width):
		o.X += period
	}
}

// Lane is one row of obstacles.
type Lane struct {
	Row       int
	Terrain   Terrain
	Obstacles []Obstacle
}

func (l Lane) clone() Lane {
	l.Obstacles = append([]Obstacle(nil), l.Obstacles...)
	return l
}

// layout holds the lanes of a session and an index from row to lane.
type layout struct {
	lanes []Lane
	byRow *intmap.Map[int, int]
}

func newLayout(cfg config.FroggerConfig) layout {
	l := layout{byRow: intmap.New[int, int](len(cfg.Roads) + len(cfg.Rivers))}
	add := func(t Terrain, lanes []config.LaneConfig) {
		for _, lc := range lanes {
			lane := Lane{Row: lc.Row, Terrain: t}
			for _, oc := range lc.Obstacles {
				lane.Obstacles = append(lane.Obstacles, Obstacle{X: oc.X, Width: oc.Width, Speed: oc.Speed})
			}
			l.byRow.Put(lc.Row, len(l.lanes))
			l.lanes = append(l.lanes, lane)
		}
	}
	add(TerrainWater, cfg.Rivers)
	add(TerrainRoad, cfg.Roads)
	return l
}

// at returns the lane on row, if any.
func (l layout) at(row int) (*Lane, bool) {
	i, ok := l.byRow.Get(row)
	if !ok {
		return nil, false
	}
	return &l.lanes[i], true
}

func (l layout) clone() []Lane {
	out := make([]Lane, len(l.lanes))
	for i, lane := range l.lanes {
		out[i] = lane.clone()
	}
	return out
}
