package frogger

import "math"

// Snapshot captures the complete game state for rendering and determinism
// testing. It shares no memory with the live game.
type Snapshot struct {
	Cols, Rows int
	Terrain    []Terrain // indexed by row
	Lanes      []Lane
	FrogX      float64
	FrogY      int
	Score      int
	Lives      int
	High       int // best score this session, including the current run
	Event      Event
	Over       bool
}

// FrogCell returns the cell the avatar is drawn in.
func (s Snapshot) FrogCell() (int, int) {
	return int(math.Floor(s.FrogX)), s.FrogY
}

// Lane returns the lane on row, if any.
func (s Snapshot) Lane(row int) (Lane, bool) {
	for _, l := range s.Lanes {
		if l.Row == row {
			return l, true
		}
	}
	return Lane{}, false
}

// ObstacleAt reports whether a car or log covers cell (x, row).
func (s Snapshot) ObstacleAt(x, row int) bool {
	lane, ok := s.Lane(row)
	if !ok {
		return false
	}
	for _, o := range lane.Obstacles {
		if o.Span().Contains(float64(x)) {
			return true
		}
	}
	return false
}
