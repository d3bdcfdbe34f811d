package blocks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/circuit-arcade/internal/config"
	"github.com/vovakirdan/circuit-arcade/internal/core"
)

// Rules is the falling-block simulation.
type Rules struct {
	cfg   config.BlocksConfig
	rng   *rand.Rand
	board *Board
	piece Piece
	next  Kind
	bag   []Kind

	score     int
	lines     int
	level     int
	lastClear int
	over      bool
}

// NewRules creates rules for cfg. Zero-valued sections fall back to the
// defaults, so NewRules(config.BlocksConfig{}) is the standard game.
func NewRules(cfg config.BlocksConfig) *Rules {
	def := config.DefaultBlocksConfig()
	if cfg.Board.Width <= 0 || cfg.Board.Height <= 0 {
		cfg.Board = def.Board
	}
	if cfg.Timing.BaseMs <= 0 || cfg.Timing.MinMs <= 0 {
		cfg.Timing = def.Timing
	}
	if cfg.Scoring.LinePoints <= 0 || cfg.Scoring.LinesPerLevel <= 0 {
		cfg.Scoring = def.Scoring
	}
	if cfg.StartLevel < 1 {
		cfg.StartLevel = 1
		cfg.Difficulty.Enabled = true
	}
	return &Rules{cfg: cfg}
}

// Reset clears the board and counters and spawns the first piece.
func (r *Rules) Reset(rng *rand.Rand) {
	r.rng = rng
	r.board = NewBoard(r.cfg.Board.Width, r.cfg.Board.Height)
	r.bag = nil
	r.score = 0
	r.lines = 0
	r.level = r.cfg.StartLevel
	r.lastClear = 0
	r.over = false
	r.next = r.draw()
	r.spawn()
}

// draw picks the next kind. The bag randomizer deals a shuffled set of all
// seven kinds before reshuffling.
func (r *Rules) draw() Kind {
	if r.cfg.Randomizer != "bag" {
		return Kinds[r.rng.Intn(len(Kinds))]
	}
	if len(r.bag) == 0 {
		r.bag = append(r.bag[:0], Kinds...)
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}
	k := r.bag[0]
	r.bag = r.bag[1:]
	return k
}

// SpawnX is the spawn column for a board of the given width.
func SpawnX(width int) int {
	return width/2 - 1
}

func (r *Rules) spawn() {
	r.piece = Piece{
		Kind:  r.next,
		Shape: ShapeOf(r.next),
		X:     SpawnX(r.board.Width()),
		Y:     0,
	}
	r.next = r.draw()
	if !r.board.Fits(r.piece) {
		r.over = true
	}
}

// Step moves the piece down one row, locking it if it cannot move.
func (r *Rules) Step() {
	r.moveDown()
}

func (r *Rules) moveDown() {
	moved := r.piece
	moved.Y++
	if r.board.Fits(moved) {
		r.piece = moved
		return
	}
	r.lock()
}

// lock merges the piece, clears lines, scores them at the level in effect
// before the clear, and spawns the next piece.
func (r *Rules) lock() {
	r.board.Merge(r.piece)
	n := r.board.ClearLines()
	r.lastClear = n
	if n > 0 {
		r.score += n * r.cfg.Scoring.LinePoints * r.level
		r.lines += n
		if r.cfg.Difficulty.Enabled {
			r.level = r.cfg.StartLevel + r.lines/r.cfg.Scoring.LinesPerLevel
		}
	}
	r.spawn()
}

// Apply handles movement, rotation, soft drop and hard drop.
func (r *Rules) Apply(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return r.shift(-1)
	case core.ActionRight:
		return r.shift(1)
	case core.ActionUp:
		return r.rotate()
	case core.ActionDown:
		r.moveDown()
		return true
	case core.ActionDrop:
		r.piece.Y = r.dropY()
		r.lock()
		return true
	}
	return false
}

func (r *Rules) shift(dx int) bool {
	moved := r.piece
	moved.X += dx
	if !r.board.Fits(moved) {
		return false
	}
	r.piece = moved
	return true
}

func (r *Rules) rotate() bool {
	turned := r.piece
	turned.Shape = r.piece.Shape.Rotate()
	if !r.board.Fits(turned) {
		return false
	}
	r.piece = turned
	return true
}

// dropY returns the lowest row the piece can reach by falling straight down.
func (r *Rules) dropY() int {
	y := r.piece.Y
	for !r.board.Collides(r.piece.Shape, r.piece.X, y+1) {
		y++
	}
	return y
}

// Over reports whether a spawn collided.
func (r *Rules) Over() bool {
	return r.over
}

// Interval returns the gravity delay for the current level.
func (r *Rules) Interval() time.Duration {
	t := r.cfg.Timing
	ms := max(t.MinMs, t.BaseMs-(r.level-1)*t.StepMs)
	return time.Duration(ms) * time.Millisecond
}

// Pausable is always true for this variant.
func (r *Rules) Pausable() bool {
	return true
}

// Summary returns score and level.
func (r *Rules) Summary() core.GameState {
	return core.GameState{Score: r.score, Level: r.level}
}

// Snapshot returns a deep copy of the board, pieces and counters.
func (r *Rules) Snapshot() Snapshot {
	return Snapshot{
		Width:     r.board.Width(),
		Height:    r.board.Height(),
		Cells:     r.board.Rows(),
		Piece:     r.piece.Clone(),
		GhostY:    r.dropY(),
		Next:      r.next,
		Score:     r.score,
		Lines:     r.lines,
		Level:     r.level,
		LastClear: r.lastClear,
		Over:      r.over,
	}
}
