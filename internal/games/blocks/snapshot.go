package blocks

// Snapshot captures the complete game state for rendering and determinism
// testing. It shares no memory with the live game.
type Snapshot struct {
	Width, Height int
	Cells         [][]Kind
	Piece         Piece
	GhostY        int // row the piece would land on after a hard drop
	Next          Kind
	Score         int
	Lines         int
	Level         int
	LastClear     int // lines removed by the most recent lock
	Over          bool
}

// KindAt returns the occupant of (x, y) including the falling piece.
func (s Snapshot) KindAt(x, y int) Kind {
	if k := s.pieceAt(x, y, s.Piece.Y); k != KindEmpty {
		return k
	}
	if y < 0 || y >= len(s.Cells) || x < 0 || x >= len(s.Cells[y]) {
		return KindEmpty
	}
	return s.Cells[y][x]
}

// GhostAt reports whether (x, y) is covered by the landing preview and free
// on the board.
func (s Snapshot) GhostAt(x, y int) bool {
	if s.Over || s.GhostY == s.Piece.Y {
		return false
	}
	return s.pieceAt(x, y, s.GhostY) != KindEmpty && s.KindAt(x, y) == KindEmpty
}

func (s Snapshot) pieceAt(x, y, py int) Kind {
	dx, dy := x-s.Piece.X, y-py
	if dy < 0 || dy >= s.Piece.Shape.Height() || dx < 0 || dx >= s.Piece.Shape.Width() {
		return KindEmpty
	}
	if s.Piece.Shape[dy][dx] {
		return s.Piece.Kind
	}
	return KindEmpty
}

// String renders the board with the falling piece as letters, one row per
// line. Empty cells are dots.
func (s Snapshot) String() string {
	buf := make([]byte, 0, (s.Width+1)*s.Height)
	for y := range s.Height {
		for x := range s.Width {
			buf = append(buf, s.KindAt(x, y).String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
