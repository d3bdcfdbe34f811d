package blocks

// Board is the fixed-size well. Row 0 is the top.
type Board struct {
	width, height int
	cells         [][]Kind
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height, cells: make([][]Kind, height)}
	for y := range b.cells {
		b.cells[y] = make([]Kind, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// At returns the occupant of (x, y), or KindEmpty outside the board.
func (b *Board) At(x, y int) Kind {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return KindEmpty
	}
	return b.cells[y][x]
}

// Collides reports whether shape anchored at (x, y) leaves the board
// horizontally, passes the floor, or overlaps an occupied cell. Cells above
// the top edge are free.
func (b *Board) Collides(shape Shape, x, y int) bool {
	for dy, row := range shape {
		for dx, filled := range row {
			if !filled {
				continue
			}
			bx, by := x+dx, y+dy
			if bx < 0 || bx >= b.width || by >= b.height {
				return true
			}
			if by >= 0 && b.cells[by][bx] != KindEmpty {
				return true
			}
		}
	}
	return false
}

// Fits reports whether p can occupy its current position.
func (b *Board) Fits(p Piece) bool {
	return !b.Collides(p.Shape, p.X, p.Y)
}

// Merge writes p's cells into the board. Cells above the top edge are
// dropped.
func (b *Board) Merge(p Piece) {
	p.Cells(func(x, y int) {
		if y >= 0 && y < b.height && x >= 0 && x < b.width {
			b.cells[y][x] = p.Kind
		}
	})
}

// ClearLines removes every full row and returns how many were removed.
// Rows are scanned bottom to top; after a removal an empty row enters at the
// top and the same index is checked again.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := b.height - 1; y >= 0; {
		if !b.full(y) {
			y--
			continue
		}
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = make([]Kind, b.width)
		cleared++
	}
	return cleared
}

func (b *Board) full(y int) bool {
	for _, k := range b.cells[y] {
		if k == KindEmpty {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the cells.
func (b *Board) Rows() [][]Kind {
	rows := make([][]Kind, b.height)
	for y, row := range b.cells {
		rows[y] = append([]Kind(nil), row...)
	}
	return rows
}
