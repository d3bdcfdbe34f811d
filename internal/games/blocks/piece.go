package blocks

import "github.com/vovakirdan/circuit-arcade/internal/core"

// Kind tags a board cell with the tetromino that filled it. KindEmpty marks
// a free cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every spawnable tetromino in draw order.
var Kinds = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if k == KindEmpty || int(k) > len(Kinds) {
		return "."
	}
	return string("IOTSZJL"[k-1])
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorMagenta
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Shape is a rectangular occupancy matrix indexed [row][col].
type Shape [][]bool

func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for i, row := range rows {
		s[i] = make([]bool, len(row))
		for j, ch := range row {
			s[i][j] = ch == '#'
		}
	}
	return s
}

var shapes = map[Kind]Shape{
	KindI: parseShape("####"),
	KindO: parseShape("##", "##"),
	KindT: parseShape(".#.", "###"),
	KindS: parseShape(".##", "##."),
	KindZ: parseShape("##.", ".##"),
	KindJ: parseShape("#..", "###"),
	KindL: parseShape("..#", "###"),
}

// ShapeOf returns a fresh copy of the spawn orientation of k.
func ShapeOf(k Kind) Shape {
	return shapes[k].Clone()
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for i, row := range s {
		c[i] = append([]bool(nil), row...)
	}
	return c
}

// Rotate returns the shape turned 90 degrees clockwise. An h×w shape becomes
// w×h: the transpose with each row reversed.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	r := make(Shape, w)
	for i := range w {
		r[i] = make([]bool, h)
		for j := range h {
			r[i][j] = s[h-1-j][i]
		}
	}
	return r
}

// Piece is the falling tetromino. X, Y anchor the shape's top-left cell.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// Clone returns a deep copy.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells calls fn with the board coordinates of every occupied cell.
func (p Piece) Cells(fn func(x, y int)) {
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled {
				fn(p.X+dx, p.Y+dy)
			}
		}
	}
}
