// Package engine implements the falling-block simulation: pieces, the
// two-bag randomizer, collision and wall kicks, line clearing, scoring
// and the board state machine that ties them together.
//
// The package is UI-agnostic and deterministic. Time is passed in by the
// caller and randomness comes from an injected Source.
package engine

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// String returns the conventional single-letter name of the kind.
func (k Kind) String() string {
	if int(k) < KindCount {
		return string("IJLOSTZ"[k])
	}
	return "?"
}

// Orientation is one of the four rotation states of a piece.
type Orientation uint8

const (
	Up Orientation = iota
	Right
	Down
	Left
)

// Clockwise returns the orientation reached by one clockwise turn.
func (o Orientation) Clockwise() Orientation {
	return (o + 1) % 4
}

// CounterClockwise returns the orientation reached by one counter-clockwise turn.
func (o Orientation) CounterClockwise() Orientation {
	return (o + 3) % 4
}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Rotation is a rotation direction. The values index the kick tables.
type Rotation uint8

const (
	CounterClockwise Rotation = iota
	Clockwise
)

// Apply returns the orientation o turned in direction r.
func (r Rotation) Apply(o Orientation) Orientation {
	if r == Clockwise {
		return o.Clockwise()
	}
	return o.CounterClockwise()
}

// Coord is a grid position or offset. Y grows downward on the board.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate translated by other.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// shapes holds the SRS cell offsets for every kind and orientation,
// relative to the top-left corner of the piece's bounding box.
var shapes = [KindCount][4][4]Coord{
	KindI: {
		{C(0, 1), C(1, 1), C(2, 1), C(3, 1)},
		{C(2, 0), C(2, 1), C(2, 2), C(2, 3)},
		{C(0, 2), C(1, 2), C(2, 2), C(3, 2)},
		{C(1, 0), C(1, 1), C(1, 2), C(1, 3)},
	},
	KindJ: {
		{C(0, 0), C(0, 1), C(1, 1), C(2, 1)},
		{C(1, 0), C(2, 0), C(1, 1), C(1, 2)},
		{C(0, 1), C(1, 1), C(2, 1), C(2, 2)},
		{C(1, 0), C(1, 1), C(0, 2), C(1, 2)},
	},
	KindL: {
		{C(2, 0), C(0, 1), C(1, 1), C(2, 1)},
		{C(1, 0), C(1, 1), C(1, 2), C(2, 2)},
		{C(0, 1), C(1, 1), C(2, 1), C(0, 2)},
		{C(0, 0), C(1, 0), C(1, 1), C(1, 2)},
	},
	KindO: {
		{C(0, 0), C(1, 0), C(0, 1), C(1, 1)},
		{C(0, 0), C(1, 0), C(0, 1), C(1, 1)},
		{C(0, 0), C(1, 0), C(0, 1), C(1, 1)},
		{C(0, 0), C(1, 0), C(0, 1), C(1, 1)},
	},
	KindS: {
		{C(1, 0), C(2, 0), C(0, 1), C(1, 1)},
		{C(1, 0), C(1, 1), C(2, 1), C(2, 2)},
		{C(1, 1), C(2, 1), C(0, 2), C(1, 2)},
		{C(0, 0), C(0, 1), C(1, 1), C(1, 2)},
	},
	KindT: {
		{C(1, 0), C(0, 1), C(1, 1), C(2, 1)},
		{C(1, 0), C(1, 1), C(2, 1), C(1, 2)},
		{C(0, 1), C(1, 1), C(2, 1), C(1, 2)},
		{C(1, 0), C(0, 1), C(1, 1), C(1, 2)},
	},
	KindZ: {
		{C(0, 0), C(1, 0), C(1, 1), C(2, 1)},
		{C(2, 0), C(1, 1), C(2, 1), C(1, 2)},
		{C(0, 1), C(1, 1), C(1, 2), C(2, 2)},
		{C(1, 0), C(0, 1), C(1, 1), C(0, 2)},
	},
}

// CellsOf returns the four cell offsets occupied by kind in orientation o.
func CellsOf(kind Kind, o Orientation) [4]Coord {
	return shapes[kind][o%4]
}

// SpawnAnchor returns the default anchor of a freshly spawned piece.
// Pieces appear inside the hidden buffer rows just above the visible field.
func SpawnAnchor(kind Kind) Coord {
	if kind == KindO {
		return C(4, BufferRows-2)
	}
	return C(3, BufferRows-2)
}

// Piece is a positioned tetromino.
type Piece struct {
	Kind        Kind
	Orientation Orientation
	Anchor      Coord
}

// Cells returns the absolute grid coordinates occupied by the piece.
func (p Piece) Cells() [4]Coord {
	var out [4]Coord
	for i, off := range CellsOf(p.Kind, p.Orientation) {
		out[i] = p.Anchor.Add(off)
	}
	return out
}

// Moved returns a copy of the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Anchor = p.Anchor.Add(C(dx, dy))
	return p
}
