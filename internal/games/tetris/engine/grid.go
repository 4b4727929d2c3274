package engine

import (
	"fmt"
	"slices"
)

// Playfield dimensions. Rows [0, BufferRows) are hidden above the
// visible field and give spawning and rotation room to work.
const (
	Cols        = 10
	VisibleRows = 20
	BufferRows  = 4
	Rows        = VisibleRows + BufferRows
)

// Cell is one square of the playfield.
type Cell struct {
	Filled bool
	Kind   Kind // only meaningful when Filled; used for color
}

// Grid is the locked-cell matrix, stored row-major with row 0 at the top.
type Grid struct {
	W, H  int
	Cells []Cell
}

// NewGrid creates an empty playfield.
func NewGrid() *Grid {
	return &Grid{
		W:     Cols,
		H:     Rows,
		Cells: make([]Cell, Cols*Rows),
	}
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// Get returns the cell at c. Out-of-bounds positions read as empty.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Cell{}
	}
	return g.Cells[g.index(c)]
}

// Set writes the cell at c. Writing outside the grid panics since it
// means a piece escaped collision checking.
func (g *Grid) Set(c Coord, cell Cell) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("engine: grid write out of bounds at (%d,%d)", c.X, c.Y))
	}
	g.Cells[g.index(c)] = cell
}

// Occupied reports whether c is out of bounds or holds a locked cell.
func (g *Grid) Occupied(c Coord) bool {
	return !g.InBounds(c) || g.Cells[g.index(c)].Filled
}

// Collides reports whether a piece of the given kind at anchor and
// orientation o overlaps a locked cell or leaves the grid. It is the only
// legality check used for movement, rotation, spawning and the ghost.
func (g *Grid) Collides(kind Kind, anchor Coord, o Orientation) bool {
	for _, off := range CellsOf(kind, o) {
		if g.Occupied(anchor.Add(off)) {
			return true
		}
	}
	return false
}

// Fits reports whether p can occupy its current position.
func (g *Grid) Fits(p Piece) bool {
	return !g.Collides(p.Kind, p.Anchor, p.Orientation)
}

// RowFull reports whether every cell of row y is filled.
func (g *Grid) RowFull(y int) bool {
	g.checkRow(y)
	for x := 0; x < g.W; x++ {
		if !g.Cells[y*g.W+x].Filled {
			return false
		}
	}
	return true
}

// ClearLines removes the full rows among touched and returns how many
// were removed. Rows are processed top to bottom so that removing one row
// never moves a row still waiting to be processed.
func (g *Grid) ClearLines(touched []int) int {
	full := make([]int, 0, len(touched))
	for _, y := range touched {
		if g.RowFull(y) {
			full = append(full, y)
		}
	}
	slices.Sort(full)
	full = slices.Compact(full)

	for _, y := range full {
		g.removeRow(y)
	}
	return len(full)
}

// removeRow deletes row y, shifts all rows above it down by one and
// leaves an empty row at the top.
func (g *Grid) removeRow(y int) {
	g.checkRow(y)
	copy(g.Cells[g.W:(y+1)*g.W], g.Cells[:y*g.W])
	for x := 0; x < g.W; x++ {
		g.Cells[x] = Cell{}
	}
}

func (g *Grid) checkRow(y int) {
	if y < 0 || y >= g.H {
		panic(fmt.Sprintf("engine: row %d out of range [0,%d)", y, g.H))
	}
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.Cells)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Filled returns the number of filled cells.
func (g *Grid) Filled() int {
	n := 0
	for _, c := range g.Cells {
		if c.Filled {
			n++
		}
	}
	return n
}
