package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Layout. Every playfield cell is two characters wide so squares look
// square in a terminal.
const (
	cellW  = 2
	wellW  = engine.Cols*cellW + 2 // interior plus borders
	wellH  = engine.VisibleRows + 2
	panelW = 12
	gap    = 1

	// MinWidth and MinHeight are the smallest screen the game renders in.
	MinWidth  = panelW + gap + wellW + gap + panelW
	MinHeight = wellH + 1 // title row above the well
)

const (
	blockRune = '█'
	ghostRune = '░'
	emptyRune = '.'
)

var kindColors = [engine.KindCount]core.Color{
	engine.KindI: core.ColorCyan,
	engine.KindJ: core.ColorBlue,
	engine.KindL: core.ColorOrange,
	engine.KindO: core.ColorYellow,
	engine.KindS: core.ColorGreen,
	engine.KindT: core.ColorMagenta,
	engine.KindZ: core.ColorRed,
}

// KindColor returns the display color of a piece kind.
func KindColor(k engine.Kind) core.Color {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return core.ColorWhite
}

// layout holds the top-left corners of every screen region.
type layout struct {
	titleY int
	holdX  int
	wellX  int
	wellY  int
	nextX  int
}

func (g *Game) layout() layout {
	originX := max((g.screenW-MinWidth)/2, 0)
	originY := max((g.screenH-MinHeight)/2, 0)
	return layout{
		titleY: originY,
		holdX:  originX,
		wellX:  originX + panelW + gap,
		wellY:  originY + 1,
		nextX:  originX + panelW + gap + wellW + gap,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	dst.DrawTextCenteredColor(l.titleY, "T E T R I S", core.ColorBrightWhite)

	g.renderWell(dst, l)
	g.renderHold(dst, l)
	g.renderStats(dst, l)
	g.renderNext(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
}

// screenPos converts a grid coordinate to the screen position of its left
// character. ok is false for rows in the hidden buffer.
func screenPos(l layout, c engine.Coord) (x, y int, ok bool) {
	if c.Y < engine.BufferRows {
		return 0, 0, false
	}
	return l.wellX + 1 + c.X*cellW, l.wellY + 1 + c.Y - engine.BufferRows, true
}

func drawBlock(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := range cellW {
		dst.SetCell(x+i, y, r, c)
	}
}

func (g *Game) renderWell(dst *core.Screen, l layout) {
	dst.DrawBoxColor(core.NewRect(l.wellX, l.wellY, wellW, wellH), core.ColorGray)

	for y := engine.BufferRows; y < engine.Rows; y++ {
		for x := range engine.Cols {
			sx, sy, _ := screenPos(l, engine.C(x, y))
			cell := g.board.Cell(x, y)
			if cell.Filled {
				drawBlock(dst, sx, sy, blockRune, KindColor(cell.Kind))
				continue
			}
			dst.SetCell(sx+1, sy, emptyRune, core.ColorDarkGray)
		}
	}

	if g.board.State() == engine.StateGameOver {
		return
	}

	active := g.board.Active()
	if g.cfg.Preview.Ghost {
		for _, c := range g.board.Ghost().Cells() {
			if sx, sy, ok := screenPos(l, c); ok {
				drawBlock(dst, sx, sy, ghostRune, core.ColorDarkGray)
			}
		}
	}
	for _, c := range active.Cells() {
		if sx, sy, ok := screenPos(l, c); ok {
			drawBlock(dst, sx, sy, blockRune, KindColor(active.Kind))
		}
	}
}

// drawPiece draws kind in its spawn orientation with its bounding box
// corner at (x, y).
func drawPiece(dst *core.Screen, x, y int, kind engine.Kind, c core.Color) {
	for _, off := range engine.CellsOf(kind, engine.Up) {
		drawBlock(dst, x+off.X*cellW, y+off.Y, blockRune, c)
	}
}

func (g *Game) renderHold(dst *core.Screen, l layout) {
	box := core.NewRect(l.holdX, l.wellY, panelW, 4)
	dst.DrawBoxColor(box, core.ColorGray)
	dst.DrawTextColor(box.X+2, box.Y, " HOLD ", core.ColorWhite)

	kind, ok := g.board.Hold()
	if !ok {
		return
	}
	c := KindColor(kind)
	if !g.board.CanHold() {
		c = core.ColorDarkGray
	}
	drawPiece(dst, box.X+2, box.Y+1, kind, c)
}

func (g *Game) renderStats(dst *core.Screen, l layout) {
	x := l.holdX + 1
	y := l.wellY + 5

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", g.board.Score()},
		{"LEVEL", g.board.Level() + 1},
		{"LINES", g.board.Lines()},
	}
	for _, s := range stats {
		dst.DrawTextColor(x, y, s.label, core.ColorGray)
		dst.DrawTextColor(x, y+1, fmt.Sprintf("%d", s.value), core.ColorBrightWhite)
		y += 3
	}

	if combo := g.board.Combo(); combo > 0 {
		dst.DrawTextColor(x, y, fmt.Sprintf("COMBO %d", combo), core.ColorBrightYellow)
	}
}

func (g *Game) renderNext(dst *core.Screen, l layout) {
	preview := g.board.Preview()
	box := core.NewRect(l.nextX, l.wellY, panelW, 3*len(preview)+1)
	dst.DrawBoxColor(box, core.ColorGray)
	dst.DrawTextColor(box.X+2, box.Y, " NEXT ", core.ColorWhite)

	for i, kind := range preview {
		drawPiece(dst, box.X+2, box.Y+1+3*i, kind, KindColor(kind))
	}
}

func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	centerX := l.wellX + wellW/2
	centerY := l.wellY + wellH/2

	switch {
	case g.board.State() == engine.StateGameOver:
		drawCentered(dst, centerX, centerY-1, "GAME OVER", core.ColorBrightRed)
		drawCentered(dst, centerX, centerY, strings.ToUpper(g.board.EndReason().String()), core.ColorRed)
		drawCentered(dst, centerX, centerY+2, "R to restart", core.ColorWhite)
	case g.paused:
		drawCentered(dst, centerX, centerY-1, "PAUSED", core.ColorBrightYellow)
		drawCentered(dst, centerX, centerY+1, "P to resume", core.ColorWhite)
	default:
		if banner := g.Banner(); banner != "" {
			for i, line := range strings.Split(banner, "  ") {
				drawCentered(dst, centerX, l.wellY+4+i, line, core.ColorBrightYellow)
			}
		}
	}
}

// drawCentered writes text padded with one space on each side, centered
// on column cx.
func drawCentered(dst *core.Screen, cx, y int, text string, c core.Color) {
	padded := " " + text + " "
	dst.DrawTextColor(cx-len([]rune(padded))/2, y, padded, c)
}
