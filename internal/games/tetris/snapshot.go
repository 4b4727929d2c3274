package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Score  int
	Lines  int
	Level  int // 1-based
	Combo  int
	Locks  int
	Active engine.Piece
	Hold   engine.Kind
	Held   bool
	Next   []engine.Kind
	Grid   [engine.Rows][engine.Cols]engine.Cell
	State  GameStateType
	Reason engine.EndReason
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.board.State() == engine.StateGameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	hold, held := g.board.Hold()
	s := Snapshot{
		Tick:   g.tick,
		Score:  g.board.Score(),
		Lines:  g.board.Lines(),
		Level:  g.board.Level() + 1,
		Combo:  g.board.Combo(),
		Locks:  g.board.Locks(),
		Active: g.board.Active(),
		Hold:   hold,
		Held:   held,
		Next:   g.board.Preview(),
		State:  state,
		Reason: g.board.EndReason(),
	}
	for y := range engine.Rows {
		for x := range engine.Cols {
			s.Grid[y][x] = g.board.Cell(x, y)
		}
	}
	return s
}
