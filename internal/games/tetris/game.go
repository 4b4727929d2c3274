// Package tetris adapts the tetris engine to the terminal platform: it maps
// input frames to engine inputs, drives the engine clock from the tick
// count and renders the playfield into a character screen.
package tetris

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// BannerTicks is how long a clear banner stays on screen.
const BannerTicks = 90

// Game implements the platform game contract for tetris.
type Game struct {
	cfg    config.TetrisConfig
	rt     core.RuntimeConfig
	rng    *rand.Rand
	board  *engine.Board
	logger *log.Logger

	tick  uint64
	clock time.Duration // simulated engine time
	dt    time.Duration // clock advance per unpaused tick

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	banner      string
	bannerTicks int
	seenLocks   int
	endLogged   bool
}

// New creates a game with the given settings. Reset must be called before
// the first Step.
func New(cfg config.TetrisConfig) *Game {
	return &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
}

// SetLogger routes award and game over events to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new game for the given runtime settings.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.board = engine.NewBoard(EngineConfig(g.cfg), g.rng)
	g.tick = 0
	g.clock = 0
	g.dt = rt.TickInterval()
	g.paused = false
	g.clearBanner()
	g.seenLocks = 0
	g.endLogged = false
	g.resize(rt.ScreenW, rt.ScreenH)
}

// restart begins a new round on the same random stream.
func (g *Game) restart() {
	g.board.Reset(g.clock)
	g.paused = false
	g.clearBanner()
	g.seenLocks = 0
	g.endLogged = false
	g.logger.Debug("restart", "seed", g.rt.Seed)
}

// Resize updates the screen dimensions the game renders into.
func (g *Game) Resize(w, h int) {
	g.resize(w, h)
}

func (g *Game) resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinWidth || h < MinHeight
}

// EngineConfig converts the file settings into engine rules. Levels are
// 1-based in the file and zero-based in the engine.
func EngineConfig(cfg config.TetrisConfig) engine.Config {
	return engine.Config{
		LockDelay:  config.Millis(cfg.Timing.LockDelayMs),
		SlideDelay: config.Millis(cfg.Timing.SlideDelayMs),
		SlideRate:  config.Millis(cfg.Timing.SlideRateMs),
		Gravity: engine.Gravity{
			Base:           config.Millis(cfg.Gravity.BaseIntervalMs),
			Quadratic:      config.Millis(cfg.Gravity.QuadraticMs),
			Min:            config.Millis(cfg.Gravity.MinIntervalMs),
			SoftDropFactor: cfg.Gravity.SoftDropFactor,
			SoftDropMin:    config.Millis(cfg.Gravity.MinSoftIntervalMs),
		},
		LinesPerLevel: cfg.Progression.LinesPerLevel,
		StartLevel:    cfg.Progression.StartLevel - 1,
		MaxLevel:      cfg.Progression.MaxLevel - 1,
		PreviewSize:   cfg.Preview.Size,
	}
}

// engineInput maps a platform frame to engine intents. Movement and soft
// drop count whether the key was pressed this tick or is still held.
func engineInput(in core.InputFrame) engine.Input {
	active := func(a core.Action) bool {
		return in.Has(a) || in.IsHeld(a)
	}
	return engine.Input{
		Left:      active(core.ActionLeft),
		Right:     active(core.ActionRight),
		SoftDrop:  active(core.ActionSoftDrop),
		RotateCW:  in.Has(core.ActionRotateCW),
		RotateCCW: in.Has(core.ActionRotateCCW),
		Hold:      in.Has(core.ActionHold),
		HardDrop:  in.Has(core.ActionHardDrop),
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.board.State() == engine.StateGameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	g.clock += g.dt
	g.board.Update(g.clock, engineInput(in))
	g.observe()

	return core.StepResult{State: g.State()}
}

// observe reacts to locks and game over that happened during the last
// engine update.
func (g *Game) observe() {
	if locks := g.board.Locks(); locks != g.seenLocks {
		g.seenLocks = locks
		if award, ok := g.board.LastAward(); ok && g.board.State() == engine.StateRunning {
			g.onAward(award)
		}
	}

	if g.board.State() == engine.StateGameOver && !g.endLogged {
		g.endLogged = true
		g.logger.Debug("game over",
			"reason", g.board.EndReason(),
			"score", g.board.Score(),
			"lines", g.board.Lines(),
			"level", g.board.Level()+1,
		)
	}
}

func (g *Game) onAward(a engine.Award) {
	if !a.Scored {
		return
	}
	g.logger.Debug("clear",
		"type", a.Type,
		"lines", a.Lines,
		"points", a.Points,
		"combo", a.Combo,
		"b2b", a.BackToBack,
	)
	g.banner = bannerText(a)
	g.bannerTicks = BannerTicks
}

func (g *Game) clearBanner() {
	g.banner = ""
	g.bannerTicks = 0
}

// bannerText builds the overlay shown after a scoring lock, such as
// "B2B TETRIS" or "T-SPIN DOUBLE  COMBO x2".
func bannerText(a engine.Award) string {
	text := strings.ToUpper(a.Type.String())
	if a.BackToBack {
		text = "B2B " + text
	}
	if a.Combo > 0 {
		text += fmt.Sprintf("  COMBO x%d", a.Combo)
	}
	return text
}

// Banner returns the clear banner currently shown, if any.
func (g *Game) Banner() string {
	if g.bannerTicks == 0 {
		return ""
	}
	return g.banner
}

// Board exposes the engine for inspection.
func (g *Game) Board() *engine.Board {
	return g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		Lines:    g.board.Lines(),
		Level:    g.board.Level() + 1,
		GameOver: g.board.State() == engine.StateGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
