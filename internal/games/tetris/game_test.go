package tetris

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultTetrisConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func pressed(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.SetHeld(a)
	}
	return f
}

// runUntilGameOver hard drops every piece at its spawn column.
func runUntilGameOver(t *testing.T, g *Game) {
	t.Helper()
	for range 500 {
		if g.State().GameOver {
			return
		}
		g.Step(pressed(core.ActionHardDrop))
	}
	require.True(t, g.State().GameOver, "stacking at spawn never ended the game")
}

func TestIdentity(t *testing.T) {
	g := New(config.DefaultTetrisConfig())
	assert.Equal(t, "tetris", g.ID())
	assert.Equal(t, "Tetris", g.Title())
}

func TestEngineConfig(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Progression.StartLevel = 3
	ec := EngineConfig(cfg)

	assert.Equal(t, 500*time.Millisecond, ec.LockDelay)
	assert.Equal(t, 100*time.Millisecond, ec.SlideDelay)
	assert.Equal(t, 50*time.Millisecond, ec.SlideRate)
	assert.Equal(t, 800*time.Millisecond, ec.Gravity.Base)
	assert.Equal(t, 20, ec.Gravity.SoftDropFactor)
	assert.Equal(t, 2, ec.StartLevel)
	assert.Equal(t, 14, ec.MaxLevel)
	assert.Equal(t, 5, ec.PreviewSize)

	// The shipped defaults must match the engine's own defaults.
	assert.Equal(t, engine.DefaultConfig(), EngineConfig(config.DefaultTetrisConfig()))
}

func TestDeterminism(t *testing.T) {
	script := func(tick int) core.InputFrame {
		switch {
		case tick%45 == 0:
			return pressed(core.ActionHardDrop)
		case tick%20 == 0:
			return pressed(core.ActionRotateCW)
		case tick%30 < 5:
			return held(core.ActionLeft)
		case tick%30 < 10:
			return held(core.ActionRight)
		case tick%97 == 0:
			return pressed(core.ActionHold)
		}
		return core.NewInputFrame()
	}

	a := newTestGame(t, 1234)
	b := newTestGame(t, 1234)
	for tick := 1; tick <= 1500; tick++ {
		a.Step(script(tick))
		b.Step(script(tick))
	}

	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Positive(t, a.Snapshot().Locks)
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t, 1)
	s := g.State()
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.Lines)
	assert.Equal(t, 1, s.Level)
	assert.False(t, s.GameOver)
	assert.False(t, s.Paused)

	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Len(t, snap.Next, 5)
	assert.False(t, snap.Held)
}

func TestHeldMovement(t *testing.T) {
	g := newTestGame(t, 7)
	start := g.Board().Active().Anchor

	g.Step(held(core.ActionLeft))
	assert.Equal(t, start.X-1, g.Board().Active().Anchor.X)

	// A tap reported only as a press also moves.
	g.Step(core.NewInputFrame())
	g.Step(pressed(core.ActionRight))
	assert.Equal(t, start.X, g.Board().Active().Anchor.X)
}

func TestPauseFreezesGame(t *testing.T) {
	g := newTestGame(t, 3)

	g.Step(pressed(core.ActionPause))
	require.True(t, g.State().Paused)
	before := g.Snapshot()

	for range 200 {
		g.Step(held(core.ActionSoftDrop))
	}
	after := g.Snapshot()
	assert.Equal(t, before.Active, after.Active)
	assert.Equal(t, StatePaused, after.State)

	g.Step(pressed(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestHardDropScores(t *testing.T) {
	g := newTestGame(t, 5)
	g.Step(pressed(core.ActionHardDrop))

	assert.Equal(t, 1, g.Board().Locks())
	assert.Positive(t, g.State().Score)
	assert.Equal(t, 0, g.State().Score%2, "hard drop awards two points per row")
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, 11)
	runUntilGameOver(t, g)

	score := g.State().Score
	for range 10 {
		g.Step(pressed(core.ActionHardDrop))
	}
	assert.True(t, g.State().GameOver)
	assert.Equal(t, score, g.State().Score)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	g.Step(pressed(core.ActionRestart))
	s := g.State()
	assert.False(t, s.GameOver)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, g.Board().Locks())
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g := newTestGame(t, 2)
	g.Step(pressed(core.ActionHardDrop))
	g.Step(pressed(core.ActionRestart))
	assert.Equal(t, 1, g.Board().Locks())
}

func TestBannerText(t *testing.T) {
	tests := []struct {
		name  string
		award engine.Award
		want  string
	}{
		{"single", engine.Award{Type: engine.ClearSingle, Scored: true}, "SINGLE"},
		{"b2b tetris", engine.Award{Type: engine.ClearTetris, Scored: true, BackToBack: true}, "B2B TETRIS"},
		{"combo", engine.Award{Type: engine.ClearTSpinDouble, Scored: true, Combo: 2}, "T-SPIN DOUBLE  COMBO x2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bannerText(tt.award))
		})
	}
}

func TestBannerExpires(t *testing.T) {
	g := newTestGame(t, 9)
	g.onAward(engine.Award{Type: engine.ClearDouble, Scored: true, Lines: 2})
	require.Equal(t, "DOUBLE", g.Banner())

	for range BannerTicks - 1 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, "DOUBLE", g.Banner())

	g.Step(core.NewInputFrame())
	assert.Empty(t, g.Banner())
}

func TestDropOnlyAwardHasNoBanner(t *testing.T) {
	g := newTestGame(t, 9)
	g.onAward(engine.Award{Points: 40})
	assert.Empty(t, g.Banner())
}

func TestLoggerReportsGameOver(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGame(t, 21)
	g.SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))

	runUntilGameOver(t, g)
	assert.Contains(t, buf.String(), "game over")
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 4)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "T E T R I S")
	assert.Contains(t, out, "HOLD")
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "LEVEL")
	assert.Contains(t, out, "LINES")
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 4)
	screen := core.NewScreen(80, 24)

	g.Step(pressed(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Step(pressed(core.ActionPause))
	runUntilGameOver(t, g)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
	assert.Contains(t, screen.String(), "R to restart")
}

func TestRenderTooSmall(t *testing.T) {
	g := New(config.DefaultTetrisConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60, Seed: 1})
	require.True(t, g.State().Paused)

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	before := g.Snapshot().Active
	g.Step(pressed(core.ActionHardDrop))
	assert.Equal(t, before, g.Board().Active())

	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
}
