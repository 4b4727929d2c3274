package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// fakeGame ends after a fixed number of steps and restarts on
// ActionRestart once over.
type fakeGame struct {
	steps    int
	endAfter int
	state    core.GameState
	inputs   []core.InputFrame
	resized  [2]int
}

func (g *fakeGame) ID() string { return "fake" }

func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.state = core.GameState{Level: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if g.state.GameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{})
		}
		return core.StepResult{State: g.state}
	}
	g.steps++
	g.state.Score = g.steps * 10
	g.state.Lines = g.steps
	if g.steps >= g.endAfter {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(at))
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func press(t *testing.T, m Model, msg tea.KeyMsg, at time.Time) Model {
	t.Helper()
	next, _ := m.handleKey(msg, at)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{endAfter: 3}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, ModelOptions{})
	m.Init()

	base := time.Now()
	for i := range 10 {
		m = tick(t, m, base.Add(time.Duration(i)*time.Second))
	}
	require.True(t, m.State().GameOver)

	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 30, scores[0].Score)
	assert.Equal(t, 3, scores[0].Lines)
	assert.Equal(t, 1, scores[0].Level)
}

func TestModelRestartSavesNextRound(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{endAfter: 2}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, ModelOptions{})
	m.Init()

	base := time.Now()
	m = tick(t, m, base)
	m = tick(t, m, base.Add(time.Second))
	require.True(t, m.State().GameOver)

	m = press(t, m, runeKey("r"), base.Add(2*time.Second))
	m = tick(t, m, base.Add(2*time.Second))
	require.False(t, m.State().GameOver)

	m = tick(t, m, base.Add(3*time.Second))
	m = tick(t, m, base.Add(4*time.Second))
	require.True(t, m.State().GameOver)

	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{endAfter: 1}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, ModelOptions{})
	m.Init()
	game.state.GameOver = true

	m = tick(t, m, time.Now())
	require.True(t, m.State().GameOver)

	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestModelHeldInput(t *testing.T) {
	game := &fakeGame{endAfter: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1},
		ModelOptions{HoldWindow: 100 * time.Millisecond})
	m.Init()

	base := time.Now()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, base)
	m = tick(t, m, base.Add(16*time.Millisecond))
	m = tick(t, m, base.Add(80*time.Millisecond))
	m = tick(t, m, base.Add(200*time.Millisecond))

	require.Len(t, game.inputs, 3)
	assert.True(t, game.inputs[0].Has(core.ActionLeft))
	assert.True(t, game.inputs[0].IsHeld(core.ActionLeft))
	assert.False(t, game.inputs[1].Has(core.ActionLeft))
	assert.True(t, game.inputs[1].IsHeld(core.ActionLeft))
	assert.False(t, game.inputs[2].IsHeld(core.ActionLeft))
}

func TestModelQuitAndResize(t *testing.T) {
	game := &fakeGame{endAfter: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, ModelOptions{})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	assert.Equal(t, [2]int{100, 30}, game.resized)
	assert.Contains(t, m.View(), "fake")

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	game := &fakeGame{endAfter: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, Seed: 1},
		ModelOptions{ScreenshotDir: dir})
	m.Init()

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS}, time.Now())
	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
