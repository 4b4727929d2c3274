package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func sendMenuKey(t *testing.T, m LevelSelectModel, msg tea.KeyMsg) LevelSelectModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(LevelSelectModel)
	require.True(t, ok)
	return out
}

func TestLevelSelectPreselectsStartLevel(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Progression.StartLevel = 4
	m := NewLevelSelectModel(cfg, 80, 24)

	assert.Equal(t, 0, m.Level(), "no level before selection")
	m = sendMenuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 4, m.Level())
}

func TestLevelSelectNavigation(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	m := NewLevelSelectModel(cfg, 80, 24)

	m = sendMenuKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = sendMenuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = sendMenuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = sendMenuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = sendMenuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = sendMenuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, cfg.Progression.MaxLevel, m.Level(), "cursor stops at the last level")
}

func TestLevelSelectBackAndQuit(t *testing.T) {
	cfg := config.DefaultTetrisConfig()

	m := sendMenuKey(t, NewLevelSelectModel(cfg, 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.WantsBack())
	assert.Equal(t, 0, m.Level())

	m = sendMenuKey(t, NewLevelSelectModel(cfg, 80, 24), runeKey("q"))
	assert.True(t, m.IsQuitting())
}

func TestLevelSelectView(t *testing.T) {
	m := NewLevelSelectModel(config.DefaultTetrisConfig(), 80, 40)
	view := m.View()
	assert.Contains(t, view, "Select start level")
	assert.Contains(t, view, "Level  1")
	assert.Contains(t, view, "Level 15")
	assert.Contains(t, view, "800 ms/row")
}

func TestLevelSelectVisibleRange(t *testing.T) {
	m := NewLevelSelectModel(config.DefaultTetrisConfig(), 80, 12)
	m.cursor = 14
	from, to := m.visibleRange()
	assert.Equal(t, 15, to)
	assert.Equal(t, 4, to-from)
}
