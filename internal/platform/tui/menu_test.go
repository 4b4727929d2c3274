package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func sendMainMenuKey(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(MenuModel)
	require.True(t, ok)
	return out
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 0)

	_, chosen := m.Choice()
	assert.False(t, chosen)

	m = sendMainMenuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMainMenuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMainMenuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	choice, chosen := m.Choice()
	assert.True(t, chosen)
	assert.Equal(t, MenuScores, choice)
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 0)
	m = sendMainMenuKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for range 10 {
		m = sendMainMenuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = sendMainMenuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	choice, _ := m.Choice()
	assert.Equal(t, MenuQuit, choice)
}

func TestMenuQuitKey(t *testing.T) {
	m := sendMainMenuKey(t, NewMenuModel(core.DefaultConfig(), 0), runeKey("q"))
	choice, chosen := m.Choice()
	assert.True(t, chosen)
	assert.Equal(t, MenuQuit, choice)
}

func TestMenuViewAndResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 4200)
	view := m.View()
	assert.Contains(t, view, "Best: 4200")
	assert.Contains(t, view, "Select level...")

	m = sendMainMenuKey(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}
