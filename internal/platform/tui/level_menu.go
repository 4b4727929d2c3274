package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

const levelPageStep = 5

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LevelSelectModel lets the player choose the start level before a game.
type LevelSelectModel struct {
	intervals []time.Duration // fall interval per level, index 0 is level 1
	cursor    int             // zero-based
	width     int
	height    int
	keys      MenuKeyMap
	help      help.Model
	choosing  bool
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a selector over levels 1..max_level with the
// configured start level preselected.
func NewLevelSelectModel(cfg config.TetrisConfig, width, height int) LevelSelectModel {
	normal, _ := tetris.EngineConfig(cfg).FallIntervals()
	cursor := min(max(cfg.Progression.StartLevel-1, 0), len(normal)-1)

	return LevelSelectModel{
		intervals: normal,
		cursor:    cursor,
		width:     width,
		height:    height,
		keys:      DefaultMenuKeyMap(),
		help:      help.New(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keys.Action(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	last := len(m.intervals) - 1

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, last)
	case MenuActionPageUp:
		m.cursor = max(m.cursor-levelPageStep, 0)
	case MenuActionPageDown:
		m.cursor = min(m.cursor+levelPageStep, last)
	case MenuActionSelect:
		m.choosing = false
		return m, tea.Quit
	}
	return m, nil
}

// visibleRange returns the window of levels that fits the terminal,
// keeping the cursor in view.
func (m LevelSelectModel) visibleRange() (from, to int) {
	rows := max(m.height-8, 3)
	n := len(m.intervals)
	if n <= rows {
		return 0, n
	}
	from = min(max(m.cursor-rows/2, 0), n-rows)
	return from, from + rows
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T E T R I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select start level:", m.width))
	b.WriteString("\n\n")

	from, to := m.visibleRange()
	for i := from; i < to; i++ {
		line := fmt.Sprintf("  Level %2d   %4d ms/row  ", i+1, m.intervals[i].Milliseconds())
		if i == m.cursor {
			line = menuSelectedStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Level returns the chosen 1-based level, or 0 while still choosing.
func (m LevelSelectModel) Level() int {
	if m.choosing {
		return 0
	}
	return m.cursor + 1
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector shows the level selector and returns the chosen 1-based
// level. ok is false when the player backed out or quit.
func RunLevelSelector(cfg config.TetrisConfig, rt core.RuntimeConfig) (level int, ok bool, err error) {
	model := NewLevelSelectModel(cfg, rt.ScreenW, rt.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isModel := finalModel.(LevelSelectModel)
	if !isModel || m.IsQuitting() || m.WantsBack() {
		return 0, false, nil
	}

	level = m.Level()
	return level, level > 0, nil
}
