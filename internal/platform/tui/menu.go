package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuSelectLevel
	MenuScores
	MenuQuit
)

var menuLabels = [...]string{
	MenuPlay:        "Play",
	MenuSelectLevel: "Select level...",
	MenuScores:      "High scores",
	MenuQuit:        "Quit",
}

// String returns the menu label.
func (c MenuChoice) String() string {
	if c >= 0 && int(c) < len(menuLabels) {
		return menuLabels[c]
	}
	return "?"
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor   int
	best     int // high score shown under the title, 0 hides it
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	selected bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig, best int) MenuModel {
	return MenuModel{
		best:   best,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.cursor = int(MenuQuit)
		m.selected = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)

	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(menuLabels)-1)

	case MenuActionSelect:
		m.selected = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected {
		return ""
	}

	w := m.config.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T E T R I S"), w))
	b.WriteString("\n\n")

	if m.best > 0 {
		b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("Best: %d", m.best)), w))
		b.WriteString("\n\n")
	}

	for i, label := range menuLabels {
		line := fmt.Sprintf("  %-16s", label)
		if i == m.cursor {
			line = menuSelectedStyle.Render(line)
		}
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(m.help.View(m.keys)), w))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the chosen entry. ok is false while the menu is open.
func (m MenuModel) Choice() (choice MenuChoice, ok bool) {
	return MenuChoice(m.cursor), m.selected
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// RunMenu shows the main menu and returns the choice and the runtime
// config updated with the final terminal size.
func RunMenu(cfg core.RuntimeConfig, best int) (MenuChoice, core.RuntimeConfig, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, best),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuQuit, cfg, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuQuit, cfg, nil
	}

	choice, chosen := m.Choice()
	if !chosen {
		return MenuQuit, m.Config(), nil
	}
	return choice, m.Config(), nil
}
