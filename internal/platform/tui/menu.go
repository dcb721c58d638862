package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-thrust/internal/core"
	"github.com/vovakirdan/tui-thrust/internal/registry"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the scenario picker.
type MenuModel struct {
	items    []registry.Info
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *registry.Info // Set when the user picks a scenario
}

// NewMenuModel creates a picker over every registered scenario.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{
		items:  registry.List(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
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
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  T H R U S T  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a scenario", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, item.Title, descStyle.Render(item.Description))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked scenario, or nil if none was picked.
func (m MenuModel) Selected() *registry.Info {
	return m.selected
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ScenarioID string
	Config     core.RuntimeConfig
	Quit       bool
}

// RunMenu runs the picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{ScenarioID: m.Selected().ID, Config: m.config}, nil
}
