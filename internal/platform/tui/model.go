package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-thrust/internal/core"
	"github.com/vovakirdan/tui-thrust/internal/registry"
)

// Model is the Bubble Tea model for running a simulation.
type Model struct {
	sim        registry.Simulation
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	state      core.SimState
	keys       KeyMap
	help       help.Model
	inspector  table.Model
	logger     *log.Logger

	width, height int
	showInspector bool
	quitting      bool
	status        string // Transient message shown in the help bar
}

// NewModel creates a new Bubble Tea model for an already reset simulation.
func NewModel(s registry.Simulation, cfg core.RuntimeConfig, logger *log.Logger) Model {
	m := Model{
		sim:        s,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		state:      s.State(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.screen = core.NewScreen(m.sceneSize())
	m.inspector = newInspectorTable(cfg.ScreenW)
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionInspect:
		m.showInspector = !m.showInspector
		m.resizeScreen()
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The scene keeps running;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.inspector = newInspectorTable(msg.Width)
	m.resizeScreen()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.state
	result := m.sim.Step(m.inputFrame)
	m.state = result.State

	if result.Reset {
		m.logger.Info("scene reset", "scenario", m.sim.ID())
	}
	if result.Err != nil {
		m.logger.Error("scene reset failed", "scenario", m.sim.ID(), "error", result.Err)
		m.status = "reset failed"
	}
	if m.state.Intent != prev.Intent {
		m.logger.Debug("intent changed", "from", prev.Intent, "to", m.state.Intent, "step", m.state.Steps)
	}
	if m.state.Paused != prev.Paused {
		m.logger.Debug("pause toggled", "paused", m.state.Paused, "step", m.state.Steps)
	}

	if m.showInspector {
		if s, ok := m.sim.(Snapshotter); ok {
			m.inspector.SetRows(inspectorRowsFor(s.Snapshot()))
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// sceneSize returns the cells left for the scene after the help bar and inspector.
func (m Model) sceneSize() (int, int) {
	h := m.height - lipgloss.Height(m.help.View(m.keys))
	if m.showInspector {
		h -= inspectorHeight
	}
	return m.width, max(h, 1)
}

func (m *Model) resizeScreen() {
	m.screen.Resize(m.sceneSize())
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.sim.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".thrust", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.sim.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}

	m.status = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.sim.Render(m.screen)

	parts := []string{RenderScreen(m.screen)}
	if m.showInspector {
		parts = append(parts, inspectorStyle.Render(m.inspector.View()))
	}

	bar := m.help.View(m.keys)
	if m.status != "" && !m.help.ShowAll {
		bar = m.status + "  " + bar
	}
	parts = append(parts, helpStyle.Render(bar))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// State returns the last reported simulation state.
func (m Model) State() core.SimState {
	return m.state
}

// Run starts the Bubble Tea program for a simulation that has been reset.
func Run(s registry.Simulation, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(s, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logger.Info("simulation started", "scenario", s.ID(), "fps", cfg.TickRate)
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		st := m.State()
		logger.Info("simulation ended", "scenario", s.ID(), "steps", st.Steps, "time", fmt.Sprintf("%.2fs", st.Time))
	}
	return err
}
