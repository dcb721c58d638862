package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-thrust/internal/core"
)

// KeyMap defines the key bindings for the simulation screen.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	UpLeft    key.Binding
	UpRight   key.Binding
	DownLeft  key.Binding
	DownRight key.Binding
	Stop      key.Binding

	Pause   key.Binding
	Step    key.Binding
	Reset   key.Binding
	Inspect key.Binding

	ZoomIn   key.Binding
	ZoomOut  key.Binding
	PanUp    key.Binding
	PanDown  key.Binding
	PanLeft  key.Binding
	PanRight key.Binding
	Follow   key.Binding

	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Stop, k.Pause, k.Reset, k.Inspect, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Stop},
		{k.UpLeft, k.UpRight, k.DownLeft, k.DownRight},
		{k.Pause, k.Step, k.Reset, k.Inspect},
		{k.ZoomIn, k.ZoomOut, k.PanUp, k.PanDown, k.PanLeft, k.PanRight, k.Follow},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
// Diagonals follow the roguelike y/u/b/n layout and the numeric keypad.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up", "k", "8"),
			key.WithHelp("w/↑", "thrust up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "j", "2"),
			key.WithHelp("s/↓", "thrust down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left", "h", "4"),
			key.WithHelp("a/←", "thrust left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right", "l", "6"),
			key.WithHelp("d/→", "thrust right"),
		),
		UpLeft: key.NewBinding(
			key.WithKeys("y", "7"),
			key.WithHelp("y/7", "up-left"),
		),
		UpRight: key.NewBinding(
			key.WithKeys("u", "9"),
			key.WithHelp("u/9", "up-right"),
		),
		DownLeft: key.NewBinding(
			key.WithKeys("b", "1"),
			key.WithHelp("b/1", "down-left"),
		),
		DownRight: key.NewBinding(
			key.WithKeys("n", "3"),
			key.WithHelp("n/3", "down-right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x", "5"),
			key.WithHelp("x/5", "cut thrust"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "single step"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Inspect: key.NewBinding(
			key.WithKeys("i", "tab"),
			key.WithHelp("i/tab", "inspector"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("K", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("J", "pan down"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "pan right"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow ship"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a simulation action.
// Keys handled by the platform itself (help, screenshot) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.UpLeft, core.ActionUpLeft},
		{k.UpRight, core.ActionUpRight},
		{k.DownLeft, core.ActionDownLeft},
		{k.DownRight, core.ActionDownRight},
		{k.Stop, core.ActionStop},
		{k.Pause, core.ActionPause},
		{k.Step, core.ActionStep},
		{k.Reset, core.ActionReset},
		{k.Inspect, core.ActionInspect},
		{k.ZoomIn, core.ActionZoomIn},
		{k.ZoomOut, core.ActionZoomOut},
		{k.PanUp, core.ActionPanUp},
		{k.PanDown, core.ActionPanDown},
		{k.PanLeft, core.ActionPanLeft},
		{k.PanRight, core.ActionPanRight},
		{k.Follow, core.ActionFollow},
	}

	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MenuKeyMap defines the key bindings for the scenario picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
