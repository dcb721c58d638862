package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-thrust/internal/sim"
)

const (
	inspectorRows   = 9
	inspectorHeight = inspectorRows + 4 // Rows, header with its border, and the box border
)

// Snapshotter is implemented by simulations that can be inspected.
type Snapshotter interface {
	Snapshot() sim.Snapshot
}

// newInspectorTable creates the body inspector table.
func newInspectorTable(width int) table.Model {
	valueWidth := max(width-26, 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Property", Width: 18},
			{Title: "Value", Width: valueWidth},
		}),
		table.WithFocused(false),
		table.WithHeight(inspectorRows + 2), // Header and its border count toward the height
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// inspectorRowsFor formats a snapshot as property/value rows.
func inspectorRowsFor(snap sim.Snapshot) []table.Row {
	ship := snap.Ship
	static := 0
	for _, c := range snap.Colliders {
		if c.Static {
			static++
		}
	}

	return []table.Row{
		{"scenario", snap.Scenario},
		{"step / time", fmt.Sprintf("%d / %.3fs", snap.Steps, snap.Time)},
		{"intent", snap.Intent.String()},
		{"ship position", fmt.Sprintf("(%.2f, %.2f)", ship.Position.X, ship.Position.Y)},
		{"ship velocity", fmt.Sprintf("(%.2f, %.2f)  |v|=%.2f", ship.Velocity.X, ship.Velocity.Y, ship.Velocity.Length())},
		{"ship angle", fmt.Sprintf("%.2f°  ω=%.3f rad/s", ship.Angle*180/math.Pi, ship.AngularVelocity)},
		{"ship mass", fmt.Sprintf("%.1f", ship.Mass)},
		{"colliders", fmt.Sprintf("%d (%d static)", len(snap.Colliders), static)},
		{"gravity", fmt.Sprintf("(%.2f, %.2f)", snap.Gravity.X, snap.Gravity.Y)},
	}
}
