package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-thrust/internal/movement"
)

var intentsCmd = &cobra.Command{
	Use:   "intents",
	Short: "Show the thrust direction table",
	Long: `Print every movement intent with its thrust direction.

Directions use screen axes: +x is right and +y is down. Diagonals are
normalized, so every intent pushes with the same acceleration.`,
	Run: runIntents,
}

func runIntents(cmd *cobra.Command, _ []string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("INTENT", "DX", "DY")
	for _, in := range movement.All() {
		d := in.Direction()
		t.Row(in.String(), fmt.Sprintf("%+.4f", d.X()), fmt.Sprintf("%+.4f", d.Y()))
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
}
