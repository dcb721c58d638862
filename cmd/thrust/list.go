package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-thrust/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Long:  `Shows a list of all scenarios registered in the sandbox.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenarios := registry.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, s := range scenarios {
		maxIDLen = max(maxIDLen, len(s.ID))
		maxTitleLen = max(maxTitleLen, len(s.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")
	for _, s := range scenarios {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, s.ID, maxTitleLen, s.Title, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'thrust run <id>' to fly a scenario.")
}
