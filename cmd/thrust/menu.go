package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-thrust/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a scenario from a menu",
	Long: `Start the sandbox in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scenario.
Quitting a scenario returns to the menu.

Examples:
  thrust menu
  thrust menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	scene, err := loadScene()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg := runtimeConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = result.Config

		if result.Quit || result.ScenarioID == "" {
			break
		}

		s, err := prepare(result.ScenarioID, scene, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		if err := tui.Run(s, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", err)
		}

		// Loop back to menu
	}
}
