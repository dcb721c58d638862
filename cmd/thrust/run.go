package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-thrust/internal/config"
	"github.com/vovakirdan/tui-thrust/internal/core"
	"github.com/vovakirdan/tui-thrust/internal/platform/tui"
	"github.com/vovakirdan/tui-thrust/internal/registry"
)

var flagIntent string

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Fly a scenario interactively",
	Long: `Start the given scenario in the terminal.

Controls:
  w/a/s/d, arrows   - Thrust up/left/down/right
  y/u/b/n, 7/9/1/3  - Thrust diagonally
  x/5               - Cut thrust and coast
  p/Space           - Pause
  .                 - Single step while paused
  r                 - Reset the scene
  +/-               - Zoom
  H/J/K/L           - Pan the camera
  f                 - Follow the ship
  i/Tab             - Body inspector
  Ctrl+S            - Save a text screenshot
  ?                 - Full help
  q/Ctrl+C          - Quit

Examples:
  thrust run barrier
  thrust run barrier --intent up-right
  thrust run open --config ./my-scene.yaml --log-file thrust.log`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagIntent, "intent", "", "Initial thrust intent (overrides the config)")
}

func runRun(cmd *cobra.Command, args []string) {
	id := args[0]

	// Check if scenario exists
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'thrust list' to see available scenarios.")
		os.Exit(1)
	}

	scene, err := loadScene()
	if err != nil {
		fail("%v", err)
	}
	if flagIntent != "" {
		scene.Ship.InitialIntent = flagIntent
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}

	rc := runtimeConfig()
	s, err := prepare(id, scene, rc)
	if err != nil {
		closeLog()
		fail("%v", err)
	}

	runErr := tui.Run(s, rc, logger)

	// Close the log before a potential exit
	closeLog()

	if runErr != nil {
		fail("running scenario: %v", runErr)
	}
}

// prepare creates a scenario and builds its scene.
func prepare(id string, scene config.SceneConfig, rc core.RuntimeConfig) (registry.Simulation, error) {
	s, err := registry.Create(id, scene)
	if err != nil {
		return nil, err
	}
	if err := s.Reset(rc); err != nil {
		return nil, err
	}
	return s, nil
}
