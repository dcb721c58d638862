// thrust is a terminal sandbox for flying a thrust-driven rigid body into
// a static barrier.
//
// Usage:
//
//	thrust list                  - List available scenarios
//	thrust run <scenario>        - Fly a scenario interactively
//	thrust menu                  - Pick a scenario from a menu
//	thrust simulate <scenario>   - Step a scenario headless and print samples
//	thrust intents               - Print the intent direction table
//	thrust config                - Print the resolved scene configuration
//
// Global flags:
//
//	--fps <rate>          - Set the UI tick rate (default: 60)
//	--config <path>       - Scene config YAML (default search: ~/.thrust/configs, ./configs)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file (interactive modes log nowhere otherwise)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-thrust/internal/config"
	"github.com/vovakirdan/tui-thrust/internal/core"

	// Import the simulation package to register its scenarios
	_ "github.com/vovakirdan/tui-thrust/internal/sim"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "thrust",
	Short: "Thrust - fly a rigid body into a barrier in your terminal",
	Long: `Thrust is a terminal sandbox for a 2D rigid-body world: a square ship
driven by an eight-way thruster and a tilted static barrier.

Available commands:
  list      - Show all scenarios
  run       - Fly a scenario interactively
  menu      - Pick a scenario from a menu
  simulate  - Run a scenario headless and print ship samples
  intents   - Show the thrust direction table
  config    - Print the resolved scene configuration

Examples:
  thrust list
  thrust run barrier
  thrust run open --fps 30
  thrust simulate barrier --ticks 600 --schedule "0:right,300:up"
  thrust config --config ./my-scene.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "UI tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a scene config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(intentsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Interactive modes pass interactive=true
// so nothing is written to the terminal behind the alternate screen.
// The returned closer releases the log file, if any.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", flagLogFile, err)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "thrust",
		Level:           level,
	})
	return logger, closer, nil
}

// loadScene resolves the scene configuration from --config and the search path.
func loadScene() (config.SceneConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("scene config: %w", err)
	}
	return cfg, nil
}

// runtimeConfig builds the runtime settings from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// fail prints an error in the CLI's usual format and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
