package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved scene configuration",
	Long: `Print the scene configuration as YAML after resolving --config and the
search path. Save the output to ~/.thrust/configs/scene.yaml to customize it.

Examples:
  thrust config
  thrust config > ~/.thrust/configs/scene.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	scene, err := loadScene()
	if err != nil {
		fail("%v", err)
	}

	data, err := yaml.Marshal(scene)
	if err != nil {
		fail("encoding config: %v", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
}
