package sim

import (
	"github.com/vovakirdan/tui-thrust/internal/config"
	"github.com/vovakirdan/tui-thrust/internal/registry"
)

func init() {
	registry.Register(registry.Info{
		ID:          "barrier",
		Title:       "Barrier",
		Description: "Square ship thrusting into a tilted static quad",
	}, func(cfg config.SceneConfig) registry.Simulation {
		return New("barrier", "Barrier", cfg)
	})

	registry.Register(registry.Info{
		ID:          "open",
		Title:       "Open Space",
		Description: "The same ship with nothing in the way",
	}, func(cfg config.SceneConfig) registry.Simulation {
		cfg.Barrier.Enabled = false
		return New("open", "Open Space", cfg)
	})
}
