package config

import (
	_ "embed"
)

//go:embed defaults/scene.yaml
var defaultSceneYAML []byte

// DefaultSceneConfig returns the barrier scene configuration.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Physics: PhysicsConfig{
			TickRate:       60,
			Acceleration:   250,
			ColliderMargin: 0.01,
			Friction:       0.5,
			Restitution:    0,
		},
		Barrier: BarrierConfig{
			Enabled:  true,
			Width:    100,
			Height:   500,
			Position: Point{X: 300, Y: 0},
			VertexOffsets: []Point{
				{X: 0.5, Y: 0.75},
				{X: -0.5, Y: 0.55},
				{X: -0.75, Y: 0.875},
				{X: -0.35, Y: 0.45},
			},
		},
		Ship: ShipConfig{
			HalfExtent:    30,
			Position:      Point{X: 0, Y: 150},
			Density:       1,
			InitialIntent: "right",
		},
		Camera: CameraConfig{
			LookAt: Point{X: 150, Y: 150},
			Zoom:   1,
		},
	}
}

// DefaultYAML returns the embedded default scene YAML.
func DefaultYAML() []byte {
	return defaultSceneYAML
}
