// Package config provides YAML-based scene configuration loading and
// validation for the thrust sandbox.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-thrust/internal/movement"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("config: invalid scene config")

// Point is a 2D world coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SceneConfig contains everything needed to build the barrier scene.
type SceneConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Barrier BarrierConfig `yaml:"barrier"`
	Ship    ShipConfig    `yaml:"ship"`
	Camera  CameraConfig  `yaml:"camera"`
}

// PhysicsConfig defines solver and thrust parameters.
type PhysicsConfig struct {
	TickRate       int     `yaml:"tick_rate"`       // Steps per simulated second
	Acceleration   float64 `yaml:"acceleration"`    // Thrust magnitude, units/s²
	ColliderMargin float64 `yaml:"collider_margin"` // Inflation applied to every collider
	Gravity        Point   `yaml:"gravity"`
	Friction       float64 `yaml:"friction"`
	Restitution    float64 `yaml:"restitution"`
}

// BarrierConfig defines the static quad the ship flies into.
type BarrierConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Position      Point   `yaml:"position"`
	VertexOffsets []Point `yaml:"vertex_offsets"` // Exactly 4, applied to corners in order
}

// ShipConfig defines the player-controlled body.
type ShipConfig struct {
	HalfExtent    float64 `yaml:"half_extent"` // Before the collider margin is subtracted
	Position      Point   `yaml:"position"`
	Density       float64 `yaml:"density"`
	InitialIntent string  `yaml:"initial_intent"`
}

// CameraConfig defines the initial viewport.
type CameraConfig struct {
	LookAt Point   `yaml:"look_at"`
	Zoom   float64 `yaml:"zoom"`
}

// Timestep returns the seconds simulated per step.
func (p PhysicsConfig) Timestep() float64 {
	if p.TickRate <= 0 {
		return 0
	}
	return 1.0 / float64(p.TickRate)
}

// Intent parses the configured initial intent.
func (s ShipConfig) Intent() (movement.Intent, error) {
	return movement.ParseIntent(s.InitialIntent)
}

// Validate checks the config for values the scene builder cannot use.
func (c SceneConfig) Validate() error {
	p := c.Physics
	if p.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, p.TickRate)
	}
	if !finite(p.Acceleration) || p.Acceleration < 0 {
		return fmt.Errorf("%w: acceleration must be non-negative, got %g", ErrInvalid, p.Acceleration)
	}
	if !finite(p.ColliderMargin) || p.ColliderMargin <= 0 {
		return fmt.Errorf("%w: collider_margin must be positive, got %g", ErrInvalid, p.ColliderMargin)
	}
	if !finite(p.Gravity.X) || !finite(p.Gravity.Y) {
		return fmt.Errorf("%w: gravity must be finite", ErrInvalid)
	}
	if p.Friction < 0 || p.Restitution < 0 {
		return fmt.Errorf("%w: friction and restitution must be non-negative", ErrInvalid)
	}

	b := c.Barrier
	if b.Enabled {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("%w: barrier size must be positive, got %gx%g", ErrInvalid, b.Width, b.Height)
		}
		if len(b.VertexOffsets) != 4 {
			return fmt.Errorf("%w: barrier needs 4 vertex_offsets, got %d", ErrInvalid, len(b.VertexOffsets))
		}
	}

	s := c.Ship
	if s.HalfExtent <= p.ColliderMargin {
		return fmt.Errorf("%w: ship half_extent %g must exceed collider_margin %g", ErrInvalid, s.HalfExtent, p.ColliderMargin)
	}
	if !finite(s.Density) || s.Density <= 0 {
		return fmt.Errorf("%w: ship density must be positive, got %g", ErrInvalid, s.Density)
	}
	if _, err := s.Intent(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if !finite(c.Camera.Zoom) || c.Camera.Zoom <= 0 {
		return fmt.Errorf("%w: camera zoom must be positive, got %g", ErrInvalid, c.Camera.Zoom)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
