// Package scene assembles the barrier scene: a static tilted quad on the
// ground body and a thrust-driven square ship to its left.
package scene

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-thrust/internal/config"
	"github.com/vovakirdan/tui-thrust/internal/geometry"
	"github.com/vovakirdan/tui-thrust/internal/physics"
	"github.com/vovakirdan/tui-thrust/internal/thrust"
)

// Camera is the initial viewport suggestion handed to the driver.
type Camera struct {
	LookAt cp.Vector
	Zoom   float64
}

// Scene holds the handles of everything Build registered.
type Scene struct {
	Ship         physics.BodyHandle
	ShipCollider physics.ColliderHandle
	Barrier      physics.ColliderHandle
	HasBarrier   bool
	Thrust       *thrust.Generator
	ThrustHandle physics.ForceGeneratorHandle
	Camera       Camera
}

// BarrierVertices returns the barrier outline: the four corners
// (+hw,+hh), (+hw,-hh), (-hw,-hh), (-hw,+hh) each moved by its offset.
func BarrierVertices(width, height float64, offsets [4]cp.Vector) []cp.Vector {
	hw, hh := width/2, height/2
	corners := [4]cp.Vector{
		{X: hw, Y: hh},
		{X: hw, Y: -hh},
		{X: -hw, Y: -hh},
		{X: -hw, Y: hh},
	}

	out := make([]cp.Vector, 4)
	for i, c := range corners {
		out[i] = c.Add(offsets[i])
	}
	return out
}

// Build registers the scene described by cfg into world. The world's step
// parameters and gravity are taken from cfg as well.
// Any error here is a startup failure; nothing useful can be simulated.
func Build(world *physics.World, cfg config.SceneConfig) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	if err := world.SetIntegrationParameters(physics.IntegrationParameters{Dt: cfg.Physics.Timestep()}); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	world.SetGravity(cp.Vector{X: cfg.Physics.Gravity.X, Y: cfg.Physics.Gravity.Y})

	margin := cfg.Physics.ColliderMargin
	material := physics.Material{Friction: cfg.Physics.Friction, Restitution: cfg.Physics.Restitution}
	s := &Scene{
		Barrier: -1,
		Camera: Camera{
			LookAt: toVector(cfg.Camera.LookAt),
			Zoom:   cfg.Camera.Zoom,
		},
	}

	// Barrier goes on the ground body first so it is the first collider.
	if b := cfg.Barrier; b.Enabled {
		var offsets [4]cp.Vector
		for i := range offsets {
			offsets[i] = toVector(b.VertexOffsets[i])
		}
		poly, err := geometry.NewConvexPolygon(BarrierVertices(b.Width, b.Height, offsets))
		if err != nil {
			return nil, fmt.Errorf("scene: barrier: %w", err)
		}
		pos := geometry.NewIsometry(b.Position.X, b.Position.Y, 0)
		s.Barrier = world.AddCollider(margin, poly, physics.Ground, pos, material)
		s.HasBarrier = true
	}

	// The margin is taken off the half extent so the inflated shape keeps the nominal size.
	half := cfg.Ship.HalfExtent - margin
	box, err := geometry.NewCuboid(cp.Vector{X: half, Y: half})
	if err != nil {
		return nil, fmt.Errorf("scene: ship: %w", err)
	}
	mp := box.MassProperties(cfg.Ship.Density)
	pos := geometry.NewIsometry(cfg.Ship.Position.X, cfg.Ship.Position.Y, 0)
	s.Ship = world.AddRigidBody(pos, physics.Inertia{Mass: mp.Mass, Angular: mp.Moment}, mp.CenterOfMass)
	s.ShipCollider = world.AddCollider(margin, box, s.Ship, geometry.Identity(), material)

	intent, err := cfg.Ship.Intent()
	if err != nil {
		return nil, fmt.Errorf("scene: ship: %w", err)
	}
	s.Thrust = thrust.NewWithAcceleration(s.Ship, intent, cfg.Physics.Acceleration)
	s.ThrustHandle = world.AddForceGenerator(s.Thrust)

	return s, nil
}

func toVector(p config.Point) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}
