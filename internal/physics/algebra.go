// Package physics is the simulation world: it owns every body, collider and
// force generator, and advances them with the chipmunk solver.
// Callers hold plain integer handles; the World is the only owner.
package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Velocity is a linear plus angular velocity, or any quantity shaped like one
// (an acceleration request, for example).
type Velocity struct {
	Linear  cp.Vector
	Angular float64
}

// NewVelocity builds a velocity from its parts.
func NewVelocity(linear cp.Vector, angular float64) Velocity {
	return Velocity{Linear: linear, Angular: angular}
}

// Force is a linear force plus a torque.
type Force struct {
	Linear  cp.Vector
	Angular float64
}

// Add returns the component-wise sum of two forces.
func (f Force) Add(other Force) Force {
	return Force{Linear: f.Linear.Add(other.Linear), Angular: f.Angular + other.Angular}
}

// IsZero reports whether both components are exactly zero.
func (f Force) IsZero() bool {
	return f.Linear.X == 0 && f.Linear.Y == 0 && f.Angular == 0
}

// Inertia is the mass and rotational inertia of a rigid body.
type Inertia struct {
	Mass    float64
	Angular float64
}

// Mul converts an acceleration-shaped velocity into the force that produces it:
// linear part scaled by mass, angular part by rotational inertia.
func (in Inertia) Mul(v Velocity) Force {
	return Force{
		Linear:  v.Linear.Mult(in.Mass),
		Angular: v.Angular * in.Angular,
	}
}

// Valid reports whether both components are positive, as the solver requires
// for dynamic bodies.
func (in Inertia) Valid() bool {
	return in.Mass > 0 && in.Angular > 0
}

// Material is the surface response of a collider.
type Material struct {
	Friction    float64
	Restitution float64
}

// DefaultMaterial returns moderate friction and no bounce.
func DefaultMaterial() Material {
	return Material{Friction: 0.5, Restitution: 0}
}

// IntegrationParameters controls one solver step.
type IntegrationParameters struct {
	Dt float64 // Seconds per step
}

// DefaultIntegrationParameters returns a 60 Hz step.
func DefaultIntegrationParameters() IntegrationParameters {
	return IntegrationParameters{Dt: 1.0 / 60.0}
}

// Validate checks the parameters are usable.
func (p IntegrationParameters) Validate() error {
	if p.Dt <= 0 {
		return fmt.Errorf("physics: timestep must be positive, got %g", p.Dt)
	}
	return nil
}
