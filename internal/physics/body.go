package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-thrust/internal/geometry"
)

// BodyHandle identifies a body inside its World. It is an index, not a
// pointer: holding one never keeps a body alive or grants ownership.
type BodyHandle int

// Ground is the immovable pseudo-body static colliders attach to.
const Ground BodyHandle = -1

// IsGround reports whether h refers to the ground pseudo-body.
func (h BodyHandle) IsGround() bool {
	return h == Ground
}

// BodySet is the World's body arena. Force generators receive it each step
// and reach their target through BodyPart.
type BodySet struct {
	bodies []*cp.Body
	coms   []cp.Vector // Center of mass in each body's own frame
}

// Len returns the number of dynamic bodies.
func (s *BodySet) Len() int {
	return len(s.bodies)
}

// Contains reports whether h refers to a live dynamic body.
func (s *BodySet) Contains(h BodyHandle) bool {
	return h >= 0 && int(h) < len(s.bodies)
}

// BodyPart returns a mutable view of one body.
// An unknown handle is a programming error and panics.
func (s *BodySet) BodyPart(h BodyHandle) *BodyPart {
	if !s.Contains(h) {
		panic(fmt.Sprintf("physics: invalid body handle %d", h))
	}
	return &BodyPart{handle: h, body: s.bodies[h], com: s.coms[h]}
}

func (s *BodySet) add(b *cp.Body, com cp.Vector) BodyHandle {
	s.bodies = append(s.bodies, b)
	s.coms = append(s.coms, com)
	return BodyHandle(len(s.bodies) - 1)
}

// BodyPart is a short-lived view onto one body's motion state.
// The solver body sits at the center of mass; positions reported here are
// of the body frame origin, the pose the body was created with.
type BodyPart struct {
	handle BodyHandle
	body   *cp.Body
	com    cp.Vector
}

// Handle returns the handle this view was resolved from.
func (p *BodyPart) Handle() BodyHandle {
	return p.handle
}

// Inertia returns the body's mass and rotational inertia.
func (p *BodyPart) Inertia() Inertia {
	return Inertia{Mass: p.body.Mass(), Angular: p.body.Moment()}
}

// ApplyForce adds f to the body's force accumulator for the current step.
func (p *BodyPart) ApplyForce(f Force) {
	p.body.SetForce(p.body.Force().Add(f.Linear))
	p.body.SetTorque(p.body.Torque() + f.Angular)
}

// Force returns what has been accumulated so far this step.
func (p *BodyPart) Force() Force {
	return Force{Linear: p.body.Force(), Angular: p.body.Torque()}
}

// Pose returns the body frame in world space.
func (p *BodyPart) Pose() geometry.Isometry {
	angle := p.body.Angle()
	offset := geometry.Isometry{Rotation: angle}.Apply(p.com)
	return geometry.Isometry{Translation: p.body.Position().Sub(offset), Rotation: angle}
}

// Position returns the body origin in world space.
func (p *BodyPart) Position() cp.Vector {
	return p.Pose().Translation
}

// CenterOfMass returns the center of mass in world space. Forces act here.
func (p *BodyPart) CenterOfMass() cp.Vector {
	return p.body.Position()
}

// Angle returns the body rotation in radians.
func (p *BodyPart) Angle() float64 {
	return p.body.Angle()
}

// Velocity returns linear and angular velocity.
func (p *BodyPart) Velocity() Velocity {
	return Velocity{Linear: p.body.Velocity(), Angular: p.body.AngularVelocity()}
}

// SetVelocity overwrites linear and angular velocity.
func (p *BodyPart) SetVelocity(v Velocity) {
	p.body.SetVelocityVector(v.Linear)
	p.body.SetAngularVelocity(v.Angular)
}

// BodyState is a read-only copy of a body's motion, used for display and
// headless sampling.
type BodyState struct {
	Handle          BodyHandle
	Position        cp.Vector
	CenterOfMass    cp.Vector
	Angle           float64
	Velocity        cp.Vector
	AngularVelocity float64
	Mass            float64
}

// State copies the body's current motion.
func (p *BodyPart) State() BodyState {
	return BodyState{
		Handle:          p.handle,
		Position:        p.Position(),
		CenterOfMass:    p.body.Position(),
		Angle:           p.body.Angle(),
		Velocity:        p.body.Velocity(),
		AngularVelocity: p.body.AngularVelocity(),
		Mass:            p.body.Mass(),
	}
}
