// Package thrust provides the force generator that turns a movement intent
// into a push on the player ship.
package thrust

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-thrust/internal/movement"
	"github.com/vovakirdan/tui-thrust/internal/physics"
)

// DefaultAcceleration is the thrust magnitude in world units per second².
const DefaultAcceleration = 250.0

// Generator applies a constant-magnitude, intent-directed acceleration to a
// single body. Thrust is acceleration-controlled: the force is scaled by the
// body's inertia, so heavier ships feel the same to fly.
type Generator struct {
	intent       movement.Intent
	body         physics.BodyHandle
	acceleration float64
}

// New returns a generator bound to body with the default acceleration.
func New(body physics.BodyHandle, intent movement.Intent) *Generator {
	return NewWithAcceleration(body, intent, DefaultAcceleration)
}

// NewWithAcceleration returns a generator with a custom thrust magnitude.
func NewWithAcceleration(body physics.BodyHandle, intent movement.Intent, acceleration float64) *Generator {
	return &Generator{
		intent:       intent,
		body:         body,
		acceleration: acceleration,
	}
}

// Intent returns the current movement intent.
func (g *Generator) Intent() movement.Intent {
	return g.intent
}

// SetIntent changes the direction of thrust from the next step on.
// Call it between steps, never from inside one.
func (g *Generator) SetIntent(intent movement.Intent) {
	g.intent = intent
}

// Body returns the handle of the driven body.
func (g *Generator) Body() physics.BodyHandle {
	return g.body
}

// Acceleration returns the thrust magnitude.
func (g *Generator) Acceleration() float64 {
	return g.acceleration
}

// Apply implements physics.ForceGenerator. It only ever touches g's own body.
// Stop yields a zero force: the ship coasts, it does not brake.
func (g *Generator) Apply(_ *physics.IntegrationParameters, bodies *physics.BodySet) bool {
	dir := g.intent.Direction().Mul(g.acceleration)
	accel := physics.NewVelocity(cp.Vector{X: dir.X(), Y: dir.Y()}, 0)

	part := bodies.BodyPart(g.body)
	part.ApplyForce(part.Inertia().Mul(accel))

	return true
}

var _ physics.ForceGenerator = (*Generator)(nil)
