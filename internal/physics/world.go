package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-thrust/internal/geometry"
)

// ForceGenerator injects forces into bodies once per step, before integration.
// Returning false deactivates the generator; it is never called again.
type ForceGenerator interface {
	Apply(params *IntegrationParameters, bodies *BodySet) bool
}

// ForceGeneratorHandle identifies a registered generator.
type ForceGeneratorHandle int

// ColliderHandle identifies a registered collider.
type ColliderHandle int

type colliderEntry struct {
	body     BodyHandle
	shape    *cp.Shape
	local    []cp.Vector // Outline in the owning body's frame, not the solver's
	margin   float64
	material Material
}

type generatorEntry struct {
	gen    ForceGenerator
	active bool
}

// World owns the solver space and everything registered in it.
// It is not safe for concurrent use; the driver steps it from one goroutine.
type World struct {
	space      *cp.Space
	params     IntegrationParameters
	bodies     BodySet
	colliders  []colliderEntry
	generators []generatorEntry
	steps      uint64
	time       float64
}

// NewWorld creates an empty world with zero gravity and default parameters.
func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	return &World{
		space:  space,
		params: DefaultIntegrationParameters(),
	}
}

// SetIntegrationParameters replaces the step parameters.
func (w *World) SetIntegrationParameters(p IntegrationParameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	w.params = p
	return nil
}

// IntegrationParameters returns the current step parameters.
func (w *World) IntegrationParameters() IntegrationParameters {
	return w.params
}

// SetGravity sets a uniform acceleration applied to every dynamic body.
func (w *World) SetGravity(g cp.Vector) {
	w.space.SetGravity(g)
}

// Gravity returns the current gravity vector.
func (w *World) Gravity() cp.Vector {
	return w.space.Gravity()
}

// AddRigidBody creates a dynamic body whose frame sits at pos and returns its
// handle. centerOfMass is given in that frame; the angular inertia is taken
// about it. Non-positive inertia is a programming error and panics.
func (w *World) AddRigidBody(pos geometry.Isometry, inertia Inertia, centerOfMass cp.Vector) BodyHandle {
	if !inertia.Valid() {
		panic(fmt.Sprintf("physics: rigid body needs positive inertia, got %+v", inertia))
	}

	// The solver body lives at the center of mass. Its colliders are shifted
	// by the same offset in AddCollider.
	body := cp.NewBody(inertia.Mass, inertia.Angular)
	w.space.AddBody(body)
	body.SetPosition(pos.Apply(centerOfMass))
	body.SetAngle(pos.Rotation)

	return w.bodies.add(body, centerOfMass)
}

// AddCollider attaches shape to body (or to Ground) at the body-relative pose
// pos. The margin inflates the shape for collision robustness.
func (w *World) AddCollider(margin float64, shape geometry.Shape, body BodyHandle, pos geometry.Isometry, material Material) ColliderHandle {
	local := geometry.Transform(shape.Vertices(), pos)

	owner := w.space.StaticBody
	verts := local
	if !body.IsGround() {
		part := w.bodies.BodyPart(body)
		owner = part.body
		verts = make([]cp.Vector, len(local))
		for i, v := range local {
			verts[i] = v.Sub(part.com)
		}
	}

	s := cp.NewPolyShape(owner, len(verts), verts, cp.NewTransformIdentity(), margin)
	s.SetFriction(material.Friction)
	s.SetElasticity(material.Restitution)
	w.space.AddShape(s)

	w.colliders = append(w.colliders, colliderEntry{
		body:     body,
		shape:    s,
		local:    local,
		margin:   margin,
		material: material,
	})
	return ColliderHandle(len(w.colliders) - 1)
}

// AddForceGenerator registers gen. Generators run in registration order.
func (w *World) AddForceGenerator(gen ForceGenerator) ForceGeneratorHandle {
	w.generators = append(w.generators, generatorEntry{gen: gen, active: true})
	return ForceGeneratorHandle(len(w.generators) - 1)
}

// ForceGenerator returns the generator registered under h.
func (w *World) ForceGenerator(h ForceGeneratorHandle) ForceGenerator {
	if h < 0 || int(h) >= len(w.generators) {
		panic(fmt.Sprintf("physics: invalid force generator handle %d", h))
	}
	return w.generators[h].gen
}

// ForceGeneratorActive reports whether the generator will run next step.
func (w *World) ForceGeneratorActive(h ForceGeneratorHandle) bool {
	if h < 0 || int(h) >= len(w.generators) {
		panic(fmt.Sprintf("physics: invalid force generator handle %d", h))
	}
	return w.generators[h].active
}

// Step advances the world by one timestep:
// generators accumulate forces, the solver integrates and resolves contacts,
// then every force accumulator is cleared.
func (w *World) Step() {
	for i := range w.generators {
		g := &w.generators[i]
		if !g.active {
			continue
		}
		if !g.gen.Apply(&w.params, &w.bodies) {
			g.active = false
		}
	}

	w.space.Step(w.params.Dt)

	for _, b := range w.bodies.bodies {
		b.SetForce(cp.Vector{})
		b.SetTorque(0)
	}

	w.steps++
	w.time += w.params.Dt
}

// Bodies returns the body arena.
func (w *World) Bodies() *BodySet {
	return &w.bodies
}

// Body is shorthand for Bodies().BodyPart(h).
func (w *World) Body(h BodyHandle) *BodyPart {
	return w.bodies.BodyPart(h)
}

// Steps returns how many times Step has run.
func (w *World) Steps() uint64 {
	return w.steps
}

// Time returns the simulated seconds elapsed.
func (w *World) Time() float64 {
	return w.time
}

// NumBodies returns the number of dynamic bodies.
func (w *World) NumBodies() int {
	return w.bodies.Len()
}

// NumColliders returns the number of colliders, static and dynamic.
func (w *World) NumColliders() int {
	return len(w.colliders)
}

// NumStaticColliders returns the number of colliders attached to Ground.
func (w *World) NumStaticColliders() int {
	n := 0
	for _, c := range w.colliders {
		if c.body.IsGround() {
			n++
		}
	}
	return n
}

// NumForceGenerators returns the number of registered generators.
func (w *World) NumForceGenerators() int {
	return len(w.generators)
}

// NumActiveForceGenerators returns the generators that have not opted out.
func (w *World) NumActiveForceGenerators() int {
	n := 0
	for _, g := range w.generators {
		if g.active {
			n++
		}
	}
	return n
}

// ColliderInfo describes a collider at the world's current pose.
type ColliderInfo struct {
	Handle   ColliderHandle
	Body     BodyHandle
	Static   bool
	Margin   float64
	Material Material
	Vertices []cp.Vector // World space
}

// Colliders returns every collider with its current world-space outline.
func (w *World) Colliders() []ColliderInfo {
	out := make([]ColliderInfo, len(w.colliders))
	for i, c := range w.colliders {
		pose := geometry.Identity()
		if !c.body.IsGround() {
			pose = w.bodies.BodyPart(c.body).Pose()
		}
		out[i] = ColliderInfo{
			Handle:   ColliderHandle(i),
			Body:     c.body,
			Static:   c.body.IsGround(),
			Margin:   c.margin,
			Material: c.material,
			Vertices: geometry.Transform(c.local, pose),
		}
	}
	return out
}
