package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-thrust/internal/geometry"
)

// recorder is a generator that logs calls and pushes a fixed force.
type recorder struct {
	id     int
	body   BodyHandle
	force  Force
	calls  *[]int
	remain int // Calls left before opting out; <0 means forever
}

func (r *recorder) Apply(_ *IntegrationParameters, bodies *BodySet) bool {
	*r.calls = append(*r.calls, r.id)
	if bodies.Contains(r.body) {
		bodies.BodyPart(r.body).ApplyForce(r.force)
	}
	if r.remain < 0 {
		return true
	}
	r.remain--
	return r.remain > 0
}

func boxBody(t *testing.T, w *World, x, y, density float64) BodyHandle {
	t.Helper()
	box, err := geometry.NewCuboid(cp.Vector{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("NewCuboid() failed: %v", err)
	}
	mp := box.MassProperties(density)
	h := w.AddRigidBody(geometry.NewIsometry(x, y, 0), Inertia{Mass: mp.Mass, Angular: mp.Moment}, mp.CenterOfMass)
	w.AddCollider(0.01, box, h, geometry.Identity(), DefaultMaterial())
	return h
}

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld()

	if g := w.Gravity(); g.X != 0 || g.Y != 0 {
		t.Errorf("Gravity() = %v, expected zero", g)
	}
	if w.IntegrationParameters().Dt != 1.0/60.0 {
		t.Errorf("Dt = %v, expected 1/60", w.IntegrationParameters().Dt)
	}
	if w.NumBodies() != 0 || w.NumColliders() != 0 || w.NumForceGenerators() != 0 {
		t.Error("new world should be empty")
	}

	// Stepping an empty world is fine.
	w.Step()
	if w.Steps() != 1 {
		t.Errorf("Steps() = %d, expected 1", w.Steps())
	}
	if math.Abs(w.Time()-1.0/60.0) > 1e-12 {
		t.Errorf("Time() = %v, expected 1/60", w.Time())
	}
}

func TestSetIntegrationParameters(t *testing.T) {
	w := NewWorld()
	if err := w.SetIntegrationParameters(IntegrationParameters{Dt: 0}); err == nil {
		t.Error("zero timestep should be rejected")
	}
	if err := w.SetIntegrationParameters(IntegrationParameters{Dt: 0.01}); err != nil {
		t.Fatalf("SetIntegrationParameters() failed: %v", err)
	}
	if w.IntegrationParameters().Dt != 0.01 {
		t.Errorf("Dt = %v, expected 0.01", w.IntegrationParameters().Dt)
	}
}

func TestInvalidHandlesPanic(t *testing.T) {
	w := NewWorld()

	assertPanics(t, "BodyPart", func() { w.Body(3) })
	assertPanics(t, "Ground BodyPart", func() { w.Body(Ground) })
	assertPanics(t, "ForceGenerator", func() { w.ForceGenerator(0) })
	assertPanics(t, "AddRigidBody", func() {
		w.AddRigidBody(geometry.Identity(), Inertia{Mass: 0, Angular: 1}, cp.Vector{})
	})
}

func TestGeneratorsRunInRegistrationOrder(t *testing.T) {
	w := NewWorld()
	var calls []int
	for i := range 3 {
		w.AddForceGenerator(&recorder{id: i, body: Ground, calls: &calls, remain: -1})
	}

	w.Step()
	w.Step()

	expected := []int{0, 1, 2, 0, 1, 2}
	if len(calls) != len(expected) {
		t.Fatalf("calls = %v, expected %v", calls, expected)
	}
	for i := range expected {
		if calls[i] != expected[i] {
			t.Errorf("calls = %v, expected %v", calls, expected)
			break
		}
	}
}

func TestGeneratorDeactivatesOnFalse(t *testing.T) {
	w := NewWorld()
	var calls []int
	h := w.AddForceGenerator(&recorder{id: 7, body: Ground, calls: &calls, remain: 2})

	for range 5 {
		w.Step()
	}

	if len(calls) != 2 {
		t.Errorf("generator called %d times, expected 2", len(calls))
	}
	if w.ForceGeneratorActive(h) {
		t.Error("generator should be inactive after returning false")
	}
	if w.NumForceGenerators() != 1 || w.NumActiveForceGenerators() != 0 {
		t.Errorf("counts = %d/%d, expected 1 registered, 0 active",
			w.NumForceGenerators(), w.NumActiveForceGenerators())
	}
}

func TestForceIntegratesAndClears(t *testing.T) {
	w := NewWorld()
	h := boxBody(t, w, 0, 0, 1)
	mass := w.Body(h).Inertia().Mass

	var calls []int
	push := Force{Linear: cp.Vector{X: 10 * mass, Y: 0}}
	w.AddForceGenerator(&recorder{body: h, force: push, calls: &calls, remain: -1})

	w.Step()

	dt := w.IntegrationParameters().Dt
	v := w.Body(h).Velocity().Linear
	if math.Abs(v.X-10*dt) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Errorf("velocity = %v, expected (%v, 0)", v, 10*dt)
	}
	if f := w.Body(h).Force(); !f.IsZero() {
		t.Errorf("force accumulator = %+v after step, expected zero", f)
	}
}

func TestApplyForceAccumulates(t *testing.T) {
	w := NewWorld()
	h := boxBody(t, w, 0, 0, 1)

	part := w.Body(h)
	part.ApplyForce(Force{Linear: cp.Vector{X: 1, Y: 2}, Angular: 3})
	part.ApplyForce(Force{Linear: cp.Vector{X: 1, Y: -1}, Angular: 1})

	f := part.Force()
	if f.Linear.X != 2 || f.Linear.Y != 1 || f.Angular != 4 {
		t.Errorf("Force() = %+v, expected ((2, 1), 4)", f)
	}
}

func TestColliderBookkeeping(t *testing.T) {
	w := NewWorld()

	wall, err := geometry.NewConvexPolygon([]cp.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 5}, {X: 0, Y: 5}})
	if err != nil {
		t.Fatalf("NewConvexPolygon() failed: %v", err)
	}
	w.AddCollider(0.01, wall, Ground, geometry.NewIsometry(100, 0, 0), DefaultMaterial())
	h := boxBody(t, w, 10, 20, 1)

	if w.NumBodies() != 1 {
		t.Errorf("NumBodies() = %d, expected 1", w.NumBodies())
	}
	if w.NumColliders() != 2 {
		t.Errorf("NumColliders() = %d, expected 2", w.NumColliders())
	}
	if w.NumStaticColliders() != 1 {
		t.Errorf("NumStaticColliders() = %d, expected 1", w.NumStaticColliders())
	}

	infos := w.Colliders()
	if !infos[0].Static || infos[0].Body != Ground {
		t.Errorf("first collider should be static on ground, got %+v", infos[0])
	}
	if infos[0].Vertices[0].X < 100 {
		t.Errorf("static collider should be offset to x>=100, got %v", infos[0].Vertices)
	}
	if infos[1].Static || infos[1].Body != h {
		t.Errorf("second collider should belong to body %d, got %+v", h, infos[1])
	}
	for _, v := range infos[1].Vertices {
		if math.Abs(v.X-10) > 1+1e-9 || math.Abs(v.Y-20) > 1+1e-9 {
			t.Errorf("ship vertex %v should be within 1 of (10, 20)", v)
		}
	}
}

// offCenterBody adds a 20x20 square whose outline spans (10..30, 10..30) in
// its own frame, so the center of mass sits at (20, 20) rather than the origin.
func offCenterBody(t *testing.T, w *World, pos geometry.Isometry) (BodyHandle, geometry.MassProperties) {
	t.Helper()
	square, err := geometry.NewConvexPolygon([]cp.Vector{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 30}, {X: 10, Y: 30}})
	if err != nil {
		t.Fatalf("NewConvexPolygon() failed: %v", err)
	}
	mp := square.MassProperties(1)
	h := w.AddRigidBody(pos, Inertia{Mass: mp.Mass, Angular: mp.Moment}, mp.CenterOfMass)
	w.AddCollider(0.01, square, h, geometry.Identity(), DefaultMaterial())
	return h, mp
}

func near(a, b cp.Vector) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestOffCenterBodyPose(t *testing.T) {
	tests := []struct {
		name    string
		pos     geometry.Isometry
		outline []cp.Vector
		com     cp.Vector
	}{
		{
			name:    "translated",
			pos:     geometry.NewIsometry(100, 50, 0),
			outline: []cp.Vector{{X: 110, Y: 60}, {X: 130, Y: 60}, {X: 130, Y: 80}, {X: 110, Y: 80}},
			com:     cp.Vector{X: 120, Y: 70},
		},
		{
			name:    "quarter turn",
			pos:     geometry.NewIsometry(100, 50, math.Pi/2),
			outline: []cp.Vector{{X: 90, Y: 60}, {X: 90, Y: 80}, {X: 70, Y: 80}, {X: 70, Y: 60}},
			com:     cp.Vector{X: 80, Y: 70},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			h, mp := offCenterBody(t, w, tt.pos)

			if !near(mp.CenterOfMass, cp.Vector{X: 20, Y: 20}) {
				t.Fatalf("CenterOfMass = %v, expected (20, 20)", mp.CenterOfMass)
			}

			st := w.Body(h).State()
			if !near(st.Position, tt.pos.Translation) {
				t.Errorf("Position = %v, expected %v", st.Position, tt.pos.Translation)
			}
			if !near(st.CenterOfMass, tt.com) {
				t.Errorf("CenterOfMass = %v, expected %v", st.CenterOfMass, tt.com)
			}
			if st.Mass != mp.Mass {
				t.Errorf("Mass = %v, expected %v", st.Mass, mp.Mass)
			}

			got := w.Colliders()[0].Vertices
			if len(got) != len(tt.outline) {
				t.Fatalf("Colliders() outline = %v, expected %v", got, tt.outline)
			}
			for i := range got {
				if !near(got[i], tt.outline[i]) {
					t.Errorf("vertex %d = %v, expected %v", i, got[i], tt.outline[i])
				}
			}
		})
	}
}

func TestOffCenterBodyPushedWithoutSpin(t *testing.T) {
	w := NewWorld()
	h, _ := offCenterBody(t, w, geometry.NewIsometry(100, 50, 0))

	var calls []int
	push := w.Body(h).Inertia().Mul(NewVelocity(cp.Vector{X: 250, Y: 0}, 0))
	w.AddForceGenerator(&recorder{body: h, force: push, calls: &calls, remain: -1})

	for range 30 {
		w.Step()
	}

	part := w.Body(h)
	if part.Angle() != 0 || part.Velocity().Angular != 0 {
		t.Errorf("angle = %v, spin = %v, expected no rotation", part.Angle(), part.Velocity().Angular)
	}
	if f := part.Force(); f.Angular != 0 {
		t.Errorf("torque = %v after step, expected zero", f.Angular)
	}
	v := part.Velocity().Linear
	if math.Abs(v.X-250*30*w.IntegrationParameters().Dt) > 1e-6 || v.Y != 0 {
		t.Errorf("velocity = %v, expected (125, 0)", v)
	}

	// The outline travels with the body frame.
	pos := part.Position()
	if pos.X <= 100 || pos.Y != 50 {
		t.Errorf("Position() = %v, expected to move right along y=50", pos)
	}
	if first := w.Colliders()[0].Vertices[0]; !near(first, pos.Add(cp.Vector{X: 10, Y: 10})) {
		t.Errorf("first vertex = %v, expected %v", first, pos.Add(cp.Vector{X: 10, Y: 10}))
	}
}

func TestInertiaMul(t *testing.T) {
	in := Inertia{Mass: 2, Angular: 5}
	f := in.Mul(NewVelocity(cp.Vector{X: 3, Y: -4}, 0.5))
	if f.Linear.X != 6 || f.Linear.Y != -8 || f.Angular != 2.5 {
		t.Errorf("Mul() = %+v, expected ((6, -8), 2.5)", f)
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
