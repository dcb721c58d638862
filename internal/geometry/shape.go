// Package geometry builds the collision shapes used by the simulation and
// derives their mass properties. Heavy lifting (area, centroid, moment) is
// delegated to the chipmunk port so the numbers match what the solver uses.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Shape construction errors.
var (
	ErrTooFewPoints = errors.New("geometry: polygon needs at least 3 vertices")
	ErrDegenerate   = errors.New("geometry: polygon is degenerate")
	ErrNotConvex    = errors.New("geometry: polygon is not convex")
	ErrBadExtents   = errors.New("geometry: half extents must be positive")
)

// epsilon below which a cross product counts as collinear.
const epsilon = 1e-9

// Shape is a convex outline in body-local coordinates.
type Shape interface {
	// Vertices returns the outline in counter-clockwise order (math sense).
	Vertices() []cp.Vector

	// Area returns the enclosed area, ignoring any collision margin.
	Area() float64

	// CenterOfMass returns the centroid for a uniform density.
	CenterOfMass() cp.Vector

	// MassProperties returns mass, moment and centroid for a uniform density.
	MassProperties(density float64) MassProperties
}

// MassProperties describes how a shape resists linear and angular acceleration.
type MassProperties struct {
	Mass         float64
	Moment       float64
	CenterOfMass cp.Vector
}

// ConvexPolygon is a validated convex polygon.
type ConvexPolygon struct {
	vertices []cp.Vector
}

// NewConvexPolygon validates an ordered vertex list and returns the polygon.
// Either winding is accepted; vertices are stored counter-clockwise.
// Collinear, repeated, self-intersecting and concave inputs are rejected.
func NewConvexPolygon(points []cp.Vector) (*ConvexPolygon, error) {
	n := len(points)
	if n < 3 {
		return nil, ErrTooFewPoints
	}

	verts := make([]cp.Vector, n)
	copy(verts, points)

	// Every turn must bend the same way.
	var turnSign float64
	var turning float64
	for i := range n {
		a := verts[i]
		b := verts[(i+1)%n]
		c := verts[(i+2)%n]

		e1 := b.Sub(a)
		e2 := c.Sub(b)
		if e1.LengthSq() < epsilon || e2.LengthSq() < epsilon {
			return nil, fmt.Errorf("%w: repeated vertex %d", ErrDegenerate, (i+1)%n)
		}

		cross := e1.Cross(e2)
		if math.Abs(cross) < epsilon {
			return nil, fmt.Errorf("%w: collinear vertices around %d", ErrDegenerate, (i+1)%n)
		}
		if turnSign == 0 {
			turnSign = math.Copysign(1, cross)
		} else if math.Copysign(1, cross) != turnSign {
			return nil, fmt.Errorf("%w: turn direction changes at vertex %d", ErrNotConvex, (i+1)%n)
		}

		turning += math.Atan2(cross, e1.Dot(e2))
	}

	// A simple convex polygon turns exactly once. Star shapes keep a constant
	// turn sign but wind more than once.
	if math.Abs(math.Abs(turning)-2*math.Pi) > 1e-6 {
		return nil, fmt.Errorf("%w: outline winds %.2f times", ErrNotConvex, math.Abs(turning)/(2*math.Pi))
	}

	if turnSign < 0 {
		reverse(verts)
	}

	return &ConvexPolygon{vertices: verts}, nil
}

// Vertices returns a copy of the polygon outline.
func (p *ConvexPolygon) Vertices() []cp.Vector {
	out := make([]cp.Vector, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Area returns the polygon area.
func (p *ConvexPolygon) Area() float64 {
	return cp.AreaForPoly(len(p.vertices), p.vertices, 0)
}

// CenterOfMass returns the polygon centroid.
func (p *ConvexPolygon) CenterOfMass() cp.Vector {
	return cp.CentroidForPoly(len(p.vertices), p.vertices)
}

// MassProperties returns mass properties about the centroid.
func (p *ConvexPolygon) MassProperties(density float64) MassProperties {
	mass := density * p.Area()
	com := p.CenterOfMass()
	return MassProperties{
		Mass:         mass,
		Moment:       cp.MomentForPoly(mass, len(p.vertices), p.vertices, com.Neg(), 0),
		CenterOfMass: com,
	}
}

// Cuboid is an axis-aligned box centred on the body origin.
type Cuboid struct {
	halfExtents cp.Vector
}

// NewCuboid returns a box with the given half extents.
func NewCuboid(halfExtents cp.Vector) (*Cuboid, error) {
	if halfExtents.X <= 0 || halfExtents.Y <= 0 {
		return nil, fmt.Errorf("%w: got (%g, %g)", ErrBadExtents, halfExtents.X, halfExtents.Y)
	}
	return &Cuboid{halfExtents: halfExtents}, nil
}

// HalfExtents returns the box half extents.
func (c *Cuboid) HalfExtents() cp.Vector {
	return c.halfExtents
}

// Vertices returns the four corners counter-clockwise.
func (c *Cuboid) Vertices() []cp.Vector {
	hx, hy := c.halfExtents.X, c.halfExtents.Y
	return []cp.Vector{
		{X: -hx, Y: -hy},
		{X: hx, Y: -hy},
		{X: hx, Y: hy},
		{X: -hx, Y: hy},
	}
}

// Area returns the box area.
func (c *Cuboid) Area() float64 {
	return 4 * c.halfExtents.X * c.halfExtents.Y
}

// CenterOfMass is always the origin for a centred box.
func (c *Cuboid) CenterOfMass() cp.Vector {
	return cp.Vector{}
}

// MassProperties returns mass properties for a uniform box.
func (c *Cuboid) MassProperties(density float64) MassProperties {
	mass := density * c.Area()
	return MassProperties{
		Mass:   mass,
		Moment: cp.MomentForBox(mass, 2*c.halfExtents.X, 2*c.halfExtents.Y),
	}
}

func reverse(v []cp.Vector) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
