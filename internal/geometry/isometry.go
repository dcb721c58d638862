package geometry

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Isometry is a rigid transform: rotate by Rotation radians, then translate.
type Isometry struct {
	Translation cp.Vector
	Rotation    float64
}

// Identity returns the identity transform.
func Identity() Isometry {
	return Isometry{}
}

// NewIsometry builds an isometry from a translation and a rotation angle.
func NewIsometry(x, y, rotation float64) Isometry {
	return Isometry{Translation: cp.Vector{X: x, Y: y}, Rotation: rotation}
}

// Apply transforms a single point.
func (iso Isometry) Apply(p cp.Vector) cp.Vector {
	if iso.Rotation == 0 {
		return p.Add(iso.Translation)
	}
	sin, cos := math.Sincos(iso.Rotation)
	return cp.Vector{
		X: p.X*cos - p.Y*sin + iso.Translation.X,
		Y: p.X*sin + p.Y*cos + iso.Translation.Y,
	}
}

// Transform applies iso to every vertex and returns a new slice.
func Transform(vertices []cp.Vector, iso Isometry) []cp.Vector {
	out := make([]cp.Vector, len(vertices))
	for i, v := range vertices {
		out[i] = iso.Apply(v)
	}
	return out
}
