package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-thrust/internal/core"
)

// World units covered by one terminal cell at zoom 1. Cells are roughly
// twice as tall as they are wide, so rows cover twice the distance.
const (
	DefaultCellWidth  = 5.0
	DefaultCellHeight = 10.0
)

const (
	MinZoom     = 0.1
	MaxZoom     = 16.0
	zoomFactor  = 1.25
	panFraction = 0.1 // Share of the visible span moved per pan request
)

// Camera maps world coordinates onto a viewport of terminal cells.
// World and screen share the +y-down convention, so no axis is flipped.
type Camera struct {
	LookAt mgl64.Vec2 // World point shown at the viewport center
	Zoom   float64
	Width  int // Viewport size in cells
	Height int

	cellW, cellH float64
}

// NewCamera returns a camera centered on lookAt.
func NewCamera(lookAt cp.Vector, zoom float64, width, height int) *Camera {
	return &Camera{
		LookAt: mgl64.Vec2{lookAt.X, lookAt.Y},
		Zoom:   core.ClampF(zoom, MinZoom, MaxZoom),
		Width:  width,
		Height: height,
		cellW:  DefaultCellWidth,
		cellH:  DefaultCellHeight,
	}
}

// SetViewport updates the viewport size in cells.
func (c *Camera) SetViewport(width, height int) {
	c.Width, c.Height = width, height
}

// Matrix returns the world-to-screen transform:
// translate the look-at point to the origin, scale to cells, move to the viewport center.
func (c *Camera) Matrix() mgl64.Mat3 {
	center := mgl64.Translate2D(float64(c.Width)/2, float64(c.Height)/2)
	scale := mgl64.Scale2D(c.Zoom/c.cellW, c.Zoom/c.cellH)
	origin := mgl64.Translate2D(-c.LookAt.X(), -c.LookAt.Y())
	return center.Mul3(scale).Mul3(origin)
}

// Project returns the fractional screen position of a world point.
func (c *Camera) Project(p cp.Vector) mgl64.Vec2 {
	v := c.Matrix().Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return mgl64.Vec2{v.X(), v.Y()}
}

// Cell returns the cell containing a world point.
func (c *Camera) Cell(p cp.Vector) core.Point {
	v := c.Project(p)
	return core.Point{X: int(math.Floor(v.X())), Y: int(math.Floor(v.Y()))}
}

// ViewSize returns the visible world span.
func (c *Camera) ViewSize() (w, h float64) {
	return float64(c.Width) * c.cellW / c.Zoom, float64(c.Height) * c.cellH / c.Zoom
}

// ZoomIn magnifies the view by one notch.
func (c *Camera) ZoomIn() {
	c.Zoom = core.ClampF(c.Zoom*zoomFactor, MinZoom, MaxZoom)
}

// ZoomOut widens the view by one notch.
func (c *Camera) ZoomOut() {
	c.Zoom = core.ClampF(c.Zoom/zoomFactor, MinZoom, MaxZoom)
}

// Pan moves the look-at point by dx, dy notches of the visible span.
func (c *Camera) Pan(dx, dy int) {
	w, h := c.ViewSize()
	c.LookAt = c.LookAt.Add(mgl64.Vec2{float64(dx) * w * panFraction, float64(dy) * h * panFraction})
}

// Follow centers the camera on p.
func (c *Camera) Follow(p cp.Vector) {
	c.LookAt = mgl64.Vec2{p.X, p.Y}
}
