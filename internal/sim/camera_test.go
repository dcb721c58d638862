package sim

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCameraProject(t *testing.T) {
	c := NewCamera(cp.Vector{X: 150, Y: 150}, 1, 80, 24)

	center := c.Project(cp.Vector{X: 150, Y: 150})
	if math.Abs(center.X()-40) > 1e-9 || math.Abs(center.Y()-12) > 1e-9 {
		t.Errorf("look-at projects to %v, expected (40, 12)", center)
	}

	// One cell is 5 units wide and 10 tall at zoom 1.
	p := c.Project(cp.Vector{X: 155, Y: 160})
	if math.Abs(p.X()-41) > 1e-9 || math.Abs(p.Y()-13) > 1e-9 {
		t.Errorf("Project() = %v, expected (41, 13)", p)
	}

	// +y stays down on screen.
	if c.Cell(cp.Vector{X: 150, Y: 100}).Y >= 12 {
		t.Error("smaller world y should be higher on screen")
	}
}

func TestCameraZoomAndPan(t *testing.T) {
	c := NewCamera(cp.Vector{}, 1, 80, 24)

	w0, h0 := c.ViewSize()
	if w0 != 400 || h0 != 240 {
		t.Errorf("ViewSize() = %v x %v, expected 400 x 240", w0, h0)
	}

	c.ZoomIn()
	if w, _ := c.ViewSize(); w >= w0 {
		t.Errorf("zooming in should shrink the view, got %v", w)
	}
	for range 100 {
		c.ZoomIn()
	}
	if c.Zoom != MaxZoom {
		t.Errorf("Zoom = %v, expected clamp to %v", c.Zoom, MaxZoom)
	}
	for range 200 {
		c.ZoomOut()
	}
	if c.Zoom != MinZoom {
		t.Errorf("Zoom = %v, expected clamp to %v", c.Zoom, MinZoom)
	}

	c = NewCamera(cp.Vector{}, 1, 80, 24)
	c.Pan(1, -1)
	if math.Abs(c.LookAt.X()-40) > 1e-9 || math.Abs(c.LookAt.Y()+24) > 1e-9 {
		t.Errorf("LookAt = %v after pan, expected (40, -24)", c.LookAt)
	}
}
