// Package core provides the terminal-side primitives shared by the simulation
// and the platform layer: a colored cell buffer, semantic input actions and
// runtime settings. It has no Bubble Tea dependency so drawing stays testable.
package core

// Point is an integer cell coordinate. +x is right, +y is down.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned block of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Line returns the cells on the segment from a to b, both ends included,
// using Bresenham's algorithm.
func Line(a, b Point) []Point {
	dx := Abs(b.X - a.X)
	dy := -Abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	pts := make([]Point, 0, max(dx, -dy)+1)
	x, y := a.X, a.Y
	err := dx + dy
	for {
		pts = append(pts, Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
