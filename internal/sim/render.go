package sim

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-thrust/internal/core"
)

const (
	barrierFill  = '▒'
	barrierEdge  = '▓'
	shipFill     = '█'
	flameRune    = '*'
	originMarker = '+'
)

// Render draws the scene into dst. Row 0 is reserved for the status line.
func (s *Simulation) Render(dst *core.Screen) {
	if !s.Built() {
		dst.DrawTextCentered(dst.Height()/2, "scene not built")
		return
	}

	view := dst.Bounds()
	s.camera.SetViewport(view.W, view.H)

	// Everything below the status line.
	area := core.NewRect(0, 1, view.W, max(view.H-1, 0))

	if origin := s.camera.Cell(cp.Vector{}); area.Contains(origin.X, origin.Y) {
		dst.SetColored(origin.X, origin.Y, originMarker, core.ColorGrid)
	}

	colliders := s.world.Colliders()
	for _, c := range colliders {
		if c.Static {
			drawPolygon(dst, s.camera, area, c.Vertices, barrierFill, barrierEdge, core.ColorBarrier)
		}
	}
	for _, c := range colliders {
		if !c.Static {
			drawPolygon(dst, s.camera, area, c.Vertices, shipFill, shipFill, core.ColorShip)
		}
	}
	s.drawFlame(dst)

	// Outlines may cross row 0; the status line owns it.
	dst.DrawRect(core.NewRect(0, 0, view.W, 1), ' ', core.ColorHUD)
	s.drawStatus(dst)
}

// drawFlame marks the exhaust on the side opposite the thrust direction.
func (s *Simulation) drawFlame(dst *core.Screen) {
	dir := s.Intent().Direction()
	if dir.Len() == 0 {
		return
	}

	ship := s.world.Body(s.scene.Ship)
	center := ship.Position()
	half := s.cfg.Ship.HalfExtent
	back := cp.Vector{X: -dir.X(), Y: -dir.Y()}

	from := s.camera.Cell(center.Add(back.Mult(half * 1.2)))
	to := s.camera.Cell(center.Add(back.Mult(half * 2)))
	dst.DrawLine(from, to, flameRune, core.ColorThrust)
}

func (s *Simulation) drawStatus(dst *core.Screen) {
	ship := s.world.Body(s.scene.Ship).State()
	speed := ship.Velocity.Length()

	status := fmt.Sprintf(" %s  t=%.2fs  intent=%s  pos=(%.1f, %.1f)  |v|=%.1f  zoom=%.2f",
		s.title, s.world.Time(), s.Intent(), ship.Position.X, ship.Position.Y, speed, s.camera.Zoom)
	dst.DrawTextColored(0, 0, status, core.ColorHUD)

	if s.paused {
		label := "[PAUSED]"
		dst.DrawTextColored(dst.Width()-len(label)-1, 0, label, core.ColorRed)
	}
}

// drawPolygon fills the part of a convex world-space polygon inside clip and
// traces its edges.
func drawPolygon(dst *core.Screen, cam *Camera, clip core.Rect, verts []cp.Vector, fill, edge rune, color core.Color) {
	if len(verts) < 3 {
		return
	}

	pts := make([]mgl64.Vec2, len(verts))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, v := range verts {
		p := cam.Project(v)
		pts[i] = p
		minX, maxX = math.Min(minX, p.X()), math.Max(maxX, p.X())
		minY, maxY = math.Min(minY, p.Y()), math.Max(maxY, p.Y())
	}

	x0 := core.Clamp(int(math.Floor(minX)), clip.X, clip.Right())
	x1 := core.Clamp(int(math.Ceil(maxX)), clip.X, clip.Right())
	y0 := core.Clamp(int(math.Floor(minY)), clip.Y, clip.Bottom())
	y1 := core.Clamp(int(math.Ceil(maxY)), clip.Y, clip.Bottom())

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if insideConvex(pts, mgl64.Vec2{float64(x) + 0.5, float64(y) + 0.5}) {
				dst.SetColored(x, y, fill, color)
			}
		}
	}

	for i := range verts {
		a := cam.Cell(verts[i])
		b := cam.Cell(verts[(i+1)%len(verts)])
		dst.DrawLine(a, b, edge, color)
	}
}

// insideConvex reports whether p lies inside the convex polygon pts,
// for either winding. Points on an edge count as inside.
func insideConvex(pts []mgl64.Vec2, p mgl64.Vec2) bool {
	sign := 0.0
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		e := b.Sub(a)
		r := p.Sub(a)
		cross := e.X()*r.Y() - e.Y()*r.X()
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = math.Copysign(1, cross)
		} else if math.Copysign(1, cross) != sign {
			return false
		}
	}
	return true
}
