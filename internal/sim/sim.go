// Package sim drives the thrust scene: it owns the physics world, turns
// input frames into intents and steps, and draws the scene into a screen
// buffer through a camera.
package sim

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-thrust/internal/config"
	"github.com/vovakirdan/tui-thrust/internal/core"
	"github.com/vovakirdan/tui-thrust/internal/movement"
	"github.com/vovakirdan/tui-thrust/internal/physics"
	"github.com/vovakirdan/tui-thrust/internal/registry"
	"github.com/vovakirdan/tui-thrust/internal/scene"
)

// Simulation runs one scenario. It is not safe for concurrent use.
type Simulation struct {
	id      string
	title   string
	cfg     config.SceneConfig
	runtime core.RuntimeConfig

	world  *physics.World
	scene  *scene.Scene
	camera *Camera

	paused bool
	follow bool
}

// New returns an unbuilt simulation; call Reset before stepping.
func New(id, title string, cfg config.SceneConfig) *Simulation {
	return &Simulation{
		id:      id,
		title:   title,
		cfg:     cfg,
		runtime: core.DefaultConfig(),
	}
}

// ID returns the scenario identifier.
func (s *Simulation) ID() string {
	return s.id
}

// Title returns the scenario display name.
func (s *Simulation) Title() string {
	return s.title
}

// Config returns the scene configuration the simulation was built from.
func (s *Simulation) Config() config.SceneConfig {
	return s.cfg
}

// Reset builds a fresh world from the scene configuration.
// Pause and follow state survive a reset; the camera does not.
// On error the previous world, if any, is left untouched.
func (s *Simulation) Reset(rc core.RuntimeConfig) error {
	world := physics.NewWorld()
	sc, err := scene.Build(world, s.cfg)
	if err != nil {
		return fmt.Errorf("sim: %s: %w", s.id, err)
	}

	s.runtime = rc
	s.world = world
	s.scene = sc
	s.camera = NewCamera(sc.Camera.LookAt, sc.Camera.Zoom, rc.ScreenW, rc.ScreenH)
	return nil
}

// Built reports whether Reset has succeeded at least once.
func (s *Simulation) Built() bool {
	return s.world != nil
}

// Step applies one frame of input and advances the world by one timestep
// unless paused. While paused, ActionStep advances exactly one timestep.
func (s *Simulation) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult
	if !s.Built() {
		return res
	}

	if in.Has(core.ActionReset) {
		if err := s.Reset(s.runtime); err != nil {
			res.Err = err
		} else {
			res.Reset = true
		}
		res.State = s.State()
		return res
	}

	if !in.Empty() {
		if in.Has(core.ActionPause) {
			s.paused = !s.paused
		}
		if in.Has(core.ActionFollow) {
			s.follow = !s.follow
		}
		s.applyCamera(in)

		if intent, ok := IntentFromFrame(in); ok {
			s.SetIntent(intent)
		}
	}

	if !s.paused || in.Has(core.ActionStep) {
		s.world.Step()
		res.Stepped = true
	}

	if s.follow {
		s.camera.Follow(s.world.Body(s.scene.Ship).Position())
	}

	res.State = s.State()
	return res
}

func (s *Simulation) applyCamera(in core.InputFrame) {
	if in.Has(core.ActionZoomIn) {
		s.camera.ZoomIn()
	}
	if in.Has(core.ActionZoomOut) {
		s.camera.ZoomOut()
	}

	dx, dy := 0, 0
	if in.Has(core.ActionPanLeft) {
		dx--
	}
	if in.Has(core.ActionPanRight) {
		dx++
	}
	if in.Has(core.ActionPanUp) {
		dy--
	}
	if in.Has(core.ActionPanDown) {
		dy++
	}
	if dx != 0 || dy != 0 {
		s.follow = false
		s.camera.Pan(dx, dy)
	}
}

// SetIntent changes the ship's thrust direction from the next step on.
func (s *Simulation) SetIntent(intent movement.Intent) {
	if s.Built() {
		s.scene.Thrust.SetIntent(intent)
	}
}

// Intent returns the ship's current thrust direction.
func (s *Simulation) Intent() movement.Intent {
	if !s.Built() {
		return movement.Stop
	}
	return s.scene.Thrust.Intent()
}

// Paused reports whether stepping is suspended.
func (s *Simulation) Paused() bool {
	return s.paused
}

// Following reports whether the camera tracks the ship.
func (s *Simulation) Following() bool {
	return s.follow
}

// Camera returns the live camera.
func (s *Simulation) Camera() *Camera {
	return s.camera
}

// World returns the physics world, or nil before Reset.
func (s *Simulation) World() *physics.World {
	return s.world
}

// Scene returns the registered scene handles, or nil before Reset.
func (s *Simulation) Scene() *scene.Scene {
	return s.scene
}

// State returns the current simulation status.
func (s *Simulation) State() core.SimState {
	st := core.SimState{
		Intent: s.Intent().String(),
		Paused: s.paused,
	}
	if s.Built() {
		st.Steps = s.world.Steps()
		st.Time = s.world.Time()
	}
	return st
}

// Snapshot is a read-only view of the world for inspectors and headless output.
type Snapshot struct {
	Scenario  string
	Steps     uint64
	Time      float64
	Intent    movement.Intent
	Paused    bool
	Gravity   cp.Vector
	Ship      physics.BodyState
	Colliders []physics.ColliderInfo
}

// Snapshot captures the current world state. It must not be called before Reset.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Scenario:  s.id,
		Steps:     s.world.Steps(),
		Time:      s.world.Time(),
		Intent:    s.Intent(),
		Paused:    s.paused,
		Gravity:   s.world.Gravity(),
		Ship:      s.world.Body(s.scene.Ship).State(),
		Colliders: s.world.Colliders(),
	}
}

var _ registry.Simulation = (*Simulation)(nil)
