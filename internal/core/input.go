package core

// Action is a semantic control request, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota

	// Thrust directions. Opposite cardinals in one frame cancel.
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionUpLeft
	ActionUpRight
	ActionDownLeft
	ActionDownRight
	ActionStop // Cut thrust and coast

	// Simulation control.
	ActionPause   // Toggle pause
	ActionStep    // Advance one tick while paused
	ActionReset   // Rebuild the scene
	ActionInspect // Toggle the body inspector

	// Camera.
	ActionZoomIn
	ActionZoomOut
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionFollow // Toggle camera tracking of the ship

	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionUpLeft:    "UpLeft",
	ActionUpRight:   "UpRight",
	ActionDownLeft:  "DownLeft",
	ActionDownRight: "DownRight",
	ActionStop:      "Stop",
	ActionPause:     "Pause",
	ActionStep:      "Step",
	ActionReset:     "Reset",
	ActionInspect:   "Inspect",
	ActionZoomIn:    "ZoomIn",
	ActionZoomOut:   "ZoomOut",
	ActionPanUp:     "PanUp",
	ActionPanDown:   "PanDown",
	ActionPanLeft:   "PanLeft",
	ActionPanRight:  "PanRight",
	ActionFollow:    "Follow",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsDirectional reports whether a requests a thrust direction (Stop included).
func (a Action) IsDirectional() bool {
	return a >= ActionUp && a <= ActionStop
}

// InputFrame is the set of actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
