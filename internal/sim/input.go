package sim

import (
	"github.com/vovakirdan/tui-thrust/internal/core"
	"github.com/vovakirdan/tui-thrust/internal/movement"
)

var diagonalActions = [...]struct {
	action core.Action
	intent movement.Intent
}{
	{core.ActionUpLeft, movement.UpLeft},
	{core.ActionUpRight, movement.UpRight},
	{core.ActionDownLeft, movement.DownLeft},
	{core.ActionDownRight, movement.DownRight},
}

// IntentFromFrame resolves the thrust actions in a frame to one intent.
// Stop wins, then an explicit diagonal, then the sum of the cardinal
// actions. The second result is false when the frame asks for no change,
// including when opposite cardinals cancel out.
func IntentFromFrame(in core.InputFrame) (movement.Intent, bool) {
	if !hasThrust(in) {
		return movement.Stop, false
	}
	if in.Has(core.ActionStop) {
		return movement.Stop, true
	}
	for _, d := range diagonalActions {
		if in.Has(d.action) {
			return d.intent, true
		}
	}

	dx, dy := 0, 0
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	if dx == 0 && dy == 0 {
		return movement.Stop, false
	}
	return movement.FromAxes(dx, dy), true
}

func hasThrust(in core.InputFrame) bool {
	for a, set := range in.Actions {
		if set && a.IsDirectional() {
			return true
		}
	}
	return false
}
