package sim

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-thrust/internal/movement"
)

// ErrNotBuilt is returned when a headless run is requested before Reset.
var ErrNotBuilt = errors.New("sim: scene not built")

// Sample is the ship's state after a given number of steps.
type Sample struct {
	Step     uint64
	Time     float64
	Intent   movement.Intent
	Position cp.Vector
	Velocity cp.Vector
	Speed    float64
	Angle    float64
}

// Cue switches the intent once the world reaches a given step.
type Cue struct {
	Step   uint64
	Intent movement.Intent
}

// Schedule is a list of cues ordered by step.
type Schedule []Cue

// ParseSchedule reads "step:intent" pairs separated by commas,
// e.g. "0:right,120:up,240:stop". An empty string is an empty schedule.
func ParseSchedule(s string) (Schedule, error) {
	var out Schedule
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		stepStr, intentStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("sim: schedule entry %q: expected step:intent", part)
		}
		step, err := strconv.ParseUint(strings.TrimSpace(stepStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("sim: schedule entry %q: %w", part, err)
		}
		intent, err := movement.ParseIntent(intentStr)
		if err != nil {
			return nil, fmt.Errorf("sim: schedule entry %q: %w", part, err)
		}
		out = append(out, Cue{Step: step, Intent: intent})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Step < out[j].Step })
	return out, nil
}

// RunHeadless steps the world ticks times without rendering, applying the
// schedule's cues as their steps come up. It samples the ship every `every`
// steps and always after the final one.
func (s *Simulation) RunHeadless(ticks, every int, schedule Schedule) ([]Sample, error) {
	if !s.Built() {
		return nil, ErrNotBuilt
	}
	if ticks <= 0 {
		return nil, fmt.Errorf("sim: tick count must be positive, got %d", ticks)
	}
	every = max(every, 1)

	samples := make([]Sample, 0, ticks/every+1)
	next := 0
	start := s.world.Steps()
	for i := 1; i <= ticks; i++ {
		// Cues are keyed by steps taken so far, relative to this run.
		taken := s.world.Steps() - start
		for next < len(schedule) && schedule[next].Step <= taken {
			s.SetIntent(schedule[next].Intent)
			next++
		}

		s.world.Step()

		if i%every == 0 || i == ticks {
			samples = append(samples, s.sample())
		}
	}
	return samples, nil
}

func (s *Simulation) sample() Sample {
	st := s.world.Body(s.scene.Ship).State()
	return Sample{
		Step:     s.world.Steps(),
		Time:     s.world.Time(),
		Intent:   s.Intent(),
		Position: st.Position,
		Velocity: st.Velocity,
		Speed:    st.Velocity.Length(),
		Angle:    st.Angle,
	}
}
