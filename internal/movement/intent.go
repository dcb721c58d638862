// Package movement defines the discrete movement intents a pilot can give the
// ship and their mapping to screen-space direction vectors.
// It has no dependency on the physics world so it stays trivially testable.
package movement

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Intent is one of nine compass movement requests, including Stop.
// The zero value is Stop.
type Intent int

const (
	Stop Intent = iota
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// intentCount is the size of the closed set above.
const intentCount = 9

// axes holds the raw (unnormalized) compass offsets, indexed by Intent.
// Screen-space convention: +x is right, +y is down.
var axes = [intentCount][2]float64{
	Stop:      {0, 0},
	Up:        {0, -1},
	UpRight:   {1, -1},
	Right:     {1, 0},
	DownRight: {1, 1},
	Down:      {0, 1},
	DownLeft:  {-1, 1},
	Left:      {-1, 0},
	UpLeft:    {-1, -1},
}

var names = [intentCount]string{
	Stop:      "stop",
	Up:        "up",
	UpRight:   "up-right",
	Right:     "right",
	DownRight: "down-right",
	Down:      "down",
	DownLeft:  "down-left",
	Left:      "left",
	UpLeft:    "up-left",
}

// compass aliases accepted by ParseIntent.
var aliases = map[string]Intent{
	"n":  Up,
	"ne": UpRight,
	"e":  Right,
	"se": DownRight,
	"s":  Down,
	"sw": DownLeft,
	"w":  Left,
	"nw": UpLeft,
	"x":  Stop,
}

// All returns every intent in declaration order.
func All() []Intent {
	out := make([]Intent, intentCount)
	for i := range out {
		out[i] = Intent(i)
	}
	return out
}

// Valid reports whether i is one of the nine declared intents.
func (i Intent) Valid() bool {
	return i >= Stop && i <= UpLeft
}

// Direction returns the unit direction for the intent, or the zero vector for
// Stop. Axis directions are exact; diagonals have both components ±1/√2.
func (i Intent) Direction() mgl64.Vec2 {
	if !i.Valid() || i == Stop {
		return mgl64.Vec2{}
	}
	a := axes[i]
	return mgl64.Vec2{a[0], a[1]}.Normalize()
}

// Diagonal reports whether the intent points at 45 degrees.
func (i Intent) Diagonal() bool {
	if !i.Valid() {
		return false
	}
	a := axes[i]
	return a[0] != 0 && a[1] != 0
}

// String returns the lower-case name of the intent.
func (i Intent) String() string {
	if !i.Valid() {
		return fmt.Sprintf("intent(%d)", int(i))
	}
	return names[i]
}

// ParseIntent converts a name ("up-right", "upright", "UpRight") or a compass
// alias ("ne") into an Intent.
func ParseIntent(s string) (Intent, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if a, ok := aliases[key]; ok {
		return a, nil
	}

	flat := strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for i, name := range names {
		if flat == strings.ReplaceAll(name, "-", "") {
			return Intent(i), nil
		}
	}
	return Stop, fmt.Errorf("movement: unknown intent %q", s)
}

// FromAxes combines a horizontal and vertical input axis into an intent.
// Each axis is clamped to {-1, 0, 1}; (0, 0) is Stop.
func FromAxes(dx, dy int) Intent {
	dx = sign(dx)
	dy = sign(dy)
	for i, a := range axes {
		if int(a[0]) == dx && int(a[1]) == dy {
			return Intent(i)
		}
	}
	return Stop
}

// MarshalText implements encoding.TextMarshaler so intents read naturally in
// YAML and log output.
func (i Intent) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("movement: invalid intent %d", int(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Intent) UnmarshalText(text []byte) error {
	parsed, err := ParseIntent(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
