package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want []Point
	}{
		{"single cell", Point{2, 2}, Point{2, 2}, []Point{{2, 2}}},
		{"horizontal", Point{0, 1}, Point{3, 1}, []Point{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"vertical reversed", Point{1, 2}, Point{1, 0}, []Point{{1, 2}, {1, 1}, {1, 0}}},
		{"shallow", Point{0, 0}, Point{4, 2}, []Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Line(tc.a, tc.b)
			if len(got) != len(tc.want) {
				t.Fatalf("Line() = %v, expected %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Line() = %v, expected %v", got, tc.want)
				}
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if ClampF(15.5, 0, 10) != 10 || ClampF(-1, 0, 10) != 0 {
		t.Error("ClampF should clamp to the range")
	}
	if Abs(-5) != 5 || Abs(3) != 3 {
		t.Error("Abs should return magnitude")
	}
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionUp, ActionPause)
	if !f.Has(ActionUp) || !f.Has(ActionPause) || f.Has(ActionDown) {
		t.Errorf("FrameOf() actions = %v", f.Actions)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) || !zero.Empty() {
		t.Error("zero frame should report no actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionDownLeft.String() != "DownLeft" {
		t.Errorf("String() = %q, expected DownLeft", ActionDownLeft.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("String() = %q, expected Unknown", Action(999).String())
	}
	if !ActionStop.IsDirectional() || ActionPause.IsDirectional() {
		t.Error("IsDirectional() should cover thrust actions only")
	}
}
