package core

import (
	"strings"
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '#', ColorBarrier)
	c := s.GetCell(5, 5)
	if c.Rune != '#' || c.Color != ColorBarrier {
		t.Errorf("GetCell(5, 5) = %+v, expected '#' in %s", c, ColorBarrier)
	}

	// Plain Set resets the color.
	s.Set(5, 5, 'X')
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorDefault {
		t.Errorf("GetCell(5, 5) = %+v, expected uncolored 'X'", c)
	}

	// Out of bounds is silent.
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if runeAt(s, -1, 0) != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRect(s.Bounds(), '#', ColorBarrier)
	if runeAt(s, 4, 4) != '#' {
		t.Errorf("After DrawRect, expected '#', got %q", runeAt(s, 4, 4))
	}

	s.SetColored(1, 1, '@', ColorShip)
	s.Clear()
	for y := range 5 {
		for x := range 5 {
			if s.GetCell(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "v=12.5", ColorHUD)

	for i, ch := range "v=12.5" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorHUD {
			t.Errorf("expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Clipped at the right edge.
	s.DrawText(18, 0, "Hello")
	if runeAt(s, 18, 0) != 'H' || runeAt(s, 19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}

	// Multi-byte runes take one cell each.
	s.DrawText(0, 3, "→x")
	if runeAt(s, 0, 3) != '→' || runeAt(s, 1, 3) != 'x' {
		t.Errorf("row 3 = %q, expected it to start with \"→x\"", s.Row(3))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if runeAt(s, x, 2) != 'H' || runeAt(s, x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorShip)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorShip {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if runeAt(s, 1, 1) != ' ' || runeAt(s, 5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawLine(Point{X: 0, Y: 0}, Point{X: 4, Y: 4}, '*', ColorThrust)

	for i := range 5 {
		if c := s.GetCell(i, i); c.Rune != '*' || c.Color != ColorThrust {
			t.Errorf("diagonal cell (%d, %d) = %+v, expected '*'", i, i, c)
		}
	}
	if runeAt(s, 1, 0) != ' ' {
		t.Error("diagonal line should not touch (1, 0)")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorShip)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorShip {
		t.Error("Colors should be preserved across resize")
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}

	s.Resize(-3, 2)
	if s.Width() != 0 {
		t.Errorf("negative width should clamp to 0, got %d", s.Width())
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") || len(row) != 10 {
		t.Errorf("Row(2) = %q, expected 10 chars starting with Test", row)
	}
	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
