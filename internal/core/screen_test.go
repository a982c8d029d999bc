package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", c.Rune, x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("Negative dimensions should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X in red", cell)
	}

	s.Set(6, 5, '✦', ColorMagenta)
	if s.GetCell(6, 5).Rune != '✦' {
		t.Error("Multibyte runes should occupy one cell")
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if c := s.GetCell(-1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell should return a blank cell, got %+v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s.Set(x, y, '*', ColorYellow)
		}
	}

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(0, 0, 'H', ColorBlue)
	s.Set(7, 3, 'Z', ColorGreen)
	s.Set(9, 9, 'Q', ColorRed)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(7, 3); c.Rune != 'Z' {
		t.Errorf("Content inside the new bounds should be preserved, got %+v", c)
	}

	s.Resize(15, 12)
	if c := s.GetCell(0, 0); c.Rune != 'H' || c.Color != ColorBlue {
		t.Errorf("Resize should preserve cells and colors, got %+v", c)
	}
	if c := s.GetCell(9, 9); c.Rune != ' ' {
		t.Errorf("Cells clipped by shrinking should not come back, got %+v", c)
	}
}

func TestClampAndAbs(t *testing.T) {
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

	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return magnitude")
	}
}

func TestActionChangesSettings(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionCycleDifficulty, true},
		{ActionToggleSound, true},
		{ActionToggleDarkMode, true},
		{ActionSubmit, false},
		{ActionNewGame, false},
		{ActionSettings, false},
		{ActionQuit, false},
	}
	for _, tc := range tests {
		if got := tc.action.ChangesSettings(); got != tc.want {
			t.Errorf("%v.ChangesSettings() = %v, want %v", tc.action, got, tc.want)
		}
	}
	if ActionQuit.String() != "Quit" {
		t.Errorf("ActionQuit.String() = %q", ActionQuit.String())
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{90, "1:30"},
		{45, "0:45"},
		{120, "2:00"},
		{5, "0:05"},
		{0, "0:00"},
		{-3, "0:00"},
	}
	for _, tc := range tests {
		if got := FormatClock(tc.seconds); got != tc.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
