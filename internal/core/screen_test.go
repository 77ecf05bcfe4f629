package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", got)
	}

	// Unset cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Out-of-bounds writes must not panic and must be ignored
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	// Out-of-bounds reads return space
	if got := s.Get(-1, -1); got != ' ' {
		t.Errorf("Get(-1, -1) = %q, expected space", got)
	}
	if got := s.Get(100, 100); got != ' ' {
		t.Errorf("Get(100, 100) = %q, expected space", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '●', ColorYellow)
	cell := s.GetCell(1, 1)
	if cell.Rune != '●' {
		t.Errorf("GetCell rune = %q, expected '●'", cell.Rune)
	}
	if cell.Color != ColorYellow {
		t.Errorf("GetCell color = %v, expected ColorYellow", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(2, 2, 'X')
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Set should use ColorDefault")
	}

	// Clear resets colors
	s.Clear()
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset cell colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if row := s.Row(1); row != "  hello   " {
		t.Errorf("Row(1) = %q, expected %q", row, "  hello   ")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Get(8, 0); got != 'a' {
		t.Errorf("Get(8, 0) = %q, expected 'a'", got)
	}
	if got := s.Get(9, 0); got != 'b' {
		t.Errorf("Get(9, 0) = %q, expected 'b'", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, expected 2", len(lines))
	}
	if lines[0] != "A  " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "A  ")
	}
	if lines[1] != "  B" {
		t.Errorf("line 1 = %q, expected %q", lines[1], "  B")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}

	// Existing content preserved
	if got := s.Get(2, 2); got != 'X' {
		t.Errorf("Get(2, 2) after resize = %q, expected 'X'", got)
	}

	// Shrinking clips content
	s.Resize(2, 2)
	if got := s.Get(2, 2); got != ' ' {
		t.Errorf("Get(2, 2) after shrink = %q, expected space", got)
	}
}

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawVLine(2, 1, 3, '│')

	for y := 1; y <= 3; y++ {
		if got := s.Get(2, y); got != '│' {
			t.Errorf("Get(2, %d) = %q, expected '│'", y, got)
		}
	}
	if got := s.Get(2, 0); got != ' ' {
		t.Errorf("Get(2, 0) = %q, expected space", got)
	}
}
