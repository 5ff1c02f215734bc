package core

import (
	"strings"
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
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenPen(t *testing.T) {
	s := NewScreen(10, 2)

	s.SetPen(ColorBrightGreen)
	s.Set(1, 0, '#')
	s.SetPen(ColorRed)
	s.Set(2, 0, '#')

	if c := s.GetCell(1, 0); c.Color != ColorBrightGreen {
		t.Errorf("cell (1,0) color = %d, expected %d", c.Color, ColorBrightGreen)
	}
	if c := s.GetCell(2, 0); c.Color != ColorRed {
		t.Errorf("cell (2,0) color = %d, expected %d", c.Color, ColorRed)
	}

	s.Clear()
	if c := s.GetCell(1, 0); c.Color != ColorDefault || c.Rune != ' ' {
		t.Errorf("Clear should reset cells, got %+v", c)
	}
	s.Set(3, 1, '#')
	if c := s.GetCell(3, 1); c.Color != ColorDefault {
		t.Errorf("Clear should reset the pen, got color %d", c.Color)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'X')

	s.Resize(20, 8)

	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("Resize: got %dx%d, expected 20x8", s.Width(), s.Height())
	}
	s.Set(19, 7, 'Y')
	if s.Get(19, 7) != 'Y' {
		t.Error("resized screen should accept writes in the new area")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "SCORE")

	if got := s.Row(1); !strings.HasPrefix(got, "  SCORE") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  SCORE")
	}

	s.DrawTextCentered(2, "ab")
	if s.Get(9, 2) != 'a' || s.Get(10, 2) != 'b' {
		t.Errorf("centered text misplaced: %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5))

	if s.Get(0, 0) != '┌' || s.Get(9, 0) != '┐' || s.Get(0, 4) != '└' || s.Get(9, 4) != '┘' {
		t.Errorf("box corners wrong:\n%s", s.String())
	}
	if s.Get(5, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("box edges wrong:\n%s", s.String())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawHLine(0, 1, 3, '=')

	if got := s.String(); got != "   \n===" {
		t.Errorf("String() = %q", got)
	}
}
