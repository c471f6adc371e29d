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
			if c := s.GetCell(x, y); c.Rune != ' ' || !c.Color.IsDefault() {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorCorrect)
	c := s.GetCell(5, 5)
	if c.Rune != 'X' || c.Color != ColorCorrect {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawLine(0, 0, 3, 3, 'X', ColorWhite)
	s.Clear()

	if strings.ContainsRune(s.String(), 'X') {
		t.Errorf("Clear left content behind:\n%s", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawColoredText(4, 0, "abc", ColorMenu)

	if got := s.Row(0); got != "    ab" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
	if s.GetCell(4, 0).Color != ColorMenu {
		t.Error("text should carry its color")
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          int
	}{
		{"horizontal", 0, 2, 4, 2, 5},
		{"vertical", 1, 0, 1, 4, 5},
		{"diagonal", 0, 0, 4, 4, 5},
		{"reversed", 4, 4, 0, 0, 5},
		{"single point", 2, 2, 2, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(5, 5)
			s.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, '*', ColorWhite)

			if got := strings.Count(s.String(), "*"); got != tt.cells {
				t.Errorf("line covered %d cells, expected %d", got, tt.cells)
			}
			if s.Get(tt.x0, tt.y0) != '*' || s.Get(tt.x1, tt.y1) != '*' {
				t.Error("line should include both endpoints")
			}
		})
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawColoredText(0, 0, "abc", ColorDefault)
	s.DrawColoredText(0, 1, "def", ColorDefault)

	s.Resize(2, 3)

	expected := "ab\nde\n  "
	if got := s.String(); got != expected {
		t.Errorf("after Resize got %q, expected %q", got, expected)
	}
}
