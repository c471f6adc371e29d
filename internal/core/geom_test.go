package core

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}

	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, 3, true},
		{5, 7, true},
		{6, 3, false},
		{2, 8, false},
		{1, 3, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{100, 0, 99, 99},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestColor(t *testing.T) {
	c := RGB(255, 128, 0)
	if c != ColorLogo {
		t.Errorf("RGB(255, 128, 0) = %#x, expected logo color", uint32(c))
	}
	if got := c.Hex(); got != "#ff8000" {
		t.Errorf("Hex() = %q", got)
	}
	if ColorDefault.Hex() != "" {
		t.Error("default color should have no hex")
	}
	r, g, b := ColorBackground.Components()
	if r != 50 || g != 50 || b != 50 {
		t.Errorf("Components() = %d %d %d", r, g, b)
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{"correct", ColorCorrect, "#00b400"},
		{"gray", ColorGray, "#8a8a8a"},
		{"white", ColorWhite, "#ffffff"},
		{"black", RGB(0, 0, 0), "#000000"},
		{"low bits", RGB(1, 2, 3), "#010203"},
		{"default", ColorDefault, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.expected {
				t.Errorf("Hex() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionConfirm)

	if !f.Has(ActionUp) || !f.Has(ActionConfirm) || f.Has(ActionBack) {
		t.Error("InputFrame should report exactly the set actions")
	}

	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}
}
