package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if r.Right() != 6 {
		t.Errorf("Right() = %d, want 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, want 8", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // top-left corner
		{14, 14, true},  // bottom-right inside
		{12, 12, true},  // center
		{15, 10, false}, // right edge is exclusive
		{10, 15, false}, // bottom edge is exclusive
		{9, 10, false},
		{10, 9, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.1, 0, 1, 0},
		{3.2, 0, 1, 1},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestShadeColor(t *testing.T) {
	tests := []struct {
		shade float64
		want  Color
	}{
		{-1, ColorShade0},
		{0, ColorShade0},
		{1, ColorShade0 + ShadeLevels - 1},
		{7, ColorShade0 + ShadeLevels - 1},
		{0.5, ColorShade0 + 5},
	}

	for _, tt := range tests {
		got := ShadeColor(tt.shade)
		if got != tt.want {
			t.Errorf("ShadeColor(%v) = %d, want %d", tt.shade, got, tt.want)
		}
		if !got.IsShade() {
			t.Errorf("ShadeColor(%v) = %d is not a shade step", tt.shade, got)
		}
	}
}

func TestShadeColorMonotonic(t *testing.T) {
	prev := ShadeColor(0)
	for i := 1; i <= 100; i++ {
		c := ShadeColor(float64(i) / 100)
		if c < prev {
			t.Fatalf("ShadeColor decreased at %d%%: %d < %d", i, c, prev)
		}
		prev = c
	}
}

func TestNamedColorsAreNotShades(t *testing.T) {
	for c := ColorDefault; c <= ColorFloor; c++ {
		if c.IsShade() {
			t.Errorf("named color %d overlaps the shade range", c)
		}
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionForward) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionForward)
	f.Set(ActionTurnLeft)
	if !f.Has(ActionForward) || !f.Has(ActionTurnLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionBackward) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionForward) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleMap.String() != "ToggleMap" {
		t.Errorf("ActionToggleMap.String() = %q", ActionToggleMap.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
