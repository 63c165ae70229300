package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

func TestShadeStylesCoverGrayRamp(t *testing.T) {
	darkest := styleFor(core.ColorShade0).GetForeground()
	if darkest != lipgloss.Color("233") {
		t.Errorf("darkest shade = %v, want 233", darkest)
	}
	brightest := styleFor(core.ShadeColor(1)).GetForeground()
	if brightest != lipgloss.Color("255") {
		t.Errorf("brightest shade = %v, want 255", brightest)
	}
	prev := ""
	for i := 0; i < core.ShadeLevels; i++ {
		fg, ok := styleFor(core.ColorShade0 + core.Color(i)).GetForeground().(lipgloss.Color)
		if !ok || string(fg) == prev {
			t.Errorf("shade level %d has no distinct style: %v", i, fg)
		}
		prev = string(fg)
	}
}

func TestSkyHasBackground(t *testing.T) {
	if bg := styleFor(core.ColorSky).GetBackground(); bg != lipgloss.Color("17") {
		t.Errorf("sky background = %v", bg)
	}
}

func TestStyleForUnknownColorFallsBack(t *testing.T) {
	if got := styleFor(core.Color(250)).GetForeground(); got != styleFor(core.ColorDefault).GetForeground() {
		t.Errorf("unknown color should use the default style, got %v", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	// Tests run without a TTY, so styles render as plain text.
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.SetColored(2, 0, '█', core.ShadeColor(0.5))
	s.SetColored(3, 0, '█', core.ShadeColor(0.5))
	s.SetColored(0, 1, ' ', core.ColorSky)
	s.DrawTextColored(1, 1, "--", core.ColorFloor)

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}
