package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Named colors for HUD, minimap and decorated walls.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorSky
	ColorFloor
)

// ShadeLevels is the number of grayscale steps available to wall slices.
const ShadeLevels = 12

// ColorShade0 is the darkest grayscale step; ColorShade0+ShadeLevels-1 is
// the brightest.
const ColorShade0 Color = 32

// ShadeColor maps a brightness in [0, 1] to one of the grayscale steps.
func ShadeColor(shade float64) Color {
	level := int(ClampF(shade, 0, 1) * float64(ShadeLevels-1))
	return ColorShade0 + Color(level)
}

// IsShade reports whether c is one of the grayscale steps.
func (c Color) IsShade() bool {
	return c >= ColorShade0 && c < ColorShade0+ShadeLevels
}
