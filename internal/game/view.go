package game

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Overlay selects what is drawn on top of the 3D view.
type Overlay struct {
	Title   string
	Minimap bool
	HUD     bool
	Paused  bool
	Stats   Stats
}

// View is the terminal Renderer: it keeps the last frame it was handed and
// paints it into a core.Screen on demand.
type View struct {
	grid        *raycast.Grid
	cellsPerRay int

	frame raycast.Frame
	ready bool
}

// NewView creates a view over g where every ray covers cellsPerRay columns.
func NewView(g *raycast.Grid, cellsPerRay int) *View {
	return &View{grid: g, cellsPerRay: max(cellsPerRay, 1)}
}

// Render implements raycast.Renderer.
func (v *View) Render(f raycast.Frame) {
	v.frame = f
	v.ready = true
}

// Frame returns the last rendered frame.
func (v *View) Frame() (raycast.Frame, bool) {
	return v.frame, v.ready
}

// Draw paints the last frame and the requested overlays.
func (v *View) Draw(dst *core.Screen, o Overlay) {
	dst.Clear()
	if !v.ready {
		return
	}

	v.drawBackground(dst)
	for _, r := range v.frame.Rays {
		if r.Hit.Found() {
			v.drawWall(dst, r)
		}
	}

	if o.Minimap {
		v.drawMinimap(dst)
	}
	if o.HUD {
		v.drawHUD(dst, o)
	}
	if o.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBackground paints sky above the horizon and a distance-graded floor
// below it.
func (v *View) drawBackground(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	horizon := h / 2

	sky := core.Cell{Rune: ' ', Color: core.ColorSky}
	dst.DrawRect(core.NewRect(0, 0, w, horizon), sky)

	for y := horizon; y < h; y++ {
		dst.DrawRect(core.NewRect(0, y, w, 1), floorCell(y, h))
	}
}

func floorCell(y, h int) core.Cell {
	half := float64(h) / 2
	b := 1 - (float64(y)-half)/half // 1 at the horizon, 0 at the bottom
	var r rune
	switch {
	case b < 0.25:
		r = '#'
	case b < 0.5:
		r = 'x'
	case b < 0.75:
		r = '.'
	case b < 0.9:
		r = '-'
	default:
		r = ' '
	}
	return core.Cell{Rune: r, Color: core.ColorFloor}
}

// WallRows converts a projected slice height into terminal rows.
func WallRows(height, columnWidth float64, cellsPerRay int) float64 {
	pixelsPerRow := cellAspect * columnWidth / float64(max(cellsPerRay, 1))
	return height / pixelsPerRow
}

func (v *View) drawWall(dst *core.Screen, r raycast.RayResult) {
	h := dst.Height()
	rows := math.Min(WallRows(r.Slice.Height, v.frame.ColumnWidth, v.cellsPerRay), float64(4*h))
	top := int(math.Round(float64(h)/2 - rows/2))
	n := int(math.Round(rows))

	y0 := max(top, 0)
	y1 := min(top+n, h)
	if y1 <= y0 {
		return
	}

	cell := WallCell(r.Hit.Tile, r.Slice.Shade)
	x0 := r.Index * v.cellsPerRay
	for x := x0; x < x0+v.cellsPerRay; x++ {
		dst.DrawVLine(x, y0, y1-y0, cell)
	}
}

// WallCell picks the glyph and color for a wall slice: denser glyphs and
// brighter colors for higher shade.
func WallCell(tile int, shade float64) core.Cell {
	var r rune
	switch {
	case shade > 2.0/3:
		r = '█'
	case shade > 1.0/3:
		r = '▓'
	case shade > 0.15:
		r = '▒'
	default:
		r = '░'
	}
	return core.Cell{Rune: r, Color: tileColor(tile, shade)}
}

// tileColor gives walls of value 1 a grayscale shade and higher values a
// dim or bright named color.
func tileColor(tile int, shade float64) core.Color {
	palette := [][2]core.Color{
		{core.ColorRed, core.ColorBrightRed},
		{core.ColorBlue, core.ColorBrightBlue},
		{core.ColorGreen, core.ColorBrightGreen},
		{core.ColorYellow, core.ColorBrightYellow},
		{core.ColorMagenta, core.ColorBrightMagenta},
		{core.ColorCyan, core.ColorBrightCyan},
	}
	i := tile - 2
	if i < 0 || i >= len(palette) {
		return core.ShadeColor(shade)
	}
	if shade >= 0.5 {
		return palette[i][1]
	}
	return palette[i][0]
}

// drawMinimap draws a window of the grid in the top-right corner with the
// player's facing and the cells the rays crossed.
func (v *View) drawMinimap(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	cols, rows := v.grid.Cols(), v.grid.Rows()
	mmW := min(cols, w/3)
	mmH := min(rows, h/2)
	if mmW < 3 || mmH < 3 {
		return
	}

	ts := v.grid.TileSize()
	pose := v.frame.Pose
	pcol, prow := int(pose.X/ts), int(pose.Y/ts)
	c0 := core.Clamp(pcol-mmW/2, 0, cols-mmW)
	r0 := core.Clamp(prow-mmH/2, 0, rows-mmH)

	box := core.NewRect(w-mmW-2, 0, mmW+2, mmH+2)
	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorGray)
	ox, oy := box.X+1, box.Y+1

	for j := 0; j < mmH; j++ {
		for i := 0; i < mmW; i++ {
			val, _ := v.grid.Cell(c0+i, r0+j)
			if val != 0 {
				c := tileColor(val, 1)
				if val == 1 {
					c = core.ColorGray
				}
				dst.SetColored(ox+i, oy+j, '█', c)
			}
		}
	}

	window := core.NewRect(c0, r0, mmW, mmH)
	limit := math.Hypot(v.grid.Width(), v.grid.Height())
	for _, r := range v.frame.Rays {
		dist := math.Min(r.Hit.Distance, limit)
		cos, sin := math.Cos(r.Angle), math.Sin(r.Angle)
		for d := ts / 2; d < dist; d += ts / 2 {
			col := int(math.Floor((pose.X + d*cos) / ts))
			row := int(math.Floor((pose.Y + d*sin) / ts))
			if !window.Contains(col, row) {
				continue
			}
			if val, ok := v.grid.Cell(col, row); ok && val == 0 {
				dst.SetColored(ox+col-c0, oy+row-r0, '·', core.ColorYellow)
			}
		}
	}

	dst.SetColored(ox+pcol-c0, oy+prow-r0, Arrow(pose.Heading), core.ColorBrightGreen)
}

// Arrow returns the arrow glyph closest to heading. Y grows downward, so
// a heading of pi/2 points down.
func Arrow(heading float64) rune {
	octant := int(math.Round(raycast.Normalize(heading)/(math.Pi/4))) % 8
	return arrows[octant]
}

func (v *View) drawHUD(dst *core.Screen, o Overlay) {
	p := v.frame.Pose
	text := fmt.Sprintf(" %s │ x %.0f y %.0f │ %3.0f° │ %d rays │ walked %.0f │ bumps %d ",
		o.Title, p.X, p.Y, raycast.Degrees(p.Heading), len(v.frame.Rays), o.Stats.Distance, o.Stats.Bumps)
	if v.frame.Move.Blocked {
		text += "│ blocked "
	}
	text = runewidth.Truncate(text, dst.Width(), "…")

	y := dst.Height() - 1
	dst.DrawRect(core.NewRect(0, y, dst.Width(), 1), core.Cell{Rune: ' '})
	dst.DrawTextColored(0, y, text, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := max(runewidth.StringWidth(title), runewidth.StringWidth(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextColored(box.X+(boxW-runewidth.StringWidth(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-runewidth.StringWidth(subtitle))/2, box.Y+3, subtitle)
}
