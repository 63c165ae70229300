// Package maps provides map definitions and loading from disk.
// It depends on raycast but raycast does not depend on maps.
package maps

import (
	"fmt"

	"github.com/vovakirdan/tui-raycaster/internal/maps/formats"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

// Start is a player start cell with an optional facing.
type Start struct {
	Col, Row       int
	HeadingDegrees float64
	HasHeading     bool
}

// Definition is a complete map: cell values, tile size and start point.
type Definition struct {
	ID       string
	Name     string
	TileSize float64
	Cells    [][]int
	Start    *Start // nil means the grid center
	Metadata map[string]string
	FilePath string // empty for built-in maps
}

// Grid builds and validates the engine grid for this map.
func (d Definition) Grid() (*raycast.Grid, error) {
	g, err := raycast.NewGrid(d.Cells, d.TileSize)
	if err != nil {
		return nil, fmt.Errorf("maps: %s: %w", d.ID, err)
	}
	return g, nil
}

// Size returns the column and row counts.
func (d Definition) Size() (cols, rows int) {
	if len(d.Cells) == 0 {
		return 0, 0
	}
	return len(d.Cells[0]), len(d.Cells)
}

// ApplyStart copies the map's start point into s. The point is the center
// of the start cell.
func (d Definition) ApplyStart(s *raycast.Settings) {
	if d.Start == nil {
		return
	}
	s.HasStart = true
	s.StartX = (float64(d.Start.Col) + 0.5) * d.TileSize
	s.StartY = (float64(d.Start.Row) + 0.5) * d.TileSize
	if d.Start.HasHeading {
		s.StartHeading = raycast.Radians(d.Start.HeadingDegrees)
	}
}

// Validate checks the grid shape and that the player can start on it: the
// start cell when one is given, the grid center otherwise.
func (d Definition) Validate() error {
	g, err := d.Grid()
	if err != nil {
		return err
	}
	if d.Start == nil {
		if x, y := g.Center(); !g.CanWalk(x, y) {
			return fmt.Errorf("maps: %s: no start given and the center (%.1f, %.1f) is a wall", d.ID, x, y)
		}
		return nil
	}
	v, ok := g.Cell(d.Start.Col, d.Start.Row)
	switch {
	case !ok:
		return fmt.Errorf("maps: %s: start (%d, %d) is outside the grid", d.ID, d.Start.Col, d.Start.Row)
	case v != 0:
		return fmt.Errorf("maps: %s: start (%d, %d) is a wall", d.ID, d.Start.Col, d.Start.Row)
	}
	return nil
}

// Parse parses map file contents in the format given by ext.
func Parse(data []byte, ext string) (Definition, error) {
	switch ext {
	case ".yaml", ".yml":
		m, err := formats.ParseYAML(data)
		if err != nil {
			return Definition{}, err
		}
		return fromFormat(m), nil
	default:
		return Definition{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func fromFormat(m formats.Map) Definition {
	d := Definition{
		ID:       m.ID,
		Name:     m.Name,
		TileSize: m.TileSize,
		Cells:    m.Cells,
		Metadata: m.Metadata,
	}
	if m.Start != nil {
		d.Start = &Start{Col: m.Start.Col, Row: m.Start.Row}
		if m.Start.Heading != nil {
			d.Start.HeadingDegrees = *m.Start.Heading
			d.Start.HasHeading = true
		}
	}
	return d
}
