// Package formats provides pluggable map file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLMap represents the YAML structure for a map file. A map gives its
// cells either as an integer matrix (cells) or as one string per row
// (layout), never both.
type YAMLMap struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	TileSize float64           `yaml:"tile_size,omitempty"`
	Cells    [][]int           `yaml:"cells,omitempty"`
	Layout   []string          `yaml:"layout,omitempty"`
	Start    *YAMLStart        `yaml:"start,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLStart is the player start cell and optional facing in degrees.
type YAMLStart struct {
	Col     int      `yaml:"col"`
	Row     int      `yaml:"row"`
	Heading *float64 `yaml:"heading,omitempty"`
}

// Map represents a parsed map ready for use.
type Map struct {
	ID       string
	Name     string
	TileSize float64
	Cells    [][]int
	Start    *YAMLStart
	Metadata map[string]string
}

// DefaultTileSize is used when a map file does not set tile_size.
const DefaultTileSize = 64

// ParseYAML parses a YAML map file. Shape checks (ragged rows, empty grids)
// are left to grid construction.
func ParseYAML(data []byte) (Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return Map{}, errors.New("missing id")
	}

	tileSize := ym.TileSize
	if tileSize == 0 {
		tileSize = DefaultTileSize
	}

	m := Map{
		ID:       ym.ID,
		Name:     ym.Name,
		TileSize: tileSize,
		Start:    ym.Start,
		Metadata: ym.Metadata,
	}
	if m.Name == "" {
		m.Name = ym.ID
	}

	switch {
	case len(ym.Cells) > 0 && len(ym.Layout) > 0:
		return Map{}, errors.New("both cells and layout given")
	case len(ym.Cells) > 0:
		m.Cells = ym.Cells
	case len(ym.Layout) > 0:
		cells, err := ParseLayout(ym.Layout)
		if err != nil {
			return Map{}, err
		}
		m.Cells = cells
	default:
		return Map{}, errors.New("no cells or layout")
	}

	return m, nil
}

// ParseLayout converts layout rows into cell values: a digit is its own
// value, '#' is 1, '.' and ' ' are 0.
func ParseLayout(rows []string) ([][]int, error) {
	cells := make([][]int, len(rows))
	for r, line := range rows {
		row := make([]int, 0, len(line))
		for c, ch := range line {
			switch {
			case ch >= '0' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == '#':
				row = append(row, 1)
			case ch == '.' || ch == ' ':
				row = append(row, 0)
			default:
				return nil, fmt.Errorf("layout row %d col %d: unexpected %q", r, c, ch)
			}
		}
		cells[r] = row
	}
	return cells, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
