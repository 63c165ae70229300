// Package builtin registers the maps that ship with the binary.
// Import it for its side effects.
package builtin

import (
	"fmt"

	"github.com/vovakirdan/tui-raycaster/internal/maps"
	"github.com/vovakirdan/tui-raycaster/internal/maps/formats"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
)

// DefaultID is the map opened when none is named.
const DefaultID = "classic"

func init() {
	registry.Register("classic", classic)
	registry.Register("box", fromLayout("box", "Box", nil, []string{
		"###",
		"#.#",
		"###",
	}))
	registry.Register("courtyard", fromLayout("courtyard", "Courtyard", &maps.Start{Col: 2, Row: 9, HeadingDegrees: 270, HasHeading: true}, []string{
		"###############",
		"#.............#",
		"#.22222.33333.#",
		"#.2...2.3...3.#",
		"#.2.......3...#",
		"#.22222.33333.#",
		"#.............#",
		"#.....444.....#",
		"#.....4.4.....#",
		"#.............#",
		"###############",
	}))
	registry.Register("void", fromLayout("void", "Void", nil, []string{
		"........",
		"........",
		"........",
		"........",
		"........",
	}))
}

// classic is the reference 15x11 map. The start is the map center.
func classic() maps.Definition {
	return maps.Definition{
		ID:       "classic",
		Name:     "Classic",
		TileSize: formats.DefaultTileSize,
		Cells: [][]int{
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1},
			{1, 0, 2, 0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 0, 1},
			{1, 0, 0, 3, 0, 0, 1, 0, 0, 3, 1, 0, 1, 0, 1},
			{1, 0, 0, 3, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			{1, 1, 1, 1, 1, 1, 0, 2, 3, 1, 1, 1, 1, 0, 1},
			{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
	}
}

func fromLayout(id, name string, start *maps.Start, layout []string) registry.Factory {
	return func() maps.Definition {
		cells, err := formats.ParseLayout(layout)
		if err != nil {
			panic(fmt.Sprintf("builtin: %s: %v", id, err))
		}
		def := maps.Definition{
			ID:       id,
			Name:     name,
			TileSize: formats.DefaultTileSize,
			Cells:    cells,
		}
		if start != nil {
			s := *start
			def.Start = &s
		}
		return def
	}
}
