// Package registry provides a global registry of map factories.
// Built-in maps register themselves in init() functions and the CLI adds
// maps loaded from disk, so the platform can list and open maps without
// hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-raycaster/internal/maps"
)

// MapInfo contains metadata about a registered map.
type MapInfo struct {
	ID    string
	Title string
	Cols  int
	Rows  int
	File  string // empty for built-in maps
}

// Factory returns a fresh copy of a map definition.
type Factory func() maps.Definition

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]MapInfo)
	mu        sync.RWMutex
)

// Register adds a map factory to the registry.
// Typically called from an init() function.
// Panics if a map with the same ID is already registered.
func Register(id string, f Factory) {
	if err := Add(id, f); err != nil {
		panic(err.Error())
	}
}

// Add is Register for maps discovered at runtime: a duplicate ID is
// reported as an error instead of a panic.
func Add(id string, f Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		return fmt.Errorf("registry: map %q already registered", id)
	}

	factories[id] = f

	def := f()
	cols, rows := def.Size()
	infos[id] = MapInfo{
		ID:    id,
		Title: def.Name,
		Cols:  cols,
		Rows:  rows,
		File:  def.FilePath,
	}
	return nil
}

// AddDefinition registers a loaded definition under its own ID. Each
// Create call returns a deep copy of the cells.
func AddDefinition(def maps.Definition) error {
	return Add(def.ID, func() maps.Definition { return clone(def) })
}

// List returns information about all registered maps, sorted by ID.
func List() []MapInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]MapInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a map by its ID.
// Returns an error if the map ID is not registered.
func Create(id string) (maps.Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return maps.Definition{}, fmt.Errorf("registry: unknown map %q", id)
	}

	return f(), nil
}

// Exists checks if a map with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

func clone(def maps.Definition) maps.Definition {
	cells := make([][]int, len(def.Cells))
	for i, row := range def.Cells {
		cells[i] = append([]int(nil), row...)
	}
	def.Cells = cells
	if def.Start != nil {
		start := *def.Start
		def.Start = &start
	}
	return def
}
