package maps

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-raycaster/internal/maps/formats"
)

// Loader handles loading map files from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger // optional; skipped files are reported at debug level
}

// NewLoader creates a new map loader.
func NewLoader(root string, logger *log.Logger) *Loader {
	return &Loader{Root: root, Logger: logger}
}

// LoadAll recursively scans and loads all map files. Invalid files are
// skipped. Returns maps sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Definition, error) {
	var defs []Definition

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		def, err := l.LoadFile(path)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Debug("skipping map file", "path", path, "err", err)
			}
			return nil
		}

		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("maps: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})

	return defs, nil
}

// LoadFile loads and validates a single map file.
func (l *Loader) LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("maps: reading file %s: %w", path, err)
	}

	def, err := Parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Definition{}, fmt.Errorf("maps: parsing file %s: %w", path, err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}

	def.FilePath = path
	return def, nil
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (Definition, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return Definition{}, err
	}

	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}

	return Definition{}, fmt.Errorf("maps: map not found: %s", id)
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}
