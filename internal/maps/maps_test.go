package maps

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

func testdataPath() string {
	return filepath.Join("testdata", "maps")
}

func TestLoaderLoadAll(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	loader := NewLoader(testdataPath(), logger)

	defs, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// ragged.yaml and walled-start.yaml are skipped, README.txt is ignored.
	var ids []string
	for _, d := range defs {
		ids = append(ids, d.ID)
	}
	if strings.Join(ids, ",") != "arena,hall" {
		t.Errorf("loaded ids = %v, want [arena hall]", ids)
	}

	if !strings.Contains(buf.String(), "ragged.yaml") || !strings.Contains(buf.String(), "walled-start.yaml") {
		t.Errorf("skipped files should be logged at debug, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "README") {
		t.Error("unsupported extensions should be ignored silently")
	}
}

func TestLoaderLoadLayoutMap(t *testing.T) {
	def, err := NewLoader(testdataPath(), nil).LoadByID("arena")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if def.Name != "Arena" || def.TileSize != 32 {
		t.Errorf("got name %q tile %v", def.Name, def.TileSize)
	}
	if cols, rows := def.Size(); cols != 5 || rows != 5 {
		t.Errorf("size = %dx%d, want 5x5", cols, rows)
	}
	if def.Cells[2][2] != 2 {
		t.Errorf("digit cell = %d, want 2", def.Cells[2][2])
	}
	if def.Metadata["author"] != "test" {
		t.Errorf("metadata = %v", def.Metadata)
	}
	if def.FilePath != filepath.Join(testdataPath(), "arena.yaml") {
		t.Errorf("FilePath = %q", def.FilePath)
	}
	if def.Start == nil || def.Start.Col != 1 || def.Start.Row != 1 || !def.Start.HasHeading || def.Start.HeadingDegrees != 0 {
		t.Errorf("start = %+v", def.Start)
	}
}

func TestLoaderLoadCellsMapInSubdirectory(t *testing.T) {
	def, err := NewLoader(testdataPath(), nil).LoadByID("hall")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if def.Name != "hall" {
		t.Errorf("name should default to the id, got %q", def.Name)
	}
	if def.TileSize != 64 {
		t.Errorf("tile size should default to 64, got %v", def.TileSize)
	}
	if def.Start == nil || def.Start.HasHeading {
		t.Errorf("start = %+v, want a start without heading", def.Start)
	}
}

func TestLoaderLoadByIDMissing(t *testing.T) {
	if _, err := NewLoader(testdataPath(), nil).LoadByID("nope"); err == nil {
		t.Error("expected an error for an unknown id")
	}
}

func TestLoaderLoadFileErrors(t *testing.T) {
	loader := NewLoader(testdataPath(), nil)

	_, err := loader.LoadFile(filepath.Join(testdataPath(), "ragged.yaml"))
	if !errors.Is(err, raycast.ErrConfiguration) {
		t.Errorf("ragged map: expected a configuration error, got %v", err)
	}

	_, err = loader.LoadFile(filepath.Join(testdataPath(), "walled-start.yaml"))
	if err == nil || !strings.Contains(err.Error(), "wall") {
		t.Errorf("walled start: got %v", err)
	}

	if _, err := loader.LoadFile(filepath.Join(testdataPath(), "README.txt")); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestLoaderRejectsWalledCenterWithoutStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pillar.yaml")
	data := "id: pillar\nlayout:\n  - \".....\"\n  - \".....\"\n  - \"..#..\"\n  - \".....\"\n  - \".....\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader(filepath.Dir(path), nil).LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "center") {
		t.Errorf("walled center: got %v", err)
	}
}

func TestValidateStart(t *testing.T) {
	tests := []struct {
		name    string
		cells   [][]int
		start   *Start
		wantErr bool
	}{
		{"open center", [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}, nil, false},
		{"walled center", [][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, nil, true},
		{"start beside walled center", [][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, &Start{Col: 0, Row: 0}, false},
		{"start on a wall", [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}, &Start{Col: 0, Row: 1}, true},
		{"start outside", [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}, &Start{Col: 3, Row: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := Definition{ID: "t", TileSize: 64, Cells: tt.cells, Start: tt.start}
			err := def.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "absent"), nil).LoadAll(); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no id", "layout: ['#']\n"},
		{"no cells", "id: x\n"},
		{"both forms", "id: x\ncells: [[1]]\nlayout: ['#']\n"},
		{"bad glyph", "id: x\nlayout: ['#?#']\n"},
		{"not yaml", "id: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), ".yaml"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestApplyStart(t *testing.T) {
	def := Definition{
		ID:       "t",
		TileSize: 64,
		Cells:    [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}},
		Start:    &Start{Col: 1, Row: 1, HeadingDegrees: 180, HasHeading: true},
	}

	s := raycast.DefaultSettings(320)
	def.ApplyStart(&s)
	if !s.HasStart || s.StartX != 96 || s.StartY != 96 {
		t.Errorf("start = (%v, %v) has=%v, want (96, 96)", s.StartX, s.StartY, s.HasStart)
	}
	if math.Abs(s.StartHeading-math.Pi) > 1e-9 {
		t.Errorf("heading = %v, want pi", s.StartHeading)
	}

	// Without a heading the default facing is kept.
	def.Start.HasHeading = false
	s = raycast.DefaultSettings(320)
	def.ApplyStart(&s)
	if s.StartHeading != math.Pi/2 {
		t.Errorf("heading = %v, want the default", s.StartHeading)
	}

	// No start leaves settings alone.
	def.Start = nil
	s = raycast.DefaultSettings(320)
	def.ApplyStart(&s)
	if s.HasStart {
		t.Error("nil start should not set HasStart")
	}
}

func TestDefinitionGridStartsSession(t *testing.T) {
	def, err := NewLoader(testdataPath(), nil).LoadByID("arena")
	if err != nil {
		t.Fatal(err)
	}
	g, err := def.Grid()
	if err != nil {
		t.Fatal(err)
	}

	s := raycast.DefaultSettings(160)
	def.ApplyStart(&s)
	sess, err := raycast.NewSession(g, s)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if p := sess.Pose(); p.X != 48 || p.Y != 48 || p.Heading != 0 {
		t.Errorf("pose = %+v, want (48, 48) facing 0", p)
	}
}
