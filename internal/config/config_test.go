package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	if got, want := embeddedDefaults(), DefaultRaycastConfig(); got != want {
		t.Errorf("embedded defaults drifted from DefaultRaycastConfig:\n got  %+v\n want %+v", got, want)
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRaycastConfig().Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RaycastConfig)
		field  string
	}{
		{"zero fov", func(c *RaycastConfig) { c.Camera.FOVDegrees = 0 }, "fov_degrees"},
		{"straight fov", func(c *RaycastConfig) { c.Camera.FOVDegrees = 180 }, "fov_degrees"},
		{"zero column width", func(c *RaycastConfig) { c.Camera.ColumnWidth = 0 }, "column_width"},
		{"zero cells per ray", func(c *RaycastConfig) { c.Camera.CellsPerRay = 0 }, "cells_per_ray"},
		{"flat walls", func(c *RaycastConfig) { c.Camera.HeightScale = 0 }, "height_scale"},
		{"negative workers", func(c *RaycastConfig) { c.Camera.Workers = -1 }, "workers"},
		{"negative speed", func(c *RaycastConfig) { c.Player.MoveSpeed = -2 }, "move_speed"},
		{"negative turn", func(c *RaycastConfig) { c.Player.TurnRate = -0.1 }, "turn_rate"},
		{"zero shade constant", func(c *RaycastConfig) { c.Shading.Constant = 0 }, "constant"},
		{"zero max distance", func(c *RaycastConfig) { c.Shading.MaxDistance = 0 }, "max_distance"},
		{"zero hold", func(c *RaycastConfig) { c.Input.HoldTicks = 0 }, "hold_ticks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRaycastConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}
}

func TestQualityPresets(t *testing.T) {
	tests := []struct {
		preset  QualityPreset
		cells   int
		workers int
	}{
		{QualityLow, 3, 1},
		{QualityMedium, 2, 2},
		{QualityHigh, 1, 4},
	}

	for _, tt := range tests {
		cfg := DefaultRaycastConfig()
		ApplyQualityPreset(&cfg, tt.preset)
		if cfg.Camera.CellsPerRay != tt.cells || cfg.Camera.Workers != tt.workers {
			t.Errorf("%s: cells_per_ray=%d workers=%d, want %d/%d",
				tt.preset, cfg.Camera.CellsPerRay, cfg.Camera.Workers, tt.cells, tt.workers)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s preset produced an invalid config: %v", tt.preset, err)
		}
	}

	cfg := DefaultRaycastConfig()
	ApplyQualityPreset(&cfg, "")
	if cfg != DefaultRaycastConfig() {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParseQualityPreset(t *testing.T) {
	for _, s := range []string{"", "low", "medium", "high"} {
		p, err := ParseQualityPreset(s)
		if err != nil || string(p) != s {
			t.Errorf("ParseQualityPreset(%q) = %q, %v", s, p, err)
		}
	}
	if _, err := ParseQualityPreset("ultra"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points HOME and the working directory at empty temp dirs so the
// search path only sees files the test creates.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestLoadEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource: %v", err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, want embedded", source)
	}
	if cfg != DefaultRaycastConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, path, "camera:\n  fov_degrees: 60\nshading:\n  constant: 100\n")

	cfg, source, err := LoadWithSource(path)
	if err != nil {
		t.Fatalf("LoadWithSource: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.Camera.FOVDegrees != 60 || cfg.Shading.Constant != 100 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Camera.ColumnWidth != 10 || cfg.Player.MoveSpeed != 2 {
		t.Errorf("unset keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "camera: [not, a, map]\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected a parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "input:\n  hold_ticks: 0\n")
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "hold_ticks") {
		t.Errorf("expected a validation error naming hold_ticks, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	local := filepath.Join(work, "configs", FileName)
	writeFile(t, local, "player:\n  move_speed: 5\n")

	cfg, source, err := LoadWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if source != filepath.Join("configs", FileName) || cfg.Player.MoveSpeed != 5 {
		t.Errorf("local config not picked up: source=%q speed=%v", source, cfg.Player.MoveSpeed)
	}

	user := filepath.Join(home, ".raycaster", "configs", FileName)
	writeFile(t, user, "player:\n  move_speed: 7\n")

	cfg, source, err = LoadWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if source != user || cfg.Player.MoveSpeed != 7 {
		t.Errorf("user config should win over local: source=%q speed=%v", source, cfg.Player.MoveSpeed)
	}
}
