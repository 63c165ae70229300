// Package config provides YAML-based configuration loading, validation and
// quality presets for the raycaster.
package config

import "fmt"

// RaycastConfig contains all tunable parameters of a viewing session.
type RaycastConfig struct {
	Camera  CameraConfig  `yaml:"camera"`
	Player  PlayerConfig  `yaml:"player"`
	Shading ShadingConfig `yaml:"shading"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
}

// CameraConfig defines the field of view and the column layout.
type CameraConfig struct {
	FOVDegrees  float64 `yaml:"fov_degrees"`
	ColumnWidth int     `yaml:"column_width"`  // World pixels covered by one ray
	CellsPerRay int     `yaml:"cells_per_ray"` // Terminal columns drawn per ray
	HeightScale float64 `yaml:"height_scale"`  // Wall height boost
	Workers     int     `yaml:"workers"`       // Goroutines casting one frame
}

// PlayerConfig defines movement rates and the default facing.
type PlayerConfig struct {
	MoveSpeed           float64 `yaml:"move_speed"`            // World units per tick
	TurnRate            float64 `yaml:"turn_rate"`             // Radians per tick
	StartHeadingDegrees float64 `yaml:"start_heading_degrees"` // Used when the map has no start
}

// ShadingConfig defines distance shading and the no-hit sentinel.
type ShadingConfig struct {
	Constant    float64 `yaml:"constant"`     // shade = clamp(constant/distance, 0, 1)
	MaxDistance float64 `yaml:"max_distance"` // Distance reported for rays that hit nothing
}

// InputConfig defines how terminal key presses become held intents.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// DisplayConfig toggles the overlays drawn on top of the view.
type DisplayConfig struct {
	Minimap bool `yaml:"minimap"`
	HUD     bool `yaml:"hud"`
}

// Validate reports the first parameter that cannot drive a session.
func (c RaycastConfig) Validate() error {
	switch {
	case c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180:
		return fmt.Errorf("config: camera.fov_degrees must be in (0, 180), got %v", c.Camera.FOVDegrees)
	case c.Camera.ColumnWidth <= 0:
		return fmt.Errorf("config: camera.column_width must be positive, got %d", c.Camera.ColumnWidth)
	case c.Camera.CellsPerRay <= 0:
		return fmt.Errorf("config: camera.cells_per_ray must be positive, got %d", c.Camera.CellsPerRay)
	case c.Camera.HeightScale <= 0:
		return fmt.Errorf("config: camera.height_scale must be positive, got %v", c.Camera.HeightScale)
	case c.Camera.Workers < 0:
		return fmt.Errorf("config: camera.workers must not be negative, got %d", c.Camera.Workers)
	case c.Player.MoveSpeed <= 0:
		return fmt.Errorf("config: player.move_speed must be positive, got %v", c.Player.MoveSpeed)
	case c.Player.TurnRate <= 0:
		return fmt.Errorf("config: player.turn_rate must be positive, got %v", c.Player.TurnRate)
	case c.Shading.Constant <= 0:
		return fmt.Errorf("config: shading.constant must be positive, got %v", c.Shading.Constant)
	case c.Shading.MaxDistance <= 0:
		return fmt.Errorf("config: shading.max_distance must be positive, got %v", c.Shading.MaxDistance)
	case c.Input.HoldTicks <= 0:
		return fmt.Errorf("config: input.hold_ticks must be positive, got %d", c.Input.HoldTicks)
	}
	return nil
}

// QualityPreset represents a named trade-off between detail and CPU time.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// ParseQualityPreset converts a flag value into a preset. The empty string
// means no preset.
func ParseQualityPreset(s string) (QualityPreset, error) {
	switch p := QualityPreset(s); p {
	case "", QualityLow, QualityMedium, QualityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown quality %q (want low, medium or high)", s)
	}
}

// ApplyQualityPreset modifies the camera section based on a preset.
// Unknown or empty presets leave the config untouched.
func ApplyQualityPreset(cfg *RaycastConfig, preset QualityPreset) {
	switch preset {
	case QualityLow:
		cfg.Camera.CellsPerRay = 3
		cfg.Camera.Workers = 1
	case QualityMedium:
		cfg.Camera.CellsPerRay = 2
		cfg.Camera.Workers = 2
	case QualityHigh:
		cfg.Camera.CellsPerRay = 1
		cfg.Camera.Workers = 4
	}
}
