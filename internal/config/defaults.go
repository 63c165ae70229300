package config

import (
	_ "embed"
)

//go:embed defaults/raycaster.yaml
var defaultRaycastYAML []byte

// DefaultRaycastConfig returns the built-in configuration.
func DefaultRaycastConfig() RaycastConfig {
	return RaycastConfig{
		Camera: CameraConfig{
			FOVDegrees:  75,
			ColumnWidth: 10,
			CellsPerRay: 1,
			HeightScale: 1,
			Workers:     2,
		},
		Player: PlayerConfig{
			MoveSpeed:           2,
			TurnRate:            0.02,
			StartHeadingDegrees: 90,
		},
		Shading: ShadingConfig{
			Constant:    200,
			MaxDistance: 9999,
		},
		Input: InputConfig{
			HoldTicks: 6,
		},
		Display: DisplayConfig{
			Minimap: true,
			HUD:     true,
		},
	}
}
