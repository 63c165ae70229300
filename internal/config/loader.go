package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "raycaster.yaml"

// Load loads the raycaster configuration and validates it.
// Search order: customPath -> ~/.raycaster/configs/raycaster.yaml ->
// ./configs/raycaster.yaml -> embedded default.
// Files are applied on top of the defaults, so they may set only the keys
// they care about.
func Load(customPath string) (RaycastConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the config came from:
// a file path or "embedded".
func LoadWithSource(customPath string) (RaycastConfig, string, error) {
	cfg := embeddedDefaults()

	// Try custom path first; a missing custom file is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, "", fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			return cfg, "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		if err := candidate.Validate(); err != nil {
			return cfg, "", fmt.Errorf("%s: %w", path, err)
		}
		return candidate, path, nil
	}

	return cfg, "embedded", nil
}

// embeddedDefaults parses the embedded YAML, falling back to the hardcoded
// defaults if the embed is unusable.
func embeddedDefaults() RaycastConfig {
	cfg := DefaultRaycastConfig()
	if err := yaml.Unmarshal(defaultRaycastYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultRaycastConfig()
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".raycaster", "configs", filename)
}
