// Package raycast implements the grid ray casting engine: a tile grid, the
// player pose, per-column ray intersection search, wall projection and the
// per-frame driver that ties them together.
//
// The package has no external dependencies and performs no drawing. Drawing
// and input are provided by collaborators through the Renderer and
// InputSource interfaces.
package raycast

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("raycast: invalid configuration")

// ConfigurationError reports an invalid grid or session setting.
// Construction fails fast with this error; no partially built value is returned.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("raycast: invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErr(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
