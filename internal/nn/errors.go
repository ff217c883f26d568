package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnknownReduction  = errors.New("unknown reduction")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid focal loss config")
)

// ConfigError reports a hyperparameter outside its meaningful range.
// It unwraps to ErrInvalidConfig.
type ConfigError struct {
	Field   string  // Config field name (e.g., "alpha")
	Value   float64 // Offending value
	Details string  // Expected range
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s=%g: %s", ErrInvalidConfig, e.Field, e.Value, e.Details)
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
