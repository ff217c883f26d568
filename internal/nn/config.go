package nn

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default hyperparameters.
const (
	DefaultAlpha = 0.25
	DefaultGamma = 2.0
)

// FocalConfig is the serializable configuration of a focal loss.
//
// It round-trips through Config and the constructors:
//
//	clone := nn.NewFocalBinaryCrossentropy[float32](backend, loss.Config())
type FocalConfig struct {
	Alpha      float64   `json:"alpha" yaml:"alpha"`             // Class balance weight for positives
	Gamma      float64   `json:"gamma" yaml:"gamma"`             // Focusing exponent, 0 disables focusing
	FromLogits bool      `json:"from_logits" yaml:"from_logits"` // Predictions are raw scores
	Reduction  Reduction `json:"reduction" yaml:"reduction"`     // How per-example losses are combined
	Name       string    `json:"name" yaml:"name"`               // Empty means the variant default
}

// DefaultFocalConfig returns alpha=0.25, gamma=2, probabilities in, mean reduction.
func DefaultFocalConfig() FocalConfig {
	return FocalConfig{
		Alpha:      DefaultAlpha,
		Gamma:      DefaultGamma,
		FromLogits: false,
		Reduction:  ReductionMean,
	}
}

// Validate reports hyperparameters outside their meaningful range.
// Constructors never call it; out-of-range values are accepted and
// produce degenerate losses.
func (c FocalConfig) Validate() error {
	switch {
	case math.IsNaN(c.Alpha) || c.Alpha < 0 || c.Alpha > 1:
		return &ConfigError{Field: "alpha", Value: c.Alpha, Details: "must be in [0, 1]"}
	case math.IsNaN(c.Gamma) || math.IsInf(c.Gamma, 0) || c.Gamma < 0:
		return &ConfigError{Field: "gamma", Value: c.Gamma, Details: "must be finite and >= 0"}
	}
	if _, err := c.Reduction.MarshalText(); err != nil {
		return err
	}
	return nil
}

// ConfigFormat names a config serialization.
type ConfigFormat string

// Supported config formats.
const (
	FormatYAML ConfigFormat = "yaml"
	FormatJSON ConfigFormat = "json"
)

// ParseConfigFormat accepts "yaml", "yml" and "json".
func ParseConfigFormat(s string) (ConfigFormat, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (ConfigFormat, error) {
	return ParseConfigFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// MarshalConfig encodes cfg in the given format.
func MarshalConfig(cfg FocalConfig, format ConfigFormat) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("encode yaml config: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json config: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// UnmarshalConfig decodes data in the given format. Fields absent from
// data keep their DefaultFocalConfig values; unknown fields are rejected.
func UnmarshalConfig(data []byte, format ConfigFormat) (FocalConfig, error) {
	cfg := DefaultFocalConfig()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF and means "all defaults".
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return FocalConfig{}, fmt.Errorf("decode yaml config: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return FocalConfig{}, fmt.Errorf("decode json config: %w", err)
		}
	default:
		return FocalConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return cfg, nil
}

// LoadConfig reads a YAML (.yaml, .yml) or JSON (.json) config file.
func LoadConfig(path string) (FocalConfig, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return FocalConfig{}, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the caller
	if err != nil {
		return FocalConfig{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := UnmarshalConfig(data, format)
	if err != nil {
		return FocalConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path in the format implied by its extension.
func SaveConfig(path string, cfg FocalConfig) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	data, err := MarshalConfig(cfg, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
