// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/focal/internal/nn"
	"github.com/born-ml/focal/internal/tensor"
)

// Epsilon bounds probabilities away from 0 and 1 before taking logs.
const Epsilon = nn.Epsilon

// Default hyperparameters.
const (
	DefaultAlpha = nn.DefaultAlpha
	DefaultGamma = nn.DefaultGamma
)

// Default loss names.
const (
	FocalBinaryCrossentropyName      = nn.FocalBinaryCrossentropyName
	FocalCategoricalCrossentropyName = nn.FocalCategoricalCrossentropyName
)

// Loss is the interface implemented by loss objects.
type Loss[T tensor.Float, B tensor.Backend] = nn.Loss[T, B]

// Parameter represents a trainable tensor.
type Parameter[T tensor.Float, B tensor.Backend] = nn.Parameter[T, B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[T tensor.Float, B tensor.Backend](name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return nn.NewParameter(name, t)
}

// Transforms

// FocalBinaryCrossentropy computes the element-wise focal binary crossentropy.
//
// Example:
//
//	backend := cpu.New()
//	yTrue := tensor.MustFromSlice([]float32{0, 1}, tensor.Shape{2}, backend)
//	logits := tensor.MustFromSlice([]float32{-2, 0.5}, tensor.Shape{2}, backend)
//	loss := nn.FocalBinaryCrossentropy(yTrue, logits, 0.25, 2, true) // shape [2]
func FocalBinaryCrossentropy[T tensor.Float, B tensor.Backend](
	yTrue, yPred *tensor.Tensor[T, B],
	alpha, gamma float64,
	fromLogits bool,
) *tensor.Tensor[T, B] {
	return nn.FocalBinaryCrossentropy(yTrue, yPred, alpha, gamma, fromLogits)
}

// FocalCategoricalCrossentropy computes the focal categorical crossentropy
// over the last axis. The result drops the class axis.
func FocalCategoricalCrossentropy[T tensor.Float, B tensor.Backend](
	yTrue, yPred *tensor.Tensor[T, B],
	alpha, gamma float64,
	fromLogits bool,
) *tensor.Tensor[T, B] {
	return nn.FocalCategoricalCrossentropy(yTrue, yPred, alpha, gamma, fromLogits)
}

// Loss objects

// Transform maps targets and predictions to unreduced losses.
type Transform[T tensor.Float, B tensor.Backend] = nn.Transform[T, B]

// FocalLoss binds focal hyperparameters and a reduction to a transform.
type FocalLoss[T tensor.Float, B tensor.Backend] = nn.FocalLoss[T, B]

// NewFocalBinaryCrossentropy creates the binary focal loss.
//
// Example:
//
//	cfg := nn.DefaultFocalConfig()
//	cfg.FromLogits = true
//	loss := nn.NewFocalBinaryCrossentropy[float32](backend, cfg)
//	l := loss.Forward(yTrue, logits)
func NewFocalBinaryCrossentropy[T tensor.Float, B tensor.Backend](backend B, cfg FocalConfig) *FocalLoss[T, B] {
	return nn.NewFocalBinaryCrossentropy[T](backend, cfg)
}

// NewFocalCategoricalCrossentropy creates the categorical focal loss.
func NewFocalCategoricalCrossentropy[T tensor.Float, B tensor.Backend](backend B, cfg FocalConfig) *FocalLoss[T, B] {
	return nn.NewFocalCategoricalCrossentropy[T](backend, cfg)
}

// Reduction

// Reduction selects how a loss collapses per-example values.
type Reduction = nn.Reduction

// Supported reductions.
const (
	ReductionMean = nn.ReductionMean
	ReductionSum  = nn.ReductionSum
	ReductionNone = nn.ReductionNone
	ReductionAuto = nn.ReductionAuto
)

// ParseReduction parses "mean", "auto", "sum_over_batch_size", "sum" or "none".
func ParseReduction(s string) (Reduction, error) {
	return nn.ParseReduction(s)
}

// Configuration

// FocalConfig is the serializable configuration of a focal loss.
type FocalConfig = nn.FocalConfig

// DefaultFocalConfig returns alpha=0.25, gamma=2, probabilities in, mean reduction.
func DefaultFocalConfig() FocalConfig {
	return nn.DefaultFocalConfig()
}

// ConfigFormat names a config serialization.
type ConfigFormat = nn.ConfigFormat

// Supported config formats.
const (
	FormatYAML = nn.FormatYAML
	FormatJSON = nn.FormatJSON
)

// ConfigError reports a hyperparameter outside its meaningful range.
type ConfigError = nn.ConfigError

// Errors.
var (
	ErrUnknownReduction  = nn.ErrUnknownReduction
	ErrUnsupportedFormat = nn.ErrUnsupportedFormat
	ErrInvalidConfig     = nn.ErrInvalidConfig
)

// MarshalConfig encodes cfg as YAML or JSON.
func MarshalConfig(cfg FocalConfig, format ConfigFormat) ([]byte, error) {
	return nn.MarshalConfig(cfg, format)
}

// UnmarshalConfig decodes a YAML or JSON config. Missing fields keep defaults.
func UnmarshalConfig(data []byte, format ConfigFormat) (FocalConfig, error) {
	return nn.UnmarshalConfig(data, format)
}

// LoadConfig reads a config file; the extension selects the format.
//
// Example:
//
//	cfg, err := nn.LoadConfig("focal.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loss := nn.NewFocalBinaryCrossentropy[float32](backend, cfg)
func LoadConfig(path string) (FocalConfig, error) {
	return nn.LoadConfig(path)
}

// SaveConfig writes a config file; the extension selects the format.
func SaveConfig(path string, cfg FocalConfig) error {
	return nn.SaveConfig(path, cfg)
}
