// Package nn implements focal crossentropy losses for the Born ML Framework.
//
// This package provides:
//   - FocalBinaryCrossentropy, FocalCategoricalCrossentropy: element-wise transforms
//   - FocalLoss: a loss object binding alpha, gamma, logits handling and reduction
//   - FocalConfig: serializable configuration (YAML/JSON)
//   - Parameter: trainable tensors updated by optimizers
//
// All computations are expressed with backend primitives, so wrapping the
// backend with autodiff makes every loss differentiable.
package nn

import (
	"github.com/born-ml/focal/internal/tensor"
)

// Loss is the interface implemented by loss objects.
//
// Forward returns the reduced loss: a 0-D tensor for mean and sum
// reductions, the per-example losses for ReductionNone.
type Loss[T tensor.Float, B tensor.Backend] interface {
	// Forward computes the loss with uniform sample weights.
	Forward(yTrue, yPred *tensor.Tensor[T, B]) *tensor.Tensor[T, B]

	// ForwardWeighted computes the loss scaled by per-example weights.
	// A nil weight behaves like Forward.
	ForwardWeighted(yTrue, yPred, sampleWeight *tensor.Tensor[T, B]) *tensor.Tensor[T, B]

	// Name returns the loss name.
	Name() string

	// Reduction returns how per-example losses are combined.
	Reduction() Reduction
}

var (
	_ Loss[float32, tensor.Backend] = (*FocalLoss[float32, tensor.Backend])(nil)
	_ Loss[float64, tensor.Backend] = (*FocalLoss[float64, tensor.Backend])(nil)
)
