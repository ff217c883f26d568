package nn

import (
	"fmt"

	"github.com/born-ml/focal/internal/tensor"
)

// Default loss names.
const (
	FocalBinaryCrossentropyName      = "focal_binary_crossentropy"
	FocalCategoricalCrossentropyName = "focal_categorical_crossentropy"
)

// Transform maps (targets, predictions, alpha, gamma, fromLogits) to
// unreduced per-example losses.
type Transform[T tensor.Float, B tensor.Backend] func(
	yTrue, yPred *tensor.Tensor[T, B],
	alpha, gamma float64,
	fromLogits bool,
) *tensor.Tensor[T, B]

// FocalLoss binds focal hyperparameters and a reduction to a transform.
//
// A FocalLoss holds no per-call state: Forward may be called from several
// goroutines as long as the backend allows it (an autodiff backend that is
// recording does not).
//
// Example:
//
//	loss := nn.NewFocalBinaryCrossentropy[float32](backend, nn.FocalConfig{
//	    Alpha: 0.25, Gamma: 2, FromLogits: true,
//	})
//	l := loss.Forward(yTrue, logits) // scalar, read with l.Item()
type FocalLoss[T tensor.Float, B tensor.Backend] struct {
	backend   B
	config    FocalConfig
	transform Transform[T, B]
}

// NewFocalBinaryCrossentropy creates the binary focal loss.
// cfg is taken as is; see FocalConfig.Validate for optional checks.
func NewFocalBinaryCrossentropy[T tensor.Float, B tensor.Backend](backend B, cfg FocalConfig) *FocalLoss[T, B] {
	return newFocalLoss(backend, cfg, FocalBinaryCrossentropyName, FocalBinaryCrossentropy[T, B])
}

// NewFocalCategoricalCrossentropy creates the categorical focal loss.
// Predictions carry classes on the last axis.
func NewFocalCategoricalCrossentropy[T tensor.Float, B tensor.Backend](backend B, cfg FocalConfig) *FocalLoss[T, B] {
	return newFocalLoss(backend, cfg, FocalCategoricalCrossentropyName, FocalCategoricalCrossentropy[T, B])
}

func newFocalLoss[T tensor.Float, B tensor.Backend](backend B, cfg FocalConfig, name string, fn Transform[T, B]) *FocalLoss[T, B] {
	if cfg.Name == "" {
		cfg.Name = name
	}
	return &FocalLoss[T, B]{
		backend:   backend,
		config:    cfg,
		transform: fn,
	}
}

// Forward computes the reduced loss with uniform sample weights.
func (l *FocalLoss[T, B]) Forward(yTrue, yPred *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return l.ForwardWeighted(yTrue, yPred, nil)
}

// ForwardWeighted computes the loss, scales it by sampleWeight and reduces.
//
// A nil sampleWeight means weight 1 everywhere. A weight of lower rank than
// the unreduced loss gets trailing size-1 axes (a [B] weight against a
// [B, N] loss acts per row); trailing size-1 axes beyond the loss rank are
// dropped. NumPy broadcasting then applies, and incompatible shapes panic.
//
// Mean divides the weighted sum by the number of loss elements, so zero
// weights still count toward the divisor.
func (l *FocalLoss[T, B]) ForwardWeighted(yTrue, yPred, sampleWeight *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	cfg := l.config
	losses := l.transform(yTrue, yPred, cfg.Alpha, cfg.Gamma, cfg.FromLogits)

	if sampleWeight != nil {
		losses = losses.Mul(alignWeight(sampleWeight, losses.Rank()))
	}

	return reduce(losses, cfg.Reduction)
}

// alignWeight reshapes w so that its leading axes line up with a loss of
// the given rank.
func alignWeight[T tensor.Float, B tensor.Backend](w *tensor.Tensor[T, B], rank int) *tensor.Tensor[T, B] {
	shape := w.Shape()
	switch {
	case len(shape) < rank && len(shape) > 0:
		aligned := shape.Clone()
		for len(aligned) < rank {
			aligned = append(aligned, 1)
		}
		return w.Reshape(aligned...)
	case len(shape) > rank:
		aligned := shape.Clone()
		for len(aligned) > rank && aligned[len(aligned)-1] == 1 {
			aligned = aligned[:len(aligned)-1]
		}
		if len(aligned) != len(shape) {
			return w.Reshape(aligned...)
		}
	}
	return w
}

func reduce[T tensor.Float, B tensor.Backend](losses *tensor.Tensor[T, B], r Reduction) *tensor.Tensor[T, B] {
	switch r {
	case ReductionNone:
		return losses
	case ReductionSum:
		return losses.Sum()
	case ReductionMean:
		return losses.Sum().DivScalar(float64(losses.NumElements()))
	default:
		panic(fmt.Sprintf("focal loss: %v", r))
	}
}

// Config returns a snapshot of the loss configuration.
func (l *FocalLoss[T, B]) Config() FocalConfig {
	return l.config
}

// Name returns the loss name.
func (l *FocalLoss[T, B]) Name() string {
	return l.config.Name
}

// Reduction returns the bound reduction policy.
func (l *FocalLoss[T, B]) Reduction() Reduction {
	return l.config.Reduction
}

// Backend returns the backend the loss was created for.
func (l *FocalLoss[T, B]) Backend() B {
	return l.backend
}

// Parameters returns nil (loss functions have no trainable parameters).
func (l *FocalLoss[T, B]) Parameters() []*Parameter[T, B] {
	return nil
}
