// Package optim implements optimization algorithms for fitting parameters
// against a loss.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Example usage:
//
//	optimizer := optim.NewAdam([]*nn.Parameter[float32, B]{logits}, optim.AdamConfig{
//	    LR: 0.01,
//	}, backend)
//
//	for step := range steps {
//	    backend.Tape().StartRecording()
//	    loss := focal.Forward(yTrue, logits.Tensor())
//	    grads := autodiff.Backward(loss, backend)
//	    backend.Tape().Clear()
//
//	    optimizer.Step(grads)
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/born-ml/focal/internal/nn"
	"github.com/born-ml/focal/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters in place.
	//
	// grads is the map returned by autodiff.Backward. Parameters absent
	// from it are skipped.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// getGradient retrieves the gradient for a parameter, falling back to the
// one stored on the parameter itself. Returns nil when neither exists.
func getGradient[T tensor.Float, B tensor.Backend](param *nn.Parameter[T, B], grads map[*tensor.RawTensor]*tensor.RawTensor) []T {
	if param == nil {
		return nil
	}
	if raw, ok := grads[param.Tensor().Raw()]; ok {
		return tensor.New[T, B](raw, param.Tensor().Backend()).Data()
	}
	if g := param.Grad(); g != nil {
		return g.Data()
	}
	return nil
}
