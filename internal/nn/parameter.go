package nn

import (
	"github.com/born-ml/focal/internal/tensor"
)

// Parameter represents a trainable tensor.
//
// Example:
//
//	logits := nn.NewParameter("logits", tensor.Zeros[float32](tensor.Shape{4}, backend))
//	loss := focal.Forward(yTrue, logits.Tensor())
//	grads := autodiff.Backward(loss, backend)
//	logits.SetGrad(autodiff.Grad(grads, logits.Tensor()))
type Parameter[T tensor.Float, B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[T, B]
	grad   *tensor.Tensor[T, B] // nil until the first backward pass
}

// NewParameter creates a new trainable parameter.
func NewParameter[T tensor.Float, B tensor.Backend](name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return &Parameter[T, B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[T, B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[T, B]) Tensor() *tensor.Tensor[T, B] {
	return p.tensor
}

// Grad returns the gradient tensor, or nil before the first backward pass.
func (p *Parameter[T, B]) Grad() *tensor.Tensor[T, B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter[T, B]) SetGrad(grad *tensor.Tensor[T, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
//
// Call it before each training iteration; gradients are not accumulated
// across SetGrad calls, but a stale gradient would be applied again.
func (p *Parameter[T, B]) ZeroGrad() {
	p.grad = nil
}
