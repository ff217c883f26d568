// Package ops defines the differentiable operations recorded on the gradient tape.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: computed by the backend
//   - Backward pass: computes gradients for inputs given output gradient
//
// Supported operations:
//   - AddOp, SubOp, MulOp, DivOp: broadcasting element-wise arithmetic
//   - ScalarOp: arithmetic with a constant
//   - PowOp, ExpOp, LogOp: element-wise math
//   - ClampOp: clipping (gradient passes inside the interval)
//   - SigmoidOp, SoftmaxOp: activations
//   - SumOp, SumDimOp: reductions
//   - ReshapeOp: shape change
//
// Backward rules are written in terms of backend primitives, so they work
// on any tensor.Backend.
package ops

import "github.com/born-ml/focal/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass,
// and computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input tensor.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)] (gradient flows equally to both inputs)
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
