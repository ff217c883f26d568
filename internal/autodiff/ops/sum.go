package ops

import "github.com/born-ml/focal/internal/tensor"

// SumOp represents a full reduction to a 0-D tensor.
// Every input element receives the (scalar) output gradient.
type SumOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSumOp creates a new sum operation.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{
		input:  input,
		output: output,
	}
}

// Inputs returns the input tensors.
func (op *SumOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *SumOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward broadcasts the output gradient to the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{expandTo(outputGrad, op.input.Shape(), backend)}
}

// SumDimOp represents a sum along one dimension.
//
// Forward:
//
//	output = sum(input, dim, keepDim)
//
// Backward:
//
//	∂L/∂input = broadcast(∂L/∂output) along dim
type SumDimOp struct {
	input   *tensor.RawTensor
	output  *tensor.RawTensor
	dim     int
	keepDim bool
}

// NewSumDimOp creates a new sum-along-dimension operation.
func NewSumDimOp(input, output *tensor.RawTensor, dim int, keepDim bool) *SumDimOp {
	return &SumDimOp{
		input:   input,
		output:  output,
		dim:     dim,
		keepDim: keepDim,
	}
}

// Inputs returns the input tensors.
func (op *SumDimOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *SumDimOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward re-inserts the reduced axis when needed and broadcasts.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inShape := op.input.Shape()

	grad := outputGrad
	if !op.keepDim {
		grad = backend.Reshape(grad, inShape.ReduceDim(op.dim, true))
	}

	return []*tensor.RawTensor{expandTo(grad, inShape, backend)}
}
