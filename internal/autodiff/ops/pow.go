package ops

import "github.com/born-ml/focal/internal/tensor"

// PowOp represents raising to a constant exponent: output = input^p.
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * p * input^(p-1)
//
// For p = 0 the gradient is zero everywhere.
type PowOp struct {
	input    *tensor.RawTensor
	output   *tensor.RawTensor
	exponent float64
}

// NewPowOp creates a new power operation.
func NewPowOp(input, output *tensor.RawTensor, exponent float64) *PowOp {
	return &PowOp{
		input:    input,
		output:   output,
		exponent: exponent,
	}
}

// Inputs returns the input tensors.
func (op *PowOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *PowOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward computes the gradient with respect to input.
func (op *PowOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	if op.exponent == 0 {
		return []*tensor.RawTensor{zerosLike(op.input, backend)}
	}

	derivative := backend.MulScalar(backend.Pow(op.input, op.exponent-1), op.exponent)
	return []*tensor.RawTensor{backend.Mul(outputGrad, derivative)}
}
