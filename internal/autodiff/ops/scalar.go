package ops

import "github.com/born-ml/focal/internal/tensor"

// ScalarKind selects the arithmetic of a ScalarOp.
type ScalarKind int

// Scalar arithmetic kinds.
const (
	ScalarAdd ScalarKind = iota
	ScalarSub
	ScalarMul
	ScalarDiv
)

// ScalarOp represents element-wise arithmetic with a constant:
// output = input (+ - * /) scalar.
//
// Backward pass:
//   - add, sub: grad_input = outputGrad
//   - mul: grad_input = outputGrad * scalar
//   - div: grad_input = outputGrad / scalar
type ScalarOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	kind   ScalarKind
	scalar float64
}

// NewScalarOp creates a new scalar arithmetic operation.
func NewScalarOp(kind ScalarKind, input, output *tensor.RawTensor, scalar float64) *ScalarOp {
	return &ScalarOp{
		input:  input,
		output: output,
		kind:   kind,
		scalar: scalar,
	}
}

// Inputs returns the input tensors.
func (op *ScalarOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *ScalarOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward computes the gradient with respect to input.
func (op *ScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	var grad *tensor.RawTensor
	switch op.kind {
	case ScalarMul:
		grad = backend.MulScalar(outputGrad, op.scalar)
	case ScalarDiv:
		grad = backend.DivScalar(outputGrad, op.scalar)
	default:
		grad = outputGrad.Clone()
	}
	return []*tensor.RawTensor{grad}
}
