package ops

import "github.com/born-ml/focal/internal/tensor"

// SoftmaxOp represents the softmax operation along one dimension.
//
// Forward (for each lane along dim):
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// Backward:
//
//	The Jacobian of softmax is:
//	∂softmax_i/∂x_j = softmax_i * (δ_ij - softmax_j)
//
//	Chain rule gives:
//	∂L/∂x_j = softmax_j * (∂L/∂softmax_j - Σ_i (∂L/∂softmax_i * softmax_i))
type SoftmaxOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor // Cached softmax output for backward pass
	dim    int
}

// NewSoftmaxOp creates a new softmax operation over dim.
func NewSoftmaxOp(input, output *tensor.RawTensor, dim int) *SoftmaxOp {
	return &SoftmaxOp{
		input:  input,
		output: output,
		dim:    dim,
	}
}

// Inputs returns the input tensors.
func (op *SoftmaxOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *SoftmaxOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward computes the gradient with respect to input.
func (op *SoftmaxOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	s := op.output

	// Σ_i (∂L/∂softmax_i * softmax_i), kept broadcastable along dim
	dot := backend.SumDim(backend.Mul(outputGrad, s), op.dim, true)

	inputGrad := backend.Mul(s, backend.Sub(outputGrad, dot))
	return []*tensor.RawTensor{inputGrad}
}
