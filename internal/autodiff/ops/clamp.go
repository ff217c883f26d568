package ops

import (
	"fmt"

	"github.com/born-ml/focal/internal/tensor"
)

// ClampOp represents clipping into [lo, hi].
//
// Backward:
//
//	∂L/∂input = ∂L/∂output where lo <= input <= hi, 0 elsewhere
type ClampOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	lo, hi float64
}

// NewClampOp creates a new clamp operation.
func NewClampOp(input, output *tensor.RawTensor, lo, hi float64) *ClampOp {
	return &ClampOp{
		input:  input,
		output: output,
		lo:     lo,
		hi:     hi,
	}
}

// Inputs returns the input tensors.
func (op *ClampOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *ClampOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward masks the output gradient with the pass-through region.
func (op *ClampOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	mask, err := tensor.NewRaw(op.input.Shape(), op.input.DType(), backend.Device())
	if err != nil {
		panic(fmt.Sprintf("ClampOp: %v", err))
	}

	switch op.input.DType() {
	case tensor.Float32:
		fillClampMask(mask.AsFloat32(), op.input.AsFloat32(), op.lo, op.hi)
	case tensor.Float64:
		fillClampMask(mask.AsFloat64(), op.input.AsFloat64(), op.lo, op.hi)
	default:
		panic("ClampOp: backward only supports float32 and float64")
	}

	return []*tensor.RawTensor{backend.Mul(outputGrad, mask)}
}

func fillClampMask[T tensor.Float](mask, x []T, lo, hi float64) {
	for i, v := range x {
		if f := float64(v); f >= lo && f <= hi {
			mask[i] = 1
		}
	}
}
