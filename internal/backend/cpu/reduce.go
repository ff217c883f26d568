package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/focal/internal/tensor"
)

// SumDim sums tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	x := tensor.Randn[float32]([]int{2, 3, 4}, rng, backend)
//	y := backend.SumDim(x.Raw(), -1, true)   // shape: [2, 3, 1]
//	z := backend.SumDim(x.Raw(), -1, false)  // shape: [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) == 0 {
		panic("sumdim: scalar tensor has no dimension to reduce")
	}
	dim = normalizeDim("sumdim", shape, dim)

	result, err := tensor.NewRaw(shape.ReduceDim(dim, keepDim), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	l := lanesOf(shape, dim)
	switch x.DType() {
	case tensor.Float32:
		sumDimKernel(result.AsFloat32(), x.AsFloat32(), l)
	case tensor.Float64:
		sumDimKernel(result.AsFloat64(), x.AsFloat64(), l)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// sumDimKernel accumulates each lane in float64 and in index order.
func sumDimKernel[T tensor.Float](dst, src []T, l lanes) {
	for lane := 0; lane < l.count(); lane++ {
		base := l.base(lane)
		var sum float64
		for k := 0; k < l.size; k++ {
			sum += float64(src[base+k*l.stride])
		}
		dst[lane] = T(sum)
	}
}

// Sum computes the sum of all elements and returns a 0-D tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		var sum float64
		for _, v := range x.AsFloat32() {
			sum += float64(v)
		}
		result.AsFloat32()[0] = float32(sum)
	case tensor.Float64:
		result.AsFloat64()[0] = floats.Sum(x.AsFloat64())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}
