package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/focal/internal/parallel"
	"github.com/born-ml/focal/internal/tensor"
)

// Softmax computes softmax along the specified dimension.
// Softmax(x_i) = exp(x_i - max) / sum(exp(x_j - max)) for all j in dimension.
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) == 0 {
		panic("softmax: scalar tensor has no dimension to normalize")
	}
	dim = normalizeDim("softmax", shape, dim)

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("softmax: %v", err))
	}

	l := lanesOf(shape, dim)
	switch x.DType() {
	case tensor.Float32:
		softmaxKernel(cpu.parallel, result.AsFloat32(), x.AsFloat32(), l)
	case tensor.Float64:
		softmaxKernel(cpu.parallel, result.AsFloat64(), x.AsFloat64(), l)
	default:
		panic(fmt.Sprintf("softmax: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

func softmaxKernel[T tensor.Float](cfg parallel.Config, dst, src []T, l lanes) {
	parallel.ForRange(l.count(), func(start, end int) {
		for lane := start; lane < end; lane++ {
			base := l.base(lane)

			maxVal := math.Inf(-1)
			for k := 0; k < l.size; k++ {
				maxVal = math.Max(maxVal, float64(src[base+k*l.stride]))
			}

			var sum float64
			for k := 0; k < l.size; k++ {
				idx := base + k*l.stride
				e := math.Exp(float64(src[idx]) - maxVal)
				dst[idx] = T(e)
				sum += e
			}

			for k := 0; k < l.size; k++ {
				idx := base + k*l.stride
				dst[idx] = T(float64(dst[idx]) / sum)
			}
		}
	}, cfg)
}

// lanes describes the 1-D slices of a row-major tensor running along one
// dimension: outer*inner lanes of size elements, stride apart.
type lanes struct {
	outer  int
	size   int
	inner  int
	stride int
}

func lanesOf(shape tensor.Shape, dim int) lanes {
	l := lanes{outer: 1, size: shape[dim], inner: 1}
	for i, d := range shape {
		switch {
		case i < dim:
			l.outer *= d
		case i > dim:
			l.inner *= d
		}
	}
	l.stride = l.inner
	return l
}

func (l lanes) count() int {
	return l.outer * l.inner
}

// base returns the flat index of the first element of lane i.
// Lane i also indexes the reduced output (shape without dim) directly.
func (l lanes) base(i int) int {
	o, in := i/l.inner, i%l.inner
	return o*l.size*l.inner + in
}

func normalizeDim(op string, shape tensor.Shape, dim int) int {
	ndim := len(shape)
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for %dD tensor", op, dim, ndim))
	}
	return dim
}
