package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/focal/internal/parallel"
	"github.com/born-ml/focal/internal/tensor"
)

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("exp", x, math.Exp)
}

// Log computes element-wise natural logarithm: ln(x).
// Zero maps to -Inf and negative values to NaN; callers that need finite
// output clip their input first.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("log", x, math.Log)
}

// Pow raises each element to exponent.
// Integer exponents 0..3 take a multiply path; 0^0 is 1.
func (cpu *CPUBackend) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	var f func(float64) float64
	switch exponent {
	case 0:
		f = func(float64) float64 { return 1 }
	case 1:
		f = func(v float64) float64 { return v }
	case 2:
		f = func(v float64) float64 { return v * v }
	case 3:
		f = func(v float64) float64 { return v * v * v }
	default:
		f = func(v float64) float64 { return math.Pow(v, exponent) }
	}
	return cpu.unary("pow", x, f)
}

// Clamp clips each element into [lo, hi]. NaN stays NaN.
func (cpu *CPUBackend) Clamp(x *tensor.RawTensor, lo, hi float64) *tensor.RawTensor {
	if lo > hi {
		panic(fmt.Sprintf("clamp: lower bound %g exceeds upper bound %g", lo, hi))
	}
	return cpu.unary("clamp", x, func(v float64) float64 {
		switch {
		case v < lo:
			return lo
		case v > hi:
			return hi
		default:
			return v
		}
	})
}

// Sigmoid computes 1 / (1 + exp(-x)) without overflowing for large |x|.
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("sigmoid", x, sigmoid)
}

func sigmoid(v float64) float64 {
	if v >= 0 {
		return 1 / (1 + math.Exp(-v))
	}
	e := math.Exp(v)
	return e / (1 + e)
}

// unary allocates a result of x's shape and applies f to every element.
// float32 inputs are widened to float64 for the computation.
func (cpu *CPUBackend) unary(op string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		mapKernel(cpu.parallel, result.AsFloat32(), x.AsFloat32(), f)
	case tensor.Float64:
		mapKernel(cpu.parallel, result.AsFloat64(), x.AsFloat64(), f)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}

func mapKernel[T tensor.Float](cfg parallel.Config, dst, src []T, f func(float64) float64) {
	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = T(f(float64(src[i])))
		}
	}, cfg)
}
