package cpu

import (
	"fmt"

	"github.com/born-ml/focal/internal/parallel"
	"github.com/born-ml/focal/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.
// The scalar is converted to the tensor's dtype before the arithmetic.

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.scalar("mulScalar", x, scalar, binaryMul)
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.scalar("addScalar", x, scalar, binaryAdd)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.scalar("subScalar", x, scalar, binarySub)
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.scalar("divScalar", x, scalar, binaryDiv)
}

func (cpu *CPUBackend) scalar(op string, x *tensor.RawTensor, scalar float64, kind binaryKind) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		scalarKernel(cpu.parallel, kind, result.AsFloat32(), x.AsFloat32(), float32(scalar))
	case tensor.Float64:
		scalarKernel(cpu.parallel, kind, result.AsFloat64(), x.AsFloat64(), scalar)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", op, x.DType()))
	}

	return result
}

func scalarKernel[T tensor.Float](cfg parallel.Config, kind binaryKind, dst, src []T, s T) {
	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = applyBinary(kind, src[i], s)
		}
	}, cfg)
}
