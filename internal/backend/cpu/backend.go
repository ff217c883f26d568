// Package cpu implements the pure-Go CPU backend.
package cpu

import (
	"fmt"

	"github.com/born-ml/focal/internal/parallel"
	"github.com/born-ml/focal/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
//
// All operations allocate their result; operands are never modified.
// Element-wise kernels fan out over goroutines for large inputs, while
// reductions run sequentially in index order so results are reproducible.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend with default parallelism.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallel config.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", a, b, binaryAdd)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", a, b, binarySub)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", a, b, binaryMul)
}

// Div performs element-wise division with broadcasting.
// Division by zero follows IEEE 754 (±Inf or NaN).
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("div", a, b, binaryDiv)
}

// Reshape returns a copy of t with a different shape.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := t.WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}

func (cpu *CPUBackend) binary(op string, a, b *tensor.RawTensor, kind binaryKind) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	switch a.DType() {
	case tensor.Float32:
		binaryKernel(cpu.parallel, kind, result.AsFloat32(), a.AsFloat32(), b.AsFloat32(),
			a.Shape(), b.Shape(), outShape, needsBroadcast)
	case tensor.Float64:
		binaryKernel(cpu.parallel, kind, result.AsFloat64(), a.AsFloat64(), b.AsFloat64(),
			a.Shape(), b.Shape(), outShape, needsBroadcast)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, a.DType()))
	}

	return result
}
