// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go kernels
//
// Decorator backends for additional functionality:
//   - autodiff: Automatic differentiation (wraps any backend)
//
// Example:
//
//	import (
//	    "github.com/born-ml/focal/tensor"
//	    "github.com/born-ml/focal/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
type Backend interface {
	// Element-wise binary operations (NumPy broadcasting).
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar float64) *RawTensor // Add scalar.
	SubScalar(x *RawTensor, scalar float64) *RawTensor // Subtract scalar.
	MulScalar(x *RawTensor, scalar float64) *RawTensor // Multiply by scalar.
	DivScalar(x *RawTensor, scalar float64) *RawTensor // Divide by scalar.

	// Math operations (element-wise).
	Pow(x *RawTensor, exponent float64) *RawTensor // Power.
	Exp(x *RawTensor) *RawTensor                   // Exponential.
	Log(x *RawTensor) *RawTensor                   // Natural logarithm.
	Clamp(x *RawTensor, lo, hi float64) *RawTensor // Clip into [lo, hi].

	// Activation functions.
	Sigmoid(x *RawTensor) *RawTensor          // Logistic sigmoid.
	Softmax(x *RawTensor, dim int) *RawTensor // Softmax along dimension.

	// Reduction operations.
	Sum(x *RawTensor) *RawTensor                           // Total sum (0-D result).
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor // Sum along dimension.

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor // Reshape tensor.

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor // Convert element type.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Compute device.
}
