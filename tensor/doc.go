// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the focal loss library.
//
// # Overview
//
// Tensors carry predictions, targets and sample weights into the losses.
// This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Backend abstraction (CPU, autodiff decorator)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/focal/tensor"
//	    "github.com/born-ml/focal/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    yTrue := tensor.MustFromSlice([]float32{0, 1}, tensor.Shape{2}, backend)
//	    logits := tensor.MustFromSlice([]float32{-1.2, 0.4}, tensor.Shape{2}, backend)
//
//	    p := logits.Sigmoid()
//	    pT := yTrue.Mul(p).Add(yTrue.RSubScalar(1).Mul(p.RSubScalar(1)))
//	}
//
// # Supported Data Types
//
// The DType constraint admits float32, float64, int32 and int64. Arithmetic
// kernels support the floating-point types only; integer tensors can be
// created and cast to floats.
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend)     // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4}, backend)      // (3, 4)
//	c := a.Add(b)                                                // (3, 4)
//
// # Immutability
//
// Operations never modify their operands; each returns a new tensor.
// Data() is a view, so writes through it are visible to the tensor.
//
// # Available Operations
//
// Scalar operations:
//
//	y := x.MulScalar(2.0)    // Multiply by scalar
//	y := x.AddScalar(1.0)    // Add scalar
//	y := x.RSubScalar(1.0)   // 1 - x
//
// Math operations:
//
//	y := x.Exp()             // Exponential
//	y := x.Log()             // Natural logarithm
//	y := x.Pow(2)            // Power
//	y := x.Clamp(lo, hi)     // Clip
//
// Activations and reductions:
//
//	y := x.Sigmoid()
//	y := x.Softmax(-1)
//	s := x.SumDim(-1, true)
//	m := x.Mean()
package tensor
