// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - NumPy-compatible broadcasting
//   - Goroutine-parallel element-wise kernels for large tensors
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/focal/backend/cpu"
//	    "github.com/born-ml/focal/nn"
//	    "github.com/born-ml/focal/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    yTrue := tensor.MustFromSlice([]float32{0, 1}, tensor.Shape{2}, backend)
//	    yPred := tensor.MustFromSlice([]float32{0.3, 0.8}, tensor.Shape{2}, backend)
//
//	    loss := nn.NewFocalBinaryCrossentropy[float32](backend, nn.DefaultFocalConfig())
//	    l := loss.Forward(yTrue, yPred)
//	}
//
// # Numerics
//
// float32 inputs are widened to float64 inside unary kernels and
// reductions, and narrowed on store. Reductions accumulate in index order,
// so results are reproducible run to run.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
