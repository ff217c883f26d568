// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation capabilities.
//
// This package implements reverse-mode automatic differentiation (backpropagation)
// using a gradient tape. It wraps any backend to add autodiff capabilities,
// which makes every focal loss differentiable with respect to its predictions.
//
// Example:
//
//	import (
//	    "github.com/born-ml/focal/autodiff"
//	    "github.com/born-ml/focal/backend/cpu"
//	    "github.com/born-ml/focal/nn"
//	    "github.com/born-ml/focal/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    backend.Tape().StartRecording()
//
//	    loss := nn.NewFocalBinaryCrossentropy[float32](backend, nn.DefaultFocalConfig())
//	    l := loss.Forward(yTrue, yPred) // Operations recorded on tape
//
//	    grads := autodiff.Backward(l, backend)
//	    dPred := autodiff.Grad(grads, yPred)
//	}
package autodiff

import (
	"github.com/born-ml/focal/internal/autodiff"
	"github.com/born-ml/focal/internal/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// New creates a new autodiff backend wrapping the given backend.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// BackwardCapable interface for backends that support backpropagation.
type BackwardCapable = autodiff.BackwardCapable

// Backward computes gradients of t with respect to every recorded input.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(t, backend)
}

// Grad returns the gradient of x from a Backward result, or nil.
func Grad[T tensor.DType, B tensor.Backend](grads map[*tensor.RawTensor]*tensor.RawTensor, x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return autodiff.Grad(grads, x)
}
