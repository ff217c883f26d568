// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for fitting parameters
// against a focal loss.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/focal/autodiff"
//	    "github.com/born-ml/focal/backend/cpu"
//	    "github.com/born-ml/focal/nn"
//	    "github.com/born-ml/focal/optim"
//	    "github.com/born-ml/focal/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    logits := nn.NewParameter("logits", tensor.Zeros[float32](tensor.Shape{4}, backend))
//	    loss := nn.NewFocalBinaryCrossentropy[float32](backend, nn.FocalConfig{
//	        Alpha: 0.25, Gamma: 2, FromLogits: true,
//	    })
//	    optimizer := optim.NewAdam(
//	        []*nn.Parameter[float32, *autodiff.Backend[*cpu.Backend]]{logits},
//	        optim.AdamConfig{LR: 0.1},
//	    )
//
//	    for range 100 {
//	        backend.Tape().Clear()
//	        backend.Tape().StartRecording()
//	        l := loss.Forward(yTrue, logits.Tensor())
//	        grads := autodiff.Backward(l, backend)
//	        backend.Tape().StopRecording()
//
//	        optimizer.Step(grads)
//	        optimizer.ZeroGrad()
//	    }
//	}
//
// # Updates
//
// Optimizers write parameter memory directly. Updates are never recorded
// on a gradient tape.
package optim
