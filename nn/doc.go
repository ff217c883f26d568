// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides focal crossentropy losses.
//
// # Overview
//
// Focal loss down-weights well-classified examples so that training
// concentrates on hard ones. This package contains:
//   - Transforms: FocalBinaryCrossentropy, FocalCategoricalCrossentropy
//   - Loss objects: FocalLoss with mean, sum or no reduction
//   - Configuration: FocalConfig with YAML/JSON persistence
//   - Parameter: trainable tensors for use with optim
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
//	    loss := nn.NewFocalBinaryCrossentropy[float32](backend, nn.FocalConfig{
//	        Alpha:      0.25,
//	        Gamma:      2,
//	        FromLogits: true,
//	    })
//
//	    yTrue := tensor.MustFromSlice([]float32{0, 1, 0, 0}, tensor.Shape{4}, backend)
//	    logits := tensor.MustFromSlice([]float32{-18.6, 0.51, 2.94, -12.8}, tensor.Shape{4}, backend)
//	    fmt.Println(loss.Forward(yTrue, logits).Item()) // ~0.51
//	}
//
// # Sample Weights
//
// ForwardWeighted scales per-example losses before reduction. A weight of
// lower rank than the loss is aligned to its leading axes, so a [batch]
// weight scales rows of a [batch, n] loss:
//
//	w := tensor.MustFromSlice([]float32{0.8, 0.2}, tensor.Shape{2}, backend)
//	l := loss.ForwardWeighted(yTrue, logits, w)
//
// # Reduction
//
// Mean divides the weighted sum by the number of loss elements, including
// those with zero weight. Sum returns the weighted sum and None returns
// the weighted per-example tensor.
//
// # Gradients
//
// Losses are built from backend primitives. With an autodiff backend they
// are differentiable with respect to predictions:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	l := loss.Forward(yTrue, logits)
//	grads := autodiff.Backward(l, backend)
package nn
