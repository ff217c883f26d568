// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/focal/internal/nn"
	"github.com/born-ml/focal/internal/optim"
	"github.com/born-ml/focal/internal/tensor"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD[T tensor.Float, B tensor.Backend] = optim.SGD[T, B]

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	logits := nn.NewParameter("logits", tensor.Zeros[float32](tensor.Shape{8}, backend))
//	optimizer := optim.NewSGD(
//	    []*nn.Parameter[float32, *autodiff.Backend[*cpu.Backend]]{logits},
//	    optim.SGDConfig{LR: 0.1, Momentum: 0.9},
//	)
func NewSGD[T tensor.Float, B tensor.Backend](params []*nn.Parameter[T, B], config SGDConfig) *SGD[T, B] {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam[T tensor.Float, B tensor.Backend] = optim.Adam[T, B]

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(params, optim.AdamConfig{
//	    LR:    0.01,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam[T tensor.Float, B tensor.Backend](params []*nn.Parameter[T, B], config AdamConfig) *Adam[T, B] {
	return optim.NewAdam(params, config)
}
