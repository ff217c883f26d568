// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/focal/internal/backend/cpu"
	"github.com/born-ml/focal/internal/parallel"
	"github.com/born-ml/focal/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of all tensor operations
// used by the focal losses.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// ParallelConfig controls how element-wise kernels are split across goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig uses all CPUs for tensors large enough to benefit.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/focal/backend/cpu"
//	    "github.com/born-ml/focal/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with an explicit parallelism config.
// A zero ParallelConfig runs every kernel on the calling goroutine.
func NewWithConfig(cfg ParallelConfig) *Backend {
	return internalcpu.NewWithConfig(cfg)
}
