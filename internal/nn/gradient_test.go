package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/focal/internal/autodiff"
	"github.com/born-ml/focal/internal/backend/cpu"
	"github.com/born-ml/focal/internal/nn"
	"github.com/born-ml/focal/internal/tensor"
)

func checkLossGradient(t *testing.T, variant string, yTrue, point []float64, shape tensor.Shape, cfg nn.FocalConfig) {
	t.Helper()

	newLoss := func(backend tensor.Backend) *nn.FocalLoss[float64, tensor.Backend] {
		if variant == "binary" {
			return nn.NewFocalBinaryCrossentropy[float64](backend, cfg)
		}
		return nn.NewFocalCategoricalCrossentropy[float64](backend, cfg)
	}

	var backend tensor.Backend = autodiff.New(cpu.New())
	ad := backend.(*autodiff.AutodiffBackend[*cpu.CPUBackend])
	ad.Tape().StartRecording()

	y := tensor.MustFromSlice(yTrue, shape, backend)
	x := tensor.MustFromSlice(point, shape, backend)
	loss := newLoss(backend).Forward(y, x)

	grads := ad.Tape().BackwardFrom(loss.Raw(), tensor.Scalar(1.0, backend).Raw(), backend)
	gx := autodiff.Grad(grads, x)
	require.NotNil(t, gx)

	var plain tensor.Backend = cpu.New()
	yPlain := tensor.MustFromSlice(yTrue, shape, plain)
	f := func(v []float64) float64 {
		return newLoss(plain).Forward(yPlain, tensor.MustFromSlice(v, shape, plain)).Item()
	}
	numeric := fd.Gradient(nil, f, point, &fd.Settings{Formula: fd.Central, Step: 1e-6})

	assert.InDeltaSlice(t, numeric, gx.Data(), 1e-6)
}

func TestGradientCheck_Binary(t *testing.T) {
	cfg := nn.FocalConfig{Alpha: 0.25, Gamma: 2, FromLogits: true}
	checkLossGradient(t, "binary",
		[]float64{0, 1, 0, 1, 1, 0},
		[]float64{-1.2, 0.51, 2.1, -0.7, 1.5, 0.3},
		tensor.Shape{2, 3}, cfg)

	cfg.FromLogits = false
	cfg.Gamma = 1.5
	checkLossGradient(t, "binary",
		[]float64{1, 0, 1, 0},
		[]float64{0.2, 0.35, 0.9, 0.6},
		tensor.Shape{4}, cfg)
}

func TestGradientCheck_Categorical(t *testing.T) {
	cfg := nn.FocalConfig{Alpha: 0.25, Gamma: 2, FromLogits: true, Reduction: nn.ReductionSum}
	checkLossGradient(t, "categorical",
		[]float64{0, 1, 0, 0, 0, 1},
		[]float64{0.3, -0.2, 1.1, 0.05, 0.8, -0.6},
		tensor.Shape{2, 3}, cfg)

	cfg.FromLogits = false
	checkLossGradient(t, "categorical",
		[]float64{1, 0, 0, 0, 1, 0},
		[]float64{0.5, 0.3, 0.2, 0.1, 0.6, 0.3},
		tensor.Shape{2, 3}, cfg)
}
