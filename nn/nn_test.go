// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/focal/autodiff"
	"github.com/born-ml/focal/backend/cpu"
	"github.com/born-ml/focal/nn"
	"github.com/born-ml/focal/tensor"
)

// TestLossInterface verifies that FocalLoss implements Loss.
func TestLossInterface(_ *testing.T) {
	backend := cpu.New()
	var _ nn.Loss[float32, *cpu.Backend] = nn.NewFocalBinaryCrossentropy[float32](backend, nn.DefaultFocalConfig())
	var _ nn.Loss[float64, *cpu.Backend] = nn.NewFocalCategoricalCrossentropy[float64](backend, nn.DefaultFocalConfig())
}

func TestPublicFocalLoss(t *testing.T) {
	backend := cpu.New()
	yTrue := tensor.MustFromSlice([]float64{0, 1, 0, 0}, tensor.Shape{4}, backend)
	logits := tensor.MustFromSlice([]float64{-18.6, 0.51, 2.94, -12.8}, tensor.Shape{4}, backend)

	cfg := nn.DefaultFocalConfig()
	cfg.FromLogits = true
	loss := nn.NewFocalBinaryCrossentropy[float64](backend, cfg)

	assert.Equal(t, nn.FocalBinaryCrossentropyName, loss.Name())
	assert.InDelta(t, 0.51013, loss.Forward(yTrue, logits).Item(), 1e-5)

	perExample := nn.FocalBinaryCrossentropy(yTrue, logits, nn.DefaultAlpha, nn.DefaultGamma, true)
	assert.Equal(t, tensor.Shape{4}, perExample.Shape())
}

func TestPublicConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focal.yaml")
	cfg := nn.FocalConfig{Alpha: 0.5, Gamma: 1, Reduction: nn.ReductionSum}

	require.NoError(t, nn.SaveConfig(path, cfg))
	got, err := nn.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	r, err := nn.ParseReduction("sum_over_batch_size")
	require.NoError(t, err)
	assert.Equal(t, nn.ReductionAuto, r)
}

func TestPublicGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	yTrue := tensor.MustFromSlice([]float32{0, 0, 1}, tensor.Shape{1, 3}, backend)
	logits := tensor.MustFromSlice([]float32{0.5, 0.2, 0.1}, tensor.Shape{1, 3}, backend)

	cfg := nn.DefaultFocalConfig()
	cfg.FromLogits = true
	l := nn.NewFocalCategoricalCrossentropy[float32](backend, cfg).Forward(yTrue, logits)

	grads := autodiff.Backward(l, backend)
	g := autodiff.Grad(grads, logits)
	require.NotNil(t, g)

	data := g.Data()
	assert.Less(t, data[2], float32(0), "raising the true class logit lowers the loss")
	assert.Greater(t, data[0], float32(0))
}
