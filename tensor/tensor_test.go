// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/focal/backend/cpu"
	"github.com/born-ml/focal/tensor"
)

// TestBackendInterface verifies that the CPU backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = cpu.New()
}

func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	assert.True(t, raw.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Float32, raw.DType())
	assert.Equal(t, tensor.CPU, raw.Device())
	assert.Equal(t, 6, raw.NumElements())

	raw.AsFloat32()[0] = 1
	clone := raw.Clone()
	clone.AsFloat32()[0] = 2
	assert.Equal(t, float32(1), raw.AsFloat32()[0], "Clone must not share data")
}

func TestTensorCreationFunctions(t *testing.T) {
	backend := cpu.New()

	zeros := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)
	assert.Equal(t, []float32{0, 0, 0, 0}, zeros.Data())

	ones := tensor.Ones[float64](tensor.Shape{3}, backend)
	assert.Equal(t, []float64{1, 1, 1}, ones.Data())

	full := tensor.Full[float32](tensor.Shape{2}, 0.25, backend)
	assert.Equal(t, []float32{0.25, 0.25}, full.Data())

	s := tensor.Scalar[float64](3, backend)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 3.0, s.Item())

	r := tensor.Randn[float32](tensor.Shape{4}, rand.New(rand.NewSource(1)), backend)
	assert.Equal(t, 4, r.NumElements())

	_, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}, backend)
	assert.Error(t, err)
}

func TestCast(t *testing.T) {
	backend := cpu.New()
	x := tensor.MustFromSlice([]float32{0.5, 1.5}, tensor.Shape{2}, backend)

	y := tensor.Cast[float64](x)
	assert.Equal(t, tensor.Float64, y.DType())
	assert.Equal(t, []float64{0.5, 1.5}, y.Data())
}

func TestBroadcastShapes(t *testing.T) {
	shape, needs, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{3, 4})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 4}, shape)
	assert.True(t, needs)

	_, _, err = tensor.BroadcastShapes(tensor.Shape{2}, tensor.Shape{3})
	assert.Error(t, err)
}
