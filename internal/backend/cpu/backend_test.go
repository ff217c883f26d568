package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/focal/internal/parallel"
	"github.com/born-ml/focal/internal/tensor"
)

func raw32(t *testing.T, shape tensor.Shape, data ...float32) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	copy(r.AsFloat32(), data)
	return r
}

func raw64(t *testing.T, shape tensor.Shape, data ...float64) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(r.AsFloat64(), data)
	return r
}

func assertSliceInDelta(t *testing.T, expected, actual []float64, delta float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, "index %d", i)
	}
}

func TestCPUBackend_New(t *testing.T) {
	backend := New()
	require.NotNil(t, backend)
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestCPUBackend_Binary(t *testing.T) {
	backend := New()

	t.Run("SameShape", func(t *testing.T) {
		a := raw32(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		b := raw32(t, tensor.Shape{2, 3}, 10, 11, 12, 13, 14, 15)

		assertSliceInDelta(t, []float64{11, 13, 15, 17, 19, 21}, backend.Add(a, b).Float64s(), 1e-6)
		assertSliceInDelta(t, []float64{-9, -9, -9, -9, -9, -9}, backend.Sub(a, b).Float64s(), 1e-6)
		assertSliceInDelta(t, []float64{10, 22, 36, 52, 70, 90}, backend.Mul(a, b).Float64s(), 1e-6)
		assertSliceInDelta(t, []float64{0.1, 2.0 / 11, 0.25, 4.0 / 13, 5.0 / 14, 0.4}, backend.Div(a, b).Float64s(), 1e-6)
	})

	t.Run("Broadcast", func(t *testing.T) {
		a := raw64(t, tensor.Shape{2, 1}, 1, 2)
		b := raw64(t, tensor.Shape{3}, 10, 20, 30)

		out := backend.Add(a, b)
		assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
		assertSliceInDelta(t, []float64{11, 21, 31, 12, 22, 32}, out.Float64s(), 1e-12)

		s := raw64(t, tensor.Shape{}, 2)
		out = backend.Mul(b, s)
		assert.Equal(t, tensor.Shape{3}, out.Shape())
		assertSliceInDelta(t, []float64{20, 40, 60}, out.Float64s(), 1e-12)
	})

	t.Run("OperandsUntouched", func(t *testing.T) {
		a := raw64(t, tensor.Shape{2}, 1, 2)
		b := raw64(t, tensor.Shape{2}, 3, 4)
		_ = backend.Add(a, b)
		_ = backend.MulScalar(a, 10)
		assert.Equal(t, []float64{1, 2}, a.Float64s())
		assert.Equal(t, []float64{3, 4}, b.Float64s())
	})

	t.Run("Incompatible", func(t *testing.T) {
		a := raw64(t, tensor.Shape{2, 3}, 0, 0, 0, 0, 0, 0)
		b := raw64(t, tensor.Shape{4}, 0, 0, 0, 0)
		assert.PanicsWithValue(t,
			"add: shapes not compatible for broadcasting: [2 3] vs [4] (dimension 1: 3 vs 4)",
			func() { backend.Add(a, b) })
	})

	t.Run("DTypeMismatch", func(t *testing.T) {
		a := raw64(t, tensor.Shape{1}, 1)
		b := raw32(t, tensor.Shape{1}, 1)
		assert.Panics(t, func() { backend.Mul(a, b) })
	})
}

func TestCPUBackend_ParallelMatchesSequential(t *testing.T) {
	par := NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8})
	seq := NewWithConfig(parallel.Sequential())

	n := 1000
	a, _ := tensor.NewRaw(tensor.Shape{n / 10, 10}, tensor.Float64, tensor.CPU)
	b, _ := tensor.NewRaw(tensor.Shape{10}, tensor.Float64, tensor.CPU)
	aData, bData := a.AsFloat64(), b.AsFloat64()
	for i := range aData {
		aData[i] = float64(i%17) - 8
	}
	for i := range bData {
		bData[i] = float64(i) / 10
	}

	assert.Equal(t, seq.Mul(a, b).Float64s(), par.Mul(a, b).Float64s())
	assert.Equal(t, seq.Sigmoid(a).Float64s(), par.Sigmoid(a).Float64s())
	assert.Equal(t, seq.Softmax(a, -1).Float64s(), par.Softmax(a, -1).Float64s())
	assert.Equal(t, seq.Sum(a).Float64s(), par.Sum(a).Float64s())
}

func TestCPUBackend_Scalar(t *testing.T) {
	backend := New()
	x := raw32(t, tensor.Shape{3}, 1, 2, 4)

	assertSliceInDelta(t, []float64{1.5, 2.5, 4.5}, backend.AddScalar(x, 0.5).Float64s(), 1e-6)
	assertSliceInDelta(t, []float64{0, 1, 3}, backend.SubScalar(x, 1).Float64s(), 1e-6)
	assertSliceInDelta(t, []float64{-1, -2, -4}, backend.MulScalar(x, -1).Float64s(), 1e-6)
	assertSliceInDelta(t, []float64{0.25, 0.5, 1}, backend.DivScalar(x, 4).Float64s(), 1e-6)
}

func TestCPUBackend_Math(t *testing.T) {
	backend := New()
	x := raw64(t, tensor.Shape{4}, -2, 0, 0.5, 3)

	t.Run("Exp", func(t *testing.T) {
		assertSliceInDelta(t, []float64{math.Exp(-2), 1, math.Exp(0.5), math.Exp(3)}, backend.Exp(x).Float64s(), 1e-12)
	})

	t.Run("LogNonPositive", func(t *testing.T) {
		out := backend.Log(x).Float64s()
		assert.True(t, math.IsNaN(out[0]))
		assert.True(t, math.IsInf(out[1], -1))
		assert.InDelta(t, math.Log(0.5), out[2], 1e-12)
	})

	t.Run("Pow", func(t *testing.T) {
		assertSliceInDelta(t, []float64{4, 0, 0.25, 9}, backend.Pow(x, 2).Float64s(), 1e-12)
		assertSliceInDelta(t, []float64{1, 1, 1, 1}, backend.Pow(x, 0).Float64s(), 1e-12)
		assertSliceInDelta(t, []float64{0, math.Sqrt(0.5), math.Sqrt(3)}, backend.Pow(raw64(t, tensor.Shape{3}, 0, 0.5, 3), 0.5).Float64s(), 1e-12)
	})

	t.Run("Clamp", func(t *testing.T) {
		assertSliceInDelta(t, []float64{-1, 0, 0.5, 1}, backend.Clamp(x, -1, 1).Float64s(), 1e-12)
		assert.Panics(t, func() { backend.Clamp(x, 1, 0) })
	})

	t.Run("Sigmoid", func(t *testing.T) {
		out := backend.Sigmoid(raw64(t, tensor.Shape{3}, 0, -1000, 1000)).Float64s()
		assertSliceInDelta(t, []float64{0.5, 0, 1}, out, 1e-12)
		for _, v := range out {
			assert.False(t, math.IsNaN(v))
		}
	})
}

func TestCPUBackend_Softmax(t *testing.T) {
	backend := New()

	t.Run("LastDim", func(t *testing.T) {
		x := raw64(t, tensor.Shape{2, 3}, 1, 2, 3, 1000, 1000, 1000)
		out := backend.Softmax(x, -1).Float64s()

		e := []float64{math.Exp(1), math.Exp(2), math.Exp(3)}
		z := e[0] + e[1] + e[2]
		assertSliceInDelta(t, []float64{e[0] / z, e[1] / z, e[2] / z, 1.0 / 3, 1.0 / 3, 1.0 / 3}, out, 1e-12)
	})

	t.Run("FirstDim", func(t *testing.T) {
		x := raw32(t, tensor.Shape{2, 2}, 0, 5, 0, 5)
		out := backend.Softmax(x, 0).Float64s()
		assertSliceInDelta(t, []float64{0.5, 0.5, 0.5, 0.5}, out, 1e-6)
	})

	t.Run("RowsSumToOne", func(t *testing.T) {
		x := raw64(t, tensor.Shape{2, 3, 4}, make([]float64, 24)...)
		for i := range x.AsFloat64() {
			x.AsFloat64()[i] = math.Sin(float64(i))
		}
		sums := backend.SumDim(backend.Softmax(x, 1), 1, false)
		assert.Equal(t, tensor.Shape{2, 4}, sums.Shape())
		for _, s := range sums.Float64s() {
			assert.InDelta(t, 1.0, s, 1e-12)
		}
	})

	t.Run("BadDim", func(t *testing.T) {
		x := raw64(t, tensor.Shape{2}, 1, 2)
		assert.Panics(t, func() { backend.Softmax(x, 1) })
	})
}

func TestCPUBackend_Reduce(t *testing.T) {
	backend := New()
	x := raw64(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)

	sum := backend.Sum(x)
	assert.Empty(t, sum.Shape())
	assert.InDelta(t, 21.0, sum.AsFloat64()[0], 1e-12)

	rows := backend.SumDim(x, -1, false)
	assert.Equal(t, tensor.Shape{2}, rows.Shape())
	assertSliceInDelta(t, []float64{6, 15}, rows.Float64s(), 1e-12)

	cols := backend.SumDim(x, 0, true)
	assert.Equal(t, tensor.Shape{1, 3}, cols.Shape())
	assertSliceInDelta(t, []float64{5, 7, 9}, cols.Float64s(), 1e-12)

	sum32 := backend.Sum(raw32(t, tensor.Shape{4}, 0.1, 0.2, 0.3, 0.4))
	assert.InDelta(t, 1.0, float64(sum32.AsFloat32()[0]), 1e-6)
}

func TestCPUBackend_ReshapeAndCast(t *testing.T) {
	backend := New()
	x := raw64(t, tensor.Shape{2, 3}, 1.9, -1.9, 3, 4, 5, 6)

	r := backend.Reshape(x, tensor.Shape{3, 2})
	assert.Equal(t, tensor.Shape{3, 2}, r.Shape())
	assert.Equal(t, x.Float64s(), r.Float64s())
	assert.Panics(t, func() { backend.Reshape(x, tensor.Shape{4}) })

	i32 := backend.Cast(x, tensor.Int32)
	assert.Equal(t, []int32{1, -1, 3, 4, 5, 6}, i32.AsInt32())

	f32 := backend.Cast(i32, tensor.Float32)
	assert.Equal(t, []float32{1, -1, 3, 4, 5, 6}, f32.AsFloat32())

	same := backend.Cast(x, tensor.Float64)
	same.AsFloat64()[0] = 0
	assert.InDelta(t, 1.9, x.AsFloat64()[0], 1e-12, "same-dtype cast must copy")
}
