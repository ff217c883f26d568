package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/focal/internal/backend/cpu"
	"github.com/born-ml/focal/internal/nn"
	"github.com/born-ml/focal/internal/tensor"
)

func bceRef(y, p float64) float64 {
	p = math.Min(math.Max(p, nn.Epsilon), 1-nn.Epsilon)
	return -(y*math.Log(p+nn.Epsilon) + (1-y)*math.Log(1-p+nn.Epsilon))
}

func TestFocalBinaryCrossentropy_FromLogits(t *testing.T) {
	backend := cpu.New()
	yTrue := tensor.MustFromSlice([]float64{0, 1, 0, 0}, tensor.Shape{4}, backend)
	yPred := tensor.MustFromSlice([]float64{-18.6, 0.51, 2.94, -12.8}, tensor.Shape{4}, backend)

	loss := nn.FocalBinaryCrossentropy(yTrue, yPred, nn.DefaultAlpha, nn.DefaultGamma, true)

	assert.Equal(t, tensor.Shape{4}, loss.Shape())
	got := loss.Data()
	assert.InDelta(t, 0.0, got[0], 1e-12)
	assert.InDelta(t, 0.0165515, got[1], 1e-6)
	assert.InDelta(t, 2.0239816, got[2], 1e-6)
	assert.InDelta(t, 0.0, got[3], 1e-12)
}

func TestFocalBinaryCrossentropy_GammaZeroIsWeightedBCE(t *testing.T) {
	backend := cpu.New()
	ys := []float64{0, 1, 1, 0, 0.3}
	ps := []float64{0.2, 0.7, 0.01, 0.99, 0.5}

	yTrue := tensor.MustFromSlice(ys, tensor.Shape{5}, backend)
	yPred := tensor.MustFromSlice(ps, tensor.Shape{5}, backend)

	loss := nn.FocalBinaryCrossentropy(yTrue, yPred, 0.5, 0, false).Data()
	for i := range ys {
		assert.InDelta(t, 0.5*bceRef(ys[i], ps[i]), loss[i], 1e-9, "index %d", i)
	}
}

func TestFocalBinaryCrossentropy_SymmetricAtHalfAlpha(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name  string
		y, p  float64
		gamma float64
	}{
		{"positive confident", 1, 0.8, 2},
		{"positive unsure", 1, 0.3, 2},
		{"negative confident", 0, 0.05, 2},
		{"negative wrong", 0, 0.9, 2},
		{"near zero", 1, 1e-4, 2},
		{"near one", 0, 1 - 1e-4, 2},
		{"gamma zero", 1, 0.6, 0},
		{"gamma three", 0, 0.35, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loss := nn.FocalBinaryCrossentropy(
				tensor.MustFromSlice([]float64{tt.y}, tensor.Shape{1}, backend),
				tensor.MustFromSlice([]float64{tt.p}, tensor.Shape{1}, backend),
				0.5, tt.gamma, false,
			)
			flipped := nn.FocalBinaryCrossentropy(
				tensor.MustFromSlice([]float64{1 - tt.y}, tensor.Shape{1}, backend),
				tensor.MustFromSlice([]float64{1 - tt.p}, tensor.Shape{1}, backend),
				0.5, tt.gamma, false,
			)
			require.Equal(t, tensor.Shape{1}, loss.Shape())
			assert.InDelta(t, loss.Data()[0], flipped.Data()[0], 1e-9)
			assert.Greater(t, loss.Data()[0], 0.0)
		})
	}
}

func TestFocalBinaryCrossentropy_FiniteAndNonNegative(t *testing.T) {
	backend := cpu.New()
	yTrue := tensor.MustFromSlice([]float32{0, 1, 0, 1, 1, 0}, tensor.Shape{6}, backend)
	yPred := tensor.MustFromSlice([]float32{0, 0, 1, 1, 1e-12, 1 - 1e-7}, tensor.Shape{6}, backend)

	for _, v := range nn.FocalBinaryCrossentropy(yTrue, yPred, 0.25, 2, false).Data() {
		assert.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0), "got %v", v)
		assert.GreaterOrEqual(t, v, float32(0))
	}
}

func TestFocalBinaryCrossentropy_ExtremeLogits(t *testing.T) {
	backend := cpu.New()
	yTrue := tensor.MustFromSlice([]float64{1, 0}, tensor.Shape{2}, backend)
	yPred := tensor.MustFromSlice([]float64{-1000, 1000}, tensor.Shape{2}, backend)

	for _, v := range nn.FocalBinaryCrossentropy(yTrue, yPred, 0.25, 2, true).Data() {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		assert.Greater(t, v, 0.0)
	}
}

func TestFocalBinaryCrossentropy_Broadcast(t *testing.T) {
	backend := cpu.New()
	yTrue := tensor.MustFromSlice([]float64{1, 0}, tensor.Shape{2, 1}, backend)
	yPred := tensor.MustFromSlice([]float64{0.1, 0.5, 0.9}, tensor.Shape{3}, backend)

	loss := nn.FocalBinaryCrossentropy(yTrue, yPred, 0.25, 2, false)
	require.Equal(t, tensor.Shape{2, 3}, loss.Shape())

	// Row 0 is positive: confident-correct 0.9 costs least.
	assert.Greater(t, loss.At(0, 0), loss.At(0, 2))
	// Row 1 is negative: confident-wrong 0.9 costs most.
	assert.Greater(t, loss.At(1, 2), loss.At(1, 0))
}

func TestFocalBinaryCrossentropy_DoesNotModifyInputs(t *testing.T) {
	backend := cpu.New()
	yTrue := tensor.MustFromSlice([]float64{0, 1}, tensor.Shape{2}, backend)
	yPred := tensor.MustFromSlice([]float64{-1, 2}, tensor.Shape{2}, backend)

	_ = nn.FocalBinaryCrossentropy(yTrue, yPred, 0.25, 2, true)

	assert.Equal(t, []float64{0, 1}, yTrue.Data())
	assert.Equal(t, []float64{-1, 2}, yPred.Data())
}

func TestFocalCategoricalCrossentropy_Probabilities(t *testing.T) {
	backend := cpu.New()
	yTrue := tensor.MustFromSlice([]float64{0, 1, 0, 0, 0, 1}, tensor.Shape{2, 3}, backend)
	yPred := tensor.MustFromSlice([]float64{0.05, 0.95, 0, 0.1, 0.8, 0.1}, tensor.Shape{2, 3}, backend)

	loss := nn.FocalCategoricalCrossentropy(yTrue, yPred, 0.25, 2, false)

	require.Equal(t, tensor.Shape{2}, loss.Shape())
	assert.InDelta(t, 3.2058e-5, loss.At(0), 1e-8)
	assert.InDelta(t, 0.4662735, loss.At(1), 1e-6)
}

func TestFocalCategoricalCrossentropy_OneHotClosedForm(t *testing.T) {
	backend := cpu.New()
	probs := []float64{0.2, 0.5, 0.3}
	yTrue := tensor.MustFromSlice([]float64{0, 1, 0}, tensor.Shape{1, 3}, backend)
	yPred := tensor.MustFromSlice(probs, tensor.Shape{1, 3}, backend)

	const alpha, gamma = 0.4, 1.5
	want := -alpha * math.Pow(1-0.5, gamma) * math.Log(0.5)

	loss := nn.FocalCategoricalCrossentropy(yTrue, yPred, alpha, gamma, false)
	assert.InDelta(t, want, loss.At(0), 1e-12)
}

func TestFocalCategoricalCrossentropy_Renormalizes(t *testing.T) {
	backend := cpu.New()
	yTrue := tensor.MustFromSlice([]float64{1, 0}, tensor.Shape{2}, backend)

	scaled := nn.FocalCategoricalCrossentropy(
		yTrue, tensor.MustFromSlice([]float64{2, 6}, tensor.Shape{2}, backend), 0.25, 2, false)
	normalized := nn.FocalCategoricalCrossentropy(
		yTrue, tensor.MustFromSlice([]float64{0.25, 0.75}, tensor.Shape{2}, backend), 0.25, 2, false)

	assert.Equal(t, 0, scaled.Rank())
	assert.InDelta(t, normalized.Item(), scaled.Item(), 1e-12)
}

func TestFocalCategoricalCrossentropy_FromLogitsMatchesSoftmax(t *testing.T) {
	backend := cpu.New()
	logits := []float64{1, 2, 0.5}

	var sum float64
	probs := make([]float64, len(logits))
	for i, v := range logits {
		probs[i] = math.Exp(v)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}

	yTrue := tensor.MustFromSlice([]float64{0, 0, 1}, tensor.Shape{1, 3}, backend)
	fromLogits := nn.FocalCategoricalCrossentropy(
		yTrue, tensor.MustFromSlice(logits, tensor.Shape{1, 3}, backend), 0.25, 2, true)
	fromProbs := nn.FocalCategoricalCrossentropy(
		yTrue, tensor.MustFromSlice(probs, tensor.Shape{1, 3}, backend), 0.25, 2, false)

	assert.InDelta(t, fromProbs.At(0), fromLogits.At(0), 1e-12)
}

func TestFocalCategoricalCrossentropy_ZeroProbabilityStaysFinite(t *testing.T) {
	backend := cpu.New()
	yTrue := tensor.MustFromSlice([]float32{0, 0, 1}, tensor.Shape{1, 3}, backend)
	yPred := tensor.MustFromSlice([]float32{0.5, 0.5, 0}, tensor.Shape{1, 3}, backend)

	v := float64(nn.FocalCategoricalCrossentropy(yTrue, yPred, 0.25, 2, false).At(0))
	assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	assert.Greater(t, v, 1.0)
}
