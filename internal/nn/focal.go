package nn

import "github.com/born-ml/focal/internal/tensor"

// Epsilon bounds probabilities away from 0 and 1 before taking logs.
// In float32, 1-Epsilon rounds to 1, so the upper clip is a no-op there and
// the +Epsilon inside the binary log terms keeps them finite.
const Epsilon = 1e-9

// FocalBinaryCrossentropy computes the element-wise focal binary crossentropy:
//
//	p     = sigmoid(yPred) if fromLogits, else yPred
//	p_t   = y*p + (1-y)*(1-p)
//	w     = y*alpha + (1-y)*(1-alpha)
//	loss  = w * (1-p_t)^gamma * bce(y, p)
//
// yTrue and yPred must be broadcast-compatible; the result has their
// broadcast shape. Inputs are not modified. Every step is a backend
// primitive, so gradients flow when the backend records a tape.
//
// Example:
//
//	yTrue := tensor.MustFromSlice([]float32{0, 1}, tensor.Shape{2}, backend)
//	logits := tensor.MustFromSlice([]float32{-2, 0.5}, tensor.Shape{2}, backend)
//	loss := nn.FocalBinaryCrossentropy(yTrue, logits, 0.25, 2, true)
func FocalBinaryCrossentropy[T tensor.Float, B tensor.Backend](
	yTrue, yPred *tensor.Tensor[T, B],
	alpha, gamma float64,
	fromLogits bool,
) *tensor.Tensor[T, B] {
	p := yPred
	if fromLogits {
		p = yPred.Sigmoid()
	}

	y := yTrue
	notY := y.RSubScalar(1)

	pT := y.Mul(p).Add(notY.Mul(p.RSubScalar(1)))
	focalFactor := pT.RSubScalar(1).Pow(gamma)

	bce := binaryCrossentropy(y, p)

	weight := y.MulScalar(alpha).Add(notY.MulScalar(1 - alpha))
	return weight.Mul(focalFactor.Mul(bce))
}

// binaryCrossentropy clips p into [Epsilon, 1-Epsilon] and returns
// -(y*log(p+Epsilon) + (1-y)*log(1-p+Epsilon)).
func binaryCrossentropy[T tensor.Float, B tensor.Backend](y, p *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	p = p.Clamp(Epsilon, 1-Epsilon)

	pos := y.Mul(p.AddScalar(Epsilon).Log())
	neg := y.RSubScalar(1).Mul(p.RSubScalar(1).AddScalar(Epsilon).Log())
	return pos.Add(neg).MulScalar(-1)
}

// FocalCategoricalCrossentropy computes the focal categorical crossentropy
// over the last axis (the class axis):
//
//	p     = softmax(yPred) if fromLogits, else yPred
//	p     = clip(p / sum(p, -1), Epsilon, 1-Epsilon)
//	loss  = sum(-y * log(p) * alpha * (1-p)^gamma, -1)
//
// Predictions are always renormalized along the class axis, which is a no-op
// after softmax. The result drops the class axis: [..., C] becomes [...].
func FocalCategoricalCrossentropy[T tensor.Float, B tensor.Backend](
	yTrue, yPred *tensor.Tensor[T, B],
	alpha, gamma float64,
	fromLogits bool,
) *tensor.Tensor[T, B] {
	p := yPred
	if fromLogits {
		p = yPred.Softmax(-1)
	}
	p = p.Div(p.SumDim(-1, true))
	p = p.Clamp(Epsilon, 1-Epsilon)

	cce := yTrue.Mul(p.Log()).MulScalar(-1)
	weightingFactor := p.RSubScalar(1).Pow(gamma).MulScalar(alpha)

	return weightingFactor.Mul(cce).SumDim(-1, false)
}
