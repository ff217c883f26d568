package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Operands are read-only: every method returns a freshly allocated result.
// Shape errors are programmer errors and panic.
//
// Implementations:
//   - CPU: pure Go kernels (internal/backend/cpu)
//   - Autodiff: decorator that records operations on a gradient tape
type Backend interface {
	// Element-wise binary operations (NumPy broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	SubScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	DivScalar(x *RawTensor, scalar float64) *RawTensor

	// Math operations (element-wise)
	Pow(x *RawTensor, exponent float64) *RawTensor // x^exponent
	Exp(x *RawTensor) *RawTensor                   // exponential
	Log(x *RawTensor) *RawTensor                   // natural logarithm, -Inf/NaN for x <= 0
	Clamp(x *RawTensor, lo, hi float64) *RawTensor // clip into [lo, hi]

	// Activation functions
	Sigmoid(x *RawTensor) *RawTensor          // 1 / (1 + exp(-x))
	Softmax(x *RawTensor, dim int) *RawTensor // softmax along dimension

	// Reduction operations
	Sum(x *RawTensor) *RawTensor                           // total sum (scalar result)
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor // sum along dimension

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor

	// Type conversion
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
