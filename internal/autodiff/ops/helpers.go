package ops

import (
	"fmt"

	"github.com/born-ml/focal/internal/tensor"
)

// reduceBroadcast reduces a gradient tensor to match the target shape.
// This is necessary when broadcasting was used in the forward pass.
//
// Example:
//
//	Forward: a[3,1] + b[3,4] -> c[3,4]  (a was broadcast along dim 1)
//	Backward: grad_c[3,4] -> grad_a[3,1] (sum along dim 1)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	gradShape := grad.Shape()

	// Clone so that gradients accumulated on the tape never alias each other.
	if gradShape.Equal(targetShape) {
		return grad.Clone()
	}

	if len(targetShape) == 0 {
		return backend.Sum(grad)
	}

	// Leading dimensions the target does not have are summed away.
	result := grad
	for len(result.Shape()) > len(targetShape) {
		result = backend.SumDim(result, 0, false)
	}

	// Dimensions where the target is 1 were broadcast.
	for i, d := range targetShape {
		if d == 1 && result.Shape()[i] > 1 {
			result = backend.SumDim(result, i, true)
		}
	}

	if !result.Shape().Equal(targetShape) {
		result = backend.Reshape(result, targetShape)
	}

	return result
}

// expandTo broadcasts grad to shape.
func expandTo(grad *tensor.RawTensor, shape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(shape) {
		return grad.Clone()
	}
	return backend.Add(zerosLikeShape(shape, grad.DType(), backend), grad)
}

func zerosLike(x *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	return zerosLikeShape(x.Shape(), x.DType(), backend)
}

func zerosLikeShape(shape tensor.Shape, dtype tensor.DataType, backend tensor.Backend) *tensor.RawTensor {
	z, err := tensor.NewRaw(shape, dtype, backend.Device())
	if err != nil {
		panic(fmt.Sprintf("autodiff: %v", err))
	}
	return z
}
