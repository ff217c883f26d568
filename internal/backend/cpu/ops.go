package cpu

import (
	"github.com/born-ml/focal/internal/parallel"
	"github.com/born-ml/focal/internal/tensor"
)

type binaryKind int

const (
	binaryAdd binaryKind = iota
	binarySub
	binaryMul
	binaryDiv
)

func applyBinary[T tensor.Float](kind binaryKind, x, y T) T {
	switch kind {
	case binaryAdd:
		return x + y
	case binarySub:
		return x - y
	case binaryMul:
		return x * y
	default:
		return x / y
	}
}

// binaryKernel computes dst = a <op> b. Same-shape operands take the flat
// path; otherwise every output index is mapped back through broadcast strides.
func binaryKernel[T tensor.Float](cfg parallel.Config, kind binaryKind, dst, a, b []T,
	aShape, bShape, outShape tensor.Shape, needsBroadcast bool,
) {
	if !needsBroadcast {
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = applyBinary(kind, a[i], b[i])
			}
		}, cfg)
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := tensor.BroadcastStrides(aShape, outShape)
	bStrides := tensor.BroadcastStrides(bShape, outShape)

	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			aIdx := computeFlatIndex(i, outStrides, aStrides)
			bIdx := computeFlatIndex(i, outStrides, bStrides)
			dst[i] = applyBinary(kind, a[aIdx], b[bIdx])
		}
	}, cfg)
}
