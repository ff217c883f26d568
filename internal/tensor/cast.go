package tensor

// Cast converts a tensor to element type U on the same backend.
// Typical use is turning integer class labels into float targets:
//
//	labels := tensor.MustFromSlice([]int32{0, 1, 1}, Shape{3}, backend)
//	yTrue := tensor.Cast[float32](labels)
//
// Cast is not differentiable.
func Cast[U, T DType, B Backend](t *Tensor[T, B]) *Tensor[U, B] {
	dtype := DataTypeOf[U]()
	if t.DType() == dtype {
		return New[U, B](t.raw.Clone(), t.backend)
	}
	return New[U, B](t.backend.Cast(t.raw, dtype), t.backend)
}
