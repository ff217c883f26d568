package cpu

// computeFlatIndex computes the flat index in the source array for a given output index.
// outStrides: strides of the output shape.
// inStrides: broadcast-adjusted strides of the input shape.
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i, stride := range outStrides {
		coord := outIdx / stride
		outIdx %= stride
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
