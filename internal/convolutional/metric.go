package convolutional

import "math/bits"

// popcount16Impl is the selected 16-bit Hamming-weight implementation.
// It is overridden at init time on platforms where a CPU-feature
// gated path exists; see metric_amd64.go.
var popcount16Impl = popcount16Go

func popcount16Go(x uint16) int {
	return bits.OnesCount16(x)
}

// branchMetrics fills dst[o] with the Hamming distance between o and
// y for every candidate o in [0, 2^rate), the branch-metric step the
// ACS kernel consumes each trellis symbol.
func branchMetrics(dst []uint16, rate int, y uint16) {
	n := 1 << uint(rate)
	for o := 0; o < n; o++ {
		dst[o] = uint16(popcount16Impl(uint16(o) ^ y))
	}
}
