package convolutional

import "testing"

func TestBranchMetricsHammingDistance(t *testing.T) {
	rate := 2
	dst := make([]uint16, 1<<uint(rate))
	branchMetrics(dst, rate, 0b10)

	for o := 0; o < len(dst); o++ {
		wantDist := popcount16Go(uint16(o) ^ 0b10)
		if int(dst[o]) != wantDist {
			t.Errorf("branchMetrics[%d] = %d, want %d", o, dst[o], wantDist)
		}
	}
}

func TestPopcount16Impl(t *testing.T) {
	for x := 0; x < 256; x++ {
		if got, want := popcount16Impl(uint16(x)), popcount16Go(uint16(x)); got != want {
			t.Fatalf("popcount16Impl(%d) = %d, want %d (popcount16Go)", x, got, want)
		}
	}
}
