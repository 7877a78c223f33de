package fft

import "github.com/cwbudde/circle-fft/internal/simd"

// TransposeVecs swaps the high and low index halves of a vector array:
// entry a||b||c moves to c||b||a, where a and c are the outer bit
// groups of equal width and b is the middle bit left over when
// logNVecs is odd. The permutation is its own inverse. It is the glue
// between the two passes of the large-size schedule, turning
// column-major layer access into row-major.
//
// Each a iterates a disjoint set of unordered index pairs, so the
// outer index fans out across workers.
func TransposeVecs(values []simd.Vector, logNVecs, workers int) {
	half := logNVecs / 2

	parallelRange(1<<half, workers, func(a int) {
		for b := 0; b < 1<<(logNVecs&1); b++ {
			for c := 0; c < 1<<half; c++ {
				i := a<<(logNVecs-half) | b<<half | c
				j := c<<(logNVecs-half) | b<<half | a
				if i < j {
					values[i], values[j] = values[j], values[i]
				}
			}
		}
	})
}
