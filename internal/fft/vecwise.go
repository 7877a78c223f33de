package fft

import (
	"github.com/cwbudde/circle-fft/internal/m31"
	"github.com/cwbudde/circle-fft/internal/simd"
)

// The five lowest butterfly layers act inside a 32-element vector pair.
// Each layer halves the butterfly distance, and an interleave after
// every layer keeps the active pairs in adjacent lanes, so the pair
// leaves the loop in natural element order.
const vecwiseBits = 5

// firstTwiddleShuffle rearranges the layer-1 x twiddles into the
// layer-0 y twiddles. A coset point and its quarter rotation swap
// coordinates up to sign, so y values are x values of the neighbouring
// pair with the sign pattern below.
var firstTwiddleShuffle = [simd.Lanes]int{1, 1, 0, 0, 3, 3, 2, 2, 5, 5, 4, 4, 7, 7, 6, 6}

// Negating a doubled twiddle flips the 2p complement bit pattern.
var firstTwiddleNegMask = [4]uint32{0, m31.ModulusDbl, m31.ModulusDbl, 0}

// computeFirstTwiddles derives the layer-0 twiddle vector from the
// layer-1 twiddle vector. It works for the inverse table too, since
// inversion commutes with the coordinate swap up to the same signs.
func computeFirstTwiddles(t1 simd.Doubled) simd.Doubled {
	var t0 simd.Doubled
	for j := 0; j < simd.Lanes; j++ {
		t0[j] = t1[firstTwiddleShuffle[j]] ^ firstTwiddleNegMask[j&3]
	}

	return t0
}

// repeatDoubled gathers a twiddle vector that cycles through width
// consecutive table entries starting at base. width must be a power of
// two dividing the lane count.
func repeatDoubled(layer []uint32, base, width int) simd.Doubled {
	var t simd.Doubled
	for j := 0; j < simd.Lanes; j++ {
		t[j] = layer[base+(j&(width-1))]
	}

	return t
}

// fftVecwiseLoop runs the five in-vector forward layers over the chunk
// of 2^loopBits vector pairs selected by indexH.
func fftVecwiseLoop(src, dst []simd.Vector, twiddleDbl [][]uint32, loopBits, indexH int) {
	for indexL := 0; indexL < 1<<loopBits; indexL++ {
		index := indexH<<loopBits + indexL

		val0 := src[index*2]
		val1 := src[index*2+1]

		Butterfly(&val0, &val1, simd.BroadcastDoubled(twiddleDbl[3][index]))
		val0, val1 = simd.Interleave(val0, val1)

		Butterfly(&val0, &val1, repeatDoubled(twiddleDbl[2], index*2, 2))
		val0, val1 = simd.Interleave(val0, val1)

		Butterfly(&val0, &val1, repeatDoubled(twiddleDbl[1], index*4, 4))
		val0, val1 = simd.Interleave(val0, val1)

		t1 := repeatDoubled(twiddleDbl[0], index*8, 8)
		Butterfly(&val0, &val1, t1)
		val0, val1 = simd.Interleave(val0, val1)

		Butterfly(&val0, &val1, computeFirstTwiddles(t1))
		val0, val1 = simd.Interleave(val0, val1)

		dst[index*2] = val0
		dst[index*2+1] = val1
	}
}

// ifftVecwiseLoop runs the five in-vector inverse layers, undoing
// fftVecwiseLoop layer by layer in reverse order.
func ifftVecwiseLoop(src, dst []simd.Vector, itwiddleDbl [][]uint32, loopBits, indexH int) {
	for indexL := 0; indexL < 1<<loopBits; indexL++ {
		index := indexH<<loopBits + indexL

		val0 := src[index*2]
		val1 := src[index*2+1]

		t1 := repeatDoubled(itwiddleDbl[0], index*8, 8)

		val0, val1 = simd.Deinterleave(val0, val1)
		IButterfly(&val0, &val1, computeFirstTwiddles(t1))

		val0, val1 = simd.Deinterleave(val0, val1)
		IButterfly(&val0, &val1, t1)

		val0, val1 = simd.Deinterleave(val0, val1)
		IButterfly(&val0, &val1, repeatDoubled(itwiddleDbl[1], index*4, 4))

		val0, val1 = simd.Deinterleave(val0, val1)
		IButterfly(&val0, &val1, repeatDoubled(itwiddleDbl[2], index*2, 2))

		val0, val1 = simd.Deinterleave(val0, val1)
		IButterfly(&val0, &val1, simd.BroadcastDoubled(itwiddleDbl[3][index]))

		dst[index*2] = val0
		dst[index*2+1] = val1
	}
}
