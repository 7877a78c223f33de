// Package fft implements the vectorized circle transform over M31. The
// engine works on 16-lane packed vectors, walks butterfly layers in
// grouped chunks of up to three layers, and switches to a transposed
// two-pass schedule above the cached size.
package fft

import "github.com/cwbudde/circle-fft/internal/simd"

// Butterfly applies one forward butterfly to a vector pair in place:
//
//	a' = a + t*b
//	b' = a - t*b
//
// with t given in doubled form.
func Butterfly(a, b *simd.Vector, twiddleDbl simd.Doubled) {
	tb := b.MulDoubled(twiddleDbl)
	*b = a.Sub(tb)
	*a = a.Add(tb)
}

// IButterfly applies one inverse butterfly to a vector pair in place:
//
//	a' = a + b
//	b' = t*(a - b)
//
// Paired with Butterfly and the matching inverse twiddle, the values
// come back doubled; the caller folds the accumulated factor of 2 per
// layer into the final scaling.
func IButterfly(a, b *simd.Vector, twiddleDbl simd.Doubled) {
	sum := a.Add(*b)
	diff := a.Sub(*b)
	*a = sum
	*b = diff.MulDoubled(twiddleDbl)
}
