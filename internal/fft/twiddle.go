package fft

import (
	"github.com/cwbudde/circle-fft/internal/circle"
	"github.com/cwbudde/circle-fft/internal/m31"
	"github.com/cwbudde/circle-fft/internal/math"
)

// TwiddleDbls builds the forward twiddle table from the canonic half
// coset of the transform domain. Layer k holds the doubled x
// coordinates of the first half of the k-times-doubled coset, in
// bit-reversed order, so layer k of a size-2^n transform has 2^(n-2-k)
// entries. Butterfly layer l >= 1 reads table[l-1]; the layer-0 y
// twiddles are folded out of table[0] by the vecwise kernel.
func TwiddleDbls(coset circle.Coset) [][]uint32 {
	layers := make([][]uint32, 0, coset.LogSize())

	for c := coset; c.LogSize() > 0; c = c.Double() {
		half := c.Size() / 2
		layer := make([]uint32, half)

		p := c.At(0)
		step := c.Step()
		for i := 0; i < half; i++ {
			layer[i] = uint32(p.X) * 2
			p = p.Add(step)
		}

		math.BitReverseInPlace(layer)
		layers = append(layers, layer)
	}

	return layers
}

// InverseTwiddleDbls builds the inverse twiddle table: the same layout
// as TwiddleDbls with every x coordinate replaced by its field inverse
// before doubling.
func InverseTwiddleDbls(coset circle.Coset) [][]uint32 {
	layers := make([][]uint32, 0, coset.LogSize())

	for c := coset; c.LogSize() > 0; c = c.Double() {
		half := c.Size() / 2
		xs := make([]m31.Element, half)

		p := c.At(0)
		step := c.Step()
		for i := 0; i < half; i++ {
			xs[i] = p.X
			p = p.Add(step)
		}

		layer := make([]uint32, half)
		for i, inv := range m31.BatchInverse(xs) {
			layer[i] = uint32(inv) * 2
		}

		math.BitReverseInPlace(layer)
		layers = append(layers, layer)
	}

	return layers
}
