// Package math provides index arithmetic shared by the transform layers.
package math

import "fmt"

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for i := 0; i < bits; i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// BitReverseInPlace permutes data into bit-reversed index order. The
// length must be a power of two (length 1 is trivially a no-op); anything
// else is a caller bug and panics before any element moves.
//
// Applying the permutation twice restores the original order.
func BitReverseInPlace[T any](data []T) {
	if !IsPowerOf2(len(data)) {
		panic(fmt.Sprintf("math: bit-reversal length %d is not a power of two", len(data)))
	}

	bits := Log2(len(data))
	for i := range data {
		j := ReverseBits(i, bits)
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}
}
