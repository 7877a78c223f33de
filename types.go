package circlefft

import (
	"github.com/cwbudde/circle-fft/internal/fft"
	"github.com/cwbudde/circle-fft/internal/m31"
)

// Element is a reduced element of the M31 field.
// The canonical definition is in internal/m31.
type Element = m31.Element

// Modulus is the M31 prime 2^31 - 1.
const Modulus = m31.Modulus

const (
	// MinLogSize is the smallest supported transform size exponent.
	MinLogSize = fft.MinLogSize

	// MaxLogSize is the largest supported transform size exponent. The
	// circle group has order 2^31 and a transform of 2^n points needs
	// a disjoint half coset of 2^(n-1) odd points, which exists up to
	// n = 30.
	MaxLogSize = 30
)

// NewElement reduces v into the field.
func NewElement(v uint32) Element {
	return m31.New(v)
}
