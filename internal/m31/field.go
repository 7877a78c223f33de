// Package m31 implements arithmetic in the Mersenne prime field
// with modulus 2^31 - 1.
package m31

const (
	// Modulus is the Mersenne prime 2^31 - 1.
	Modulus uint32 = 1<<31 - 1

	// ModulusDbl is twice the modulus. Doubled twiddle factors are stored
	// unreduced in [0, ModulusDbl).
	ModulusDbl uint32 = 2 * Modulus
)

// Element is a field element in [0, Modulus).
type Element uint32

// New reduces v into the field.
func New(v uint32) Element {
	return Element(v % Modulus)
}

// NewFromUint64 reduces v into the field.
func NewFromUint64(v uint64) Element {
	return Element(v % uint64(Modulus))
}

// Zero returns the additive identity.
func Zero() Element { return 0 }

// One returns the multiplicative identity.
func One() Element { return 1 }

// Add returns a + b.
func (a Element) Add(b Element) Element {
	s := uint32(a) + uint32(b)
	if s >= Modulus {
		s -= Modulus
	}

	return Element(s)
}

// Sub returns a - b.
func (a Element) Sub(b Element) Element {
	s := uint32(a) + Modulus - uint32(b)
	if s >= Modulus {
		s -= Modulus
	}

	return Element(s)
}

// Neg returns -a.
func (a Element) Neg() Element {
	if a == 0 {
		return 0
	}

	return Element(Modulus - uint32(a))
}

// Mul returns a * b.
func (a Element) Mul(b Element) Element {
	return reduce(uint64(a) * uint64(b))
}

// Square returns a * a.
func (a Element) Square() Element {
	return a.Mul(a)
}

// Double returns 2a.
func (a Element) Double() Element {
	return a.Add(a)
}

// Pow returns a^exp using binary exponentiation.
func (a Element) Pow(exp uint32) Element {
	result := One()
	base := a

	for ; exp != 0; exp >>= 1 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}

		base = base.Square()
	}

	return result
}

// Inverse returns a^-1, computed as a^(p-2) per Fermat's little theorem.
// The inverse of zero is zero.
func (a Element) Inverse() Element {
	if a == 0 {
		return 0
	}

	return a.Pow(Modulus - 2)
}

// MulDoubled multiplies a by a doubled twiddle value bDbl = 2t and returns
// a*t. bDbl is always even, so halving the product before reduction is
// exact.
func MulDoubled(a Element, bDbl uint32) Element {
	return reduce(uint64(a) * uint64(bDbl) >> 1)
}

// BatchInverse inverts all values using a single field inversion
// (Montgomery's trick). Zero inputs yield zero outputs.
func BatchInverse(values []Element) []Element {
	out := make([]Element, len(values))
	prefix := make([]Element, len(values))

	acc := One()
	for i, v := range values {
		prefix[i] = acc
		if v != 0 {
			acc = acc.Mul(v)
		}
	}

	inv := acc.Inverse()
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] == 0 {
			continue
		}

		out[i] = inv.Mul(prefix[i])
		inv = inv.Mul(values[i])
	}

	return out
}

// reduce folds a product of up to 62 bits into [0, Modulus).
func reduce(x uint64) Element {
	x = (x >> 31) + (x & uint64(Modulus))
	x = (x >> 31) + (x & uint64(Modulus))

	if x >= uint64(Modulus) {
		x -= uint64(Modulus)
	}

	return Element(x)
}
