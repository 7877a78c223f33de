package m31

import (
	"math/rand"
	"testing"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Element
		sum  Element
	}{
		{"zero plus zero", 0, 0, 0},
		{"no wrap", 5, 7, 12},
		{"wrap at modulus", Element(Modulus - 1), 1, 0},
		{"wrap past modulus", Element(Modulus - 1), 5, 4},
		{"max operands", Element(Modulus - 1), Element(Modulus - 1), Element(Modulus - 2)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Add(tt.b); got != tt.sum {
				t.Errorf("Add(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.sum)
			}

			if got := tt.sum.Sub(tt.b); got != tt.a {
				t.Errorf("Sub(%d, %d) = %d, want %d", tt.sum, tt.b, got, tt.a)
			}
		})
	}
}

func TestNeg(t *testing.T) {
	t.Parallel()

	if got := Zero().Neg(); got != 0 {
		t.Errorf("Neg(0) = %d, want 0", got)
	}

	rnd := rand.New(rand.NewSource(1))
	for _i := 0; _i < 100; _i++ {
		a := New(rnd.Uint32())
		if got := a.Add(a.Neg()); got != 0 {
			t.Errorf("a + (-a) = %d for a = %d, want 0", got, a)
		}
	}
}

func TestMul(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    Element
		product Element
	}{
		{"one is identity", 1, 12345, 12345},
		{"zero annihilates", 0, Element(Modulus - 1), 0},
		{"small product", 3, 5, 15},
		// 2^31 == 1 mod p, so (2^30)^2 = 2^31 * 2^29 == 2^29 mod p.
		{"large product", 1 << 30, 1 << 30, 1 << 29},
		{"p-1 squared", Element(Modulus - 1), Element(Modulus - 1), 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Mul(tt.b); got != tt.product {
				t.Errorf("Mul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.product)
			}
		})
	}
}

func TestMulMatchesBigIntModel(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(7))
	for _i := 0; _i < 1000; _i++ {
		a := New(rnd.Uint32())
		b := New(rnd.Uint32())

		want := Element(uint64(a) * uint64(b) % uint64(Modulus))
		if got := a.Mul(b); got != want {
			t.Fatalf("Mul(%d, %d) = %d, want %d", a, b, got, want)
		}
	}
}

func TestInverse(t *testing.T) {
	t.Parallel()

	if got := Zero().Inverse(); got != 0 {
		t.Errorf("Inverse(0) = %d, want 0", got)
	}

	rnd := rand.New(rand.NewSource(2))
	for _i := 0; _i < 200; _i++ {
		a := New(rnd.Uint32())
		if a == 0 {
			continue
		}

		if got := a.Mul(a.Inverse()); got != 1 {
			t.Errorf("a * a^-1 = %d for a = %d, want 1", got, a)
		}
	}
}

func TestBatchInverse(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(3))

	values := make([]Element, 64)
	for i := range values {
		values[i] = New(rnd.Uint32())
	}

	// Zeros must pass through without corrupting their neighbours.
	values[10] = 0
	values[11] = 0

	inverses := BatchInverse(values)
	for i, v := range values {
		if want := v.Inverse(); inverses[i] != want {
			t.Errorf("BatchInverse[%d] = %d, want %d", i, inverses[i], want)
		}
	}
}

func TestMulDoubled(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(4))
	for _i := 0; _i < 1000; _i++ {
		a := New(rnd.Uint32())
		tw := New(rnd.Uint32())

		// The doubled value is stored unreduced in [0, 2p).
		dbl := uint32(tw) * 2
		if got, want := MulDoubled(a, dbl), a.Mul(tw); got != want {
			t.Fatalf("MulDoubled(%d, %d) = %d, want %d", a, dbl, got, want)
		}
	}
}

func TestMulDoubledNegatedByXor(t *testing.T) {
	t.Parallel()

	// Negating a doubled twiddle is a XOR with 2p.
	rnd := rand.New(rand.NewSource(5))
	for _i := 0; _i < 1000; _i++ {
		a := New(rnd.Uint32())
		tw := New(rnd.Uint32())

		dbl := uint32(tw) * 2
		if got, want := MulDoubled(a, dbl^ModulusDbl), a.Mul(tw.Neg()); got != want {
			t.Fatalf("MulDoubled(%d, %d^2p) = %d, want %d", a, dbl, got, want)
		}
	}
}

func TestPow(t *testing.T) {
	t.Parallel()

	if got := Element(3).Pow(0); got != 1 {
		t.Errorf("3^0 = %d, want 1", got)
	}

	if got := Element(3).Pow(5); got != 243 {
		t.Errorf("3^5 = %d, want 243", got)
	}

	// Fermat: a^(p-1) == 1.
	rnd := rand.New(rand.NewSource(6))
	for _i := 0; _i < 50; _i++ {
		a := New(rnd.Uint32())
		if a == 0 {
			continue
		}

		if got := a.Pow(Modulus - 1); got != 1 {
			t.Errorf("a^(p-1) = %d for a = %d, want 1", got, a)
		}
	}
}
