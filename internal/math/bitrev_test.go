package math

import (
	"fmt"
	"testing"
)

func TestReverseBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      int
		nbits  int
		expect int
	}{
		{"zero value", 0, 3, 0},
		{"zero nbits", 6, 0, 0},

		{"1 bit: 0", 0, 1, 0},
		{"1 bit: 1", 1, 1, 1},

		{"2 bits: 0b01", 0b01, 2, 0b10},
		{"2 bits: 0b10", 0b10, 2, 0b01},
		{"2 bits: 0b11", 0b11, 2, 0b11},

		{"3 bits: 0b001", 0b001, 3, 0b100},
		{"3 bits: 0b110 (docstring example)", 0b110, 3, 0b011},

		{"4 bits: 0b0011", 0b0011, 4, 0b1100},
		{"8 bits: 0x12", 0x12, 8, 0x48},
		{"16 bits: 0x1234", 0x1234, 16, 0x2C48},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ReverseBits(tt.x, tt.nbits)
			if got != tt.expect {
				t.Errorf("ReverseBits(%#b, %d) = %#b, want %#b", tt.x, tt.nbits, got, tt.expect)
			}
		})
	}
}

func TestReverseBitsSymmetry(t *testing.T) {
	t.Parallel()

	// Property: reversing twice should return the original value.
	for nbits := 1; nbits <= 12; nbits++ {
		for x := 0; x < 1<<nbits; x++ {
			if got := ReverseBits(ReverseBits(x, nbits), nbits); got != x {
				t.Fatalf("double reversal of %d with %d bits = %d", x, nbits, got)
			}
		}
	}
}

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 1024, 1 << 30} {
		if !IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = false, want true", n)
		}
	}

	for _, n := range []int{-4, -1, 0, 3, 6, 12, 1<<30 + 1} {
		if IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = true, want false", n)
		}
	}
}

func TestBitReverseInPlace(t *testing.T) {
	t.Parallel()

	data := []uint32{0, 1, 2, 3, 4, 5, 6, 7}
	BitReverseInPlace(data)

	want := []uint32{0, 4, 2, 6, 1, 5, 3, 7}
	for i := range data {
		if data[i] != want[i] {
			t.Fatalf("BitReverseInPlace = %v, want %v", data, want)
		}
	}
}

func TestBitReverseInPlaceInvolution(t *testing.T) {
	t.Parallel()

	for logN := 0; logN <= 10; logN++ {
		logN := logN
		t.Run(fmt.Sprintf("logN=%d", logN), func(t *testing.T) {
			t.Parallel()

			data := make([]int, 1<<logN)
			for i := range data {
				data[i] = i * 3
			}

			BitReverseInPlace(data)
			BitReverseInPlace(data)

			for i := range data {
				if data[i] != i*3 {
					t.Fatalf("involution broken at %d: got %d", i, data[i])
				}
			}
		})
	}
}

func TestBitReverseInPlaceBadLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 3, 6, 12} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("length %d: expected panic", n)
				}
			}()

			BitReverseInPlace(make([]byte, n))
		}()
	}
}
