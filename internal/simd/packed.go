// Package simd provides the 16-lane packed M31 vector the transform
// kernels operate on. The layout mirrors a 512-bit register of 32-bit
// lanes, so a scalar build and a future intrinsic build share the same
// data model.
package simd

import (
	"fmt"

	"github.com/cwbudde/circle-fft/internal/m31"
)

const (
	// Lanes is the number of field elements per vector.
	Lanes = 16
	// LogLanes is the base-2 logarithm of Lanes.
	LogLanes = 4
)

// Vector is a packed group of 16 reduced field elements.
type Vector [Lanes]m31.Element

// Doubled is a packed group of 16 doubled twiddles, each unreduced in
// [0, 2p).
type Doubled [Lanes]uint32

// Broadcast returns a vector with v in every lane.
func Broadcast(v m31.Element) Vector {
	var out Vector
	for i := range out {
		out[i] = v
	}

	return out
}

// BroadcastDoubled returns a doubled-twiddle vector with v in every lane.
func BroadcastDoubled(v uint32) Doubled {
	var out Doubled
	for i := range out {
		out[i] = v
	}

	return out
}

// FromSlice packs the first 16 elements of s into a vector. The slice
// must hold at least Lanes elements.
func FromSlice(s []m31.Element) Vector {
	if len(s) < Lanes {
		panic(fmt.Sprintf("simd: FromSlice needs %d elements, got %d", Lanes, len(s)))
	}

	var out Vector
	copy(out[:], s[:Lanes])

	return out
}

// At returns the element in lane i.
func (v Vector) At(i int) m31.Element {
	return v[i]
}

// Set stores e into lane i.
func (v *Vector) Set(i int, e m31.Element) {
	v[i] = e
}

// Add returns the lanewise sum v + o.
func (v Vector) Add(o Vector) Vector {
	var out Vector
	for i := range out {
		out[i] = v[i].Add(o[i])
	}

	return out
}

// Sub returns the lanewise difference v - o.
func (v Vector) Sub(o Vector) Vector {
	var out Vector
	for i := range out {
		out[i] = v[i].Sub(o[i])
	}

	return out
}

// Neg returns the lanewise negation.
func (v Vector) Neg() Vector {
	var out Vector
	for i := range out {
		out[i] = v[i].Neg()
	}

	return out
}

// Mul returns the lanewise product v * o.
func (v Vector) Mul(o Vector) Vector {
	var out Vector
	for i := range out {
		out[i] = v[i].Mul(o[i])
	}

	return out
}

// MulDoubled returns the lanewise product of v with the doubled
// twiddles t.
func (v Vector) MulDoubled(t Doubled) Vector {
	var out Vector
	for i := range out {
		out[i] = m31.MulDoubled(v[i], t[i])
	}

	return out
}

// Interleave riffles the lanes of two vectors. The low result takes
// the bottom halves lane-alternated, the high result the top halves:
//
//	lo = (v0, o0, v1, o1, ..., v7, o7)
//	hi = (v8, o8, v9, o9, ..., v15, o15)
//
// Deinterleave inverts it.
func Interleave(v, o Vector) (lo, hi Vector) {
	for k := 0; k < Lanes/2; k++ {
		lo[2*k] = v[k]
		lo[2*k+1] = o[k]
		hi[2*k] = v[Lanes/2+k]
		hi[2*k+1] = o[Lanes/2+k]
	}

	return lo, hi
}

// Deinterleave splits the lanes of two vectors back into even and odd
// streams, inverting Interleave.
func Deinterleave(lo, hi Vector) (v, o Vector) {
	for k := 0; k < Lanes/2; k++ {
		v[k] = lo[2*k]
		o[k] = lo[2*k+1]
		v[Lanes/2+k] = hi[2*k]
		o[Lanes/2+k] = hi[2*k+1]
	}

	return v, o
}
