package fft

import "github.com/cwbudde/circle-fft/internal/simd"

// fft3 applies three consecutive forward layers to the 8 vectors at
// src[offset + i<<bit], highest distance first, and writes the results
// to dst at the same positions.
func fft3(src, dst []simd.Vector, offset, bit int, twLo, twMid []uint32, twHi uint32) {
	var v [8]simd.Vector
	for i := range v {
		v[i] = src[offset+i<<bit]
	}

	for i := 0; i < 4; i++ {
		Butterfly(&v[i], &v[i+4], simd.BroadcastDoubled(twHi))
	}

	for _, i := range [4]int{0, 1, 4, 5} {
		Butterfly(&v[i], &v[i+2], simd.BroadcastDoubled(twMid[i>>2]))
	}

	for i := 0; i < 8; i += 2 {
		Butterfly(&v[i], &v[i+1], simd.BroadcastDoubled(twLo[i>>1]))
	}

	for i := range v {
		dst[offset+i<<bit] = v[i]
	}
}

// ifft3 undoes fft3, lowest distance first.
func ifft3(src, dst []simd.Vector, offset, bit int, twLo, twMid []uint32, twHi uint32) {
	var v [8]simd.Vector
	for i := range v {
		v[i] = src[offset+i<<bit]
	}

	for i := 0; i < 8; i += 2 {
		IButterfly(&v[i], &v[i+1], simd.BroadcastDoubled(twLo[i>>1]))
	}

	for _, i := range [4]int{0, 1, 4, 5} {
		IButterfly(&v[i], &v[i+2], simd.BroadcastDoubled(twMid[i>>2]))
	}

	for i := 0; i < 4; i++ {
		IButterfly(&v[i], &v[i+4], simd.BroadcastDoubled(twHi))
	}

	for i := range v {
		dst[offset+i<<bit] = v[i]
	}
}

// fft2 applies two consecutive forward layers to the 4 vectors at
// src[offset + i<<bit].
func fft2(src, dst []simd.Vector, offset, bit int, twLo []uint32, twHi uint32) {
	var v [4]simd.Vector
	for i := range v {
		v[i] = src[offset+i<<bit]
	}

	for i := 0; i < 2; i++ {
		Butterfly(&v[i], &v[i+2], simd.BroadcastDoubled(twHi))
	}

	for i := 0; i < 4; i += 2 {
		Butterfly(&v[i], &v[i+1], simd.BroadcastDoubled(twLo[i>>1]))
	}

	for i := range v {
		dst[offset+i<<bit] = v[i]
	}
}

// ifft2 undoes fft2.
func ifft2(src, dst []simd.Vector, offset, bit int, twLo []uint32, twHi uint32) {
	var v [4]simd.Vector
	for i := range v {
		v[i] = src[offset+i<<bit]
	}

	for i := 0; i < 4; i += 2 {
		IButterfly(&v[i], &v[i+1], simd.BroadcastDoubled(twLo[i>>1]))
	}

	for i := 0; i < 2; i++ {
		IButterfly(&v[i], &v[i+2], simd.BroadcastDoubled(twHi))
	}

	for i := range v {
		dst[offset+i<<bit] = v[i]
	}
}

// fft1 applies a single forward layer to the vector pair at distance
// 1<<bit.
func fft1(src, dst []simd.Vector, offset, bit int, tw uint32) {
	v0 := src[offset]
	v1 := src[offset+1<<bit]

	Butterfly(&v0, &v1, simd.BroadcastDoubled(tw))

	dst[offset] = v0
	dst[offset+1<<bit] = v1
}

// ifft1 undoes fft1.
func ifft1(src, dst []simd.Vector, offset, bit int, tw uint32) {
	v0 := src[offset]
	v1 := src[offset+1<<bit]

	IButterfly(&v0, &v1, simd.BroadcastDoubled(tw))

	dst[offset] = v0
	dst[offset+1<<bit] = v1
}

// fft3Loop runs a three-layer chunk over the region selected by
// indexH. The twiddle index tracks the loop index under twIndexH,
// which equals indexH in the single-pass schedule and zero in the
// transposed pass, where the high position bits carry no twiddle
// information.
func fft3Loop(src, dst []simd.Vector, twLo, twMid, twHi []uint32, bit, loopBits, indexH, twIndexH int) {
	for indexL := 0; indexL < 1<<loopBits; indexL++ {
		index := indexH<<loopBits + indexL
		twIndex := twIndexH<<loopBits + indexL
		offset := index << (bit + 3)

		for l := 0; l < 1<<bit; l++ {
			fft3(src, dst, offset+l, bit,
				twLo[twIndex*4:twIndex*4+4],
				twMid[twIndex*2:twIndex*2+2],
				twHi[twIndex])
		}
	}
}

func ifft3Loop(src, dst []simd.Vector, twLo, twMid, twHi []uint32, bit, loopBits, indexH, twIndexH int) {
	for indexL := 0; indexL < 1<<loopBits; indexL++ {
		index := indexH<<loopBits + indexL
		twIndex := twIndexH<<loopBits + indexL
		offset := index << (bit + 3)

		for l := 0; l < 1<<bit; l++ {
			ifft3(src, dst, offset+l, bit,
				twLo[twIndex*4:twIndex*4+4],
				twMid[twIndex*2:twIndex*2+2],
				twHi[twIndex])
		}
	}
}

// fft2Loop runs a two-layer chunk over the region selected by indexH.
func fft2Loop(src, dst []simd.Vector, twLo, twHi []uint32, bit, loopBits, indexH, twIndexH int) {
	for indexL := 0; indexL < 1<<loopBits; indexL++ {
		index := indexH<<loopBits + indexL
		twIndex := twIndexH<<loopBits + indexL
		offset := index << (bit + 2)

		for l := 0; l < 1<<bit; l++ {
			fft2(src, dst, offset+l, bit,
				twLo[twIndex*2:twIndex*2+2],
				twHi[twIndex])
		}
	}
}

func ifft2Loop(src, dst []simd.Vector, twLo, twHi []uint32, bit, loopBits, indexH, twIndexH int) {
	for indexL := 0; indexL < 1<<loopBits; indexL++ {
		index := indexH<<loopBits + indexL
		twIndex := twIndexH<<loopBits + indexL
		offset := index << (bit + 2)

		for l := 0; l < 1<<bit; l++ {
			ifft2(src, dst, offset+l, bit,
				twLo[twIndex*2:twIndex*2+2],
				twHi[twIndex])
		}
	}
}

// fft1Loop runs a single-layer chunk over the region selected by
// indexH.
func fft1Loop(src, dst []simd.Vector, tw []uint32, bit, loopBits, indexH, twIndexH int) {
	for indexL := 0; indexL < 1<<loopBits; indexL++ {
		index := indexH<<loopBits + indexL
		twIndex := twIndexH<<loopBits + indexL
		offset := index << (bit + 1)

		for l := 0; l < 1<<bit; l++ {
			fft1(src, dst, offset+l, bit, tw[twIndex])
		}
	}
}

func ifft1Loop(src, dst []simd.Vector, tw []uint32, bit, loopBits, indexH, twIndexH int) {
	for indexL := 0; indexL < 1<<loopBits; indexL++ {
		index := indexH<<loopBits + indexL
		twIndex := twIndexH<<loopBits + indexL
		offset := index << (bit + 1)

		for l := 0; l < 1<<bit; l++ {
			ifft1(src, dst, offset+l, bit, tw[twIndex])
		}
	}
}
