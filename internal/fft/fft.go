package fft

import (
	"sync"

	"github.com/cwbudde/circle-fft/internal/simd"
)

const (
	// MinLogSize is the smallest supported transform size: one vector
	// pair, the unit the vecwise kernel operates on.
	MinLogSize = 5

	// CachedFFTLogSize is the largest size handled in a single pass.
	// Above it the butterfly distances outgrow the cache and the
	// engine switches to the transposed two-pass schedule.
	CachedFFTLogSize = 16
)

// FFT runs the forward transform of 2^logSize elements from src into
// dst, producing values in bit-reversed order. src and dst may alias.
// Up to CachedFFTLogSize the layers run in one pass; above it the
// high layers run first against a transposed view, then TransposeVecs
// restores the layout for the low layers.
func FFT(src, dst []simd.Vector, twiddleDbl [][]uint32, logSize, workers int) {
	if logSize <= CachedFFTLogSize {
		fftLowerWithVecwise(src, dst, twiddleDbl, logSize, logSize, workers)
		return
	}

	logNVecs := logSize - simd.LogLanes
	layersPre := (logNVecs + 1) / 2
	layersPost := logNVecs / 2

	fftLowerWithoutVecwise(src, dst, twiddleDbl[3+layersPre:], logSize, layersPost, workers)
	TransposeVecs(dst, logNVecs, workers)
	fftLowerWithVecwise(dst, dst, twiddleDbl[:3+layersPre], logSize, layersPre+simd.LogLanes, workers)
}

// IFFT runs the inverse transform in place, undoing FFT layer by layer
// in reverse. Each forward/inverse layer pair doubles the values, so
// the result is the original input scaled by 2^logSize; the caller
// divides the factor out.
func IFFT(values []simd.Vector, itwiddleDbl [][]uint32, logSize, workers int) {
	if logSize <= CachedFFTLogSize {
		ifftLowerWithVecwise(values, itwiddleDbl, logSize, logSize, workers)
		return
	}

	logNVecs := logSize - simd.LogLanes
	layersPre := (logNVecs + 1) / 2
	layersPost := logNVecs / 2

	ifftLowerWithVecwise(values, itwiddleDbl[:3+layersPre], logSize, layersPre+simd.LogLanes, workers)
	TransposeVecs(values, logNVecs, workers)
	ifftLowerWithoutVecwise(values, itwiddleDbl[3+layersPre:], logSize, layersPost, workers)
}

// fftLowerWithVecwise runs the bottom fftLayers forward layers,
// chunked three at a time down to the five vecwise layers. Each indexH
// selects an independent region of 2^(fftLayers-4) vectors, so regions
// fan out across workers.
func fftLowerWithVecwise(src, dst []simd.Vector, twiddleDbl [][]uint32, logSize, fftLayers, workers int) {
	parallelRange(1<<(logSize-fftLayers), workers, func(indexH int) {
		s := src

		layer := fftLayers
		for layer > vecwiseBits {
			switch rem := layer - vecwiseBits; {
			case rem >= 3:
				layer -= 3
				fft3Loop(s, dst, twiddleDbl[layer-1], twiddleDbl[layer], twiddleDbl[layer+1],
					layer-simd.LogLanes, fftLayers-layer-3, indexH, indexH)
			case rem == 2:
				layer -= 2
				fft2Loop(s, dst, twiddleDbl[layer-1], twiddleDbl[layer],
					layer-simd.LogLanes, fftLayers-layer-2, indexH, indexH)
			default:
				layer--
				fft1Loop(s, dst, twiddleDbl[layer-1],
					layer-simd.LogLanes, fftLayers-layer-1, indexH, indexH)
			}

			s = dst
		}

		fftVecwiseLoop(s, dst, twiddleDbl, fftLayers-vecwiseBits, indexH)
	})
}

// ifftLowerWithVecwise is the in-place inverse of fftLowerWithVecwise:
// vecwise layers first, then the grouped layers in ascending order.
func ifftLowerWithVecwise(values []simd.Vector, itwiddleDbl [][]uint32, logSize, fftLayers, workers int) {
	parallelRange(1<<(logSize-fftLayers), workers, func(indexH int) {
		ifftVecwiseLoop(values, values, itwiddleDbl, fftLayers-vecwiseBits, indexH)

		layer := vecwiseBits
		for layer < fftLayers {
			switch rem := fftLayers - layer; {
			case rem >= 3:
				ifft3Loop(values, values, itwiddleDbl[layer-1], itwiddleDbl[layer], itwiddleDbl[layer+1],
					layer-simd.LogLanes, fftLayers-layer-3, indexH, indexH)
				layer += 3
			case rem == 2:
				ifft2Loop(values, values, itwiddleDbl[layer-1], itwiddleDbl[layer],
					layer-simd.LogLanes, fftLayers-layer-2, indexH, indexH)
				layer += 2
			default:
				ifft1Loop(values, values, itwiddleDbl[layer-1],
					layer-simd.LogLanes, fftLayers-layer-1, indexH, indexH)
				layer++
			}
		}
	})
}

// fftLowerWithoutVecwise runs fftLayers forward layers against the
// transposed layout, where the active bits sit at the bottom of the
// vector index. The high position bits carry no twiddle information
// there, so the loops run with a zero twiddle base.
func fftLowerWithoutVecwise(src, dst []simd.Vector, twiddleDbl [][]uint32, logSize, fftLayers, workers int) {
	parallelRange(1<<(logSize-fftLayers-simd.LogLanes), workers, func(indexH int) {
		s := src

		b := fftLayers
		for b > 0 {
			switch {
			case b >= 3:
				b -= 3
				fft3Loop(s, dst, twiddleDbl[b], twiddleDbl[b+1], twiddleDbl[b+2],
					b, fftLayers-b-3, indexH, 0)
			case b == 2:
				b -= 2
				fft2Loop(s, dst, twiddleDbl[b], twiddleDbl[b+1],
					b, fftLayers-b-2, indexH, 0)
			default:
				b--
				fft1Loop(s, dst, twiddleDbl[b],
					b, fftLayers-b-1, indexH, 0)
			}

			s = dst
		}
	})
}

// ifftLowerWithoutVecwise is the in-place inverse of
// fftLowerWithoutVecwise.
func ifftLowerWithoutVecwise(values []simd.Vector, itwiddleDbl [][]uint32, logSize, fftLayers, workers int) {
	parallelRange(1<<(logSize-fftLayers-simd.LogLanes), workers, func(indexH int) {
		b := 0
		for b < fftLayers {
			switch rem := fftLayers - b; {
			case rem >= 3:
				ifft3Loop(values, values, itwiddleDbl[b], itwiddleDbl[b+1], itwiddleDbl[b+2],
					b, fftLayers-b-3, indexH, 0)
				b += 3
			case rem == 2:
				ifft2Loop(values, values, itwiddleDbl[b], itwiddleDbl[b+1],
					b, fftLayers-b-2, indexH, 0)
				b += 2
			default:
				ifft1Loop(values, values, itwiddleDbl[b],
					b, fftLayers-b-1, indexH, 0)
				b++
			}
		}
	})
}

// parallelRange invokes fn for every i in [0, n), spreading contiguous
// blocks over up to workers goroutines. Callers rely on the chunks
// being disjoint regions, so fn bodies never race.
func parallelRange(n, workers int, fn func(i int)) {
	if workers > n {
		workers = n
	}

	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}

		return
	}

	var wg sync.WaitGroup

	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)

		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := start; i < end; i++ {
				fn(i)
			}
		}()
	}

	wg.Wait()
}
