// Package circlefft implements the circle FFT over the Mersenne prime
// field M31 (p = 2^31 - 1). The forward transform takes 2^n polynomial
// coefficients to evaluations over a canonic circle-domain coset in
// bit-reversed order; the inverse undoes it. All validation and table
// construction is resolved at plan creation, so the transform calls
// themselves never fail on well-shaped input.
package circlefft

import (
	"github.com/cwbudde/circle-fft/internal/fft"
	"github.com/cwbudde/circle-fft/internal/m31"
	"github.com/cwbudde/circle-fft/internal/simd"
)

// Plan holds the precomputed twiddle tables and settings for one
// transform size. Plans are safe for concurrent use: each transform
// call works on its own vector buffer.
type Plan struct {
	logN    int
	n       int
	workers int
	nInv    Element

	forward [][]uint32
	inverse [][]uint32
}

type planConfig struct {
	workers  int
	useCache bool
}

// Option configures a Plan at creation.
type Option func(*planConfig)

// WithWorkers sets the number of goroutines the transform fans out to.
// The default is 1. Values below 1 are clamped to 1.
func WithWorkers(n int) Option {
	return func(c *planConfig) {
		c.workers = n
	}
}

// WithoutCache builds the plan's twiddle tables privately instead of
// through the process-wide cache.
func WithoutCache() Option {
	return func(c *planConfig) {
		c.useCache = false
	}
}

// NewPlan creates a plan for transforms of 2^logN elements.
func NewPlan(logN int, opts ...Option) (*Plan, error) {
	if logN < MinLogSize {
		return nil, ErrSizeTooSmall
	}

	if logN > MaxLogSize {
		return nil, ErrInvalidLength
	}

	cfg := planConfig{workers: 1, useCache: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.workers < 1 {
		cfg.workers = 1
	}

	p := &Plan{
		logN:    logN,
		n:       1 << logN,
		workers: cfg.workers,
		nInv:    Element(uint32(1) << logN).Inverse(),
	}
	p.forward, p.inverse = twiddlesFor(logN, cfg.useCache)

	// Layer-0 shape pins the whole table layout; a table that fails it
	// belongs to a different domain.
	if len(p.forward) != logN-1 || len(p.forward[0]) != 1<<(logN-2) {
		return nil, ErrTwiddleMismatch
	}

	return p, nil
}

// LogN returns the transform size exponent.
func (p *Plan) LogN() int {
	return p.logN
}

// Size returns the transform size 2^logN.
func (p *Plan) Size() int {
	return p.n
}

// Forward evaluates the coefficients in src over the transform domain
// and writes the results to dst in bit-reversed point order. src is
// left untouched; dst and src may be the same slice.
func (p *Plan) Forward(dst, src []Element) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != p.n || len(src) != p.n {
		return ErrLengthMismatch
	}

	vecs := loadVectors(src)
	fft.FFT(vecs, vecs, p.forward, p.logN, p.workers)
	storeVectors(dst, vecs)

	return nil
}

// Inverse interpolates the bit-reversed evaluations in values back to
// coefficients, in place. The engine's raw inverse returns values
// scaled by 2^logN; Inverse divides the factor out, so a Forward
// followed by Inverse is the identity.
func (p *Plan) Inverse(values []Element) error {
	if values == nil {
		return ErrNilSlice
	}

	if len(values) != p.n {
		return ErrLengthMismatch
	}

	vecs := loadVectors(values)
	fft.IFFT(vecs, p.inverse, p.logN, p.workers)
	storeVectorsScaled(values, vecs, p.nInv)

	return nil
}

func loadVectors(src []Element) []simd.Vector {
	vecs := make([]simd.Vector, len(src)/simd.Lanes)
	for i := range vecs {
		vecs[i] = simd.FromSlice(src[i*simd.Lanes:])
	}

	return vecs
}

func storeVectors(dst []Element, vecs []simd.Vector) {
	for i, v := range vecs {
		for j := 0; j < simd.Lanes; j++ {
			dst[i*simd.Lanes+j] = v.At(j)
		}
	}
}

func storeVectorsScaled(dst []Element, vecs []simd.Vector, scale m31.Element) {
	for i, v := range vecs {
		for j := 0; j < simd.Lanes; j++ {
			dst[i*simd.Lanes+j] = v.At(j).Mul(scale)
		}
	}
}
