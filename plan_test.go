package circlefft

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomInput(rnd *rand.Rand, n int) []Element {
	out := make([]Element, n)
	for i := range out {
		out[i] = NewElement(rnd.Uint32())
	}

	return out
}

func TestNewPlanErrors(t *testing.T) {
	t.Parallel()

	for _, logN := range []int{-1, 0, 1, 4} {
		_, err := NewPlan(logN)
		assert.ErrorIs(t, err, ErrSizeTooSmall, "logN=%d", logN)
	}

	_, err := NewPlan(MaxLogSize + 1)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestPlanShape(t *testing.T) {
	t.Parallel()

	p, err := NewPlan(8)
	require.NoError(t, err)
	assert.Equal(t, 8, p.LogN())
	assert.Equal(t, 256, p.Size())
}

func TestForwardValidation(t *testing.T) {
	t.Parallel()

	p, err := NewPlan(5)
	require.NoError(t, err)

	buf := make([]Element, p.Size())

	assert.ErrorIs(t, p.Forward(nil, buf), ErrNilSlice)
	assert.ErrorIs(t, p.Forward(buf, nil), ErrNilSlice)
	assert.ErrorIs(t, p.Forward(buf, buf[:16]), ErrLengthMismatch)
	assert.ErrorIs(t, p.Forward(buf[:16], buf), ErrLengthMismatch)

	assert.ErrorIs(t, p.Inverse(nil), ErrNilSlice)
	assert.ErrorIs(t, p.Inverse(buf[:16]), ErrLengthMismatch)
}

func TestRoundTripIdentity(t *testing.T) {
	t.Parallel()

	for _, logN := range []int{5, 6, 8, 11} {
		logN := logN
		t.Run(fmt.Sprintf("logN=%d", logN), func(t *testing.T) {
			t.Parallel()

			rnd := rand.New(rand.NewSource(41 + int64(logN)))

			p, err := NewPlan(logN)
			require.NoError(t, err)

			input := randomInput(rnd, p.Size())

			values := make([]Element, p.Size())
			require.NoError(t, p.Forward(values, input))
			require.NoError(t, p.Inverse(values))

			assert.Equal(t, input, values)
		})
	}
}

func TestRampRoundTrip(t *testing.T) {
	t.Parallel()

	// 32-element ramp 1..32, through evaluation and back.
	p, err := NewPlan(5)
	require.NoError(t, err)

	input := make([]Element, p.Size())
	for i := range input {
		input[i] = Element(i + 1)
	}

	values := make([]Element, p.Size())
	require.NoError(t, p.Forward(values, input))
	require.NoError(t, p.Inverse(values))

	for i := range values {
		assert.Equal(t, Element(i+1), values[i], "index %d", i)
	}
}

func TestForwardImpulse(t *testing.T) {
	t.Parallel()

	// A constant polynomial evaluates to its constant everywhere.
	p, err := NewPlan(6)
	require.NoError(t, err)

	input := make([]Element, p.Size())
	input[0] = 7

	values := make([]Element, p.Size())
	require.NoError(t, p.Forward(values, input))

	for i := range values {
		require.Equal(t, Element(7), values[i], "index %d", i)
	}
}

func TestInverseConstant(t *testing.T) {
	t.Parallel()

	p, err := NewPlan(6)
	require.NoError(t, err)

	values := make([]Element, p.Size())
	for i := range values {
		values[i] = 3
	}

	require.NoError(t, p.Inverse(values))

	assert.Equal(t, Element(3), values[0])
	for i := 1; i < len(values); i++ {
		require.Equal(t, Element(0), values[i], "index %d", i)
	}
}

func TestForwardAliasing(t *testing.T) {
	t.Parallel()

	p, err := NewPlan(7)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(42))
	input := randomInput(rnd, p.Size())

	separate := make([]Element, p.Size())
	require.NoError(t, p.Forward(separate, input))

	aliased := make([]Element, p.Size())
	copy(aliased, input)
	require.NoError(t, p.Forward(aliased, aliased))

	assert.Equal(t, separate, aliased)
}

func TestWithWorkersAgree(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(43))

	serial, err := NewPlan(12)
	require.NoError(t, err)

	parallel, err := NewPlan(12, WithWorkers(4))
	require.NoError(t, err)

	input := randomInput(rnd, serial.Size())

	a := make([]Element, serial.Size())
	b := make([]Element, serial.Size())
	require.NoError(t, serial.Forward(a, input))
	require.NoError(t, parallel.Forward(b, input))
	assert.Equal(t, a, b)

	require.NoError(t, serial.Inverse(a))
	require.NoError(t, parallel.Inverse(b))
	assert.Equal(t, a, b)
}

func TestTwiddleCache(t *testing.T) {
	// Mutates process-wide state, so no t.Parallel().
	ClearTwiddleCache()
	require.Equal(t, 0, TwiddleCacheLen())

	p1, err := NewPlan(6)
	require.NoError(t, err)
	assert.Equal(t, 1, TwiddleCacheLen())

	p2, err := NewPlan(6)
	require.NoError(t, err)
	assert.Equal(t, 1, TwiddleCacheLen(), "same size should reuse tables")

	_, err = NewPlan(7, WithoutCache())
	require.NoError(t, err)
	assert.Equal(t, 1, TwiddleCacheLen(), "WithoutCache must not populate the cache")

	assert.Equal(t, p1.Fingerprint(), p2.Fingerprint())

	ClearTwiddleCache()
	assert.Equal(t, 0, TwiddleCacheLen())
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	p6, err := NewPlan(6, WithoutCache())
	require.NoError(t, err)

	p7, err := NewPlan(7, WithoutCache())
	require.NoError(t, err)

	assert.Len(t, p6.Fingerprint(), 32, "128-bit digest in hex")
	assert.NotEqual(t, p6.Fingerprint(), p7.Fingerprint())

	require.NoError(t, p6.CheckFingerprint(p6.Fingerprint()))
	assert.ErrorIs(t, p6.CheckFingerprint(p7.Fingerprint()), ErrTwiddleMismatch)
}

func BenchmarkPlanForward(b *testing.B) {
	for _, logN := range []int{10, 14, 18} {
		b.Run(fmt.Sprintf("logN=%d", logN), func(b *testing.B) {
			p, err := NewPlan(logN)
			if err != nil {
				b.Fatal(err)
			}

			rnd := rand.New(rand.NewSource(44))
			input := randomInput(rnd, p.Size())
			dst := make([]Element, p.Size())

			b.SetBytes(int64(4 * p.Size()))
			b.ResetTimer()

			for _i := 0; _i < b.N; _i++ {
				if err := p.Forward(dst, input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
