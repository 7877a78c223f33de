package circlefft

import "errors"

// Sentinel errors returned by transform operations.
var (
	// ErrInvalidLength is returned when the requested transform size
	// is not supported. Sizes are powers of 2 addressed by their
	// logarithm, up to MaxLogSize.
	ErrInvalidLength = errors.New("circlefft: invalid transform length")

	// ErrSizeTooSmall is returned when the requested size is below
	// MinLogSize, the smallest unit the vectorized engine handles.
	ErrSizeTooSmall = errors.New("circlefft: transform size below minimum")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("circlefft: nil slice")

	// ErrLengthMismatch is returned when input/output slice sizes don't match
	// the Plan's expected dimensions.
	ErrLengthMismatch = errors.New("circlefft: slice length mismatch")

	// ErrTwiddleMismatch is returned when a twiddle table does not
	// match the plan's domain: wrong layer shape, or a failed
	// fingerprint check against tables shared across processes.
	ErrTwiddleMismatch = errors.New("circlefft: twiddle table mismatch")
)
