// Package errs defines the sentinel errors shared across the inlay packages.
//
// All errors are plain sentinels created with errors.New so callers can match
// them with errors.Is. Packages wrap a sentinel with fmt.Errorf("%w: ...")
// when extra context (an index, a tag value, a byte count) helps diagnosis.
package errs

import "errors"

// Encoding and validity errors.
var (
	// ErrInvalidEncoding indicates raw bytes do not satisfy a layout type's
	// validity predicate. No partial view is ever returned alongside it.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrShortBuffer indicates a byte region is smaller than the minimum the
	// operation needs. It is a validity failure, not a capacity failure.
	ErrShortBuffer = errors.New("byte region too short")

	// ErrUnknownVariant indicates a union tag selects no declared variant.
	ErrUnknownVariant = errors.New("unknown union variant tag")
)

// Access and bounds errors.
var (
	// ErrIndexOutOfBounds indicates an element index or range is outside the
	// container's current length.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrKeyNotFound indicates a set or map lookup key is absent.
	ErrKeyNotFound = errors.New("key not found")
)

// Capacity and arithmetic errors.
var (
	// ErrCapacityExceeded indicates a structural edit would grow the buffer
	// beyond its maximum permitted size. The buffer is left unmodified.
	ErrCapacityExceeded = errors.New("buffer capacity exceeded")

	// ErrNumericOverflow indicates length or offset arithmetic would overflow
	// its encoding (for example a list count past its length-prefix range).
	ErrNumericOverflow = errors.New("numeric overflow")
)

// Access-discipline errors.
var (
	// ErrStaleView indicates a shared view was used after a structural edit
	// invalidated it. Reacquire a fresh view from the buffer.
	ErrStaleView = errors.New("stale view used after structural edit")

	// ErrExclusiveHeld indicates an exclusive view is already outstanding for
	// the buffer. At most one exclusive access path may exist at a time.
	ErrExclusiveHeld = errors.New("exclusive view already held")

	// ErrViewReleased indicates an exclusive view was used after Release.
	ErrViewReleased = errors.New("view used after release")
)

// Schema compilation errors.
var (
	// ErrUnsizedNotLast indicates a composite declares a variable-length
	// field anywhere but the final position, or declares more than one.
	ErrUnsizedNotLast = errors.New("unsized field must be the single final field")

	// ErrZeroSizedNotLast indicates a zero-sized field anywhere but the
	// single final position of a composite.
	ErrZeroSizedNotLast = errors.New("zero-sized field must be the single final field")

	// ErrDigestMismatch indicates the buffer's content digest no longer
	// matches the fingerprint recorded when the digest was last committed.
	ErrDigestMismatch = errors.New("buffer digest mismatch")
)
