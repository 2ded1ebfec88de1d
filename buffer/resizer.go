package buffer

import (
	"fmt"

	"github.com/inlay-io/inlay/errs"
)

// Resizer is the buffer supplier's resize contract. Resize returns the
// backing slice at its new logical length. After a grow, bytes up to the
// old length must hold their prior content; after a shrink, bytes beyond
// the new length need not be preserved.
//
// A grow may fail (the supplier's region is exhausted); a shrink must
// succeed, since the cascade moves bytes before releasing the excess.
type Resizer interface {
	Resize(data []byte, newLen int) ([]byte, error)
}

// SliceResizer is the default supplier: an ordinary Go slice that grows by
// reallocation up to a hard byte limit.
type SliceResizer struct {
	// Limit is the largest length Resize will grant. Zero means no limit
	// beyond the buffer's own maximum size.
	Limit int
}

// Resize grows or shrinks the slice to newLen.
func (r SliceResizer) Resize(data []byte, newLen int) ([]byte, error) {
	if newLen < 0 {
		return nil, fmt.Errorf("%w: negative length %d", errs.ErrNumericOverflow, newLen)
	}
	if r.Limit > 0 && newLen > r.Limit {
		return nil, fmt.Errorf("%w: %d bytes over supplier limit %d", errs.ErrCapacityExceeded, newLen, r.Limit)
	}

	if newLen <= cap(data) {
		return data[:newLen], nil
	}

	grown := make([]byte, newLen)
	copy(grown, data)

	return grown, nil
}

// ResizerFunc adapts a plain function to the Resizer interface.
type ResizerFunc func(data []byte, newLen int) ([]byte, error)

// Resize calls the wrapped function.
func (f ResizerFunc) Resize(data []byte, newLen int) ([]byte, error) {
	return f(data, newLen)
}
