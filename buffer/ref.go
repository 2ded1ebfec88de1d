package buffer

import (
	"fmt"

	"github.com/inlay-io/inlay/errs"
)

// Ref is a shared, read-only view of a buffer region. Many may coexist.
// A Ref is pinned to the buffer generation it was created under: any
// structural edit invalidates it, and every accessor reports
// errs.ErrStaleView afterwards instead of reading through a shifted
// offset.
type Ref struct {
	buf    *Buffer
	off    int
	length int
	gen    uint64
}

// Len returns the view's window length in bytes.
func (r *Ref) Len() int { return r.length }

// Offset returns the window's byte offset within the buffer.
func (r *Ref) Offset() int { return r.off }

func (r *Ref) check() error {
	if r.gen != r.buf.gen {
		return errs.ErrStaleView
	}

	return nil
}

// Bytes returns the window's bytes. The slice aliases the buffer and must
// not be written through or held across a structural edit.
func (r *Ref) Bytes() ([]byte, error) {
	if err := r.check(); err != nil {
		return nil, err
	}

	return r.buf.data[r.off : r.off+r.length], nil
}

// Slice narrows the view to a sub-window at the given relative offset.
func (r *Ref) Slice(off, n int) (*Ref, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	if off < 0 || n < 0 || off+n > r.length {
		return nil, fmt.Errorf("%w: slice [%d, %d) of %d-byte view", errs.ErrIndexOutOfBounds, off, off+n, r.length)
	}

	return &Ref{buf: r.buf, off: r.off + off, length: n, gen: r.gen}, nil
}
