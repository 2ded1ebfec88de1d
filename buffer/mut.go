package buffer

import (
	"fmt"

	"github.com/inlay-io/inlay/errs"
)

// Mut is an exclusive, mutation-capable view of a buffer region. The views
// form a chain from the root acquisition down to the currently focused
// sub-region; each link holds its parent so a structural edit anywhere in
// the chain can repair every ancestor's cached window.
//
// Only a Mut may perform a structural edit. A plain in-place overwrite of
// fixed-size bytes goes straight through Bytes and needs no cascade.
type Mut struct {
	buf    *Buffer
	parent *Mut
	root   *Mut
	off    int
	length int

	// gen is the buffer generation this view's window was computed
	// against. Resize refreshes it along the repaired ancestor chain;
	// any other live Mut goes stale.
	gen uint64

	released bool
}

// Len returns the view's window length in bytes.
func (m *Mut) Len() int { return m.length }

// Offset returns the window's byte offset within the buffer.
func (m *Mut) Offset() int { return m.off }

func (m *Mut) check() error {
	if m.released || m.root.released {
		return errs.ErrViewReleased
	}
	if m.gen != m.buf.gen {
		return errs.ErrStaleView
	}

	return nil
}

// Bytes returns the window's bytes for reading or in-place overwrites of
// fixed-size content. Structural edits must go through Resize instead.
func (m *Mut) Bytes() ([]byte, error) {
	if err := m.check(); err != nil {
		return nil, err
	}

	return m.buf.data[m.off : m.off+m.length], nil
}

// Child narrows the view to a sub-window at the given relative offset,
// extending the exclusive chain. The parent must not be used for edits
// while the child is the focus; the cascade repairs the parent when the
// child resizes.
func (m *Mut) Child(off, n int) (*Mut, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	if off < 0 || n < 0 || off+n > m.length {
		return nil, fmt.Errorf("%w: child [%d, %d) of %d-byte view", errs.ErrIndexOutOfBounds, off, off+n, m.length)
	}

	return &Mut{
		buf:    m.buf,
		parent: m,
		root:   m.root,
		off:    m.off + off,
		length: n,
		gen:    m.gen,
	}, nil
}

// Release ends the exclusive access path. Releasing the root view lets the
// buffer grant new acquisitions; the released chain reports
// errs.ErrViewReleased on any further use.
func (m *Mut) Release() {
	m.released = true
	if m.parent == nil {
		m.buf.exclusive = false
	}
}

// Resize performs a structural edit: it inserts (delta > 0) or removes
// (delta < 0) bytes at offset rel within this view's window, shifting the
// buffer tail and repairing every ancestor in the exclusive chain.
//
// Inserted bytes are zero-filled; the caller writes the new content
// afterwards. Removed bytes are the range [rel, rel-delta).
//
// The edit is atomic: capacity is checked and the supplier's grow is
// performed before any byte moves, so a failed Resize leaves the buffer
// and every wrapper untouched.
func (m *Mut) Resize(rel, delta int) error {
	if err := m.check(); err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}
	if rel < 0 || rel > m.length {
		return fmt.Errorf("%w: edit offset %d in %d-byte view", errs.ErrIndexOutOfBounds, rel, m.length)
	}

	b := m.buf
	p := m.off + rel
	oldLen := len(b.data)
	newLen := oldLen + delta

	if delta > 0 {
		if newLen > b.max {
			return fmt.Errorf("%w: %d bytes, maximum %d", errs.ErrCapacityExceeded, newLen, b.max)
		}
		grown, err := b.resizer.Resize(b.data, newLen)
		if err != nil {
			return err
		}
		b.data = grown
		copy(b.data[p+delta:], b.data[p:oldLen])
		clear(b.data[p : p+delta])
	} else {
		n := -delta
		if rel+n > m.length {
			return fmt.Errorf("%w: removing [%d, %d) from %d-byte view", errs.ErrIndexOutOfBounds, rel, rel+n, m.length)
		}
		copy(b.data[p:], b.data[p+n:])
		shrunk, err := b.resizer.Resize(b.data, newLen)
		if err != nil {
			// Shrink must succeed per the Resizer contract; the tail has
			// already moved.
			return err
		}
		b.data = shrunk
	}

	b.gen++

	// Every ancestor's window contains the editing view's window, so each
	// absorbs the delta into its length and carries the new generation.
	// Sibling windows are not linked into the chain; they go stale and must
	// be re-derived from a repaired parent.
	for w := m; w != nil; w = w.parent {
		w.length += delta
		w.gen = b.gen
	}

	return nil
}
