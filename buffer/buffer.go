package buffer

import (
	"fmt"
	"math"

	"github.com/inlay-io/inlay/errs"
	"github.com/inlay-io/inlay/internal/hash"
	"github.com/inlay-io/inlay/layout"
)

// Buffer is a flat, mutable, resizable byte region holding one encoded
// value. The region is externally owned; Buffer tracks its logical length,
// its maximum permitted size, and the generation counter that invalidates
// shared views after a structural edit.
type Buffer struct {
	data    []byte
	max     int
	gen     uint64
	resizer Resizer

	// exclusive is set while a root Mut is outstanding.
	exclusive bool

	digest    uint64
	hasDigest bool
}

// Option configures a Buffer at construction.
type Option func(*Buffer)

// WithMaxSize caps the buffer's logical length. A structural edit that
// would grow past the cap fails with errs.ErrCapacityExceeded.
func WithMaxSize(n int) Option {
	return func(b *Buffer) { b.max = n }
}

// WithResizer installs the supplier's resize operation. The default is a
// SliceResizer with no limit of its own.
func WithResizer(r Resizer) Option {
	return func(b *Buffer) { b.resizer = r }
}

// New wraps an externally supplied byte region. The region's current
// length is its logical length.
func New(data []byte, opts ...Option) *Buffer {
	b := &Buffer{
		data:    data,
		max:     math.MaxInt,
		resizer: SliceResizer{},
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewInitialized allocates a region of exactly u's minimum valid size,
// writes the minimum encoding, and wraps it. This is the buffer-creation
// path for a fresh account or file.
func NewInitialized(u layout.Unsized, opts ...Option) (*Buffer, error) {
	data := make([]byte, u.InitBytes())
	if err := u.Init(data); err != nil {
		return nil, err
	}
	b := New(data, opts...)
	if len(data) > b.max {
		return nil, fmt.Errorf("%w: minimum encoding is %d bytes, maximum size is %d",
			errs.ErrCapacityExceeded, len(data), b.max)
	}

	return b, nil
}

// Len returns the buffer's logical length in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// MaxSize returns the largest logical length a structural edit may reach.
func (b *Buffer) MaxSize() int { return b.max }

// Bytes returns the buffer's logical bytes. The slice aliases the buffer;
// treat it as read-only and do not hold it across a structural edit.
func (b *Buffer) Bytes() []byte { return b.data }

// Generation returns the structural-edit counter. Every resize increments
// it.
func (b *Buffer) Generation() uint64 { return b.gen }

// Acquire returns a shared, read-only view over the whole buffer. It fails
// with errs.ErrExclusiveHeld while an exclusive view is outstanding.
func (b *Buffer) Acquire() (*Ref, error) {
	if b.exclusive {
		return nil, errs.ErrExclusiveHeld
	}

	return &Ref{buf: b, off: 0, length: len(b.data), gen: b.gen}, nil
}

// AcquireMut returns the exclusive root view over the whole buffer. At most
// one may be outstanding; a second acquisition fails with
// errs.ErrExclusiveHeld until the first is released.
func (b *Buffer) AcquireMut() (*Mut, error) {
	if b.exclusive {
		return nil, errs.ErrExclusiveHeld
	}
	b.exclusive = true
	m := &Mut{buf: b, off: 0, length: len(b.data), gen: b.gen}
	m.root = m

	return m, nil
}

// Digest returns the xxHash64 fingerprint of the buffer's current logical
// bytes.
func (b *Buffer) Digest() uint64 {
	return hash.Digest(b.data)
}

// CommitDigest records the current fingerprint for a later VerifyDigest.
// Call it after releasing an exclusive view to fingerprint the settled
// bytes.
func (b *Buffer) CommitDigest() uint64 {
	b.digest = hash.Digest(b.data)
	b.hasDigest = true

	return b.digest
}

// VerifyDigest checks the buffer's bytes against the last committed
// fingerprint. It fails with errs.ErrDigestMismatch if the content changed
// outside this layer, and is a no-op when no fingerprint was committed.
func (b *Buffer) VerifyDigest() error {
	if !b.hasDigest {
		return nil
	}
	if got := hash.Digest(b.data); got != b.digest {
		return fmt.Errorf("%w: committed %016x, current %016x", errs.ErrDigestMismatch, b.digest, got)
	}

	return nil
}
