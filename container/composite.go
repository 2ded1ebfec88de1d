package container

import (
	"fmt"

	"github.com/inlay-io/inlay/buffer"
	"github.com/inlay-io/inlay/errs"
	"github.com/inlay-io/inlay/layout"
)

// CompositeRef is a shared view of a composite encoding: a fixed prefix of
// statically placed fields followed by at most one variable-length tail.
// Descending into a field is pure offset arithmetic; no preceding field is
// decoded.
type CompositeRef struct {
	schema *layout.Schema
	ref    *buffer.Ref
}

// NewCompositeRef opens a shared composite view over a region holding
// exactly one encoding of the schema.
func NewCompositeRef(s *layout.Schema, r *buffer.Ref) (*CompositeRef, error) {
	data, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	if err := checkComposite(s, data, r.Len()); err != nil {
		return nil, err
	}

	return &CompositeRef{schema: s, ref: r}, nil
}

// Field narrows the view to fixed field i.
func (c *CompositeRef) Field(i int) (*buffer.Ref, error) {
	off, size, err := fieldSpan(c.schema, i)
	if err != nil {
		return nil, err
	}

	return c.ref.Slice(off, size)
}

// Tail narrows the view to the trailing unsized region.
func (c *CompositeRef) Tail() (*buffer.Ref, error) {
	if c.schema.Tail() == nil {
		return nil, fmt.Errorf("%w: composite has no tail", errs.ErrIndexOutOfBounds)
	}

	return c.ref.Slice(c.schema.TailOffset(), c.ref.Len()-c.schema.TailOffset())
}

// CompositeMut is the exclusive composite view. Tail produces a child in
// the exclusive chain, so structural edits inside it repair this view and
// its ancestors.
type CompositeMut struct {
	schema *layout.Schema
	mut    *buffer.Mut
}

// NewCompositeMut opens the exclusive composite view over a region holding
// exactly one encoding of the schema.
func NewCompositeMut(s *layout.Schema, m *buffer.Mut) (*CompositeMut, error) {
	data, err := m.Bytes()
	if err != nil {
		return nil, err
	}
	if err := checkComposite(s, data, m.Len()); err != nil {
		return nil, err
	}

	return &CompositeMut{schema: s, mut: m}, nil
}

// Field narrows the view to fixed field i. Fixed fields never resize, so
// writes through the child are plain overwrites.
func (c *CompositeMut) Field(i int) (*buffer.Mut, error) {
	off, size, err := fieldSpan(c.schema, i)
	if err != nil {
		return nil, err
	}

	return c.mut.Child(off, size)
}

// Tail narrows the view to the trailing unsized region, extending the
// exclusive chain.
func (c *CompositeMut) Tail() (*buffer.Mut, error) {
	if c.schema.Tail() == nil {
		return nil, fmt.Errorf("%w: composite has no tail", errs.ErrIndexOutOfBounds)
	}

	return c.mut.Child(c.schema.TailOffset(), c.mut.Len()-c.schema.TailOffset())
}

func checkComposite(s *layout.Schema, data []byte, window int) error {
	total, err := s.ByteLen(data)
	if err != nil {
		return err
	}
	if total != window {
		return fmt.Errorf("%w: composite occupies %d bytes in a %d-byte window",
			errs.ErrInvalidEncoding, total, window)
	}

	return nil
}

func fieldSpan(s *layout.Schema, i int) (int, int, error) {
	if i < 0 || i >= s.NumFields() {
		return 0, 0, fmt.Errorf("%w: field %d of %d", errs.ErrIndexOutOfBounds, i, s.NumFields())
	}
	size := s.FieldSize(i)
	if size < 0 {
		return 0, 0, fmt.Errorf("%w: field %d is the unsized tail, use Tail", errs.ErrIndexOutOfBounds, i)
	}

	return s.FieldOffset(i), size, nil
}
