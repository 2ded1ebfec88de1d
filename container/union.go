package container

import (
	"fmt"

	"github.com/inlay-io/inlay/buffer"
	"github.com/inlay-io/inlay/errs"
	"github.com/inlay-io/inlay/layout"
)

// UnionRef is a shared view of a discriminated encoding: a tag byte
// selecting one of the declared variant layouts.
type UnionRef struct {
	typ layout.UnionLayout
	ref *buffer.Ref
}

// NewUnionRef opens a shared view over a region holding exactly one union
// encoding.
func NewUnionRef(u layout.UnionLayout, r *buffer.Ref) (*UnionRef, error) {
	data, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	if err := checkUnion(u, data, r.Len()); err != nil {
		return nil, err
	}

	return &UnionRef{typ: u, ref: r}, nil
}

// Tag returns the active variant tag.
func (u *UnionRef) Tag() (uint8, error) {
	data, err := u.ref.Bytes()
	if err != nil {
		return 0, err
	}

	return u.typ.Tag(data)
}

// Payload narrows the view to the active variant's encoding.
func (u *UnionRef) Payload() (*buffer.Ref, error) {
	off := u.typ.PayloadOffset()

	return u.ref.Slice(off, u.ref.Len()-off)
}

// UnionMut is the exclusive union view. Switching the active variant is a
// structural edit and routes through the resize cascade.
type UnionMut struct {
	typ layout.UnionLayout
	mut *buffer.Mut
}

// NewUnionMut opens the exclusive view over a region holding exactly one
// union encoding.
func NewUnionMut(u layout.UnionLayout, m *buffer.Mut) (*UnionMut, error) {
	data, err := m.Bytes()
	if err != nil {
		return nil, err
	}
	if err := checkUnion(u, data, m.Len()); err != nil {
		return nil, err
	}

	return &UnionMut{typ: u, mut: m}, nil
}

// Tag returns the active variant tag.
func (u *UnionMut) Tag() (uint8, error) {
	data, err := u.mut.Bytes()
	if err != nil {
		return 0, err
	}

	return u.typ.Tag(data)
}

// Payload narrows the view to the active variant's encoding, extending the
// exclusive chain.
func (u *UnionMut) Payload() (*buffer.Mut, error) {
	off := u.typ.PayloadOffset()

	return u.mut.Child(off, u.mut.Len()-off)
}

// Switch replaces the active variant with tag's minimum valid encoding in
// one structural edit. The capacity check happens before any byte moves;
// a failed switch leaves the encoding untouched.
func (u *UnionMut) Switch(tag uint8) error {
	variant, err := u.typ.Variant(tag)
	if err != nil {
		return err
	}
	data, err := u.mut.Bytes()
	if err != nil {
		return err
	}

	off := u.typ.PayloadOffset()
	oldLen := u.mut.Len() - off
	newLen := variant.InitBytes()

	if delta := newLen - oldLen; delta != 0 {
		if err := u.mut.Resize(off, delta); err != nil {
			return err
		}
		data, _ = u.mut.Bytes()
	}

	// The payload region may still hold the old variant's bytes; Init
	// expects a zero-filled region.
	clear(data[off : off+newLen])
	if err := variant.Init(data[off : off+newLen]); err != nil {
		return err
	}
	data[0] = tag

	return nil
}

func checkUnion(u layout.UnionLayout, data []byte, window int) error {
	total, err := u.ByteLen(data)
	if err != nil {
		return err
	}
	if total != window {
		return fmt.Errorf("%w: union occupies %d bytes in a %d-byte window",
			errs.ErrInvalidEncoding, total, window)
	}

	return nil
}
