package container

import (
	"fmt"

	"github.com/inlay-io/inlay/buffer"
	"github.com/inlay-io/inlay/errs"
	"github.com/inlay-io/inlay/layout"
)

// SeqRef is a shared view over a Seq tail: two variable-length encodings
// back to back.
type SeqRef struct {
	typ layout.SeqLayout
	ref *buffer.Ref
}

// NewSeqRef opens a shared view over a region holding exactly one Seq
// encoding.
func NewSeqRef(s layout.SeqLayout, r *buffer.Ref) (*SeqRef, error) {
	data, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	if err := checkSeq(s, data, r.Len()); err != nil {
		return nil, err
	}

	return &SeqRef{typ: s, ref: r}, nil
}

// First narrows the view to the leading encoding.
func (s *SeqRef) First() (*buffer.Ref, error) {
	data, err := s.ref.Bytes()
	if err != nil {
		return nil, err
	}
	n, err := s.typ.First().ByteLen(data)
	if err != nil {
		return nil, err
	}

	return s.ref.Slice(0, n)
}

// Second narrows the view to the trailing encoding. Locating it costs one
// ByteLen scan of the first encoding.
func (s *SeqRef) Second() (*buffer.Ref, error) {
	data, err := s.ref.Bytes()
	if err != nil {
		return nil, err
	}
	n, err := s.typ.SecondOffset(data)
	if err != nil {
		return nil, err
	}

	return s.ref.Slice(n, s.ref.Len()-n)
}

// SeqMut is the exclusive view over a Seq tail. First and Second extend
// the exclusive chain; after a structural edit inside one half, a view of
// the other half taken earlier is stale (errs.ErrStaleView) and must be
// re-derived.
type SeqMut struct {
	typ layout.SeqLayout
	mut *buffer.Mut
}

// NewSeqMut opens the exclusive view over a region holding exactly one Seq
// encoding.
func NewSeqMut(s layout.SeqLayout, m *buffer.Mut) (*SeqMut, error) {
	data, err := m.Bytes()
	if err != nil {
		return nil, err
	}
	if err := checkSeq(s, data, m.Len()); err != nil {
		return nil, err
	}

	return &SeqMut{typ: s, mut: m}, nil
}

// First narrows the view to the leading encoding, extending the exclusive
// chain.
func (s *SeqMut) First() (*buffer.Mut, error) {
	data, err := s.mut.Bytes()
	if err != nil {
		return nil, err
	}
	n, err := s.typ.First().ByteLen(data)
	if err != nil {
		return nil, err
	}

	return s.mut.Child(0, n)
}

// Second narrows the view to the trailing encoding, extending the
// exclusive chain.
func (s *SeqMut) Second() (*buffer.Mut, error) {
	data, err := s.mut.Bytes()
	if err != nil {
		return nil, err
	}
	n, err := s.typ.SecondOffset(data)
	if err != nil {
		return nil, err
	}

	return s.mut.Child(n, s.mut.Len()-n)
}

func checkSeq(s layout.SeqLayout, data []byte, window int) error {
	total, err := s.ByteLen(data)
	if err != nil {
		return err
	}
	if total != window {
		return fmt.Errorf("%w: sequence occupies %d bytes in a %d-byte window",
			errs.ErrInvalidEncoding, total, window)
	}

	return nil
}
