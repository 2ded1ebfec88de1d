package container

import (
	"fmt"
	"iter"
	"math"

	"github.com/inlay-io/inlay/buffer"
	"github.com/inlay-io/inlay/errs"
	"github.com/inlay-io/inlay/internal/pool"
	"github.com/inlay-io/inlay/layout"
)

// ListType describes a length-prefixed contiguous sequence of fixed-size
// elements: [count: L][elem 0][elem 1]... The length-prefix width and the
// element codec are part of the type; the element count is runtime data.
//
// ListType implements layout.Unsized, so a list can be the tail of a
// composite or a variant of a union.
type ListType[T any] struct {
	elem layout.Fixed[T]
	lenp layout.LenPrefix
}

// NewList describes a list of elem-encoded values behind a lenp count
// prefix. It panics if the element codec is zero-sized: a list of
// zero-width elements has no addressable slots.
func NewList[T any](elem layout.Fixed[T], lenp layout.LenPrefix) *ListType[T] {
	if elem.Size() <= 0 {
		panic(fmt.Sprintf("container: list element codec has size %d, need > 0", elem.Size()))
	}

	return &ListType[T]{elem: elem, lenp: lenp}
}

// ElemSize returns the byte width of one element.
func (lt *ListType[T]) ElemSize() int { return lt.elem.Size() }

// InitBytes returns the size of an empty list: just the count prefix.
func (lt *ListType[T]) InitBytes() int { return lt.lenp.Size() }

// Init writes an empty list.
func (lt *ListType[T]) Init(dst []byte) error {
	return lt.lenp.Write(dst, 0)
}

// ByteLen reports the encoded length from the count prefix, with checked
// arithmetic.
func (lt *ListType[T]) ByteLen(data []byte) (int, error) {
	n, err := lt.lenp.Read(data)
	if err != nil {
		return 0, err
	}
	total, err := lt.byteSizeFor(n)
	if err != nil {
		return 0, err
	}
	if len(data) < total {
		return 0, fmt.Errorf("%w: count %d needs %d bytes, region has %d",
			errs.ErrInvalidEncoding, n, total, len(data))
	}

	return total, nil
}

// Validate checks the count against the region size and every element
// against the element codec's predicate.
func (lt *ListType[T]) Validate(data []byte) error {
	total, err := lt.ByteLen(data)
	if err != nil {
		return err
	}
	size := lt.elem.Size()
	for off := lt.lenp.Size(); off < total; off += size {
		if err := lt.elem.Validate(data[off:]); err != nil {
			return err
		}
	}

	return nil
}

// ByteSize returns the encoded size of an owned slice, the first half of
// the two-phase owned write.
func (lt *ListType[T]) ByteSize(vs []T) int {
	return lt.lenp.Size() + len(vs)*lt.elem.Size()
}

// FromOwned writes an owned slice as a complete list encoding into dst,
// which must be at least ByteSize(vs) bytes.
func (lt *ListType[T]) FromOwned(dst []byte, vs []T) error {
	if len(dst) < lt.ByteSize(vs) {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrShortBuffer, lt.ByteSize(vs), len(dst))
	}
	if err := lt.lenp.Write(dst, len(vs)); err != nil {
		return err
	}
	off := lt.lenp.Size()
	for _, v := range vs {
		if err := lt.elem.Put(dst[off:], v); err != nil {
			return err
		}
		off += lt.elem.Size()
	}

	return nil
}

// ToOwned decodes a complete list encoding into a detached slice.
func (lt *ListType[T]) ToOwned(data []byte) ([]T, error) {
	total, err := lt.ByteLen(data)
	if err != nil {
		return nil, err
	}
	size := lt.elem.Size()
	n := (total - lt.lenp.Size()) / size

	out := make([]T, 0, n)
	for off := lt.lenp.Size(); off < total; off += size {
		v, err := lt.elem.Get(data[off:])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func (lt *ListType[T]) byteSizeFor(n int) (int, error) {
	size := lt.elem.Size()
	if size > 0 && n > (math.MaxInt-lt.lenp.Size())/size {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", errs.ErrNumericOverflow, n, size)
	}

	return lt.lenp.Size() + n*size, nil
}

// Ref opens a shared view over a region holding exactly one list encoding.
func (lt *ListType[T]) Ref(r *buffer.Ref) (*ListRef[T], error) {
	data, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	if err := lt.checkRegion(data, r.Len()); err != nil {
		return nil, err
	}

	return &ListRef[T]{typ: lt, ref: r}, nil
}

// Mut opens the exclusive view over a region holding exactly one list
// encoding.
func (lt *ListType[T]) Mut(m *buffer.Mut) (*ListMut[T], error) {
	data, err := m.Bytes()
	if err != nil {
		return nil, err
	}
	if err := lt.checkRegion(data, m.Len()); err != nil {
		return nil, err
	}

	return &ListMut[T]{typ: lt, mut: m}, nil
}

// checkRegion enforces the length-consistency invariant at view creation:
// count*elemSize + prefixSize must equal the window size exactly.
func (lt *ListType[T]) checkRegion(data []byte, window int) error {
	total, err := lt.ByteLen(data)
	if err != nil {
		return err
	}
	if total != window {
		return fmt.Errorf("%w: list occupies %d bytes in a %d-byte window",
			errs.ErrInvalidEncoding, total, window)
	}

	return nil
}

// ListRef is a shared, read-only list view.
type ListRef[T any] struct {
	typ *ListType[T]
	ref *buffer.Ref
}

// Len returns the element count.
func (l *ListRef[T]) Len() (int, error) {
	data, err := l.ref.Bytes()
	if err != nil {
		return 0, err
	}

	return l.typ.lenp.Read(data)
}

// Get returns element i.
func (l *ListRef[T]) Get(i int) (T, error) {
	var zero T
	data, err := l.ref.Bytes()
	if err != nil {
		return zero, err
	}

	return l.typ.getElem(data, i)
}

// All iterates elements in storage order. Iteration stops silently if the
// view goes stale mid-walk; use Len/Get for checked access.
func (l *ListRef[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n, err := l.Len()
		if err != nil {
			return
		}
		for i := 0; i < n; i++ {
			v, err := l.Get(i)
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// ToOwned decodes the list into a detached slice.
func (l *ListRef[T]) ToOwned() ([]T, error) {
	data, err := l.ref.Bytes()
	if err != nil {
		return nil, err
	}

	return l.typ.ToOwned(data)
}

// ListMut is the exclusive list view. Structural edits keep the count
// prefix, the buffer length, and every ancestor view consistent; a failed
// edit changes nothing.
type ListMut[T any] struct {
	typ *ListType[T]
	mut *buffer.Mut
}

// Len returns the element count.
func (l *ListMut[T]) Len() (int, error) {
	data, err := l.mut.Bytes()
	if err != nil {
		return 0, err
	}

	return l.typ.lenp.Read(data)
}

// Get returns element i.
func (l *ListMut[T]) Get(i int) (T, error) {
	var zero T
	data, err := l.mut.Bytes()
	if err != nil {
		return zero, err
	}

	return l.typ.getElem(data, i)
}

// Set overwrites element i in place. This is a non-structural edit: no
// byte length changes and no cascade runs. The value is encoded to scratch
// first, so a rejected value leaves the old element bytes intact.
func (l *ListMut[T]) Set(i int, v T) error {
	data, err := l.mut.Bytes()
	if err != nil {
		return err
	}
	n, err := l.typ.lenp.Read(data)
	if err != nil {
		return err
	}
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfBounds, i, n)
	}

	staged, release, err := l.typ.stageElem(v)
	if err != nil {
		return err
	}
	defer release()
	copy(data[l.typ.elemOffset(i):], staged)

	return nil
}

// Push appends a value, growing the region by one element slot.
func (l *ListMut[T]) Push(v T) error {
	n, err := l.Len()
	if err != nil {
		return err
	}

	return l.Insert(n, v)
}

// Insert places v at index i (0 <= i <= len), shifting later elements
// right by one slot. The value is encoded and the capacity checked before
// any byte moves, so a failed insert leaves the list untouched.
func (l *ListMut[T]) Insert(i int, v T) error {
	data, err := l.mut.Bytes()
	if err != nil {
		return err
	}
	n, err := l.typ.lenp.Read(data)
	if err != nil {
		return err
	}
	if i < 0 || i > n {
		return fmt.Errorf("%w: insert at %d, length %d", errs.ErrIndexOutOfBounds, i, n)
	}
	if n+1 > l.typ.lenp.Max() {
		return fmt.Errorf("%w: count %d exceeds length prefix", errs.ErrNumericOverflow, n+1)
	}

	staged, release, err := l.typ.stageElem(v)
	if err != nil {
		return err
	}
	defer release()

	off := l.typ.elemOffset(i)
	if err := l.mut.Resize(off, l.typ.elem.Size()); err != nil {
		return err
	}

	data, _ = l.mut.Bytes()
	copy(data[off:], staged)

	return l.typ.lenp.Write(data, n+1)
}

// Remove deletes element i, shifting later elements left, and returns the
// removed value.
func (l *ListMut[T]) Remove(i int) (T, error) {
	var zero T
	data, err := l.mut.Bytes()
	if err != nil {
		return zero, err
	}
	n, err := l.typ.lenp.Read(data)
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= n {
		return zero, fmt.Errorf("%w: remove at %d, length %d", errs.ErrIndexOutOfBounds, i, n)
	}

	v, err := l.typ.getElem(data, i)
	if err != nil {
		return zero, err
	}

	off := l.typ.elemOffset(i)
	if err := l.mut.Resize(off, -l.typ.elem.Size()); err != nil {
		return zero, err
	}
	data, _ = l.mut.Bytes()
	if err := l.typ.lenp.Write(data, n-1); err != nil {
		return zero, err
	}

	return v, nil
}

// RemoveRange deletes elements [from, to) with a single cascade call.
func (l *ListMut[T]) RemoveRange(from, to int) error {
	data, err := l.mut.Bytes()
	if err != nil {
		return err
	}
	n, err := l.typ.lenp.Read(data)
	if err != nil {
		return err
	}
	if from < 0 || to < from || to > n {
		return fmt.Errorf("%w: range [%d, %d), length %d", errs.ErrIndexOutOfBounds, from, to, n)
	}
	if from == to {
		return nil
	}

	removed := to - from
	off := l.typ.elemOffset(from)
	if err := l.mut.Resize(off, -removed*l.typ.elem.Size()); err != nil {
		return err
	}
	data, _ = l.mut.Bytes()

	return l.typ.lenp.Write(data, n-removed)
}

// Replace swaps the entire contents for an owned slice in one structural
// edit. The new encoding is staged in pooled scratch first, so a capacity
// failure leaves the list untouched.
func (l *ListMut[T]) Replace(vs []T) error {
	if _, err := l.typ.byteSizeFor(len(vs)); err != nil {
		return err
	}
	if len(vs) > l.typ.lenp.Max() {
		return fmt.Errorf("%w: count %d exceeds length prefix", errs.ErrNumericOverflow, len(vs))
	}

	scratch := pool.GetScratch()
	defer pool.PutScratch(scratch)

	staged := scratch.Extend(l.typ.ByteSize(vs))
	if err := l.typ.FromOwned(staged, vs); err != nil {
		return err
	}

	cur := l.mut.Len()
	switch {
	case len(staged) > cur:
		if err := l.mut.Resize(cur, len(staged)-cur); err != nil {
			return err
		}
	case len(staged) < cur:
		if err := l.mut.Resize(len(staged), len(staged)-cur); err != nil {
			return err
		}
	}

	data, err := l.mut.Bytes()
	if err != nil {
		return err
	}
	copy(data, staged)

	return nil
}

// All iterates elements in storage order.
func (l *ListMut[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n, err := l.Len()
		if err != nil {
			return
		}
		for i := 0; i < n; i++ {
			v, err := l.Get(i)
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// ToOwned decodes the list into a detached slice.
func (l *ListMut[T]) ToOwned() ([]T, error) {
	data, err := l.mut.Bytes()
	if err != nil {
		return nil, err
	}

	return l.typ.ToOwned(data)
}

// stageElem encodes v into pooled scratch so a rejected value is caught
// before any buffer byte changes. The caller copies the staged bytes into
// place and then invokes release.
func (lt *ListType[T]) stageElem(v T) ([]byte, func(), error) {
	scratch := pool.GetScratch()
	staged := scratch.Extend(lt.elem.Size())
	if err := lt.elem.Put(staged, v); err != nil {
		pool.PutScratch(scratch)
		return nil, nil, err
	}

	return staged, func() { pool.PutScratch(scratch) }, nil
}

func (lt *ListType[T]) elemOffset(i int) int {
	return lt.lenp.Size() + i*lt.elem.Size()
}

func (lt *ListType[T]) getElem(data []byte, i int) (T, error) {
	var zero T
	n, err := lt.lenp.Read(data)
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= n {
		return zero, fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfBounds, i, n)
	}

	return lt.elem.Get(data[lt.elemOffset(i):])
}
