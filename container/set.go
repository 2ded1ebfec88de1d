package container

import (
	"fmt"
	"iter"
	"slices"

	"github.com/inlay-io/inlay/buffer"
	"github.com/inlay-io/inlay/errs"
	"github.com/inlay-io/inlay/layout"
)

// SetType describes an ordered set: a List of keys kept sorted ascending
// with no duplicates. The sort invariant holds after every mutating
// operation, which is what makes binary search valid.
type SetType[K any] struct {
	list *ListType[K]
	cmp  func(K, K) int
}

// NewSet describes a set of key-encoded values ordered by cmp.
func NewSet[K any](key layout.Fixed[K], cmp func(K, K) int, lenp layout.LenPrefix) *SetType[K] {
	return &SetType[K]{
		list: NewList(key, lenp),
		cmp:  cmp,
	}
}

// InitBytes returns the size of an empty set.
func (st *SetType[K]) InitBytes() int { return st.list.InitBytes() }

// Init writes an empty set.
func (st *SetType[K]) Init(dst []byte) error { return st.list.Init(dst) }

// ByteLen reports the encoded length from the count prefix.
func (st *SetType[K]) ByteLen(data []byte) (int, error) { return st.list.ByteLen(data) }

// Validate checks the underlying list and the strictly-ascending key
// order.
func (st *SetType[K]) Validate(data []byte) error {
	if err := st.list.Validate(data); err != nil {
		return err
	}
	keys, err := st.list.ToOwned(data)
	if err != nil {
		return err
	}
	for i := 1; i < len(keys); i++ {
		if st.cmp(keys[i-1], keys[i]) >= 0 {
			return fmt.Errorf("%w: keys out of order at index %d", errs.ErrInvalidEncoding, i)
		}
	}

	return nil
}

// ByteSize returns the encoded size for the given key count.
func (st *SetType[K]) ByteSize(keys []K) int { return st.list.ByteSize(keys) }

// Ref opens a shared view over a region holding exactly one set encoding.
func (st *SetType[K]) Ref(r *buffer.Ref) (*SetRef[K], error) {
	lr, err := st.list.Ref(r)
	if err != nil {
		return nil, err
	}

	return &SetRef[K]{typ: st, list: lr}, nil
}

// Mut opens the exclusive view over a region holding exactly one set
// encoding.
func (st *SetType[K]) Mut(m *buffer.Mut) (*SetMut[K], error) {
	lm, err := st.list.Mut(m)
	if err != nil {
		return nil, err
	}

	return &SetMut[K]{typ: st, list: lm}, nil
}

// search returns the insertion point for k and whether k is present.
// O(log n) comparisons, one element decode per probe.
func (st *SetType[K]) search(get func(int) (K, error), n int, k K) (int, bool, error) {
	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		v, err := get(mid)
		if err != nil {
			return 0, false, err
		}
		switch c := st.cmp(v, k); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true, nil
		}
	}

	return lo, false, nil
}

// SetRef is a shared, read-only set view.
type SetRef[K any] struct {
	typ  *SetType[K]
	list *ListRef[K]
}

// Len returns the key count.
func (s *SetRef[K]) Len() (int, error) { return s.list.Len() }

// Contains reports whether k is present.
func (s *SetRef[K]) Contains(k K) (bool, error) {
	n, err := s.list.Len()
	if err != nil {
		return false, err
	}
	_, found, err := s.typ.search(s.list.Get, n, k)

	return found, err
}

// Index returns k's position in sorted order, or errs.ErrKeyNotFound.
func (s *SetRef[K]) Index(k K) (int, error) {
	n, err := s.list.Len()
	if err != nil {
		return 0, err
	}
	i, found, err := s.typ.search(s.list.Get, n, k)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errs.ErrKeyNotFound
	}

	return i, nil
}

// At returns the key at sorted position i.
func (s *SetRef[K]) At(i int) (K, error) { return s.list.Get(i) }

// All iterates keys in ascending order.
func (s *SetRef[K]) All() iter.Seq2[int, K] { return s.list.All() }

// ToOwned decodes the set into a detached sorted slice.
func (s *SetRef[K]) ToOwned() ([]K, error) { return s.list.ToOwned() }

// SetMut is the exclusive set view.
type SetMut[K any] struct {
	typ  *SetType[K]
	list *ListMut[K]
}

// Len returns the key count.
func (s *SetMut[K]) Len() (int, error) { return s.list.Len() }

// Contains reports whether k is present.
func (s *SetMut[K]) Contains(k K) (bool, error) {
	n, err := s.list.Len()
	if err != nil {
		return false, err
	}
	_, found, err := s.typ.search(s.list.Get, n, k)

	return found, err
}

// Index returns k's position in sorted order, or errs.ErrKeyNotFound.
func (s *SetMut[K]) Index(k K) (int, error) {
	n, err := s.list.Len()
	if err != nil {
		return 0, err
	}
	i, found, err := s.typ.search(s.list.Get, n, k)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errs.ErrKeyNotFound
	}

	return i, nil
}

// At returns the key at sorted position i.
func (s *SetMut[K]) At(i int) (K, error) { return s.list.Get(i) }

// Insert adds k at its sorted position. If k is already present the set
// does not grow and the existing index is returned with added == false.
func (s *SetMut[K]) Insert(k K) (int, bool, error) {
	n, err := s.list.Len()
	if err != nil {
		return 0, false, err
	}
	i, found, err := s.typ.search(s.list.Get, n, k)
	if err != nil {
		return 0, false, err
	}
	if found {
		return i, false, nil
	}
	if err := s.list.Insert(i, k); err != nil {
		return 0, false, err
	}

	return i, true, nil
}

// Remove deletes k if present and reports whether it was.
func (s *SetMut[K]) Remove(k K) (bool, error) {
	n, err := s.list.Len()
	if err != nil {
		return false, err
	}
	i, found, err := s.typ.search(s.list.Get, n, k)
	if err != nil || !found {
		return false, err
	}
	if _, err := s.list.Remove(i); err != nil {
		return false, err
	}

	return true, nil
}

// Replace swaps the entire contents for an owned key slice in one
// structural edit. Input order does not matter; duplicates collapse.
func (s *SetMut[K]) Replace(keys []K) error {
	sorted := slices.Clone(keys)
	slices.SortFunc(sorted, s.typ.cmp)
	sorted = slices.CompactFunc(sorted, func(a, b K) bool { return s.typ.cmp(a, b) == 0 })

	return s.list.Replace(sorted)
}

// All iterates keys in ascending order.
func (s *SetMut[K]) All() iter.Seq2[int, K] { return s.list.All() }

// ToOwned decodes the set into a detached sorted slice.
func (s *SetMut[K]) ToOwned() ([]K, error) { return s.list.ToOwned() }
