package container

import (
	"fmt"
	"iter"
	"slices"

	"github.com/inlay-io/inlay/buffer"
	"github.com/inlay-io/inlay/errs"
	"github.com/inlay-io/inlay/layout"
)

// MapType describes an ordered map: a List of (key, value) pairs kept
// sorted ascending by key with no duplicate keys.
type MapType[K, V any] struct {
	list *ListType[layout.Pair[K, V]]
	cmp  func(K, K) int
}

// NewMap describes a map of key/val-encoded pairs ordered by cmp on the
// key.
func NewMap[K, V any](key layout.Fixed[K], val layout.Fixed[V], cmp func(K, K) int, lenp layout.LenPrefix) *MapType[K, V] {
	return &MapType[K, V]{
		list: NewList(layout.PairOf(key, val), lenp),
		cmp:  cmp,
	}
}

// InitBytes returns the size of an empty map.
func (mt *MapType[K, V]) InitBytes() int { return mt.list.InitBytes() }

// Init writes an empty map.
func (mt *MapType[K, V]) Init(dst []byte) error { return mt.list.Init(dst) }

// ByteLen reports the encoded length from the count prefix.
func (mt *MapType[K, V]) ByteLen(data []byte) (int, error) { return mt.list.ByteLen(data) }

// Validate checks the underlying list and the strictly-ascending key
// order.
func (mt *MapType[K, V]) Validate(data []byte) error {
	if err := mt.list.Validate(data); err != nil {
		return err
	}
	pairs, err := mt.list.ToOwned(data)
	if err != nil {
		return err
	}
	for i := 1; i < len(pairs); i++ {
		if mt.cmp(pairs[i-1].Key, pairs[i].Key) >= 0 {
			return fmt.Errorf("%w: keys out of order at index %d", errs.ErrInvalidEncoding, i)
		}
	}

	return nil
}

// ByteSize returns the encoded size for the given entry count.
func (mt *MapType[K, V]) ByteSize(pairs []layout.Pair[K, V]) int { return mt.list.ByteSize(pairs) }

// Ref opens a shared view over a region holding exactly one map encoding.
func (mt *MapType[K, V]) Ref(r *buffer.Ref) (*MapRef[K, V], error) {
	lr, err := mt.list.Ref(r)
	if err != nil {
		return nil, err
	}

	return &MapRef[K, V]{typ: mt, list: lr}, nil
}

// Mut opens the exclusive view over a region holding exactly one map
// encoding.
func (mt *MapType[K, V]) Mut(m *buffer.Mut) (*MapMut[K, V], error) {
	lm, err := mt.list.Mut(m)
	if err != nil {
		return nil, err
	}

	return &MapMut[K, V]{typ: mt, list: lm}, nil
}

func (mt *MapType[K, V]) search(get func(int) (layout.Pair[K, V], error), n int, k K) (int, bool, error) {
	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		p, err := get(mid)
		if err != nil {
			return 0, false, err
		}
		switch c := mt.cmp(p.Key, k); {
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

// MapRef is a shared, read-only map view.
type MapRef[K, V any] struct {
	typ  *MapType[K, V]
	list *ListRef[layout.Pair[K, V]]
}

// Len returns the entry count.
func (m *MapRef[K, V]) Len() (int, error) { return m.list.Len() }

// Get returns the value stored under k, or errs.ErrKeyNotFound.
func (m *MapRef[K, V]) Get(k K) (V, error) {
	var zero V
	n, err := m.list.Len()
	if err != nil {
		return zero, err
	}
	i, found, err := m.typ.search(m.list.Get, n, k)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, errs.ErrKeyNotFound
	}
	p, err := m.list.Get(i)
	if err != nil {
		return zero, err
	}

	return p.Val, nil
}

// Contains reports whether k is present.
func (m *MapRef[K, V]) Contains(k K) (bool, error) {
	n, err := m.list.Len()
	if err != nil {
		return false, err
	}
	_, found, err := m.typ.search(m.list.Get, n, k)

	return found, err
}

// At returns the entry at sorted position i.
func (m *MapRef[K, V]) At(i int) (layout.Pair[K, V], error) { return m.list.Get(i) }

// All iterates entries in ascending key order.
func (m *MapRef[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.list.All() {
			if !yield(p.Key, p.Val) {
				return
			}
		}
	}
}

// ToOwned decodes the map into a detached sorted pair slice.
func (m *MapRef[K, V]) ToOwned() ([]layout.Pair[K, V], error) { return m.list.ToOwned() }

// MapMut is the exclusive map view.
type MapMut[K, V any] struct {
	typ  *MapType[K, V]
	list *ListMut[layout.Pair[K, V]]
}

// Len returns the entry count.
func (m *MapMut[K, V]) Len() (int, error) { return m.list.Len() }

// Get returns the value stored under k, or errs.ErrKeyNotFound.
func (m *MapMut[K, V]) Get(k K) (V, error) {
	var zero V
	n, err := m.list.Len()
	if err != nil {
		return zero, err
	}
	i, found, err := m.typ.search(m.list.Get, n, k)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, errs.ErrKeyNotFound
	}
	p, err := m.list.Get(i)
	if err != nil {
		return zero, err
	}

	return p.Val, nil
}

// Contains reports whether k is present.
func (m *MapMut[K, V]) Contains(k K) (bool, error) {
	n, err := m.list.Len()
	if err != nil {
		return false, err
	}
	_, found, err := m.typ.search(m.list.Get, n, k)

	return found, err
}

// At returns the entry at sorted position i.
func (m *MapMut[K, V]) At(i int) (layout.Pair[K, V], error) { return m.list.Get(i) }

// Insert stores v under k. On a fresh key the pair is placed at its sorted
// position and the map grows. On an existing key the value is replaced in
// place (last write wins) and the old value is returned with
// replaced == true, never silently dropped.
func (m *MapMut[K, V]) Insert(k K, v V) (V, bool, error) {
	var zero V
	n, err := m.list.Len()
	if err != nil {
		return zero, false, err
	}
	i, found, err := m.typ.search(m.list.Get, n, k)
	if err != nil {
		return zero, false, err
	}

	entry := layout.Pair[K, V]{Key: k, Val: v}
	if found {
		old, err := m.list.Get(i)
		if err != nil {
			return zero, false, err
		}
		if err := m.list.Set(i, entry); err != nil {
			return zero, false, err
		}

		return old.Val, true, nil
	}

	if err := m.list.Insert(i, entry); err != nil {
		return zero, false, err
	}

	return zero, false, nil
}

// Remove deletes k's entry and returns its value, or errs.ErrKeyNotFound.
func (m *MapMut[K, V]) Remove(k K) (V, error) {
	var zero V
	n, err := m.list.Len()
	if err != nil {
		return zero, err
	}
	i, found, err := m.typ.search(m.list.Get, n, k)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, errs.ErrKeyNotFound
	}
	p, err := m.list.Remove(i)
	if err != nil {
		return zero, err
	}

	return p.Val, nil
}

// Replace swaps the entire contents for an owned pair slice in one
// structural edit. Input order does not matter; on duplicate keys the last
// occurrence wins.
func (m *MapMut[K, V]) Replace(pairs []layout.Pair[K, V]) error {
	sorted := slices.Clone(pairs)
	// Stable sort keeps input order among equal keys so the trailing
	// occurrence survives the backward compact below.
	slices.SortStableFunc(sorted, func(a, b layout.Pair[K, V]) int { return m.typ.cmp(a.Key, b.Key) })

	deduped := sorted[:0]
	for i := 0; i < len(sorted); i++ {
		if i+1 < len(sorted) && m.typ.cmp(sorted[i].Key, sorted[i+1].Key) == 0 {
			continue
		}
		deduped = append(deduped, sorted[i])
	}

	return m.list.Replace(deduped)
}

// All iterates entries in ascending key order.
func (m *MapMut[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.list.All() {
			if !yield(p.Key, p.Val) {
				return
			}
		}
	}
}

// ToOwned decodes the map into a detached sorted pair slice.
func (m *MapMut[K, V]) ToOwned() ([]layout.Pair[K, V], error) { return m.list.ToOwned() }
