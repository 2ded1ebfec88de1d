package container

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inlay-io/inlay/buffer"
	"github.com/inlay-io/inlay/endian"
	"github.com/inlay-io/inlay/errs"
	"github.com/inlay-io/inlay/layout"
)

func newU8Map() *MapType[uint8, uint8] {
	return NewMap(layout.Uint8(), layout.Uint8(), cmp.Compare[uint8], layout.Len32(endian.Little()))
}

func mapFixture(t *testing.T, mt *MapType[uint8, uint8]) (*buffer.Buffer, *MapMut[uint8, uint8]) {
	t.Helper()
	buf, err := buffer.NewInitialized(mt)
	require.NoError(t, err)
	m, err := buf.AcquireMut()
	require.NoError(t, err)
	mm, err := mt.Mut(m)
	require.NoError(t, err)

	return buf, mm
}

func TestMap_InsertAndReplace(t *testing.T) {
	mt := newU8Map()
	buf, m := mapFixture(t, mt)

	old, replaced, err := m.Insert(2, 10)
	require.NoError(t, err)
	require.False(t, replaced)
	require.Equal(t, uint8(0), old)

	n, err := m.Len()
	require.NoError(t, err)
	require.Equal(t, 1, n)
	sizeBefore := buf.Len()

	// Same key: last write wins, old value handed back, no growth.
	old, replaced, err = m.Insert(2, 20)
	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, uint8(10), old)

	n, err = m.Len()
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, sizeBefore, buf.Len())

	v, err := m.Get(2)
	require.NoError(t, err)
	require.Equal(t, uint8(20), v)
}

func TestMap_SortedByKey(t *testing.T) {
	mt := newU8Map()
	buf, m := mapFixture(t, mt)

	for _, kv := range [][2]uint8{{9, 90}, {1, 10}, {5, 50}, {3, 30}} {
		_, _, err := m.Insert(kv[0], kv[1])
		require.NoError(t, err)
	}

	owned, err := m.ToOwned()
	require.NoError(t, err)
	require.Equal(t, []layout.Pair[uint8, uint8]{
		{Key: 1, Val: 10},
		{Key: 3, Val: 30},
		{Key: 5, Val: 50},
		{Key: 9, Val: 90},
	}, owned)

	require.NoError(t, mt.Validate(buf.Bytes()))
}

func TestMap_GetRemove(t *testing.T) {
	mt := newU8Map()
	_, m := mapFixture(t, mt)

	for _, kv := range [][2]uint8{{4, 44}, {8, 88}} {
		_, _, err := m.Insert(kv[0], kv[1])
		require.NoError(t, err)
	}

	v, err := m.Get(8)
	require.NoError(t, err)
	require.Equal(t, uint8(88), v)

	_, err = m.Get(5)
	require.ErrorIs(t, err, errs.ErrKeyNotFound)

	ok, err := m.Contains(4)
	require.NoError(t, err)
	require.True(t, ok)

	v, err = m.Remove(4)
	require.NoError(t, err)
	require.Equal(t, uint8(44), v)

	_, err = m.Remove(4)
	require.ErrorIs(t, err, errs.ErrKeyNotFound)

	n, err := m.Len()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestMap_At(t *testing.T) {
	mt := newU8Map()
	_, m := mapFixture(t, mt)

	_, _, err := m.Insert(7, 70)
	require.NoError(t, err)

	p, err := m.At(0)
	require.NoError(t, err)
	require.Equal(t, uint8(7), p.Key)
	require.Equal(t, uint8(70), p.Val)
}

func TestMap_Replace(t *testing.T) {
	mt := newU8Map()
	_, m := mapFixture(t, mt)

	require.NoError(t, m.Replace([]layout.Pair[uint8, uint8]{
		{Key: 5, Val: 1},
		{Key: 2, Val: 2},
		{Key: 5, Val: 3}, // later occurrence wins
	}))

	owned, err := m.ToOwned()
	require.NoError(t, err)
	require.Equal(t, []layout.Pair[uint8, uint8]{
		{Key: 2, Val: 2},
		{Key: 5, Val: 3},
	}, owned)
}

func TestMap_All(t *testing.T) {
	mt := newU8Map()
	_, m := mapFixture(t, mt)

	for _, kv := range [][2]uint8{{3, 33}, {1, 11}} {
		_, _, err := m.Insert(kv[0], kv[1])
		require.NoError(t, err)
	}

	var keys, vals []uint8
	for k, v := range m.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	require.Equal(t, []uint8{1, 3}, keys)
	require.Equal(t, []uint8{11, 33}, vals)
}

func TestMap_RefView(t *testing.T) {
	mt := newU8Map()
	buf, err := buffer.NewInitialized(mt)
	require.NoError(t, err)

	mut, err := buf.AcquireMut()
	require.NoError(t, err)
	m, err := mt.Mut(mut)
	require.NoError(t, err)
	_, _, err = m.Insert(6, 66)
	require.NoError(t, err)
	mut.Release()

	r, err := buf.Acquire()
	require.NoError(t, err)
	view, err := mt.Ref(r)
	require.NoError(t, err)

	v, err := view.Get(6)
	require.NoError(t, err)
	require.Equal(t, uint8(66), v)

	_, err = view.Get(7)
	require.ErrorIs(t, err, errs.ErrKeyNotFound)
}

func TestMap_ValidateRejectsUnsortedKeys(t *testing.T) {
	mt := newU8Map()

	data := []byte{0x02, 0x00, 0x00, 0x00, 5, 1, 2, 2}
	err := mt.Validate(data)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}
