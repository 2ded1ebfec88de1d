package inlay_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inlay-io/inlay"
	"github.com/inlay-io/inlay/buffer"
	"github.com/inlay-io/inlay/errs"
	"github.com/inlay-io/inlay/layout"
)

func TestListRoundTrip(t *testing.T) {
	lt := inlay.ListOf(inlay.Uint64())
	buf, err := inlay.NewInitializedBuffer(lt, inlay.WithMaxSize(1024))
	require.NoError(t, err)

	mut, err := buf.AcquireMut()
	require.NoError(t, err)
	list, err := lt.Mut(mut)
	require.NoError(t, err)
	require.NoError(t, list.Push(7))
	require.NoError(t, list.Push(9))
	mut.Release()

	ref, err := buf.Acquire()
	require.NoError(t, err)
	view, err := lt.Ref(ref)
	require.NoError(t, err)
	owned, err := view.ToOwned()
	require.NoError(t, err)
	require.Equal(t, []uint64{7, 9}, owned)
}

func TestSetAndMapDefaults(t *testing.T) {
	st := inlay.SetOf(inlay.Uint32(), cmp.Compare[uint32])
	buf, err := inlay.NewInitializedBuffer(st, inlay.WithMaxSize(256))
	require.NoError(t, err)

	mut, err := buf.AcquireMut()
	require.NoError(t, err)
	set, err := st.Mut(mut)
	require.NoError(t, err)
	for _, k := range []uint32{5, 1, 3} {
		_, _, err := set.Insert(k)
		require.NoError(t, err)
	}
	keys, err := set.ToOwned()
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 3, 5}, keys)
	mut.Release()

	mt := inlay.MapOf(inlay.Uint32(), inlay.Uint64(), cmp.Compare[uint32])
	mbuf, err := inlay.NewInitializedBuffer(mt, inlay.WithMaxSize(256))
	require.NoError(t, err)

	mmut, err := mbuf.AcquireMut()
	require.NoError(t, err)
	m, err := mt.Mut(mmut)
	require.NoError(t, err)
	_, _, err = m.Insert(2, 10)
	require.NoError(t, err)
	old, replaced, err := m.Insert(2, 20)
	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, uint64(10), old)

	got, err := m.Get(2)
	require.NoError(t, err)
	require.Equal(t, uint64(20), got)
}

func TestExternallyOwnedRegion(t *testing.T) {
	lt := inlay.ListOf(inlay.Uint8())

	region := make([]byte, lt.InitBytes(), 64)
	require.NoError(t, lt.Init(region))

	buf := inlay.NewBuffer(region, inlay.WithMaxSize(64))
	mut, err := buf.AcquireMut()
	require.NoError(t, err)
	list, err := lt.Mut(mut)
	require.NoError(t, err)
	require.NoError(t, list.Push(0xAB))
	mut.Release()

	require.Equal(t, []byte{0x01, 0x00, 0x00, 0x00, 0xAB}, buf.Bytes())
}

func TestCompositeDocExample(t *testing.T) {
	lt := inlay.ListOf(inlay.Uint64())
	schema := layout.MustCompile(
		layout.FixedField("version", inlay.Uint32()),
		layout.TailField("entries", lt),
	)

	buf, err := inlay.NewInitializedBuffer(schema, inlay.WithMaxSize(512))
	require.NoError(t, err)
	require.Equal(t, schema.InitBytes(), buf.Len())
}

func TestDigestMatchesBuffer(t *testing.T) {
	lt := inlay.ListOf(inlay.Uint16())
	buf, err := inlay.NewInitializedBuffer(lt, inlay.WithMaxSize(64))
	require.NoError(t, err)

	mut, err := buf.AcquireMut()
	require.NoError(t, err)
	list, err := lt.Mut(mut)
	require.NoError(t, err)
	require.NoError(t, list.Push(0x0102))
	mut.Release()

	require.Equal(t, inlay.Digest(buf.Bytes()), buf.CommitDigest())
	require.NoError(t, buf.VerifyDigest())
}

func TestResizerOption(t *testing.T) {
	lt := inlay.ListOf(inlay.Uint8())

	region := make([]byte, lt.InitBytes())
	require.NoError(t, lt.Init(region))

	var calls int
	buf := inlay.NewBuffer(region,
		inlay.WithMaxSize(32),
		inlay.WithResizer(buffer.ResizerFunc(func(data []byte, newLen int) ([]byte, error) {
			calls++
			if newLen <= cap(data) {
				return data[:newLen], nil
			}
			grown := make([]byte, newLen)
			copy(grown, data)
			return grown, nil
		})),
	)

	mut, err := buf.AcquireMut()
	require.NoError(t, err)
	list, err := lt.Mut(mut)
	require.NoError(t, err)
	require.NoError(t, list.Push(1))
	require.NoError(t, list.Push(2))
	require.Positive(t, calls)

	// The cap still binds regardless of what the supplier could provide.
	for i := 0; i < 40; i++ {
		if err := list.Push(uint8(i)); err != nil {
			require.ErrorIs(t, err, errs.ErrCapacityExceeded)
			return
		}
	}
	t.Fatal("push never hit the size cap")
}
