package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScratch_Extend(t *testing.T) {
	s := NewScratch(8)

	first := s.Extend(4)
	require.Len(t, first, 4)
	require.Equal(t, 4, s.Len())
	copy(first, []byte{1, 2, 3, 4})

	second := s.Extend(2)
	require.Len(t, second, 2)
	require.Equal(t, 6, s.Len())
	require.Equal(t, []byte{0, 0}, second)

	require.Equal(t, []byte{1, 2, 3, 4, 0, 0}, s.Bytes())
}

func TestScratch_ExtendGrows(t *testing.T) {
	s := NewScratch(2)
	s.Extend(1)
	s.B[0] = 0xAA

	// Forces reallocation past the initial capacity.
	s.Extend(64)
	require.Equal(t, 65, s.Len())
	require.Equal(t, byte(0xAA), s.B[0])
}

func TestScratch_Reset(t *testing.T) {
	s := NewScratch(8)
	s.Extend(5)
	c := cap(s.B)

	s.Reset()
	require.Equal(t, 0, s.Len())
	require.Equal(t, c, cap(s.B))
}

func TestScratchPool_Reuse(t *testing.T) {
	p := NewScratchPool(16, 1024)

	s := p.Get()
	require.NotNil(t, s)
	require.Equal(t, 0, s.Len())

	s.Extend(10)
	p.Put(s)

	got := p.Get()
	require.Equal(t, 0, got.Len())
}

func TestScratchPool_DiscardsOversized(t *testing.T) {
	p := NewScratchPool(16, 32)

	s := p.Get()
	s.Extend(128) // past threshold
	p.Put(s)      // must be discarded, not pooled

	got := p.Get()
	require.LessOrEqual(t, cap(got.B), 128)
	require.Equal(t, 0, got.Len())
}

func TestDefaultPool(t *testing.T) {
	s := GetScratch()
	require.NotNil(t, s)
	s.Extend(3)
	PutScratch(s)
}
