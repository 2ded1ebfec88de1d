package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inlay-io/inlay/endian"
	"github.com/inlay-io/inlay/errs"
)

func TestUint64Codec(t *testing.T) {
	c := Uint64(endian.Little())
	require.Equal(t, 8, c.Size())

	b := make([]byte, 8)
	require.NoError(t, c.Put(b, 0x0102030405060708))
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, b)

	v, err := c.Get(b)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), v)
}

func TestUint64Codec_ShortBuffer(t *testing.T) {
	c := Uint64(endian.Little())

	_, err := c.Get(make([]byte, 7))
	require.ErrorIs(t, err, errs.ErrShortBuffer)

	err = c.Put(make([]byte, 3), 1)
	require.ErrorIs(t, err, errs.ErrShortBuffer)
}

func TestUint32Codec_BigEndian(t *testing.T) {
	c := Uint32(endian.Big())

	b := make([]byte, 4)
	require.NoError(t, c.Put(b, 0x01020304))
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b)

	v, err := c.Get(b)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), v)
}

func TestUint16Codec(t *testing.T) {
	c := Uint16(endian.Little())

	b := make([]byte, 2)
	require.NoError(t, c.Put(b, 0xBEEF))
	v, err := c.Get(b)
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), v)
}

func TestUint8Codec(t *testing.T) {
	c := Uint8()

	b := make([]byte, 1)
	require.NoError(t, c.Put(b, 0xAB))
	v, err := c.Get(b)
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), v)
}

func TestInt64Codec_Negative(t *testing.T) {
	c := Int64(endian.Little())

	b := make([]byte, 8)
	require.NoError(t, c.Put(b, -42))
	v, err := c.Get(b)
	require.NoError(t, err)
	require.Equal(t, int64(-42), v)
}

func TestInt32Codec_Negative(t *testing.T) {
	c := Int32(endian.Little())

	b := make([]byte, 4)
	require.NoError(t, c.Put(b, -7))
	v, err := c.Get(b)
	require.NoError(t, err)
	require.Equal(t, int32(-7), v)
}

func TestFloat64Codec(t *testing.T) {
	c := Float64(endian.Little())

	b := make([]byte, 8)
	require.NoError(t, c.Put(b, 3.14159))
	v, err := c.Get(b)
	require.NoError(t, err)
	require.InDelta(t, 3.14159, v, 0)
}

func TestBoolCodec(t *testing.T) {
	c := Bool()

	t.Run("Round trip", func(t *testing.T) {
		b := make([]byte, 1)
		require.NoError(t, c.Put(b, true))
		require.Equal(t, byte(1), b[0])

		v, err := c.Get(b)
		require.NoError(t, err)
		require.True(t, v)

		require.NoError(t, c.Put(b, false))
		v, err = c.Get(b)
		require.NoError(t, err)
		require.False(t, v)
	})

	t.Run("Invalid bit pattern", func(t *testing.T) {
		_, err := c.Get([]byte{0x02})
		require.ErrorIs(t, err, errs.ErrInvalidEncoding)

		err = c.Validate([]byte{0xFF})
		require.ErrorIs(t, err, errs.ErrInvalidEncoding)
	})
}

func TestRangeUint8Codec(t *testing.T) {
	c := RangeUint8(1, 5)

	t.Run("In range", func(t *testing.T) {
		b := make([]byte, 1)
		require.NoError(t, c.Put(b, 3))
		v, err := c.Get(b)
		require.NoError(t, err)
		require.Equal(t, uint8(3), v)
	})

	t.Run("Out of range bytes", func(t *testing.T) {
		_, err := c.Get([]byte{0})
		require.ErrorIs(t, err, errs.ErrInvalidEncoding)

		_, err = c.Get([]byte{6})
		require.ErrorIs(t, err, errs.ErrInvalidEncoding)
	})

	t.Run("Out of range value refused on write", func(t *testing.T) {
		b := []byte{3}
		err := c.Put(b, 9)
		require.ErrorIs(t, err, errs.ErrInvalidEncoding)
		// Destination untouched on failure.
		require.Equal(t, byte(3), b[0])
	})
}

func TestRawCodec(t *testing.T) {
	c := Raw(4)
	require.Equal(t, 4, c.Size())

	b := make([]byte, 4)
	require.NoError(t, c.Put(b, []byte{1, 2, 3, 4}))

	v, err := c.Get(b)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, v)

	// Returned slice is a copy, not an alias.
	v[0] = 99
	require.Equal(t, byte(1), b[0])

	err = c.Put(b, []byte{1, 2})
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestPairCodec(t *testing.T) {
	c := PairOf(Uint8(), Uint32(endian.Little()))
	require.Equal(t, 5, c.Size())

	b := make([]byte, 5)
	require.NoError(t, c.Put(b, Pair[uint8, uint32]{Key: 7, Val: 0x01020304}))
	require.Equal(t, []byte{0x07, 0x04, 0x03, 0x02, 0x01}, b)

	p, err := c.Get(b)
	require.NoError(t, err)
	require.Equal(t, uint8(7), p.Key)
	require.Equal(t, uint32(0x01020304), p.Val)
}

func TestPairCodec_ValidityPropagates(t *testing.T) {
	c := PairOf(Bool(), Uint8())

	err := c.Validate([]byte{0x05, 0x00})
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}
