package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inlay-io/inlay/endian"
	"github.com/inlay-io/inlay/errs"
)

func TestUnion_InitEncodesVariantZero(t *testing.T) {
	u := MustUnion(
		TailOf(Uint16(endian.Little())),
		TailOf(Uint64(endian.Little())),
	)

	require.Equal(t, 2, u.NumVariants())
	require.Equal(t, 3, u.InitBytes()) // tag + uint16

	dst := make([]byte, 3)
	require.NoError(t, u.Init(dst))
	require.Equal(t, byte(0), dst[0])

	tag, err := u.Tag(dst)
	require.NoError(t, err)
	require.Equal(t, uint8(0), tag)

	n, err := u.ByteLen(dst)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.NoError(t, u.Validate(dst))
}

func TestUnion_VariantLengths(t *testing.T) {
	u := MustUnion(
		TailOf(Uint16(endian.Little())),
		TailOf(Uint64(endian.Little())),
	)

	data := make([]byte, 9)
	data[0] = 1 // second variant active

	n, err := u.ByteLen(data)
	require.NoError(t, err)
	require.Equal(t, 9, n)
}

func TestUnion_UnknownTag(t *testing.T) {
	u := MustUnion(TailOf(Uint8()))

	_, err := u.Tag([]byte{5})
	require.ErrorIs(t, err, errs.ErrUnknownVariant)

	_, err = u.Variant(3)
	require.ErrorIs(t, err, errs.ErrUnknownVariant)

	err = u.Validate([]byte{7, 0})
	require.ErrorIs(t, err, errs.ErrUnknownVariant)
}

func TestUnion_NeedsVariants(t *testing.T) {
	_, err := Union()
	require.Error(t, err)

	require.Panics(t, func() { MustUnion() })
}
