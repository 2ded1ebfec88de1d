package layout

import (
	"fmt"

	"github.com/inlay-io/inlay/errs"
)

// UnionLayout is a discriminated composite: one tag byte at offset 0
// selects which of the declared variant layouts is active in the tail.
// The encoding is [tag: u8][active variant bytes].
//
// Switching the active variant changes the byte length, so it is a
// structural edit and routes through the resize cascade like any other;
// the container package's UnionMut performs it.
type UnionLayout struct {
	variants []Unsized
}

// Union declares a discriminated layout over the given variants. The tag
// value is the variant's position in the argument list. Init encodes
// variant 0.
func Union(variants ...Unsized) (UnionLayout, error) {
	if len(variants) == 0 {
		return UnionLayout{}, fmt.Errorf("union needs at least one variant")
	}
	if len(variants) > 256 {
		return UnionLayout{}, fmt.Errorf("%w: %d variants exceed one tag byte", errs.ErrNumericOverflow, len(variants))
	}

	return UnionLayout{variants: variants}, nil
}

// MustUnion is Union for statically known variant lists; it panics on
// error.
func MustUnion(variants ...Unsized) UnionLayout {
	u, err := Union(variants...)
	if err != nil {
		panic(err)
	}

	return u
}

// NumVariants returns the number of declared variants.
func (u UnionLayout) NumVariants() int { return len(u.variants) }

// Variant returns the layout of the given tag.
func (u UnionLayout) Variant(tag uint8) (Unsized, error) {
	if int(tag) >= len(u.variants) {
		return nil, fmt.Errorf("%w: tag %d, %d variants", errs.ErrUnknownVariant, tag, len(u.variants))
	}

	return u.variants[tag], nil
}

// Tag reads the active variant tag from an encoding.
func (u UnionLayout) Tag(data []byte) (uint8, error) {
	if err := checkWidth(data, 1); err != nil {
		return 0, err
	}
	tag := data[0]
	if int(tag) >= len(u.variants) {
		return 0, fmt.Errorf("%w: tag %d, %d variants", errs.ErrUnknownVariant, tag, len(u.variants))
	}

	return tag, nil
}

// PayloadOffset returns the byte offset of the active variant's encoding.
func (UnionLayout) PayloadOffset() int { return 1 }

func (u UnionLayout) InitBytes() int {
	return 1 + u.variants[0].InitBytes()
}

func (u UnionLayout) Init(dst []byte) error {
	if err := checkWidth(dst, u.InitBytes()); err != nil {
		return err
	}
	dst[0] = 0

	return u.variants[0].Init(dst[1:])
}

func (u UnionLayout) ByteLen(data []byte) (int, error) {
	tag, err := u.Tag(data)
	if err != nil {
		return 0, err
	}
	n, err := u.variants[tag].ByteLen(data[1:])
	if err != nil {
		return 0, err
	}

	return 1 + n, nil
}

func (u UnionLayout) Validate(data []byte) error {
	tag, err := u.Tag(data)
	if err != nil {
		return err
	}

	return u.variants[tag].Validate(data[1:])
}
