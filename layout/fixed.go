package layout

import (
	"fmt"
	"math"

	"github.com/inlay-io/inlay/endian"
	"github.com/inlay-io/inlay/errs"
)

// Fixed is the contract for a statically sized codec over raw bytes.
//
// Size reports the exact byte width of every encoded value. Get decodes the
// first Size() bytes of data after applying the type's validity predicate;
// it returns errs.ErrInvalidEncoding (or errs.ErrShortBuffer) without a
// partial value when the bytes fail it. Put writes a value known to satisfy
// its own predicate; it is a verbatim byte copy with no observable partial
// state.
type Fixed[T any] interface {
	// Size returns the static byte width of the encoding.
	Size() int
	// Validate applies the validity predicate to the first Size() bytes.
	Validate(data []byte) error
	// Get decodes a value from the first Size() bytes of data.
	Get(data []byte) (T, error)
	// Put encodes v into the first Size() bytes of data.
	Put(data []byte, v T) error
}

func checkWidth(data []byte, size int) error {
	if len(data) < size {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrShortBuffer, size, len(data))
	}

	return nil
}

// Uint8Codec encodes a uint8 in one byte. Every bit pattern is valid.
type Uint8Codec struct{}

// Uint8 returns the single-byte unsigned codec.
func Uint8() Uint8Codec { return Uint8Codec{} }

func (Uint8Codec) Size() int { return 1 }

func (Uint8Codec) Validate(data []byte) error { return checkWidth(data, 1) }

func (c Uint8Codec) Get(data []byte) (uint8, error) {
	if err := checkWidth(data, 1); err != nil {
		return 0, err
	}

	return data[0], nil
}

func (c Uint8Codec) Put(data []byte, v uint8) error {
	if err := checkWidth(data, 1); err != nil {
		return err
	}
	data[0] = v

	return nil
}

// Uint16Codec encodes a uint16 in two bytes using the configured engine.
type Uint16Codec struct{ engine endian.Engine }

// Uint16 returns a two-byte unsigned codec using the given engine.
func Uint16(engine endian.Engine) Uint16Codec { return Uint16Codec{engine: engine} }

func (Uint16Codec) Size() int { return 2 }

func (Uint16Codec) Validate(data []byte) error { return checkWidth(data, 2) }

func (c Uint16Codec) Get(data []byte) (uint16, error) {
	if err := checkWidth(data, 2); err != nil {
		return 0, err
	}

	return c.engine.Uint16(data), nil
}

func (c Uint16Codec) Put(data []byte, v uint16) error {
	if err := checkWidth(data, 2); err != nil {
		return err
	}
	c.engine.PutUint16(data, v)

	return nil
}

// Uint32Codec encodes a uint32 in four bytes using the configured engine.
type Uint32Codec struct{ engine endian.Engine }

// Uint32 returns a four-byte unsigned codec using the given engine.
func Uint32(engine endian.Engine) Uint32Codec { return Uint32Codec{engine: engine} }

func (Uint32Codec) Size() int { return 4 }

func (Uint32Codec) Validate(data []byte) error { return checkWidth(data, 4) }

func (c Uint32Codec) Get(data []byte) (uint32, error) {
	if err := checkWidth(data, 4); err != nil {
		return 0, err
	}

	return c.engine.Uint32(data), nil
}

func (c Uint32Codec) Put(data []byte, v uint32) error {
	if err := checkWidth(data, 4); err != nil {
		return err
	}
	c.engine.PutUint32(data, v)

	return nil
}

// Uint64Codec encodes a uint64 in eight bytes using the configured engine.
type Uint64Codec struct{ engine endian.Engine }

// Uint64 returns an eight-byte unsigned codec using the given engine.
func Uint64(engine endian.Engine) Uint64Codec { return Uint64Codec{engine: engine} }

func (Uint64Codec) Size() int { return 8 }

func (Uint64Codec) Validate(data []byte) error { return checkWidth(data, 8) }

func (c Uint64Codec) Get(data []byte) (uint64, error) {
	if err := checkWidth(data, 8); err != nil {
		return 0, err
	}

	return c.engine.Uint64(data), nil
}

func (c Uint64Codec) Put(data []byte, v uint64) error {
	if err := checkWidth(data, 8); err != nil {
		return err
	}
	c.engine.PutUint64(data, v)

	return nil
}

// Int32Codec encodes an int32 in four bytes, two's complement, using the
// configured engine.
type Int32Codec struct{ engine endian.Engine }

// Int32 returns a four-byte signed codec using the given engine.
func Int32(engine endian.Engine) Int32Codec { return Int32Codec{engine: engine} }

func (Int32Codec) Size() int { return 4 }

func (Int32Codec) Validate(data []byte) error { return checkWidth(data, 4) }

func (c Int32Codec) Get(data []byte) (int32, error) {
	if err := checkWidth(data, 4); err != nil {
		return 0, err
	}

	return int32(c.engine.Uint32(data)), nil
}

func (c Int32Codec) Put(data []byte, v int32) error {
	if err := checkWidth(data, 4); err != nil {
		return err
	}
	c.engine.PutUint32(data, uint32(v))

	return nil
}

// Int64Codec encodes an int64 in eight bytes, two's complement, using the
// configured engine.
type Int64Codec struct{ engine endian.Engine }

// Int64 returns an eight-byte signed codec using the given engine.
func Int64(engine endian.Engine) Int64Codec { return Int64Codec{engine: engine} }

func (Int64Codec) Size() int { return 8 }

func (Int64Codec) Validate(data []byte) error { return checkWidth(data, 8) }

func (c Int64Codec) Get(data []byte) (int64, error) {
	if err := checkWidth(data, 8); err != nil {
		return 0, err
	}

	return int64(c.engine.Uint64(data)), nil
}

func (c Int64Codec) Put(data []byte, v int64) error {
	if err := checkWidth(data, 8); err != nil {
		return err
	}
	c.engine.PutUint64(data, uint64(v))

	return nil
}

// Float64Codec encodes a float64 in eight bytes, IEEE 754 bits, using the
// configured engine.
type Float64Codec struct{ engine endian.Engine }

// Float64 returns an eight-byte IEEE 754 codec using the given engine.
func Float64(engine endian.Engine) Float64Codec { return Float64Codec{engine: engine} }

func (Float64Codec) Size() int { return 8 }

func (Float64Codec) Validate(data []byte) error { return checkWidth(data, 8) }

func (c Float64Codec) Get(data []byte) (float64, error) {
	if err := checkWidth(data, 8); err != nil {
		return 0, err
	}

	return math.Float64frombits(c.engine.Uint64(data)), nil
}

func (c Float64Codec) Put(data []byte, v float64) error {
	if err := checkWidth(data, 8); err != nil {
		return err
	}
	c.engine.PutUint64(data, math.Float64bits(v))

	return nil
}

// BoolCodec encodes a bool in one byte. Only 0x00 and 0x01 are valid bit
// patterns; anything else fails the validity predicate.
type BoolCodec struct{}

// Bool returns the single-byte boolean codec.
func Bool() BoolCodec { return BoolCodec{} }

func (BoolCodec) Size() int { return 1 }

func (BoolCodec) Validate(data []byte) error {
	if err := checkWidth(data, 1); err != nil {
		return err
	}
	if data[0] > 1 {
		return fmt.Errorf("%w: bool byte 0x%02x", errs.ErrInvalidEncoding, data[0])
	}

	return nil
}

func (c BoolCodec) Get(data []byte) (bool, error) {
	if err := c.Validate(data); err != nil {
		return false, err
	}

	return data[0] == 1, nil
}

func (c BoolCodec) Put(data []byte, v bool) error {
	if err := checkWidth(data, 1); err != nil {
		return err
	}
	if v {
		data[0] = 1
	} else {
		data[0] = 0
	}

	return nil
}

// RangeUint8Codec encodes a uint8 restricted to an inclusive range, the
// usual shape for enum discriminants stored in one byte.
type RangeUint8Codec struct {
	lo, hi uint8
}

// RangeUint8 returns a one-byte codec that only accepts values in [lo, hi].
func RangeUint8(lo, hi uint8) RangeUint8Codec {
	if lo > hi {
		lo, hi = hi, lo
	}

	return RangeUint8Codec{lo: lo, hi: hi}
}

func (RangeUint8Codec) Size() int { return 1 }

func (c RangeUint8Codec) Validate(data []byte) error {
	if err := checkWidth(data, 1); err != nil {
		return err
	}
	if data[0] < c.lo || data[0] > c.hi {
		return fmt.Errorf("%w: byte 0x%02x outside [%d, %d]", errs.ErrInvalidEncoding, data[0], c.lo, c.hi)
	}

	return nil
}

func (c RangeUint8Codec) Get(data []byte) (uint8, error) {
	if err := c.Validate(data); err != nil {
		return 0, err
	}

	return data[0], nil
}

func (c RangeUint8Codec) Put(data []byte, v uint8) error {
	if err := checkWidth(data, 1); err != nil {
		return err
	}
	if v < c.lo || v > c.hi {
		return fmt.Errorf("%w: value %d outside [%d, %d]", errs.ErrInvalidEncoding, v, c.lo, c.hi)
	}
	data[0] = v

	return nil
}

// RawCodec encodes an opaque fixed-width byte string. Every bit pattern is
// valid. Get returns a copy so the caller's slice never aliases the buffer.
type RawCodec struct{ width int }

// Raw returns a codec for an opaque byte string of exactly width bytes.
func Raw(width int) RawCodec { return RawCodec{width: width} }

func (c RawCodec) Size() int { return c.width }

func (c RawCodec) Validate(data []byte) error { return checkWidth(data, c.width) }

func (c RawCodec) Get(data []byte) ([]byte, error) {
	if err := checkWidth(data, c.width); err != nil {
		return nil, err
	}
	out := make([]byte, c.width)
	copy(out, data)

	return out, nil
}

func (c RawCodec) Put(data []byte, v []byte) error {
	if err := checkWidth(data, c.width); err != nil {
		return err
	}
	if len(v) != c.width {
		return fmt.Errorf("%w: value is %d bytes, codec width is %d", errs.ErrInvalidEncoding, len(v), c.width)
	}
	copy(data, v)

	return nil
}

// Pair is the decoded form of a PairCodec entry: a key and its value laid
// out back to back. Map entries are pairs keyed on K.
type Pair[K, V any] struct {
	Key K
	Val V
}

// PairCodec lays a key and a value out contiguously: [key][value]. It is
// valid iff both halves are valid.
type PairCodec[K, V any] struct {
	key Fixed[K]
	val Fixed[V]
}

// PairOf combines a key codec and a value codec into a pair codec.
func PairOf[K, V any](key Fixed[K], val Fixed[V]) PairCodec[K, V] {
	return PairCodec[K, V]{key: key, val: val}
}

func (c PairCodec[K, V]) Size() int { return c.key.Size() + c.val.Size() }

func (c PairCodec[K, V]) Validate(data []byte) error {
	if err := checkWidth(data, c.Size()); err != nil {
		return err
	}
	if err := c.key.Validate(data); err != nil {
		return err
	}

	return c.val.Validate(data[c.key.Size():])
}

func (c PairCodec[K, V]) Get(data []byte) (Pair[K, V], error) {
	var p Pair[K, V]
	if err := checkWidth(data, c.Size()); err != nil {
		return p, err
	}

	k, err := c.key.Get(data)
	if err != nil {
		return p, err
	}
	v, err := c.val.Get(data[c.key.Size():])
	if err != nil {
		return p, err
	}
	p.Key = k
	p.Val = v

	return p, nil
}

func (c PairCodec[K, V]) Put(data []byte, p Pair[K, V]) error {
	if err := checkWidth(data, c.Size()); err != nil {
		return err
	}
	if err := c.key.Put(data, p.Key); err != nil {
		return err
	}

	return c.val.Put(data[c.key.Size():], p.Val)
}
