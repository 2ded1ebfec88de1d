package layout

import (
	"fmt"

	"github.com/inlay-io/inlay/endian"
	"github.com/inlay-io/inlay/errs"
)

// LenPrefix encodes a container's element count in a fixed unsigned slot at
// the front of its byte region. The width is part of the layout type: a
// list declared with Len16 can never hold more than 65535 elements no
// matter how large the buffer grows.
type LenPrefix struct {
	width  int
	engine endian.Engine
}

// Len8 returns a one-byte length prefix (up to 255 elements).
func Len8() LenPrefix { return LenPrefix{width: 1} }

// Len16 returns a two-byte length prefix using the given engine.
func Len16(engine endian.Engine) LenPrefix { return LenPrefix{width: 2, engine: engine} }

// Len32 returns a four-byte length prefix using the given engine. This is
// the common choice.
func Len32(engine endian.Engine) LenPrefix { return LenPrefix{width: 4, engine: engine} }

// Size returns the prefix width in bytes.
func (l LenPrefix) Size() int { return l.width }

// Max returns the largest element count the prefix can encode.
func (l LenPrefix) Max() int {
	return int(1)<<(8*l.width) - 1
}

// Read decodes the element count from the front of data.
func (l LenPrefix) Read(data []byte) (int, error) {
	if err := checkWidth(data, l.width); err != nil {
		return 0, err
	}

	switch l.width {
	case 1:
		return int(data[0]), nil
	case 2:
		return int(l.engine.Uint16(data)), nil
	default:
		return int(l.engine.Uint32(data)), nil
	}
}

// Write encodes the element count into the front of data. A count outside
// the prefix's range fails with errs.ErrNumericOverflow before any byte is
// written.
func (l LenPrefix) Write(data []byte, n int) error {
	if err := checkWidth(data, l.width); err != nil {
		return err
	}
	if n < 0 || n > l.Max() {
		return fmt.Errorf("%w: count %d does not fit a %d-byte length prefix", errs.ErrNumericOverflow, n, l.width)
	}

	switch l.width {
	case 1:
		data[0] = byte(n)
	case 2:
		l.engine.PutUint16(data, uint16(n))
	default:
		l.engine.PutUint32(data, uint32(n))
	}

	return nil
}
