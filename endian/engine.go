// Package endian provides the byte-order engine used by every inlay codec.
//
// Engine unifies encoding/binary's ByteOrder and AppendByteOrder interfaces
// so codecs can both overwrite fixed slots and append to growing buffers
// through a single value. binary.LittleEndian and binary.BigEndian satisfy
// it directly; the returned engines are stateless and safe for concurrent
// use.
//
// Inlay buffers default to little endian. Big endian exists for callers that
// interoperate with big-endian producers.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Engine combines ByteOrder and AppendByteOrder from encoding/binary into a
// single interface for byte order operations over buffer slices.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Little returns the little-endian engine, the inlay default.
func Little() Engine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() Engine {
	return binary.BigEndian
}

// Native returns the engine matching the host's byte order.
func Native() Engine {
	// 0x0100 is 256: a little-endian host stores the LSB (0x00) first, a
	// big-endian host stores the MSB (0x01) first.
	var probe uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&probe))
	if b[0] == 0x01 {
		return Engine(binary.BigEndian)
	}

	return Engine(binary.LittleEndian)
}

// IsNativeLittle reports whether the host is little endian.
func IsNativeLittle() bool {
	return Native() == Engine(binary.LittleEndian)
}
