// Package inlay lets structured, variable-length data (lists, ordered
// maps, ordered sets, nested composites) live directly inside a single
// flat, mutable, resizable byte buffer, with typed zero-copy views instead
// of an intermediate in-memory representation.
//
// The buffer is externally owned (an account region, a file page, a plain
// slice); inlay tracks its logical length, enforces its maximum size, and
// keeps every live view correct when an in-place insert, remove or variant
// switch changes the byte length somewhere in a nested structure.
//
// # Core Concepts
//
//   - A layout type (package layout) describes how a logical value maps
//     onto bytes: fixed-size codecs with validity predicates, and unsized
//     layouts whose length is discovered from the bytes.
//   - Containers (package container) are layout types with typed views:
//     List, sorted Set and Map, composite structs, sequences and tagged
//     unions.
//   - Access wrappers (package buffer) carry the read/write capability.
//     Shared views coexist and go stale after any structural edit;
//     the single exclusive view chain performs edits, and the resize
//     cascade repairs every ancestor's offsets afterwards.
//
// # Basic Usage
//
// Building a list of uint64 inside a fresh buffer:
//
//	import "github.com/inlay-io/inlay"
//
//	lt := inlay.ListOf(inlay.Uint64())
//	buf, _ := inlay.NewInitializedBuffer(lt, inlay.WithMaxSize(1024))
//
//	mut, _ := buf.AcquireMut()
//	list, _ := lt.Mut(mut)
//	_ = list.Push(7)
//	_ = list.Push(9)
//	mut.Release()
//
//	ref, _ := buf.Acquire()
//	view, _ := lt.Ref(ref)
//	owned, _ := view.ToOwned() // []uint64{7, 9}
//
// A composite with a fixed header and a growable tail:
//
//	schema := layout.MustCompile(
//	    layout.FixedField("version", inlay.Uint32()),
//	    layout.TailField("entries", lt),
//	)
//	buf, _ := inlay.NewInitializedBuffer(schema)
//
// # Package Structure
//
// This package provides convenience constructors defaulting to little
// endian and a four-byte length prefix. For other byte orders or prefix
// widths, use the layout, buffer and container packages directly.
package inlay

import (
	"github.com/inlay-io/inlay/buffer"
	"github.com/inlay-io/inlay/container"
	"github.com/inlay-io/inlay/endian"
	"github.com/inlay-io/inlay/internal/hash"
	"github.com/inlay-io/inlay/layout"
)

// Option configures a buffer at construction.
type Option = buffer.Option

// WithMaxSize caps the buffer's logical length.
func WithMaxSize(n int) Option { return buffer.WithMaxSize(n) }

// WithResizer installs the external supplier's resize operation.
func WithResizer(r buffer.Resizer) Option { return buffer.WithResizer(r) }

// NewBuffer wraps an externally supplied byte region.
func NewBuffer(data []byte, opts ...Option) *buffer.Buffer {
	return buffer.New(data, opts...)
}

// NewInitializedBuffer allocates and initializes a fresh region holding
// u's minimum valid encoding.
func NewInitializedBuffer(u layout.Unsized, opts ...Option) (*buffer.Buffer, error) {
	return buffer.NewInitialized(u, opts...)
}

// Digest returns the xxHash64 fingerprint of raw bytes, the same function
// buffers use for CommitDigest/VerifyDigest.
func Digest(data []byte) uint64 {
	return hash.Digest(data)
}

// Default codec constructors, little endian.

// Uint8 returns the one-byte unsigned codec.
func Uint8() layout.Uint8Codec { return layout.Uint8() }

// Uint16 returns the little-endian two-byte unsigned codec.
func Uint16() layout.Uint16Codec { return layout.Uint16(endian.Little()) }

// Uint32 returns the little-endian four-byte unsigned codec.
func Uint32() layout.Uint32Codec { return layout.Uint32(endian.Little()) }

// Uint64 returns the little-endian eight-byte unsigned codec.
func Uint64() layout.Uint64Codec { return layout.Uint64(endian.Little()) }

// Int32 returns the little-endian four-byte signed codec.
func Int32() layout.Int32Codec { return layout.Int32(endian.Little()) }

// Int64 returns the little-endian eight-byte signed codec.
func Int64() layout.Int64Codec { return layout.Int64(endian.Little()) }

// Float64 returns the little-endian IEEE 754 codec.
func Float64() layout.Float64Codec { return layout.Float64(endian.Little()) }

// Bool returns the one-byte boolean codec.
func Bool() layout.BoolCodec { return layout.Bool() }

// ListOf describes a list of elem-encoded values behind a little-endian
// four-byte count prefix.
func ListOf[T any](elem layout.Fixed[T]) *container.ListType[T] {
	return container.NewList(elem, layout.Len32(endian.Little()))
}

// SetOf describes a sorted set of key-encoded values behind a
// little-endian four-byte count prefix.
func SetOf[K any](key layout.Fixed[K], cmp func(K, K) int) *container.SetType[K] {
	return container.NewSet(key, cmp, layout.Len32(endian.Little()))
}

// MapOf describes a sorted map of key/val-encoded pairs behind a
// little-endian four-byte count prefix.
func MapOf[K, V any](key layout.Fixed[K], val layout.Fixed[V], cmp func(K, K) int) *container.MapType[K, V] {
	return container.NewMap(key, val, cmp, layout.Len32(endian.Little()))
}
