package layout

import (
	"fmt"

	"github.com/inlay-io/inlay/errs"
)

// FixedLayout is the non-generic face of a Fixed codec: just its width and
// validity predicate. Every Fixed[T] codec satisfies it, which lets a
// Schema hold fixed fields of heterogeneous element types.
type FixedLayout interface {
	Size() int
	Validate(data []byte) error
}

// Field declares one composite field: either a fixed-size field (Fixed set)
// or the single trailing variable-length field (Tail set).
type Field struct {
	Name  string
	Fixed FixedLayout
	Tail  Unsized

	// Default holds the initial encoding written by Init for a fixed
	// field whose validity predicate rejects all-zero bytes. Nil means
	// zero-filled is already valid.
	Default []byte
}

// FixedField declares a fixed-size field whose zero-filled encoding is
// valid.
func FixedField(name string, codec FixedLayout) Field {
	return Field{Name: name, Fixed: codec}
}

// FixedFieldDefault declares a fixed-size field with an explicit initial
// encoding, for codecs whose predicate rejects all-zero bytes.
func FixedFieldDefault(name string, codec FixedLayout, def []byte) Field {
	return Field{Name: name, Fixed: codec, Default: def}
}

// TailField declares the trailing variable-length field.
func TailField(name string, tail Unsized) Field {
	return Field{Name: name, Tail: tail}
}

// Schema is a compiled composite layout: a statically sized prefix of fixed
// fields followed by at most one variable-length tail. Field offsets are
// computed once at compile time, so descending into field i is pure offset
// arithmetic and never decodes the fields before it.
type Schema struct {
	fields    []Field
	offsets   []int
	fixedSize int
	tail      Unsized
}

// Compile validates the field list and computes the per-field skip list.
//
// Shape rules, all checked here rather than assumed:
//   - at most one variable-length field, and it must be last
//     (errs.ErrUnsizedNotLast);
//   - a zero-sized field (fixed width 0, or an unsized layout whose
//     InitBytes is 0 and whose encodings are always empty, like Empty) is
//     legal only as the single final field (errs.ErrZeroSizedNotLast).
func Compile(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields:  fields,
		offsets: make([]int, len(fields)),
	}

	off := 0
	for i, f := range fields {
		last := i == len(fields)-1

		switch {
		case f.Fixed != nil && f.Tail != nil:
			return nil, fmt.Errorf("field %q declares both a fixed and a tail layout", f.Name)
		case f.Fixed == nil && f.Tail == nil:
			return nil, fmt.Errorf("field %q declares no layout", f.Name)

		case f.Tail != nil:
			if !last {
				return nil, fmt.Errorf("%w: field %q", errs.ErrUnsizedNotLast, f.Name)
			}
			if s.tail != nil {
				return nil, fmt.Errorf("%w: field %q", errs.ErrUnsizedNotLast, f.Name)
			}
			s.offsets[i] = off
			s.tail = f.Tail

		default:
			size := f.Fixed.Size()
			if size == 0 && !last {
				return nil, fmt.Errorf("%w: field %q", errs.ErrZeroSizedNotLast, f.Name)
			}
			if f.Default != nil && len(f.Default) != size {
				return nil, fmt.Errorf("field %q: default is %d bytes, field is %d", f.Name, len(f.Default), size)
			}
			s.offsets[i] = off
			off += size
		}
	}
	s.fixedSize = off

	return s, nil
}

// MustCompile is Compile for statically known schemas; it panics on error.
func MustCompile(fields ...Field) *Schema {
	s, err := Compile(fields...)
	if err != nil {
		panic(err)
	}

	return s
}

// NumFields returns the number of declared fields.
func (s *Schema) NumFields() int { return len(s.fields) }

// FieldName returns the declared name of field i.
func (s *Schema) FieldName(i int) string { return s.fields[i].Name }

// FieldOffset returns the byte offset of field i within the composite.
func (s *Schema) FieldOffset(i int) int { return s.offsets[i] }

// FieldSize returns the byte width of fixed field i, or -1 for the tail.
func (s *Schema) FieldSize(i int) int {
	if s.fields[i].Tail != nil {
		return -1
	}

	return s.fields[i].Fixed.Size()
}

// FixedSize returns the total width of the fixed prefix.
func (s *Schema) FixedSize() int { return s.fixedSize }

// Tail returns the trailing unsized layout, or nil for a pure fixed
// composite.
func (s *Schema) Tail() Unsized { return s.tail }

// TailOffset returns the byte offset where the tail begins.
func (s *Schema) TailOffset() int { return s.fixedSize }

// InitBytes returns the minimum valid encoding size: the fixed prefix plus
// the tail's own minimum.
func (s *Schema) InitBytes() int {
	n := s.fixedSize
	if s.tail != nil {
		n += s.tail.InitBytes()
	}

	return n
}

// Init writes the minimum valid encoding: field defaults over the zeroed
// prefix, then the tail's Init.
func (s *Schema) Init(dst []byte) error {
	if err := checkWidth(dst, s.InitBytes()); err != nil {
		return err
	}
	for i, f := range s.fields {
		if f.Default != nil {
			copy(dst[s.offsets[i]:], f.Default)
		}
	}
	if s.tail != nil {
		return s.tail.Init(dst[s.fixedSize:])
	}

	return nil
}

// ByteLen reports the encoded length: the fixed prefix plus the tail's
// current length.
func (s *Schema) ByteLen(data []byte) (int, error) {
	if err := checkWidth(data, s.fixedSize); err != nil {
		return 0, err
	}
	if s.tail == nil {
		return s.fixedSize, nil
	}
	n, err := s.tail.ByteLen(data[s.fixedSize:])
	if err != nil {
		return 0, err
	}

	return s.fixedSize + n, nil
}

// Validate checks every fixed field's predicate at its offset and then the
// tail.
func (s *Schema) Validate(data []byte) error {
	if err := checkWidth(data, s.fixedSize); err != nil {
		return err
	}
	for i, f := range s.fields {
		if f.Fixed == nil {
			continue
		}
		if err := f.Fixed.Validate(data[s.offsets[i]:]); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	if s.tail != nil {
		return s.tail.Validate(data[s.fixedSize:])
	}

	return nil
}
