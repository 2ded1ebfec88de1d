// Package layout defines how logical values map onto raw buffer bytes.
//
// The package has two codec contracts:
//
//   - Fixed[T]: a statically sized codec. Every value of T occupies exactly
//     Size() bytes, and Get applies the type's validity predicate before
//     returning a decoded value. Fixed codecs are the leaves of every
//     layout: they never resize and never participate in the resize cascade
//     except as its source.
//
//   - Unsized: a variable-length layout. An Unsized value's byte length is
//     discovered from the bytes themselves (ByteLen), its minimum valid
//     encoding is a type-level constant (InitBytes), and Init writes that
//     minimum encoding into a zero-filled region.
//
// On top of these the package provides the composite combinators:
//
//   - Schema: a struct-like composite with a fixed prefix and at most one
//     trailing unsized region. Compile validates the shape (one unsized
//     field, last position only; zero-sized field only as the single final
//     field) and emits per-field offsets so descending into field i never
//     decodes fields 0..i-1.
//
//   - Seq: pairwise composition of two unsized layouts into one combined
//     tail, letting a composite carry several variable-length fields.
//
//   - Union: a discriminated composite. A tag byte at offset 0 selects the
//     active tail layout; switching variants is a structural edit.
//
// # Byte Layout Conventions
//
// All multi-byte integers go through an endian.Engine supplied at codec
// construction. List length prefixes (LenPrefix) are unsigned and come in
// 1, 2 and 4 byte widths; the width is part of the layout type, not of any
// runtime value.
//
// # Error Conventions
//
// Codecs fail closed: a Get or Validate that finds malformed bytes returns
// errs.ErrInvalidEncoding (or a more specific sentinel wrapping the same
// failure class) and never returns a partial value. Writes never leave a
// partially written encoding behind: Put either writes Size() bytes or
// returns before touching the destination.
package layout
