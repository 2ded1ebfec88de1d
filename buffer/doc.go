// Package buffer implements the mutable flat buffer and the access-wrapper
// chain that keeps views into it correct across in-place resizes.
//
// A Buffer wraps an externally owned byte region with a logical length, a
// maximum permitted size, and a Resizer supplied by the region's owner.
// The buffer's bytes are authoritative at every point between structural
// edits; views carry no state the bytes do not.
//
// # Access Discipline
//
// Two view kinds exist:
//
//   - Ref: a shared, read-only view. Any number may coexist. Each Ref
//     captures the buffer's generation counter at creation; a structural
//     edit bumps the counter, so using a Ref created before the edit fails
//     with errs.ErrStaleView instead of reading through a shifted offset.
//
//   - Mut: an exclusive, mutation-capable view. At most one exclusive
//     chain exists per buffer at a time (AcquireMut fails with
//     errs.ErrExclusiveHeld while one is outstanding). Descending into a
//     sub-region with Child extends the chain; each link remembers its
//     parent so the resize cascade can repair the whole ancestry.
//
// # Resize Cascade
//
// A structural edit inserts or removes delta bytes at an absolute offset p.
// Resize checks capacity before touching any byte, moves the tail, then
// walks the exclusive chain from the edit point to the root repairing each
// wrapper: every ancestor's window contains the editing view's window, so
// each grows or shrinks by delta and carries the new generation. Sibling
// views are not linked into the chain; their content shifts with the tail,
// so they go stale (errs.ErrStaleView) and a fresh view is re-derived from
// a repaired parent. The walk is O(depth of the chain); no part of the
// buffer is re-scanned. Finally the generation counter is bumped,
// invalidating every shared view created earlier.
//
// Failed edits are atomic: a Resize that would exceed the maximum size
// returns errs.ErrCapacityExceeded with the buffer byte-for-byte unchanged
// and every wrapper exactly as it was.
package buffer
