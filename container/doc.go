// Package container provides the ordered collections that live directly
// inside a flat buffer: List, Set and Map, plus the view types for
// composites, sequences and unions declared in the layout package.
//
// Every container is described by a *Type value (ListType, SetType,
// MapType) that implements layout.Unsized and carries no per-value state:
// one ListType can describe any number of encoded lists. Typed access to
// an actual encoding goes through a view obtained from the type:
//
//	lt := container.NewList(layout.Uint64(engine), layout.Len32(engine))
//	mut, _ := buf.AcquireMut()
//	list, _ := lt.Mut(mut)
//	_ = list.Push(7)
//
// Structural edits (Push, Insert, Remove, Switch, Replace) route through
// the buffer package's resize cascade, so ancestor views stay correct.
// All edits are atomic: a failed edit leaves the encoding byte-for-byte
// unchanged.
//
// Set and Map delegate storage to List and keep their entries sorted
// ascending by key at all times, which makes binary search valid. Map
// collisions are last-write-wins: Insert on an existing key replaces the
// value and hands the old one back to the caller.
package container
