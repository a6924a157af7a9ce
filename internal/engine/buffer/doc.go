// Package buffer provides the reference in-memory text buffer used by
// snippet editing surfaces.
//
// The snippet engine itself never touches a Buffer directly; it talks to the
// snippet.Surface interface. Buffer supplies what a host editing surface
// must provide: offset-addressed insert/delete/replace, line queries, and a
// change notification hook so tracked spans can be adjusted after every
// edit.
//
// Positions are byte offsets. Ranges are half-open: [Start, End).
//
//	b := buffer.NewFromString("hello")
//	b.OnChange(func(c buffer.Change) { ... })
//	b.Insert(5, " world")
//
// Buffer is not safe for concurrent use; a surface session serializes all
// access on its interactive loop.
package buffer
