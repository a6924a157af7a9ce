// Package span provides an arena of tracked text spans that stay correct
// as the surrounding buffer is edited.
//
// Spans are referenced by stable integer handles rather than pointers; a
// handle remains valid until the span is released, no matter how many other
// spans come and go. The owning surface must call [Arena.Adjust] with every
// buffer change, in the order the changes were applied; Adjust shifts,
// grows, and clamps span boundaries so that the ordering invariant
// span[i].End <= span[i+1].Start is preserved for non-overlapping spans.
//
// A span's [Bias] decides what happens when text is inserted exactly at one
// of its boundaries: BiasAbsorb spans grow to include the new text (the
// behavior wanted for fillable fields), BiasNone spans stay put and the
// text lands outside. When two absorbing spans share a boundary, the first
// one created wins and the later one shifts past the inserted text.
//
// The arena does no locking; the owning surface serializes access on its
// interactive loop.
package span
