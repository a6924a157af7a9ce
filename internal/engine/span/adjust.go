package span

import "github.com/dshills/snipstorm/internal/engine/buffer"

// Adjust updates all live spans for one applied buffer change.
// The owning surface must call it once per change, in application order.
// Replacements are treated as a deletion followed by an insertion at the
// same offset.
func (a *Arena) Adjust(c buffer.Change) {
	switch c.Type {
	case buffer.ChangeInsert:
		a.adjustInsert(c.Range.Start, buffer.ByteOffset(len(c.NewText)))
	case buffer.ChangeDelete:
		a.adjustDelete(c.Range.Start, c.Range.End)
	case buffer.ChangeReplace:
		a.adjustDelete(c.Range.Start, c.Range.End)
		a.adjustInsert(c.Range.Start, buffer.ByteOffset(len(c.NewText)))
	}
}

// adjustInsert handles an insertion of n bytes at offset o.
//
// Interior insertions grow the span; insertions before it shift it. The
// interesting cases are at the boundaries: an absorbing span captures text
// inserted exactly at its start or end, and at most one span captures any
// given insertion (first created wins), so spans that meet at a boundary
// never start overlapping.
func (a *Arena) adjustInsert(o, n buffer.ByteOffset) {
	if n <= 0 {
		return
	}

	claimed := false
	for i := range a.records {
		r := &a.records[i]
		if !r.alive {
			continue
		}

		switch {
		case o < r.start:
			r.start += n
			r.end += n

		case o > r.end:
			// Entirely after the span; untouched.

		case o == r.start && o == r.end:
			// Empty span or tracked point.
			if r.bias == BiasAbsorb && !claimed {
				r.end += n
				claimed = true
			} else if claimed {
				// An earlier span captured the text; stay after it.
				r.start += n
				r.end += n
			}
			// BiasNone point stays before the inserted text.

		case o == r.end:
			// Nonempty span, insertion at its end boundary.
			if r.bias == BiasAbsorb && !claimed {
				r.end += n
				claimed = true
			}

		case o == r.start:
			// Nonempty span, insertion at its start boundary.
			if claimed {
				r.start += n
				r.end += n
			} else {
				// Text lands inside; the start anchors in place.
				r.end += n
			}

		default:
			// Strictly interior.
			r.end += n
		}
	}
}

// adjustDelete handles deletion of [from, to).
// Boundaries inside the deleted region clamp to its start, so spans shrink
// but never invert or leak into a neighbor.
func (a *Arena) adjustDelete(from, to buffer.ByteOffset) {
	d := to - from
	if d <= 0 {
		return
	}

	clamp := func(p buffer.ByteOffset) buffer.ByteOffset {
		switch {
		case p <= from:
			return p
		case p >= to:
			return p - d
		default:
			return from
		}
	}

	for i := range a.records {
		r := &a.records[i]
		if !r.alive {
			continue
		}
		r.start = clamp(r.start)
		r.end = clamp(r.end)
	}
}
