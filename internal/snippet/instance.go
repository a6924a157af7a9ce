package snippet

import (
	"github.com/google/uuid"

	"github.com/dshills/snipstorm/internal/engine/span"
)

// Field is a materialized fillable region of a live instance.
type Field struct {
	Desc FieldDesc
	span span.Handle
}

// Span returns the field's tracked span handle.
func (f Field) Span() span.Handle {
	return f.span
}

// Instance is one materialized snippet. At most one instance is live per
// editing surface; starting a new instantiation tears down the previous
// one.
//
// Invariant while live: the bounding span contains every field span and
// the exit position. The bounding span extends one unit past the last
// inserted character, even at the buffer tail, so trailing fields stay
// trackable through subsequent edits.
type Instance struct {
	id       uuid.UUID
	bounding span.Handle
	exit     span.Handle // zero-width tracked point
	fields   []Field
	current  int // index into fields; -1 before the first stop
	live     bool
}

// ID returns the instance's unique identity.
func (in *Instance) ID() uuid.UUID {
	return in.id
}

// Live reports whether the instance's spans are still tracked.
func (in *Instance) Live() bool {
	return in.live
}

// Fields returns the instance's fields in template order.
func (in *Instance) Fields() []Field {
	out := make([]Field, len(in.fields))
	copy(out, in.fields)
	return out
}

// FieldCount returns the number of fields.
func (in *Instance) FieldCount() int {
	return len(in.fields)
}

// CurrentField returns the index of the field the cursor was last moved
// to, or -1 if navigation has not stopped on a field.
func (in *Instance) CurrentField() int {
	return in.current
}

// Bounding returns the handle of the bounding span.
func (in *Instance) Bounding() span.Handle {
	return in.bounding
}

// Exit returns the handle of the tracked exit point.
func (in *Instance) Exit() span.Handle {
	return in.exit
}
