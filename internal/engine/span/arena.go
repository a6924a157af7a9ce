package span

import (
	"errors"
	"fmt"

	"github.com/dshills/snipstorm/internal/engine/buffer"
)

// Errors returned by arena operations.
var (
	ErrInvalidHandle = errors.New("invalid span handle")
	ErrInvalidRange  = errors.New("invalid span range")
)

// Handle is a stable reference to a span in an Arena.
// The zero Handle is invalid.
type Handle int

// IsValid returns true if the handle refers to a span slot.
// It does not check whether the span is still alive.
func (h Handle) IsValid() bool {
	return h > 0
}

// Bias controls how a span reacts to an insertion exactly at its boundary.
type Bias uint8

const (
	// BiasNone leaves the boundary in place; inserted text lands outside
	// the span. Used for tracked points such as an exit position.
	BiasNone Bias = iota

	// BiasAbsorb grows the span to include text inserted at its start or
	// end boundary. Used for field spans so typing at the edge of a field
	// stays inside it.
	BiasAbsorb
)

// String returns the bias name.
func (b Bias) String() string {
	if b == BiasAbsorb {
		return "absorb"
	}
	return "none"
}

type record struct {
	start buffer.ByteOffset
	end   buffer.ByteOffset
	bias  Bias
	alive bool
}

// Arena holds tracked spans and adjusts them as the buffer changes.
type Arena struct {
	records []record
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Create adds a span covering [start, end) and returns its handle.
// Spans are adjusted in creation order; callers that rely on boundary
// absorption order (enclosing spans before enclosed, left fields before
// right) must create them in that order.
func (a *Arena) Create(start, end buffer.ByteOffset, bias Bias) (Handle, error) {
	if start < 0 || start > end {
		return 0, ErrInvalidRange
	}
	a.records = append(a.records, record{start: start, end: end, bias: bias, alive: true})
	return Handle(len(a.records)), nil
}

func (a *Arena) lookup(h Handle) (*record, error) {
	if h <= 0 || int(h) > len(a.records) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	r := &a.records[h-1]
	if !r.alive {
		return nil, fmt.Errorf("%w: %d released", ErrInvalidHandle, h)
	}
	return r, nil
}

// Range returns the current [start, end) of a span.
func (a *Arena) Range(h Handle) (start, end buffer.ByteOffset, err error) {
	r, err := a.lookup(h)
	if err != nil {
		return 0, 0, err
	}
	return r.start, r.end, nil
}

// Move repositions a span. The caller is responsible for keeping sibling
// spans non-overlapping.
func (a *Arena) Move(h Handle, start, end buffer.ByteOffset) error {
	if start < 0 || start > end {
		return ErrInvalidRange
	}
	r, err := a.lookup(h)
	if err != nil {
		return err
	}
	r.start, r.end = start, end
	return nil
}

// Release discards a span. Its handle becomes invalid; the slot is not
// reused, so stale handles fail rather than aliasing a new span.
func (a *Arena) Release(h Handle) {
	if h <= 0 || int(h) > len(a.records) {
		return
	}
	a.records[h-1].alive = false
}

// Alive reports whether a handle refers to a live span.
func (a *Arena) Alive(h Handle) bool {
	return h > 0 && int(h) <= len(a.records) && a.records[h-1].alive
}

// Len returns the number of live spans.
func (a *Arena) Len() int {
	n := 0
	for _, r := range a.records {
		if r.alive {
			n++
		}
	}
	return n
}

// Clear releases all spans.
func (a *Arena) Clear() {
	a.records = a.records[:0]
}
