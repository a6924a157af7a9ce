package snippet

import (
	"github.com/dshills/snipstorm/internal/engine/buffer"
	"github.com/dshills/snipstorm/internal/engine/span"
)

// Surface is the host editing surface contract.
//
// Insertion happens at the surface's current position, which advances past
// the inserted text. Tracked spans must survive and adjust correctly under
// text insertion and deletion inside or adjacent to them; the span arena
// provides that behavior when the surface routes every edit through
// span.Arena.Adjust.
type Surface interface {
	// InsertText inserts text at the current position and advances the
	// position past it.
	InsertText(text string) error

	// Position returns the current insertion offset.
	Position() buffer.ByteOffset

	// SetPosition moves the insertion offset.
	SetPosition(offset buffer.ByteOffset) error

	// EndOffset returns the offset one past the last character of the
	// surface's text.
	EndOffset() buffer.ByteOffset

	// Newline returns the surface's line terminator sequence.
	Newline() string

	// CreateSpan starts tracking [start, end) and returns its handle.
	CreateSpan(start, end buffer.ByteOffset, bias span.Bias) (span.Handle, error)

	// SpanRange returns the current extent of a tracked span.
	SpanRange(h span.Handle) (start, end buffer.ByteOffset, err error)

	// MoveSpan repositions a tracked span.
	MoveSpan(h span.Handle, start, end buffer.ByteOffset) error

	// ReleaseSpan stops tracking a span. Releasing collapses the region
	// back to plain text; the text itself is untouched.
	ReleaseSpan(h span.Handle)

	// ReindentCurrentLine reindents the line containing the current
	// position using the host's indentation rules.
	ReindentCurrentLine() error

	// InsideComment reports whether the offset sits inside a comment.
	InsideComment(offset buffer.ByteOffset) bool

	// AtLineStart reports whether only whitespace precedes the offset on
	// its line.
	AtLineStart(offset buffer.ByteOffset) bool
}
