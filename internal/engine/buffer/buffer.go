package buffer

import (
	"errors"
	"strings"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer is a byte-addressed text buffer with change notification.
// It is the reference implementation of the storage a host editing surface
// provides; all mutation goes through Insert, Delete, and Replace so that
// observers see every change exactly once.
type Buffer struct {
	content    []byte
	lineEnding LineEnding
	observers  []Observer
}

// New creates a new empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{lineEnding: LineEndingLF}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer with initial content.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.content = []byte(s)
	return b
}

// OnChange registers an observer called after every applied change.
func (b *Buffer) OnChange(fn Observer) {
	b.observers = append(b.observers, fn)
}

func (b *Buffer) notify(c Change) {
	for _, fn := range b.observers {
		fn(c)
	}
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	return string(b.content)
}

// TextRange returns text in the given byte range, clamped to buffer bounds.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	if start < 0 {
		start = 0
	}
	if end > ByteOffset(len(b.content)) {
		end = ByteOffset(len(b.content))
	}
	if start >= end {
		return ""
	}
	return string(b.content[start:end])
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	return ByteOffset(len(b.content))
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	return len(b.content) == 0
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// Line Queries
//
// Lines are delimited by '\n'. A buffer always has at least one line; the
// final line has no trailing newline.

// LineCount returns the number of lines.
func (b *Buffer) LineCount() uint32 {
	return uint32(strings.Count(string(b.content), "\n")) + 1
}

// LineStartOffset returns the byte offset of the start of a line.
// Out-of-range lines clamp to the buffer end.
func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	var start ByteOffset
	for line > 0 {
		idx := strings.IndexByte(string(b.content[start:]), '\n')
		if idx < 0 {
			return ByteOffset(len(b.content))
		}
		start += ByteOffset(idx) + 1
		line--
	}
	return start
}

// LineEndOffset returns the byte offset of the end of a line (before the
// newline, and before any '\r' in CRLF content).
func (b *Buffer) LineEndOffset(line uint32) ByteOffset {
	start := b.LineStartOffset(line)
	idx := strings.IndexByte(string(b.content[start:]), '\n')
	end := ByteOffset(len(b.content))
	if idx >= 0 {
		end = start + ByteOffset(idx)
	}
	if end > start && b.content[end-1] == '\r' {
		end--
	}
	return end
}

// LineText returns the text of a specific line (without line terminator).
func (b *Buffer) LineText(line uint32) string {
	return b.TextRange(b.LineStartOffset(line), b.LineEndOffset(line))
}

// OffsetToPoint converts a byte offset to line/column.
// Offsets beyond the buffer clamp to the final position.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	if offset > ByteOffset(len(b.content)) {
		offset = ByteOffset(len(b.content))
	}
	var p Point
	var lineStart ByteOffset
	for i := ByteOffset(0); i < offset; i++ {
		if b.content[i] == '\n' {
			p.Line++
			lineStart = i + 1
		}
	}
	p.Column = uint32(offset - lineStart)
	return p
}

// Write Operations

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	if offset < 0 || offset > ByteOffset(len(b.content)) {
		return 0, ErrOffsetOutOfRange
	}
	if text == "" {
		return offset, nil
	}

	b.content = append(b.content[:offset:offset], append([]byte(text), b.content[offset:]...)...)

	b.notify(Change{
		Type:     ChangeInsert,
		Range:    Range{Start: offset, End: offset},
		NewRange: Range{Start: offset, End: offset + ByteOffset(len(text))},
		NewText:  text,
	})
	return offset + ByteOffset(len(text)), nil
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end ByteOffset) error {
	if start < 0 || start > end || end > ByteOffset(len(b.content)) {
		return ErrRangeInvalid
	}
	if start == end {
		return nil
	}

	oldText := string(b.content[start:end])
	b.content = append(b.content[:start:start], b.content[end:]...)

	b.notify(Change{
		Type:     ChangeDelete,
		Range:    Range{Start: start, End: end},
		NewRange: Range{Start: start, End: start},
		OldText:  oldText,
	})
	return nil
}

// Replace replaces text in the given range with new text.
// Returns the end position of the replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	if start < 0 || start > end || end > ByteOffset(len(b.content)) {
		return 0, ErrRangeInvalid
	}

	oldText := string(b.content[start:end])
	b.content = append(b.content[:start:start], append([]byte(text), b.content[end:]...)...)

	b.notify(Change{
		Type:     ChangeReplace,
		Range:    Range{Start: start, End: end},
		NewRange: Range{Start: start, End: start + ByteOffset(len(text))},
		OldText:  oldText,
		NewText:  text,
	})
	return start + ByteOffset(len(text)), nil
}
