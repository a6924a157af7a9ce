package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/snipstorm/internal/engine/buffer"
	"github.com/dshills/snipstorm/internal/engine/span"
	"github.com/dshills/snipstorm/internal/snippet"
	"github.com/dshills/snipstorm/internal/snippet/dispatch"
	"github.com/dshills/snipstorm/internal/snippet/token"
)

// Session is an editing surface with snippet expansion. It implements
// snippet.Surface.
type Session struct {
	id      uuid.UUID
	buf     *buffer.Buffer
	spans   *span.Arena
	cursor  buffer.ByteOffset
	markers token.Markers
	mode    string

	commentPrefixes []string

	table    *dispatch.Table
	engine   *snippet.Engine
	expander *dispatch.Expander

	// Construction-time settings consumed by New.
	initText   string
	lineEnding buffer.LineEnding
}

// New creates a session. Defaults: empty buffer, LF line endings, default
// markers, mode "text", comment prefixes "//" and "#", a fresh dispatch
// table.
func New(opts ...Option) *Session {
	s := &Session{
		id:              uuid.New(),
		spans:           span.NewArena(),
		markers:         token.DefaultMarkers(),
		mode:            "text",
		commentPrefixes: []string{"//", "#"},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.buf = buffer.NewFromString(s.initText, buffer.WithLineEnding(s.lineEnding))
	s.buf.OnChange(s.spans.Adjust)

	if s.table == nil {
		s.table = dispatch.NewTable()
	}
	s.engine = snippet.NewEngine(s)
	s.expander = dispatch.NewExpander(s, s.engine, s.table, s.mode, s.markers)

	return s
}

// ID returns the session's unique identity.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Mode returns the session's editing mode identifier.
func (s *Session) Mode() string {
	return s.mode
}

// SetMode switches the editing mode used for dispatch lookups.
func (s *Session) SetMode(mode string) {
	s.mode = mode
	s.expander.SetMode(mode)
}

// Markers returns the session's marker configuration.
func (s *Session) Markers() token.Markers {
	return s.markers
}

// Table returns the session's dispatch table.
func (s *Session) Table() *dispatch.Table {
	return s.table
}

// Engine returns the session's snippet engine.
func (s *Session) Engine() *snippet.Engine {
	return s.engine
}

// Text returns the full buffer content.
func (s *Session) Text() string {
	return s.buf.Text()
}

// Cursor returns the current insertion offset.
func (s *Session) Cursor() buffer.ByteOffset {
	return s.cursor
}

// Line returns the text of the given line.
func (s *Session) Line(line uint32) string {
	return s.buf.LineText(line)
}

// LineCount returns the number of buffer lines.
func (s *Session) LineCount() uint32 {
	return s.buf.LineCount()
}

// CursorPoint returns the cursor as a line/column point.
func (s *Session) CursorPoint() buffer.Point {
	return s.buf.OffsetToPoint(s.cursor)
}

// Expansion Operations

// Expand attempts to expand a trigger word at the cursor. The host must
// have removed the typed trigger word first; on no-match the literal word
// is re-inserted so the buffer reads as ordinary typing.
func (s *Session) Expand(trigger string) (dispatch.Result, error) {
	return s.expander.Expand(trigger)
}

// NextField moves to the next snippet field, or to the exit position.
func (s *Session) NextField() error {
	return s.engine.Next()
}

// PrevField moves to the previous snippet field.
func (s *Session) PrevField() error {
	return s.engine.Prev()
}

// CancelSnippet discards the live instance without reverting text.
func (s *Session) CancelSnippet() {
	s.engine.Cancel()
}

// Active returns the live snippet instance, or nil.
func (s *Session) Active() *snippet.Instance {
	return s.engine.Active()
}

// Editing Operations

// Type inserts user-typed text at the cursor. Typing outside the live
// instance's bounding span abandons the instance (tracking is discarded,
// text stays).
func (s *Session) Type(text string) error {
	s.cancelIfOutside()
	return s.InsertText(text)
}

// DeleteRange removes [start, end) and keeps the cursor consistent.
func (s *Session) DeleteRange(start, end buffer.ByteOffset) error {
	if err := s.buf.Delete(start, end); err != nil {
		return err
	}
	switch {
	case s.cursor >= end:
		s.cursor -= end - start
	case s.cursor > start:
		s.cursor = start
	}
	return nil
}

// Backspace deletes the byte before the cursor, if any.
func (s *Session) Backspace() error {
	if s.cursor == 0 {
		return nil
	}
	s.cancelIfOutside()
	return s.DeleteRange(s.cursor-1, s.cursor)
}

// cancelIfOutside abandons the live instance when the cursor has left its
// bounding span.
func (s *Session) cancelIfOutside() {
	inst := s.engine.Active()
	if inst == nil {
		return
	}
	start, end, err := s.spans.Range(inst.Bounding())
	if err != nil || s.cursor < start || s.cursor > end {
		s.engine.Cancel()
	}
}

// snippet.Surface implementation

// InsertText inserts text at the cursor and advances it.
func (s *Session) InsertText(text string) error {
	end, err := s.buf.Insert(s.cursor, text)
	if err != nil {
		return err
	}
	s.cursor = end
	return nil
}

// Position returns the current insertion offset.
func (s *Session) Position() buffer.ByteOffset {
	return s.cursor
}

// SetPosition moves the insertion offset.
func (s *Session) SetPosition(offset buffer.ByteOffset) error {
	if offset < 0 || offset > s.buf.Len() {
		return buffer.ErrOffsetOutOfRange
	}
	s.cursor = offset
	return nil
}

// EndOffset returns the buffer length.
func (s *Session) EndOffset() buffer.ByteOffset {
	return s.buf.Len()
}

// Newline returns the buffer's line terminator sequence.
func (s *Session) Newline() string {
	return s.buf.LineEnding().Sequence()
}

// CreateSpan starts tracking [start, end).
func (s *Session) CreateSpan(start, end buffer.ByteOffset, bias span.Bias) (span.Handle, error) {
	return s.spans.Create(start, end, bias)
}

// SpanRange returns the current extent of a tracked span.
func (s *Session) SpanRange(h span.Handle) (start, end buffer.ByteOffset, err error) {
	return s.spans.Range(h)
}

// MoveSpan repositions a tracked span.
func (s *Session) MoveSpan(h span.Handle, start, end buffer.ByteOffset) error {
	return s.spans.Move(h, start, end)
}

// ReleaseSpan stops tracking a span.
func (s *Session) ReleaseSpan(h span.Handle) {
	s.spans.Release(h)
}

// ReindentCurrentLine matches the cursor's line indentation to the
// previous line. Line 0 keeps its indentation.
func (s *Session) ReindentCurrentLine() error {
	pt := s.buf.OffsetToPoint(s.cursor)
	if pt.Line == 0 {
		return nil
	}

	indent := leadingWhitespace(s.buf.LineText(pt.Line - 1))
	cur := leadingWhitespace(s.buf.LineText(pt.Line))
	if indent == cur {
		return nil
	}

	lineStart := s.buf.LineStartOffset(pt.Line)
	wsEnd := lineStart + buffer.ByteOffset(len(cur))
	if _, err := s.buf.Replace(lineStart, wsEnd, indent); err != nil {
		return err
	}

	delta := buffer.ByteOffset(len(indent)) - buffer.ByteOffset(len(cur))
	switch {
	case s.cursor >= wsEnd:
		s.cursor += delta
	case s.cursor > lineStart:
		s.cursor = lineStart + buffer.ByteOffset(len(indent))
	}
	return nil
}

// InsideComment reports whether a line-comment prefix occurs before the
// offset on its line.
func (s *Session) InsideComment(offset buffer.ByteOffset) bool {
	pt := s.buf.OffsetToPoint(offset)
	prefix := s.buf.TextRange(s.buf.LineStartOffset(pt.Line), offset)
	for _, cp := range s.commentPrefixes {
		if strings.Contains(prefix, cp) {
			return true
		}
	}
	return false
}

// AtLineStart reports whether only whitespace precedes the offset on its
// line.
func (s *Session) AtLineStart(offset buffer.ByteOffset) bool {
	pt := s.buf.OffsetToPoint(offset)
	prefix := s.buf.TextRange(s.buf.LineStartOffset(pt.Line), offset)
	return strings.TrimLeft(prefix, " \t") == ""
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
