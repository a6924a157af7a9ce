package session

import (
	"github.com/dshills/snipstorm/internal/engine/buffer"
	"github.com/dshills/snipstorm/internal/snippet/dispatch"
	"github.com/dshills/snipstorm/internal/snippet/token"
)

// Option configures a Session at construction.
type Option func(*Session)

// WithText sets the session's initial buffer content.
func WithText(text string) Option {
	return func(s *Session) {
		s.initText = text
	}
}

// WithMarkers sets the session's template marker configuration.
func WithMarkers(m token.Markers) Option {
	return func(s *Session) {
		s.markers = m
	}
}

// WithMode sets the session's editing mode identifier used for dispatch
// table lookups.
func WithMode(mode string) Option {
	return func(s *Session) {
		s.mode = mode
	}
}

// WithTable attaches an existing dispatch table. Sessions may share a
// table or hold their own; the default is a fresh empty table.
func WithTable(t *dispatch.Table) Option {
	return func(s *Session) {
		s.table = t
	}
}

// WithCommentPrefixes sets the line-comment prefixes the comment oracle
// recognizes.
func WithCommentPrefixes(prefixes ...string) Option {
	return func(s *Session) {
		s.commentPrefixes = prefixes
	}
}

// WithLineEnding sets the buffer's line ending style.
func WithLineEnding(le buffer.LineEnding) Option {
	return func(s *Session) {
		s.lineEnding = le
	}
}
