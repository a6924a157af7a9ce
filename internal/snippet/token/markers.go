package token

// Markers is the per-surface marker configuration read by Split.
// It is a plain value threaded through every call; there is no ambient
// marker state.
//
// Marker strings must be non-empty to be recognized and should not be
// prefixes of one another; the splitter checks Field, LineBreak, Indent,
// then Exit at each position.
type Markers struct {
	// LineBreak splits into a line break token.
	LineBreak string

	// Indent splits into an indent request token.
	Indent string

	// Exit splits into an exit marker token.
	Exit string

	// Field introduces a field: the marker, a name of word characters
	// (letters, digits, '_', '-'), then optionally DefaultOpen, a default
	// value, and DefaultClose.
	Field string

	// DefaultOpen and DefaultClose delimit a field's default value.
	DefaultOpen  rune
	DefaultClose rune
}

// DefaultMarkers returns the documented default marker set:
// "\n" line break, ">" indent, "!" exit, "$" field, "(" and ")" default
// value delimiters.
func DefaultMarkers() Markers {
	return Markers{
		LineBreak:    "\n",
		Indent:       ">",
		Exit:         "!",
		Field:        "$",
		DefaultOpen:  '(',
		DefaultClose: ')',
	}
}
