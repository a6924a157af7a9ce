package token

import (
	"strings"
	"unicode/utf8"
)

// Split parses a template into ordered tokens using the given markers.
// It never fails: unmatched or malformed marker sequences are kept as
// literal text so a template always expands to something.
func Split(template string, m Markers) []Token {
	var toks []Token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			toks = append(toks, Literal(lit.String()))
			lit.Reset()
		}
	}

	i := 0
	for i < len(template) {
		rest := template[i:]

		if m.Field != "" && strings.HasPrefix(rest, m.Field) {
			if tok, n, ok := parseField(rest, m); ok {
				flush()
				toks = append(toks, tok)
				i += n
				continue
			}
			// Bare field marker with no name or default: literal.
			lit.WriteString(m.Field)
			i += len(m.Field)
			continue
		}

		if m.LineBreak != "" && strings.HasPrefix(rest, m.LineBreak) {
			flush()
			toks = append(toks, LineBreak())
			i += len(m.LineBreak)
			continue
		}

		if m.Indent != "" && strings.HasPrefix(rest, m.Indent) {
			flush()
			toks = append(toks, Indent())
			i += len(m.Indent)
			continue
		}

		if m.Exit != "" && strings.HasPrefix(rest, m.Exit) {
			flush()
			toks = append(toks, Exit())
			i += len(m.Exit)
			continue
		}

		_, size := utf8.DecodeRuneInString(rest)
		lit.WriteString(rest[:size])
		i += size
	}

	flush()
	return toks
}

// parseField parses a field marker sequence at the start of s.
// It returns the field token, the number of bytes consumed, and whether the
// sequence formed a valid field. A field needs a name or a default value;
// a default with a missing closing delimiter is dropped and its opening
// delimiter re-scanned as ordinary content.
func parseField(s string, m Markers) (Token, int, bool) {
	i := len(m.Field)

	start := i
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	name := s[start:i]

	// Optional default payload. The value runs to the nearest closing
	// delimiter; marker substrings inside it stay verbatim.
	if i < len(s) && m.DefaultOpen != 0 && m.DefaultClose != 0 {
		if r, size := utf8.DecodeRuneInString(s[i:]); r == m.DefaultOpen {
			if idx := strings.IndexRune(s[i+size:], m.DefaultClose); idx >= 0 {
				def := s[i+size : i+size+idx]
				end := i + size + idx + utf8.RuneLen(m.DefaultClose)
				return Field(name, def), end, true
			}
			// Unmatched open: keep the field, leave the rest for the
			// caller to re-scan.
		}
	}

	if name == "" {
		return Token{}, 0, false
	}
	return Field(name, ""), i, true
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '_' || b == '-'
}
