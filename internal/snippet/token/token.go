package token

import "fmt"

// Kind identifies the type of a template token.
type Kind uint8

const (
	// KindLiteral is plain text to insert verbatim.
	KindLiteral Kind = iota

	// KindLineBreak requests a newline in the surface's line ending style.
	KindLineBreak

	// KindIndent requests reindentation of the current line. It is only
	// meaningful directly after a line break; template authors are
	// responsible for well-formed placement.
	KindIndent

	// KindExit marks the position the cursor returns to after all fields
	// are visited. Only the first exit marker in a template is honored.
	KindExit

	// KindField is a fillable region with a name and an optional default.
	KindField
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindLineBreak:
		return "linebreak"
	case KindIndent:
		return "indent"
	case KindExit:
		return "exit"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// Token is one element of a split template, in template order.
type Token struct {
	Kind Kind

	// Text is the literal payload (KindLiteral only).
	Text string

	// Name and Default carry the field payload (KindField only).
	// Default is empty when the field declares no default value.
	Name    string
	Default string
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case KindLiteral:
		return fmt.Sprintf("literal(%q)", t.Text)
	case KindField:
		if t.Default != "" {
			return fmt.Sprintf("field(%s=%q)", t.Name, t.Default)
		}
		return fmt.Sprintf("field(%s)", t.Name)
	default:
		return t.Kind.String()
	}
}

// Literal creates a literal token.
func Literal(text string) Token {
	return Token{Kind: KindLiteral, Text: text}
}

// LineBreak creates a line break token.
func LineBreak() Token {
	return Token{Kind: KindLineBreak}
}

// Indent creates an indent request token.
func Indent() Token {
	return Token{Kind: KindIndent}
}

// Exit creates an exit marker token.
func Exit() Token {
	return Token{Kind: KindExit}
}

// Field creates a field token.
func Field(name, def string) Token {
	return Token{Kind: KindField, Name: name, Default: def}
}
