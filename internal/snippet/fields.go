package snippet

import "github.com/dshills/snipstorm/internal/snippet/token"

// FieldDesc describes one fillable field of a template.
type FieldDesc struct {
	// Ordinal is the field's stable position in template order.
	Ordinal int

	// Name is the field name from the template; may be empty.
	Name string

	// Default is the text inserted when the field is materialized.
	Default string
}

// ExtractFields returns the field descriptors of a token list, ordinals
// assigned in template appearance order. Navigation proceeds in this order
// regardless of the order spans are later discovered or edited.
func ExtractFields(tokens []token.Token) []FieldDesc {
	var fields []FieldDesc
	for _, t := range tokens {
		if t.Kind == token.KindField {
			fields = append(fields, FieldDesc{
				Ordinal: len(fields),
				Name:    t.Name,
				Default: t.Default,
			})
		}
	}
	return fields
}
