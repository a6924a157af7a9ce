package snippet

import (
	"reflect"
	"testing"

	"github.com/dshills/snipstorm/internal/snippet/token"
)

func TestExtractFields(t *testing.T) {
	tokens := token.Split("for $var(i) in $seq {\n>$body\n}", token.DefaultMarkers())

	got := ExtractFields(tokens)
	want := []FieldDesc{
		{Ordinal: 0, Name: "var", Default: "i"},
		{Ordinal: 1, Name: "seq", Default: ""},
		{Ordinal: 2, Name: "body", Default: ""},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractFields = %v, want %v", got, want)
	}
}

func TestExtractFieldsNoFields(t *testing.T) {
	tokens := token.Split("plain text\nonly", token.DefaultMarkers())

	if got := ExtractFields(tokens); got != nil {
		t.Errorf("expected no fields, got %v", got)
	}
}
