package main

import (
	"github.com/dshills/snipstorm/internal/snippet/dispatch"
	"github.com/dshills/snipstorm/internal/snippet/token"
)

func defaultMarkers() token.Markers {
	return token.DefaultMarkers()
}

// registerBuiltins fills the table with a few demonstration snippets used
// when no configuration file is given.
func registerBuiltins(t *dispatch.Table) {
	// text mode
	t.Register("text", "sig", dispatch.Always(), "Regards,\nDavin")
	t.Register("text", "td", dispatch.InsideComment(), "TODO: $what(describe)")

	// go mode
	t.Register("go", "if", dispatch.Always(), "if $cond { $body }")
	t.Register("go", "if", dispatch.AtLineStart(), "if $cond(true) {\n>$body\n}\n!")
	t.Register("go", "for", dispatch.AtLineStart(), "for $var(v) := range $seq {\n>$body\n}\n!")
	t.Register("go", "erh", dispatch.Always(), "if err != nil {\n>return $ret(err)\n}\n!")
	t.Register("go", "fn", dispatch.AtLineStart(), "func $name {\n>$body\n}\n!")
}
