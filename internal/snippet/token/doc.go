// Package token splits marker-annotated template strings into typed tokens.
//
// A template mixes literal text with four marker kinds: a line break, an
// indent request, an exit position, and fillable fields with optional
// default values. All markers are configured per editing surface through
// [Markers]; nothing in this package assumes fixed marker characters.
//
// With the default markers, a template looks like:
//
//	"if $cond(true) {\n>$body\n>}\n>!"
//
// Splitting is best effort: malformed or unmatched marker sequences degrade
// to literal text rather than failing, so a sloppy template still expands
// to something rather than blocking the user's typing.
package token
