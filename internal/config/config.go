package config

import (
	"github.com/dshills/snipstorm/internal/snippet/token"
)

// Markers overrides the template marker configuration. Empty fields keep
// the default; a marker set to "off" disables it.
type Markers struct {
	LineBreak string `yaml:"line_break" toml:"line_break"`
	Indent    string `yaml:"indent" toml:"indent"`
	Exit      string `yaml:"exit" toml:"exit"`
	Field     string `yaml:"field" toml:"field"`
}

// Snippet is one snippet registration.
type Snippet struct {
	Mode      string `yaml:"mode" toml:"mode"`
	Trigger   string `yaml:"trigger" toml:"trigger"`
	Condition string `yaml:"condition" toml:"condition"`
	Template  string `yaml:"template" toml:"template"`
}

// File is the top-level configuration schema.
type File struct {
	Markers  Markers   `yaml:"markers" toml:"markers"`
	Snippets []Snippet `yaml:"snippets" toml:"snippets"`
}

// markerOff disables a marker when used as its override value.
const markerOff = "off"

// ResolveMarkers applies the file's marker overrides to a base
// configuration.
func (f *File) ResolveMarkers(base token.Markers) token.Markers {
	m := base
	apply := func(dst *string, override string) {
		switch override {
		case "":
		case markerOff:
			*dst = ""
		default:
			*dst = override
		}
	}
	apply(&m.LineBreak, f.Markers.LineBreak)
	apply(&m.Indent, f.Markers.Indent)
	apply(&m.Exit, f.Markers.Exit)
	apply(&m.Field, f.Markers.Field)
	return m
}
