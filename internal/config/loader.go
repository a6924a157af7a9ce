package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a configuration file. The format is chosen by extension:
// .yaml/.yml or .toml. A missing file is not an error; Load returns
// nil, nil so callers can fall back to defaults.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &ParseError{Path: path, Message: "read failed", Err: err}
	}
	return Parse(path, data)
}

// Parse decodes configuration bytes using the format implied by path's
// extension.
func Parse(path string, data []byte) (*File, error) {
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, &ParseError{Path: path, Message: "invalid YAML", Err: err}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, &ParseError{Path: path, Message: "invalid TOML", Err: err}
		}
	default:
		return nil, &ParseError{Path: path, Message: "unknown extension " + ext, Err: ErrUnsupportedFormat}
	}

	if err := validate(path, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func validate(path string, f *File) error {
	for i, sn := range f.Snippets {
		if sn.Trigger == "" {
			return &ParseError{Path: path, Message: fmt.Sprintf("snippet %d: missing trigger", i)}
		}
		if strings.ContainsAny(sn.Trigger, " \t\n") {
			return &ParseError{Path: path, Message: fmt.Sprintf("snippet %d: trigger %q contains whitespace", i, sn.Trigger)}
		}
		if _, err := ParseCondition(sn.Condition); err != nil {
			return &ParseError{Path: path, Message: fmt.Sprintf("snippet %d", i), Err: err}
		}
	}
	return nil
}
