package config

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a file extension with no registered
// decoder.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// ErrBadCondition indicates a condition string outside the supported
// vocabulary.
var ErrBadCondition = errors.New("config: invalid condition")

// ParseError describes a failure to load or validate a configuration
// file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Message describes what was wrong.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("config: %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
