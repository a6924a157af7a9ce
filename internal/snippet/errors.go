package snippet

import "errors"

// Errors returned by engine operations.
var (
	// ErrNoInstance indicates a navigation call with no live snippet.
	ErrNoInstance = errors.New("no live snippet instance")
)
