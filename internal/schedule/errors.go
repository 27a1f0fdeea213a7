package schedule

import "errors"

var (
	// ErrIncompleteFields means the builder was invoked with a field set
	// lacking required values. Fails fast rather than scheduling defaults.
	ErrIncompleteFields = errors.New("schedule requires a complete, validated field set")
)
