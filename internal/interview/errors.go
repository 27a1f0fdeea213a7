package interview

import "errors"

// Domain-specific errors for the interview package. Validation failures are
// returned as values inside Result; these errors mark caller misuse.
var (
	ErrNoActiveQuestion = errors.New("no active question: interview already complete")
	ErrIncomplete       = errors.New("interview fields are incomplete")
)
