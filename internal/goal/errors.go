package goal

import "errors"

// Domain-specific errors for the goal package.
var (
	ErrInvalidSchedule = errors.New("built schedule failed validation")
	ErrGoalCreate      = errors.New("failed to store goal")
	ErrGoalNotFound    = errors.New("goal not found")
)
