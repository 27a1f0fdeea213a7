package model

import "time"

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusAbandoned GoalStatus = "abandoned"
)

// Goal is the descriptor handed to the persistence collaborator.
type Goal struct {
	ID          string     // Assigned by the repository, empty until stored
	Title       string     // Goal title as accepted by the interview
	Description string     // Optional free-text description
	TargetDate  time.Time  // Midday-UTC normalized target date
	Status      GoalStatus // "active" on creation
	CreatedAt   time.Time  // Clock time at creation
}

// ScheduledSlot is a single occurrence of a recurring task. Slots are
// created only by the schedule builder and never mutated afterwards; a new
// goal requires a new set.
type ScheduledSlot struct {
	Title           string    // Goal title, unmodified
	DueAt           time.Time // Timezone-resolved instant
	DurationMinutes int       // Session length, positive
	Seq             int       // 0-based, strictly increasing in due order
}
