package interview

import (
	"time"

	"goal-planner/pkg/dayparse"
)

// Field identifies one of the six required interview fields.
type Field string

const (
	FieldGoalTitle      Field = "goal_title"
	FieldTargetDate     Field = "target_date"
	FieldDaysPerWeek    Field = "days_per_week"
	FieldSessionMinutes Field = "session_minutes"
	FieldPreferredDays  Field = "preferred_days"
	FieldTimeOfDay      Field = "time_of_day"
)

// Fields is the validated field set handed to the schedule builder. A field
// holds a value only after its answer passed validation; accepted values are
// immutable (correction requires Reset).
type Fields struct {
	GoalTitle      string
	TargetDate     time.Time      // Strictly future at validation time
	DaysPerWeek    int            // 1..7
	SessionMinutes int            // > 0
	PreferredDays  []dayparse.Day // Non-empty, canonical Sun→Sat order
	TimeOfDay      string         // "HH:MM", or "" meaning use the default
	// DayTimes holds per-day time overrides when the preferred-days answer
	// carried compound day+time phrases ("Mon 5pm, Thu 5pm"). May be nil.
	DayTimes map[dayparse.Day]string
}

// Result is the outcome of a single AcceptAnswer call.
type Result struct {
	Accepted        bool
	ValidationError string // Set when Accepted is false; the question stays active
	NextQuestion    string // Empty when the interview is complete
	Complete        bool
}

// RealismReport is the advisory outcome of CheckTimelineRealism. It never
// blocks completion.
type RealismReport struct {
	Realistic           bool
	AchievableSessions  int
	MinSessionsRequired int
	SuggestedTargetDate time.Time // Later date that would fit the minimum
	Advice              string
}

// DefaultMinSessions is the realism-check threshold when the caller passes 0.
const DefaultMinSessions = 10
