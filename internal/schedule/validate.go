package schedule

import (
	"fmt"

	"goal-planner/internal/model"
)

// Validate is the post-hoc consistency check on a built slot list: non-empty,
// strictly ascending due instants, and a gapless 0-based seq. It returns
// human-readable findings; an empty list means the schedule is valid.
func Validate(slots []model.ScheduledSlot) []string {
	var problems []string

	if len(slots) == 0 {
		problems = append(problems, "schedule is empty: no dates in range fall on a preferred day")
		return problems
	}

	for i, slot := range slots {
		if slot.Seq != i {
			problems = append(problems, fmt.Sprintf("slot %d has seq %d, want %d", i, slot.Seq, i))
		}
		if slot.DurationMinutes < 1 {
			problems = append(problems, fmt.Sprintf("slot %d has non-positive duration %d", i, slot.DurationMinutes))
		}
		if i > 0 && !slots[i-1].DueAt.Before(slot.DueAt) {
			problems = append(problems, fmt.Sprintf("slot %d due %s is not after slot %d due %s",
				i, slot.DueAt.Format("2006-01-02 15:04"), i-1, slots[i-1].DueAt.Format("2006-01-02 15:04")))
		}
	}

	return problems
}
