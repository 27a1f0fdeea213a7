package goal

import (
	"goal-planner/internal/interview"
	"goal-planner/internal/model"
)

// CreatePlanInput is the input for plan creation.
type CreatePlanInput struct {
	Fields      interview.Fields // Must be the complete, validated set
	Timezone    string           // IANA zone name; wall-clock times resolve here
	Description string           // Optional goal description
}

// CreatePlanOutput is the result of plan creation.
type CreatePlanOutput struct {
	Goal      model.Goal
	Slots     []model.ScheduledSlot
	SlotCount int
}
