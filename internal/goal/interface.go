package goal

import (
	"context"

	"goal-planner/internal/model"
)

// UseCase defines the business logic interface for the goal domain.
type UseCase interface {
	// CreatePlan expands a completed interview field set into a goal
	// descriptor plus its ordered slot list, runs the optional refinement
	// step, and hands both to the persistence collaborator.
	CreatePlan(ctx context.Context, sc model.Scope, input CreatePlanInput) (CreatePlanOutput, error)
}

// Refiner is the optional external plan-improvement collaborator. The
// pipeline's contract is unaffected by whether it runs; passing nil skips
// the step.
type Refiner interface {
	Refine(ctx context.Context, g model.Goal, slots []model.ScheduledSlot) (model.Goal, []model.ScheduledSlot, error)
}
