package repository

import (
	"context"

	"goal-planner/internal/model"
)

// CreateGoalOptions carries a goal and its slot list into storage. The
// repository assigns identifiers and commits the pair atomically.
type CreateGoalOptions struct {
	Goal  model.Goal
	Slots []model.ScheduledSlot
}

// GoalRepository is the persistence collaborator boundary. The pipeline only
// guarantees the slot list it hands over is internally consistent; anything
// beyond that (IDs, association, atomicity) is the repository's job.
type GoalRepository interface {
	CreateGoal(ctx context.Context, sc model.Scope, opts CreateGoalOptions) (model.Goal, error)
	GetGoal(ctx context.Context, sc model.Scope, id string) (model.Goal, []model.ScheduledSlot, error)
	ListGoals(ctx context.Context, sc model.Scope) ([]model.Goal, error)
}
