package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"goal-planner/internal/goal"
	"goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
)

type stored struct {
	goal  model.Goal
	slots []model.ScheduledSlot
	owner string
}

// Repository is the in-process GoalRepository used by the cmd driver and
// tests. Real persistence lives outside this module.
type Repository struct {
	mu    sync.Mutex
	goals map[string]stored
	order []string
}

func New() *Repository {
	return &Repository{goals: map[string]stored{}}
}

// CreateGoal assigns an ID and stores the goal and its slots in one step.
func (r *Repository) CreateGoal(ctx context.Context, sc model.Scope, opts repository.CreateGoalOptions) (model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := opts.Goal
	g.ID = uuid.NewString()

	slots := make([]model.ScheduledSlot, len(opts.Slots))
	copy(slots, opts.Slots)

	r.goals[g.ID] = stored{goal: g, slots: slots, owner: sc.UserID}
	r.order = append(r.order, g.ID)
	return g, nil
}

func (r *Repository) GetGoal(ctx context.Context, sc model.Scope, id string) (model.Goal, []model.ScheduledSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.goals[id]
	if !ok || s.owner != sc.UserID {
		return model.Goal{}, nil, goal.ErrGoalNotFound
	}
	slots := make([]model.ScheduledSlot, len(s.slots))
	copy(slots, s.slots)
	return s.goal, slots, nil
}

func (r *Repository) ListGoals(ctx context.Context, sc model.Scope) ([]model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var goals []model.Goal
	for _, id := range r.order {
		if s := r.goals[id]; s.owner == sc.UserID {
			goals = append(goals, s.goal)
		}
	}
	return goals, nil
}
