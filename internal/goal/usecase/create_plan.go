package usecase

import (
	"context"
	"fmt"

	"goal-planner/internal/goal"
	"goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
	"goal-planner/internal/schedule"
)

// CreatePlan builds the schedule for a validated field set, checks it, and
// hands the goal plus slots to the persistence collaborator.
func (uc *implUseCase) CreatePlan(ctx context.Context, sc model.Scope, input goal.CreatePlanInput) (goal.CreatePlanOutput, error) {
	now := uc.now()

	slots, err := schedule.Build(input.Fields, input.Timezone, now)
	if err != nil {
		return goal.CreatePlanOutput{}, fmt.Errorf("build schedule: %w", err)
	}

	if problems := schedule.Validate(slots); len(problems) > 0 {
		uc.l.Errorf(ctx, "CreatePlan: schedule validation failed for user=%s: %v", sc.UserID, problems)
		return goal.CreatePlanOutput{}, fmt.Errorf("%w: %v", goal.ErrInvalidSchedule, problems)
	}

	g := model.Goal{
		Title:       input.Fields.GoalTitle,
		Description: input.Description,
		TargetDate:  input.Fields.TargetDate,
		Status:      model.GoalStatusActive,
		CreatedAt:   now,
	}

	if uc.refiner != nil {
		refined, refinedSlots, refineErr := uc.refiner.Refine(ctx, g, slots)
		if refineErr != nil {
			// Refinement is best-effort: keep the deterministic plan.
			uc.l.Warnf(ctx, "CreatePlan: refiner failed, keeping original plan: %v", refineErr)
		} else {
			g, slots = refined, refinedSlots
		}
	}

	created, err := uc.repo.CreateGoal(ctx, sc, repository.CreateGoalOptions{Goal: g, Slots: slots})
	if err != nil {
		uc.l.Errorf(ctx, "CreatePlan: failed to store goal %q: %v", g.Title, err)
		return goal.CreatePlanOutput{}, fmt.Errorf("%w: %v", goal.ErrGoalCreate, err)
	}

	uc.l.Infof(ctx, "CreatePlan: created goal %q id=%s slots=%d", created.Title, created.ID, len(slots))

	return goal.CreatePlanOutput{
		Goal:      created,
		Slots:     slots,
		SlotCount: len(slots),
	}, nil
}
