package usecase

import (
	"time"

	"goal-planner/internal/goal"
	"goal-planner/internal/goal/repository"
	pkgLog "goal-planner/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.GoalRepository
	refiner goal.Refiner // optional, nil skips refinement
	now     func() time.Time
}

// New creates a new goal UseCase instance. now may be nil, which falls back
// to the system clock and is meant only for the outermost call site.
func New(
	l pkgLog.Logger,
	repo repository.GoalRepository,
	refiner goal.Refiner,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		refiner: refiner,
		now:     now,
	}
}
