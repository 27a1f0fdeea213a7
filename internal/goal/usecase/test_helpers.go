package usecase

import (
	"context"

	"goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing
type mockRepo struct {
	created []repository.CreateGoalOptions
	err     error
}

func (m *mockRepo) CreateGoal(ctx context.Context, sc model.Scope, opts repository.CreateGoalOptions) (model.Goal, error) {
	if m.err != nil {
		return model.Goal{}, m.err
	}
	m.created = append(m.created, opts)
	g := opts.Goal
	g.ID = "goal-1"
	return g, nil
}

func (m *mockRepo) GetGoal(ctx context.Context, sc model.Scope, id string) (model.Goal, []model.ScheduledSlot, error) {
	return model.Goal{}, nil, nil
}

func (m *mockRepo) ListGoals(ctx context.Context, sc model.Scope) ([]model.Goal, error) {
	return nil, nil
}

// Mock refiner for testing
type mockRefiner struct {
	err    error
	called bool
}

func (m *mockRefiner) Refine(ctx context.Context, g model.Goal, slots []model.ScheduledSlot) (model.Goal, []model.ScheduledSlot, error) {
	m.called = true
	if m.err != nil {
		return model.Goal{}, nil, m.err
	}
	g.Description = "refined"
	return g, slots, nil
}
