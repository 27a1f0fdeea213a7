package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"goal-planner/internal/goal"
	"goal-planner/internal/interview"
	"goal-planner/internal/model"
	"goal-planner/internal/schedule"
	"goal-planner/pkg/dayparse"
)

var (
	testNow    = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC) // Monday
	testScope  = model.Scope{UserID: "u1", Username: "tester"}
	testFields = interview.Fields{
		GoalTitle:      "Bench 225",
		TargetDate:     time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC),
		DaysPerWeek:    3,
		SessionMinutes: 45,
		PreferredDays:  []dayparse.Day{dayparse.Mon, dayparse.Wed, dayparse.Fri},
		TimeOfDay:      "18:00",
	}
)

func TestCreatePlan(t *testing.T) {
	repo := &mockRepo{}
	uc := New(&mockLogger{}, repo, nil, func() time.Time { return testNow })

	out, err := uc.CreatePlan(context.Background(), testScope, goal.CreatePlanInput{
		Fields:      testFields,
		Timezone:    "UTC",
		Description: "three sessions a week",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Goal.ID == "" {
		t.Error("stored goal has no ID")
	}
	if out.Goal.Status != model.GoalStatusActive {
		t.Errorf("Status = %q, want active", out.Goal.Status)
	}
	if out.Goal.Title != "Bench 225" || out.Goal.Description != "three sessions a week" {
		t.Errorf("goal descriptor = %+v", out.Goal)
	}
	if out.SlotCount != 7 || len(out.Slots) != 7 {
		t.Errorf("SlotCount = %d (%d slots), want 7", out.SlotCount, len(out.Slots))
	}
	if len(repo.created) != 1 {
		t.Fatalf("repository received %d creates, want 1", len(repo.created))
	}
	if len(repo.created[0].Slots) != 7 {
		t.Errorf("repository received %d slots", len(repo.created[0].Slots))
	}
}

func TestCreatePlanIncompleteFields(t *testing.T) {
	repo := &mockRepo{}
	uc := New(&mockLogger{}, repo, nil, func() time.Time { return testNow })

	fields := testFields
	fields.PreferredDays = nil

	_, err := uc.CreatePlan(context.Background(), testScope, goal.CreatePlanInput{
		Fields:   fields,
		Timezone: "UTC",
	})
	if !errors.Is(err, schedule.ErrIncompleteFields) {
		t.Errorf("error = %v, want ErrIncompleteFields", err)
	}
	if len(repo.created) != 0 {
		t.Error("repository called despite build failure")
	}
}

func TestCreatePlanInvalidTimezone(t *testing.T) {
	uc := New(&mockLogger{}, &mockRepo{}, nil, func() time.Time { return testNow })

	_, err := uc.CreatePlan(context.Background(), testScope, goal.CreatePlanInput{
		Fields:   testFields,
		Timezone: "Not/AZone",
	})
	if err == nil {
		t.Error("invalid timezone accepted")
	}
}

func TestCreatePlanRefiner(t *testing.T) {
	t.Run("Refined plan is stored", func(t *testing.T) {
		repo := &mockRepo{}
		refiner := &mockRefiner{}
		uc := New(&mockLogger{}, repo, refiner, func() time.Time { return testNow })

		out, err := uc.CreatePlan(context.Background(), testScope, goal.CreatePlanInput{
			Fields:   testFields,
			Timezone: "UTC",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !refiner.called {
			t.Error("refiner not invoked")
		}
		if out.Goal.Description != "refined" {
			t.Errorf("Description = %q, want refined output", out.Goal.Description)
		}
	})

	t.Run("Refiner failure keeps deterministic plan", func(t *testing.T) {
		repo := &mockRepo{}
		refiner := &mockRefiner{err: errors.New("model unavailable")}
		uc := New(&mockLogger{}, repo, refiner, func() time.Time { return testNow })

		out, err := uc.CreatePlan(context.Background(), testScope, goal.CreatePlanInput{
			Fields:   testFields,
			Timezone: "UTC",
		})
		if err != nil {
			t.Fatalf("refiner failure surfaced as error: %v", err)
		}
		if out.Goal.Description != "" {
			t.Errorf("failed refinement mutated the goal: %+v", out.Goal)
		}
		if out.SlotCount != 7 {
			t.Errorf("SlotCount = %d, want 7", out.SlotCount)
		}
	})
}

func TestCreatePlanRepositoryFailure(t *testing.T) {
	repo := &mockRepo{err: errors.New("disk full")}
	uc := New(&mockLogger{}, repo, nil, func() time.Time { return testNow })

	_, err := uc.CreatePlan(context.Background(), testScope, goal.CreatePlanInput{
		Fields:   testFields,
		Timezone: "UTC",
	})
	if !errors.Is(err, goal.ErrGoalCreate) {
		t.Errorf("error = %v, want ErrGoalCreate", err)
	}
}
