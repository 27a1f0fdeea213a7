package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
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

func newTestManager(t *testing.T, now func() time.Time) *Manager {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating parser: %v", err)
	}
	m, err := NewManager(&mockLogger{}, dates, Config{Capacity: 4, TTL: 30 * time.Minute}, now)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}
	return m
}

func TestManagerLifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, func() time.Time { return now })
	sc := model.Scope{UserID: "u1"}

	id, question := m.Start(ctx, sc)
	if id == "" || question == "" {
		t.Fatalf("Start returned id=%q question=%q", id, question)
	}

	for _, answer := range []string{"Bench 225", "in 8 weeks", "3", "45", "Mon, Wed, Fri", "default"} {
		res, err := m.Answer(ctx, id, answer)
		if err != nil {
			t.Fatalf("Answer(%q) unexpected error: %v", answer, err)
		}
		if !res.Accepted {
			t.Fatalf("Answer(%q) rejected: %s", answer, res.ValidationError)
		}
	}

	fields, err := m.Fields(ctx, id)
	if err != nil {
		t.Fatalf("Fields unexpected error: %v", err)
	}
	if fields.GoalTitle != "Bench 225" {
		t.Errorf("GoalTitle = %q", fields.GoalTitle)
	}

	report, err := m.Realism(ctx, id, 10)
	if err != nil {
		t.Fatalf("Realism unexpected error: %v", err)
	}
	if !report.Realistic {
		t.Errorf("8 weeks at 3/week reported unrealistic: %+v", report)
	}

	m.End(ctx, id)
	if _, err := m.Fields(ctx, id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("error after End = %v, want ErrSessionNotFound", err)
	}
}

func TestManagerSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, func() time.Time { return now })

	idA, _ := m.Start(ctx, model.Scope{UserID: "a"})
	idB, _ := m.Start(ctx, model.Scope{UserID: "b"})

	if _, err := m.Answer(ctx, idA, "Goal A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Session B is still on its first question.
	res, err := m.Answer(ctx, idB, "ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Accepted {
		t.Error("session B accepted a two-character title")
	}
}

func TestManagerTTLExpiry(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, func() time.Time { return current })

	id, _ := m.Start(ctx, model.Scope{UserID: "u1"})

	current = current.Add(31 * time.Minute)
	if _, err := m.Answer(ctx, id, "Bench 225"); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("error = %v, want ErrSessionExpired", err)
	}
	// Expired entry is evicted.
	if _, err := m.Answer(ctx, id, "Bench 225"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("error after eviction = %v, want ErrSessionNotFound", err)
	}
}

func TestManagerCapacityEviction(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, func() time.Time { return now })

	first, _ := m.Start(ctx, model.Scope{UserID: "u0"})
	for i := 0; i < 4; i++ {
		m.Start(ctx, model.Scope{UserID: "filler"})
	}

	if _, err := m.Answer(ctx, first, "Bench 225"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("oldest session error = %v, want ErrSessionNotFound after LRU eviction", err)
	}
	if got := m.Len(); got != 4 {
		t.Errorf("Len = %d, want capacity 4", got)
	}
}
