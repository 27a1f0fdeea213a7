package interview

import (
	"time"

	"goal-planner/pkg/datemath"
)

// Engine drives the question/answer state machine. One question is active at
// a time, in the fixed order goal_title → target_date → days_per_week →
// session_minutes → preferred_days → time_of_day. An accepted field is never
// revisited except via Reset. One Engine instance serves one conversation;
// instances are fully independent.
type Engine struct {
	dates *datemath.Parser
	now   func() time.Time

	specs   []fieldSpec
	cursor  int
	fields  Fields
	lastErr string
}

// New creates an engine. The date parser supplies target-date resolution;
// now is the injected clock (nil means the system clock, intended only for
// the outermost call site).
func New(dates *datemath.Parser, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	e := &Engine{
		dates: dates,
		now:   now,
	}
	e.specs = fieldSpecs()
	return e
}

// CurrentQuestion returns the active question text. ok is false once the
// interview is complete.
func (e *Engine) CurrentQuestion() (question string, ok bool) {
	if e.IsComplete() {
		return "", false
	}
	return e.specs[e.cursor].question, true
}

// CurrentField identifies the field the active question collects. ok is
// false once the interview is complete.
func (e *Engine) CurrentField() (field Field, ok bool) {
	if e.IsComplete() {
		return "", false
	}
	return e.specs[e.cursor].field, true
}

// IsComplete reports whether all six fields have been accepted.
func (e *Engine) IsComplete() bool {
	return e.cursor >= len(e.specs)
}

// LastError returns the message of the most recent rejected answer, or ""
// if the last answer was accepted.
func (e *Engine) LastError() string {
	return e.lastErr
}

// AcceptAnswer validates text against the active question. On validation
// failure the result carries the message, the question stays active, and no
// field changes. On success the value is committed and the engine advances.
// Calling after completion is caller misuse and returns ErrNoActiveQuestion.
func (e *Engine) AcceptAnswer(text string) (Result, error) {
	if e.IsComplete() {
		return Result{}, ErrNoActiveQuestion
	}

	spec := e.specs[e.cursor]
	if err := spec.validate(e, text); err != nil {
		e.lastErr = err.Error()
		return Result{
			Accepted:        false,
			ValidationError: e.lastErr,
			NextQuestion:    spec.question,
		}, nil
	}

	e.lastErr = ""
	e.cursor++

	res := Result{Accepted: true, Complete: e.IsComplete()}
	if !res.Complete {
		res.NextQuestion = e.specs[e.cursor].question
	}
	return res, nil
}

// ValidatedFields is the single hand-off point to the schedule builder. It
// returns the typed field set only once the interview is complete.
func (e *Engine) ValidatedFields() (Fields, error) {
	if !e.IsComplete() {
		return Fields{}, ErrIncomplete
	}
	return e.fields, nil
}

// Reset clears all fields and error state and re-derives the first question.
// Meant for restarting the interview from scratch, not for correcting a
// single field.
func (e *Engine) Reset() {
	e.cursor = 0
	e.fields = Fields{}
	e.lastErr = ""
}
