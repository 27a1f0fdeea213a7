package interview

import "fmt"

// CheckTimelineRealism compares total achievable sessions before the target
// date against a minimum threshold (minSessions <= 0 means
// DefaultMinSessions). The result is advisory only: an unrealistic timeline
// never blocks completion, the caller decides whether to relay the advice.
func (e *Engine) CheckTimelineRealism(minSessions int) (RealismReport, error) {
	if !e.IsComplete() {
		return RealismReport{}, ErrIncomplete
	}
	if minSessions <= 0 {
		minSessions = DefaultMinSessions
	}

	now := e.now()
	daysUntil := int(e.fields.TargetDate.Sub(now).Hours() / 24)
	if daysUntil < 0 {
		daysUntil = 0
	}
	weeks := ceilDiv(daysUntil, 7)
	achievable := weeks * e.fields.DaysPerWeek

	report := RealismReport{
		Realistic:           achievable >= minSessions,
		AchievableSessions:  achievable,
		MinSessionsRequired: minSessions,
	}
	if report.Realistic {
		return report, nil
	}

	weeksNeeded := ceilDiv(minSessions, e.fields.DaysPerWeek)
	report.SuggestedTargetDate = now.AddDate(0, 0, weeksNeeded*7)
	report.Advice = fmt.Sprintf(
		"only %d session(s) fit before %s; consider moving the target to %s or adding weekly sessions",
		achievable,
		e.fields.TargetDate.Format("2006-01-02"),
		report.SuggestedTargetDate.Format("2006-01-02"),
	)
	return report, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
