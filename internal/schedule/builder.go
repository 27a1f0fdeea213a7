package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"goal-planner/internal/interview"
	"goal-planner/internal/model"
	"goal-planner/pkg/dayparse"
)

// DefaultTimeOfDay is used when the interview accepted no explicit time.
const DefaultTimeOfDay = "09:00"

var rruleWeekdays = map[dayparse.Day]rrule.Weekday{
	dayparse.Sun: rrule.SU,
	dayparse.Mon: rrule.MO,
	dayparse.Tue: rrule.TU,
	dayparse.Wed: rrule.WE,
	dayparse.Thu: rrule.TH,
	dayparse.Fri: rrule.FR,
	dayparse.Sat: rrule.SA,
}

// Build deterministically expands a validated field set into the ordered
// occurrence list. Every calendar date from now through the target date
// (both interpreted in the given timezone) that falls on a preferred weekday
// yields one slot, with the wall-clock time resolved in that timezone. The
// function is pure given its inputs; an unknown timezone fails the call
// outright rather than silently defaulting to UTC.
func Build(fields interview.Fields, timezone string, now time.Time) ([]model.ScheduledSlot, error) {
	if err := requireComplete(fields); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	byweekday := make([]rrule.Weekday, 0, len(fields.PreferredDays))
	for _, d := range fields.PreferredDays {
		wd, ok := rruleWeekdays[d]
		if !ok {
			return nil, fmt.Errorf("unknown weekday token %q", d)
		}
		byweekday = append(byweekday, wd)
	}

	localNow := now.In(loc)
	start := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)
	localTarget := fields.TargetDate.In(loc)
	end := time.Date(localTarget.Year(), localTarget.Month(), localTarget.Day(), 23, 59, 59, 0, loc)

	rr, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: byweekday,
		Dtstart:   start,
	})
	if err != nil {
		return nil, fmt.Errorf("build recurrence rule: %w", err)
	}

	slots := make([]model.ScheduledSlot, 0)
	for _, occurrence := range rr.Between(start, end, true) {
		hour, minute, err := resolveTimeOfDay(fields, dayFor(occurrence))
		if err != nil {
			return nil, err
		}
		due := time.Date(occurrence.Year(), occurrence.Month(), occurrence.Day(), hour, minute, 0, 0, loc)
		slots = append(slots, model.ScheduledSlot{
			Title:           fields.GoalTitle,
			DueAt:           due,
			DurationMinutes: fields.SessionMinutes,
			Seq:             len(slots),
		})
	}

	return slots, nil
}

func requireComplete(fields interview.Fields) error {
	switch {
	case strings.TrimSpace(fields.GoalTitle) == "",
		fields.TargetDate.IsZero(),
		fields.DaysPerWeek < 1,
		fields.SessionMinutes < 1,
		len(fields.PreferredDays) == 0:
		return ErrIncompleteFields
	}
	return nil
}

// resolveTimeOfDay picks the per-day override when present, then the
// interview's time_of_day, then the system default.
func resolveTimeOfDay(fields interview.Fields, day dayparse.Day) (hour, minute int, err error) {
	clock := fields.TimeOfDay
	if override, ok := fields.DayTimes[day]; ok {
		clock = override
	}
	if clock == "" {
		clock = DefaultTimeOfDay
	}
	return parseClock(clock)
}

func parseClock(clock string) (hour, minute int, err error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time of day %q", clock)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time of day %q", clock)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time of day %q", clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time of day %q out of range", clock)
	}
	return hour, minute, nil
}

func dayFor(t time.Time) dayparse.Day {
	return dayparse.WeekOrder[int(t.Weekday())]
}
