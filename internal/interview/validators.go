package interview

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"goal-planner/pkg/dayparse"
)

// fieldSpec pairs a field with its question and validator. The slice order
// in fieldSpecs is the question order; it is the only place that order is
// defined.
type fieldSpec struct {
	field    Field
	question string
	validate func(e *Engine, text string) error
}

var (
	firstNumberRe = regexp.MustCompile(`\d+`)
	timeOfDayRe   = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
)

func fieldSpecs() []fieldSpec {
	return []fieldSpec{
		{
			field:    FieldGoalTitle,
			question: "What goal do you want to achieve?",
			validate: (*Engine).validateGoalTitle,
		},
		{
			field:    FieldTargetDate,
			question: `When do you want to reach it? (e.g. "in 8 weeks", "January 30th")`,
			validate: (*Engine).validateTargetDate,
		},
		{
			field:    FieldDaysPerWeek,
			question: "How many days per week can you commit?",
			validate: (*Engine).validateDaysPerWeek,
		},
		{
			field:    FieldSessionMinutes,
			question: "How long is each session, in minutes?",
			validate: (*Engine).validateSessionMinutes,
		},
		{
			field:    FieldPreferredDays,
			question: `Which days of the week work best? (e.g. "Mon, Wed, Fri" or "weekdays")`,
			validate: (*Engine).validatePreferredDays,
		},
		{
			field:    FieldTimeOfDay,
			question: `What time of day? (HH:MM 24-hour, or "default")`,
			validate: (*Engine).validateTimeOfDay,
		},
	}
}

func (e *Engine) validateGoalTitle(text string) error {
	title := strings.TrimSpace(text)
	if len(title) < 3 {
		return fmt.Errorf("goal title must be at least 3 characters")
	}
	e.fields.GoalTitle = title
	return nil
}

func (e *Engine) validateTargetDate(text string) error {
	target, err := e.dates.ParseTargetDate(text, e.now())
	if err != nil {
		return fmt.Errorf("could not understand %q as a date; try \"in 8 weeks\" or \"January 30th\"", strings.TrimSpace(text))
	}
	if !target.After(e.now()) {
		return fmt.Errorf("target date must be in the future")
	}
	e.fields.TargetDate = target
	return nil
}

func (e *Engine) validateDaysPerWeek(text string) error {
	n, err := firstNumber(text)
	if err != nil {
		return fmt.Errorf("please answer with a number of days (1-7)")
	}
	if n < 1 || n > 7 {
		return fmt.Errorf("days per week must be between 1 and 7")
	}
	e.fields.DaysPerWeek = n
	return nil
}

func (e *Engine) validateSessionMinutes(text string) error {
	n, err := firstNumber(text)
	if err != nil || n <= 0 {
		return fmt.Errorf("please answer with a positive number of minutes")
	}
	e.fields.SessionMinutes = n
	return nil
}

func (e *Engine) validatePreferredDays(text string) error {
	// Compound day+time phrases set both the day set and per-day times.
	if dayTimes, err := dayparse.ParseDayTimes(text); err == nil {
		days := make([]dayparse.Day, 0, len(dayTimes))
		for _, d := range dayparse.WeekOrder {
			if _, ok := dayTimes[d]; ok {
				days = append(days, d)
			}
		}
		return e.commitPreferredDays(days, dayTimes)
	}

	days, err := dayparse.Parse(text)
	if err != nil {
		return fmt.Errorf("could not find any weekdays in %q; try \"Mon, Wed, Fri\"", strings.TrimSpace(text))
	}
	return e.commitPreferredDays(days, nil)
}

// commitPreferredDays enforces that the day set matches the accepted
// days-per-week count. A mismatch is rejected outright rather than truncated.
func (e *Engine) commitPreferredDays(days []dayparse.Day, dayTimes map[dayparse.Day]string) error {
	if len(days) != e.fields.DaysPerWeek {
		return fmt.Errorf("you committed to %d day(s) per week but named %d; please list exactly %d day(s)",
			e.fields.DaysPerWeek, len(days), e.fields.DaysPerWeek)
	}
	e.fields.PreferredDays = days
	e.fields.DayTimes = dayTimes
	return nil
}

func (e *Engine) validateTimeOfDay(text string) error {
	answer := strings.ToLower(strings.TrimSpace(text))
	if answer == "" || answer == "default" {
		e.fields.TimeOfDay = ""
		return nil
	}
	m := timeOfDayRe.FindStringSubmatch(answer)
	if m == nil {
		return fmt.Errorf("time must be HH:MM in 24-hour form, or \"default\"")
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	e.fields.TimeOfDay = fmt.Sprintf("%02d:%02d", hour, minute)
	return nil
}

// firstNumber extracts the first integer in the text, so conversational
// answers like "3 days a week" still validate.
func firstNumber(text string) (int, error) {
	m := firstNumberRe.FindString(text)
	if m == "" {
		return 0, fmt.Errorf("no number in %q", text)
	}
	return strconv.Atoi(m)
}
