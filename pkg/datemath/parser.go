package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseable is returned when no resolution rule matches. Callers must
// surface it instead of defaulting silently.
var ErrUnparseable = errors.New("unparseable date expression")

// Defaults applied when the unit word matches but the numeral does not.
const (
	DefaultWeeksAhead  = 8
	DefaultMonthsAhead = 2
)

// Parser converts free-text target-date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Los_Angeles"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	weeksRe      = regexp.MustCompile(`(\d+)?\s*weeks?`)
	monthsRe     = regexp.MustCompile(`(\d+)?\s*months?`)
	monthDayRe   = regexp.MustCompile(`([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?`)
	numericRe    = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})$`)
)

var monthNames = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ParseTargetDate converts a free-text target-date phrase to an absolute
// time.Time. The baseTime is the reference point (usually the injected
// clock's now). Resolution order: ISO date, today/tomorrow, "in N ..." and
// "next <weekday>" phrases, "<n> weeks", "<n> months", month-name + day,
// numeric month/day. Anything else is ErrUnparseable.
//
// Results are normalized to midday UTC so the calendar date survives
// timezone conversion at display time.
func (p *Parser) ParseTargetDate(text string, baseTime time.Time) (time.Time, error) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return time.Time{}, ErrUnparseable
	}

	if t, err := time.ParseInLocation("2006-01-02", lowered, p.location); err == nil {
		return middayUTC(t), nil
	}

	switch lowered {
	case "today":
		return middayUTC(baseTime.In(p.location)), nil
	case "tomorrow":
		return middayUTC(baseTime.In(p.location).AddDate(0, 0, 1)), nil
	case "next week":
		return middayUTC(baseTime.In(p.location).AddDate(0, 0, 7)), nil
	case "next month":
		return middayUTC(baseTime.In(p.location).AddDate(0, 1, 0)), nil
	}

	if strings.HasPrefix(lowered, "in ") {
		if t, err := p.parseInDuration(lowered, baseTime); err == nil {
			return t, nil
		}
	}
	if strings.HasPrefix(lowered, "next ") {
		if t, err := p.parseNextWeekday(lowered, baseTime); err == nil {
			return t, nil
		}
	}

	if m := weeksRe.FindStringSubmatch(lowered); m != nil {
		n := DefaultWeeksAhead
		if parsed, err := strconv.Atoi(m[1]); err == nil {
			n = parsed
		}
		return middayUTC(baseTime.In(p.location).AddDate(0, 0, n*7)), nil
	}

	if m := monthsRe.FindStringSubmatch(lowered); m != nil {
		n := DefaultMonthsAhead
		if parsed, err := strconv.Atoi(m[1]); err == nil {
			n = parsed
		}
		return middayUTC(baseTime.In(p.location).AddDate(0, n, 0)), nil
	}

	if m := monthDayRe.FindStringSubmatch(lowered); m != nil {
		if month, ok := matchMonth(m[1]); ok {
			day, _ := strconv.Atoi(m[2])
			if day >= 1 && day <= 31 {
				return p.resolveMonthDay(month, day, baseTime), nil
			}
		}
	}

	if m := numericRe.FindStringSubmatch(lowered); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return p.resolveMonthDay(time.Month(month), day, baseTime), nil
		}
	}

	return time.Time{}, ErrUnparseable
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(lowered string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(lowered)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", lowered)
	}

	amount, _ := strconv.Atoi(matches[1])
	base := baseTime.In(p.location)

	switch {
	case strings.HasPrefix(matches[2], "day"):
		return middayUTC(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return middayUTC(base.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(matches[2], "month"):
		return middayUTC(base.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", matches[2])
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(lowered string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(lowered, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return middayUTC(base.AddDate(0, 0, daysUntil)), nil
}

// resolveMonthDay builds the date in the current year, rolling forward to
// next year when that calendar date has already passed.
func (p *Parser) resolveMonthDay(month time.Month, day int, baseTime time.Time) time.Time {
	base := baseTime.In(p.location)
	candidate := time.Date(base.Year(), month, day, 12, 0, 0, 0, p.location)
	today := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, p.location)
	if candidate.Before(today) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return middayUTC(candidate)
}

// matchMonth resolves a month token by 3+ letter prefix ("jan", "sept").
func matchMonth(token string) (time.Month, bool) {
	if len(token) < 3 {
		return 0, false
	}
	for name, month := range monthNames {
		if strings.HasPrefix(name, token) {
			return month, true
		}
	}
	return 0, false
}

// middayUTC pins t's calendar date to 12:00 UTC.
func middayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}
