package dayparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Day is a canonical weekday token.
type Day string

const (
	Sun Day = "Sun"
	Mon Day = "Mon"
	Tue Day = "Tue"
	Wed Day = "Wed"
	Thu Day = "Thu"
	Fri Day = "Fri"
	Sat Day = "Sat"
)

// WeekOrder lists the canonical tokens in Sun→Sat order. Every output
// sequence of this package follows this order regardless of input order.
var WeekOrder = [7]Day{Sun, Mon, Tue, Wed, Thu, Fri, Sat}

var dayNames = map[Day]string{
	Sun: "sunday",
	Mon: "monday",
	Tue: "tuesday",
	Wed: "wednesday",
	Thu: "thursday",
	Fri: "friday",
	Sat: "saturday",
}

// Aliases that prefix matching alone cannot reach.
var dayAliases = map[string]Day{
	"weds":     Wed,
	"wensday":  Wed,
	"wednsday": Wed,
	"thurs":    Thu,
	"tues":     Tue,
}

var (
	ErrNoDays = errors.New("no recognizable weekdays in expression")

	rangeRe   = regexp.MustCompile(`^([a-z]+)\s*(?:-|–|\bthrough\b|\bto\b)\s*([a-z]+)$`)
	splitRe   = regexp.MustCompile(`[,\s]+`)
	time12hRe = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
	time24hRe = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
)

// Index returns the Sun=0..Sat=6 position of d, or -1 for a non-canonical value.
func Index(d Day) int {
	for i, wd := range WeekOrder {
		if wd == d {
			return i
		}
	}
	return -1
}

// matchDay resolves a single token against the name/abbreviation table.
// Tokens of 3+ letters match by prefix of the full name, which covers the
// standard abbreviations ("mon", "thur", "satur") and trailing-letter typos.
func matchDay(token string) (Day, bool) {
	token = strings.Trim(strings.ToLower(token), ".,;:!? ")
	if len(token) < 3 {
		return "", false
	}
	if d, ok := dayAliases[token]; ok {
		return d, true
	}
	for d, name := range dayNames {
		if strings.HasPrefix(name, token) {
			return d, true
		}
	}
	return "", false
}

// Parse converts a free-text day expression into an ordered set of canonical
// weekday tokens. Keyword sets ("weekdays", "weekends") take priority, then
// ranges ("Mon-Fri", "Friday through Monday", wrapping around the week), then
// delimited lists. Unmatched list tokens are dropped; an expression yielding
// no tokens at all is an error.
func Parse(text string) ([]Day, error) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return nil, ErrNoDays
	}

	switch lowered {
	case "weekdays", "weekday":
		return []Day{Mon, Tue, Wed, Thu, Fri}, nil
	case "weekends", "weekend":
		return []Day{Sun, Sat}, nil
	}

	if m := rangeRe.FindStringSubmatch(lowered); m != nil {
		start, okStart := matchDay(m[1])
		end, okEnd := matchDay(m[2])
		if okStart && okEnd {
			return expandRange(start, end), nil
		}
	}

	present := map[Day]bool{}
	for _, token := range splitRe.Split(lowered, -1) {
		if token == "" || token == "and" {
			continue
		}
		if d, ok := matchDay(token); ok {
			present[d] = true
		}
	}

	days := canonicalOrder(present)
	if len(days) == 0 {
		return nil, ErrNoDays
	}
	return days, nil
}

// expandRange returns the inclusive run from start to end, wrapping past
// Saturday back to Sunday when the end index precedes the start index.
func expandRange(start, end Day) []Day {
	si, ei := Index(start), Index(end)
	run := map[Day]bool{}
	for i := si; ; i = (i + 1) % 7 {
		run[WeekOrder[i]] = true
		if i == ei {
			break
		}
	}
	return canonicalOrder(run)
}

func canonicalOrder(present map[Day]bool) []Day {
	days := make([]Day, 0, len(present))
	for _, d := range WeekOrder {
		if present[d] {
			days = append(days, d)
		}
	}
	return days
}

// ParseDayTimes converts compound phrases like "Mon 5pm, Thu 5pm, Sat 10am"
// into a day→"HH:MM" map. Segments are split on ';' and ',' and processed in
// textual order, so a later segment overwrites an earlier one for the same
// day. A segment whose time is a bare number (no colon, no am/pm) is skipped
// as ambiguous.
func ParseDayTimes(text string) (map[Day]string, error) {
	result := map[Day]string{}
	for _, segment := range strings.FieldsFunc(text, func(r rune) bool { return r == ';' || r == ',' }) {
		segment = strings.ToLower(strings.TrimSpace(segment))
		if segment == "" {
			continue
		}

		clock, rest, ok := extractTime(segment)
		if !ok {
			continue
		}
		for _, token := range splitRe.Split(rest, -1) {
			if d, matched := matchDay(token); matched {
				result[d] = clock
			}
		}
	}
	if len(result) == 0 {
		return nil, ErrNoDays
	}
	return result, nil
}

// extractTime pulls the first 12-hour or 24-hour time out of the segment and
// returns the normalized "HH:MM" plus the segment with the time removed.
func extractTime(segment string) (clock, rest string, ok bool) {
	if m := time12hRe.FindStringSubmatchIndex(segment); m != nil {
		sub := time12hRe.FindStringSubmatch(segment)
		hour, _ := strconv.Atoi(sub[1])
		minute := 0
		if sub[2] != "" {
			minute, _ = strconv.Atoi(sub[2])
		}
		if sub[3] == "pm" && hour != 12 {
			hour += 12
		}
		if sub[3] == "am" && hour == 12 {
			hour = 0
		}
		return formatClock(hour, minute), segment[:m[0]] + segment[m[1]:], true
	}
	if m := time24hRe.FindStringSubmatchIndex(segment); m != nil {
		sub := time24hRe.FindStringSubmatch(segment)
		hour, _ := strconv.Atoi(sub[1])
		minute, _ := strconv.Atoi(sub[2])
		return formatClock(hour, minute), segment[:m[0]] + segment[m[1]:], true
	}
	return "", segment, false
}

// formatClock clamps into [00:00, 23:59] rather than rejecting. The leniency
// is deliberate: a recognizable intent like "25:00" becomes the nearest valid
// wall-clock time instead of failing the whole segment.
func formatClock(hour, minute int) string {
	if hour < 0 {
		hour = 0
	}
	if hour > 23 {
		hour = 23
	}
	if minute < 0 {
		minute = 0
	}
	if minute > 59 {
		minute = 59
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
