package datemath_test

import (
	"errors"
	"testing"
	"time"

	"goal-planner/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/Los_Angeles")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseTargetDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	// Saturday, August 29, 2026
	baseTime := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

	midday := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		text    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "ISO date",
			text: "2026-12-01",
			want: midday(2026, time.December, 1),
		},
		{
			name: "Today",
			text: "today",
			want: midday(2026, time.August, 29),
		},
		{
			name: "Tomorrow",
			text: "tomorrow",
			want: midday(2026, time.August, 30),
		},
		{
			name: "In N days phrase",
			text: "in 3 days",
			want: midday(2026, time.September, 1),
		},
		{
			name: "Next weekday",
			text: "next monday",
			want: midday(2026, time.August, 31),
		},
		{
			name: "N weeks",
			text: "3 weeks",
			want: midday(2026, time.September, 19),
		},
		{
			name: "Weeks without numeral defaults to 8",
			text: "a few weeks",
			want: midday(2026, time.October, 24),
		},
		{
			name: "N months",
			text: "6 months",
			// Feb 29 2027 does not exist; AddDate normalizes forward.
			want: midday(2027, time.March, 1),
		},
		{
			name: "Months without numeral defaults to 2",
			text: "a couple of months",
			want: midday(2026, time.October, 29),
		},
		{
			name: "Month name and ordinal day, upcoming",
			text: "October 1st",
			want: midday(2026, time.October, 1),
		},
		{
			name: "Month name already passed rolls to next year",
			text: "January 30th",
			want: midday(2027, time.January, 30),
		},
		{
			name: "Abbreviated month",
			text: "Dec 24",
			want: midday(2026, time.December, 24),
		},
		{
			name: "Numeric month/day upcoming",
			text: "10/15",
			want: midday(2026, time.October, 15),
		},
		{
			name: "Numeric month-day already passed rolls forward",
			text: "3-15",
			want: midday(2027, time.March, 15),
		},
		{
			name:    "Gibberish",
			text:    "when I feel like it",
			wantErr: true,
		},
		{
			name:    "Empty",
			text:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseTargetDate(tt.text, baseTime)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnparseable) {
					t.Fatalf("ParseTargetDate(%q) error = %v, want ErrUnparseable", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTargetDate(%q) unexpected error: %v", tt.text, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTargetDate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseTargetDateStableAcrossZones(t *testing.T) {
	// The same phrase at the same instant resolves to the same calendar
	// date regardless of the parser's zone, thanks to midday-UTC pinning.
	baseTime := time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC)

	la, _ := datemath.NewParser("America/Los_Angeles")
	tokyo, _ := datemath.NewParser("Asia/Tokyo")

	gotLA, err := la.ParseTargetDate("October 1st", baseTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotTokyo, err := tokyo.ParseTargetDate("October 1st", baseTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotLA.UTC().Hour() != 12 || gotTokyo.UTC().Hour() != 12 {
		t.Errorf("expected midday UTC normalization, got %v and %v", gotLA, gotTokyo)
	}
	if gotLA.Year() != gotTokyo.Year() || gotLA.YearDay() != gotTokyo.YearDay() {
		t.Errorf("calendar date differs across zones: %v vs %v", gotLA, gotTokyo)
	}
}
