package period_test

import (
	"testing"
	"time"

	"notion-progress-linker/pkg/period"
)

func TestNewCalculator(t *testing.T) {
	_, err := period.NewCalculator("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid calculator: %v", err)
	}

	_, err = period.NewCalculator("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestWeekLabel(t *testing.T) {
	calc, _ := period.NewCalculator("UTC")

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "Mid-year week",
			date: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), // Wednesday
			want: "18",
		},
		{
			name: "ISO week 1 spans year boundary",
			date: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), // Monday of 2026-W01
			want: "1",
		},
		{
			name: "Week 53 year",
			date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), // Friday of 2020-W53
			want: "53",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.WeekLabel(tt.date); got != tt.want {
				t.Errorf("WeekLabel(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestWeekLabelTimezone(t *testing.T) {
	// Sunday 23:00 UTC is already Monday of the next ISO week in Bangkok.
	calc, _ := period.NewCalculator("Asia/Bangkok")
	sundayEvening := time.Date(2024, 5, 5, 23, 0, 0, 0, time.UTC)

	if got := calc.WeekLabel(sundayEvening); got != "19" {
		t.Errorf("WeekLabel(%v) = %q, want %q", sundayEvening, got, "19")
	}

	utcCalc, _ := period.NewCalculator("UTC")
	if got := utcCalc.WeekLabel(sundayEvening); got != "18" {
		t.Errorf("WeekLabel(%v) in UTC = %q, want %q", sundayEvening, got, "18")
	}
}

func TestLabelsDateOnlyWestOfUTC(t *testing.T) {
	// A date-only due date decodes as midnight UTC. The calendar day must
	// not shift backwards for zones west of Greenwich.
	calc, _ := period.NewCalculator("America/New_York")

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) // Monday of ISO week 36
	if got := calc.WeekLabel(monday); got != "36" {
		t.Errorf("WeekLabel(%v) = %q, want %q", monday, got, "36")
	}

	firstOfMonth := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if got := calc.MonthLabel(firstOfMonth); got != "September" {
		t.Errorf("MonthLabel(%v) = %q, want %q", firstOfMonth, got, "September")
	}
}

func TestLabelsDatetimeWestOfUTC(t *testing.T) {
	// A real datetime still converts: 01:00 UTC on Sep 1 is the evening of
	// Aug 31 in New York.
	calc, _ := period.NewCalculator("America/New_York")
	evening := time.Date(2026, 9, 1, 1, 0, 0, 0, time.UTC)

	if got := calc.MonthLabel(evening); got != "August" {
		t.Errorf("MonthLabel(%v) = %q, want %q", evening, got, "August")
	}
	if got := calc.WeekLabel(evening); got != "36" {
		t.Errorf("WeekLabel(%v) = %q, want %q", evening, got, "36")
	}
}

func TestMonthLabel(t *testing.T) {
	calc, _ := period.NewCalculator("UTC")

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "August",
			date: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
			want: "August",
		},
		{
			name: "January",
			date: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			want: "January",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.MonthLabel(tt.date); got != tt.want {
				t.Errorf("MonthLabel(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestMonthLabelTimezone(t *testing.T) {
	// Late evening UTC on the last day of a month is already the next
	// month east of Greenwich.
	calc, _ := period.NewCalculator("Asia/Bangkok")
	endOfJuly := time.Date(2026, 7, 31, 22, 0, 0, 0, time.UTC)

	if got := calc.MonthLabel(endOfJuly); got != "August" {
		t.Errorf("MonthLabel(%v) = %q, want %q", endOfJuly, got, "August")
	}
}
