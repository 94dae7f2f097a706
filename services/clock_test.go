package services

import (
	"testing"
	"time"
)

func TestWeekAt(t *testing.T) {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"one day before start", start.AddDate(0, 0, -1), 0},
		{"one second before start", start.Add(-time.Second), 0},
		{"exactly at start", start, 1},
		{"last day of week one", start.AddDate(0, 0, 6), 1},
		{"first day of week two", start.AddDate(0, 0, 7), 2},
		{"last day of week ten", start.AddDate(0, 0, 69), 10},
		{"day seventy", start.AddDate(0, 0, 70), 11},
		{"long after the run", start.AddDate(1, 0, 0), 11},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekAt(tc.now, start); got != tc.want {
				t.Fatalf("WeekAt(%v) = %d, want %d", tc.now, got, tc.want)
			}
		})
	}
}
