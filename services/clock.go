package services

import (
	"time"

	"part-contest-api/config"
)

const (
	// VoteQuota is the number of distinct votes a user must cast before
	// their own submission qualifies. It doubles as the voting batch size.
	VoteQuota = 25

	// CompetitionWeeks is the length of the run in 7-day buckets.
	CompetitionWeeks = 10

	// WinnersPerWeek caps the weekly ranking.
	WinnersPerWeek = 10
)

// WeekAt maps a wall-clock instant onto a competition week number:
// 0 before the start date, 1..CompetitionWeeks during the run, and
// CompetitionWeeks+1 once the run is over.
func WeekAt(now, start time.Time) int {
	if now.Before(start) {
		return 0
	}
	week := int(now.Sub(start)/(7*24*time.Hour)) + 1
	if week > CompetitionWeeks {
		return CompetitionWeeks + 1
	}
	return week
}

// CurrentWeek derives the week from the configured start date. It is never
// cached; every caller sees the clock move.
func CurrentWeek() int {
	return WeekAt(time.Now(), config.CompetitionStartDate())
}
