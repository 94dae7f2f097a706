package config

import (
	"log"
	"os"
	"time"
)

// defaultStartDate applies when COMPETITION_START_DATE is missing or malformed.
var defaultStartDate = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

// CompetitionStartDate reads the configured start of the 10-week run.
// Format: YYYY-MM-DD, interpreted as midnight UTC.
func CompetitionStartDate() time.Time {
	raw := os.Getenv("COMPETITION_START_DATE")
	if raw == "" {
		return defaultStartDate
	}

	start, err := time.Parse("2006-01-02", raw)
	if err != nil {
		log.Printf("Warning: invalid COMPETITION_START_DATE %q: %v", raw, err)
		return defaultStartDate
	}

	return start
}
