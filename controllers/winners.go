// controllers/winners.go
package controllers

import (
	"net/http"
	"strconv"

	"part-contest-api/config"
	"part-contest-api/services"

	"github.com/gin-gonic/gin"
)

// GetWinners returns the ranked winners for a week, the current week by
// default.
func GetWinners(c *gin.Context) {
	week := services.CurrentWeek()
	if raw := c.Query("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > services.CompetitionWeeks {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week number"})
			return
		}
		week = parsed
	}

	winners, minVotes, err := services.NewWinnerSelector(config.DB).WinnersForWeek(week)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load winners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"week":          week,
		"winners":       winners,
		"minimum_votes": minVotes,
	})
}

// GetCurrentWeek reports where the competition clock stands: 0 before the
// start, 1..10 during the run, 11 after.
func GetCurrentWeek(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"week":        services.CurrentWeek(),
		"total_weeks": services.CompetitionWeeks,
	})
}
