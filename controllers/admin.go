// controllers/admin.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"part-contest-api/config"
	"part-contest-api/models"
	"part-contest-api/services"

	"github.com/gin-gonic/gin"
)

// GetAdminSubmissions lists submissions with their counters, optionally
// filtered by week and status.
func GetAdminSubmissions(c *gin.Context) {
	query := config.DB.Where("delete_at IS NULL")

	if raw := c.Query("week"); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week number"})
			return
		}
		query = query.Where("week_number = ?", week)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var submissions []models.Submission
	if err := query.Order("create_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"count":       len(submissions),
	})
}

// SelectWinner promotes one submission to weekly winner. Manual override,
// terminal once set.
func SelectWinner(c *gin.Context) {
	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	if err := services.NewWinnerSelector(config.DB).SelectWinner(submissionID); err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to select winner"})
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ?", submissionID).First(&submission).Error; err == nil {
		if err := services.NewNotificationService(config.DB).NotifyWinner(submission.UserID, submissionID); err != nil {
			log.Printf("winner notify: submission %d: %v", submissionID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Winner selected successfully"})
}
