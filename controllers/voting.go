// controllers/voting.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"part-contest-api/config"
	"part-contest-api/services"

	"github.com/gin-gonic/gin"
)

type CastVoteRequest struct {
	SubmissionID int    `json:"submission_id" binding:"required"`
	Value        string `json:"value" binding:"required,oneof=up down"`
}

// GetVotingBatch returns the next batch of entries for the caller to vote on,
// least-shown first. An empty batch means the caller has voted on everything
// eligible.
func GetVotingBatch(c *gin.Context) {
	userID := c.GetInt("userID")

	entries, err := services.NewExposureScheduler(config.DB).VotingBatch(userID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load voting batch"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// CastVote records a vote and reports the caller's qualification progress.
// A repeat vote on the same submission succeeds without changing anything.
func CastVote(c *gin.Context) {
	userID := c.GetInt("userID")

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recorded, err := services.NewVoteLedger(config.DB).CastVote(userID, req.SubmissionID, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfVote):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidVoteValue):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to record vote, please retry"})
		}
		return
	}

	tracker := services.NewQualificationTracker(config.DB)

	var votesCompleted int
	var qualifiedNow bool
	if recorded {
		votesCompleted, qualifiedNow, err = tracker.RecordProgress(userID)
	} else {
		votesCompleted, err = tracker.VotesCast(userID)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to update voting progress, please retry"})
		return
	}

	if qualifiedNow {
		notifyOwnQualification(userID)
	}

	c.JSON(http.StatusOK, gin.H{
		"votes_completed": votesCompleted,
		"votes_required":  services.VoteQuota,
		"qualified":       qualifiedNow,
	})
}

func notifyOwnQualification(userID int) {
	var row struct {
		SubmissionID int
	}
	res := config.DB.Raw(
		`SELECT submission_id FROM submissions WHERE user_id = ? AND delete_at IS NULL ORDER BY create_at DESC LIMIT 1`,
		userID,
	).Scan(&row)
	if res.Error != nil || res.RowsAffected == 0 {
		log.Printf("qualification notify: submission lookup for user %d failed: %v", userID, res.Error)
		return
	}

	if err := services.NewNotificationService(config.DB).NotifyQualified(userID, row.SubmissionID); err != nil {
		log.Printf("qualification notify: user %d: %v", userID, err)
	}
}
