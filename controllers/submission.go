// controllers/submission.go
package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"part-contest-api/config"
	"part-contest-api/models"
	"part-contest-api/services"
	"part-contest-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxArtifactSize = 50 * 1024 * 1024 // 50MB

// ===================== SUBMISSION MANAGEMENT =====================

// CreateSubmission accepts a new part entry for the current week. The upload
// window is gated by the competition clock: closed before the start date and
// after week 10.
func CreateSubmission(c *gin.Context) {
	userID := c.GetInt("userID")

	week := services.CurrentWeek()
	if week == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": services.ErrUploadNotOpen.Error()})
		return
	}
	if week > services.CompetitionWeeks {
		c.JSON(http.StatusForbidden, gin.H{"error": services.ErrCompetitionEnded.Error()})
		return
	}

	partName := utils.SanitizeInput(c.PostForm("part_name"))
	partType := utils.SanitizeInput(c.PostForm("part_type"))
	target := utils.SanitizeInput(c.PostForm("target"))
	description := utils.SanitizeInput(c.PostForm("description"))

	if partName == "" || partType == "" || target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "part_name, part_type and target are required"})
		return
	}

	file, err := c.FormFile("part_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No part file uploaded"})
		return
	}
	if file.Size > maxArtifactSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 50MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !utils.IsAllowedArtifactExt(ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	var existing models.Submission
	if err := config.DB.
		Where("user_id = ? AND week_number = ? AND delete_at IS NULL", userID, week).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": services.ErrAlreadySubmitted.Error()})
		return
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		return
	}

	storedName := uuid.NewString() + ext
	fullPath := filepath.Join(uploadPath, storedName)

	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	submission := models.Submission{
		UserID:      userID,
		PublicID:    uuid.NewString(),
		PartName:    partName,
		PartType:    partType,
		Target:      target,
		Description: description,
		FilePath:    fullPath,
		FileSize:    file.Size,
		WeekNumber:  week,
		Status:      models.StatusPending,
		CreateAt:    time.Now(),
	}

	if err := config.DB.Create(&submission).Error; err != nil {
		// Discard the artifact when the row cannot be written.
		if rmErr := os.Remove(fullPath); rmErr != nil {
			log.Printf("Warning: failed to remove orphan artifact %s: %v", fullPath, rmErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Submission created successfully",
		"submission": submission,
	})
}

// GetSubmissionStatus returns the caller's own submission with their voting
// progress towards the quota.
func GetSubmissionStatus(c *gin.Context) {
	userID := c.GetInt("userID")

	var submission models.Submission
	if err := config.DB.
		Where("user_id = ? AND delete_at IS NULL", userID).
		Order("create_at DESC").
		First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No submission found"})
		return
	}

	votesCompleted, err := services.NewQualificationTracker(config.DB).VotesCast(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load voting progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission":      submission,
		"votes_completed": votesCompleted,
		"votes_required":  services.VoteQuota,
	})
}

// DownloadSubmission streams a part artifact by its anonymized public id.
func DownloadSubmission(c *gin.Context) {
	publicID := c.Param("public_id")

	var submission models.Submission
	if err := config.DB.
		Where("public_id = ? AND delete_at IS NULL", publicID).
		First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if _, err := os.Stat(submission.FilePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artifact file not found"})
		return
	}

	c.FileAttachment(submission.FilePath, submission.PartName+filepath.Ext(submission.FilePath))
}
