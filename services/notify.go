package services

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"part-contest-api/config"
	"part-contest-api/models"
)

// NotificationService writes in-app notifications and mirrors the important
// ones to email. Email failures are logged, never propagated: a dead SMTP
// relay must not fail a vote.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotifyQualified tells the owner their submission reached the quota. Called
// exactly once, on the cast where the transition happened.
func (n *NotificationService) NotifyQualified(userID, submissionID int) error {
	message := fmt.Sprintf("You have completed your %d votes. Your part is now qualified for the weekly ranking!", VoteQuota)
	if err := n.create(userID, submissionID, "success", "Your part is qualified", message); err != nil {
		return err
	}

	n.email(userID,
		"Your part is qualified",
		fmt.Sprintf(`<p>Congratulations!</p><p>You have voted on %d community parts, and your own submission is now <b>qualified</b> for the weekly winner ranking.</p>`, VoteQuota))
	return nil
}

// NotifyWinner tells the owner their submission was promoted to winner.
func (n *NotificationService) NotifyWinner(userID, submissionID int) error {
	if err := n.create(userID, submissionID, "success", "Your part won",
		"Your submission was selected as a weekly winner. Congratulations!"); err != nil {
		return err
	}

	n.email(userID,
		"Your part won this week",
		`<p>Congratulations!</p><p>Your submission was selected as a <b>weekly winner</b>.</p>`)
	return nil
}

func (n *NotificationService) create(userID, submissionID int, kind, title, message string) error {
	notification := models.Notification{
		UserID:              userID,
		Title:               title,
		Message:             message,
		Type:                kind,
		RelatedSubmissionID: &submissionID,
		CreateAt:            time.Now(),
	}
	return n.db.Create(&notification).Error
}

func (n *NotificationService) email(userID int, subject, html string) {
	var user models.User
	if err := n.db.Where("user_id = ? AND delete_at IS NULL", userID).First(&user).Error; err != nil {
		log.Printf("notify: user %d lookup failed: %v", userID, err)
		return
	}

	go func(to, subject, html string) {
		if err := config.SendMail([]string{to}, subject, html); err != nil {
			log.Printf("notify: email to %s failed: %v", to, err)
		}
	}(user.Email, subject, html)
}
