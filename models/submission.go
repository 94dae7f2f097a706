package models

import "time"

// Submission statuses, stored in submissions.status.
const (
	StatusPending   = "pending"
	StatusQualified = "qualified"
	StatusWinner    = "winner"
)

// Submission represents one contest entry. The received-vote counters
// (thumbs_up, thumbs_down, total_votes, times_shown) are only ever mutated
// through atomic in-database arithmetic; total_votes == thumbs_up + thumbs_down
// holds at all times. votes_completed counts votes the owner has cast on other
// entries, not votes this entry received.
type Submission struct {
	SubmissionID   int        `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	UserID         int        `gorm:"column:user_id" json:"user_id"`
	PublicID       string     `gorm:"column:public_id;unique" json:"public_id"`
	PartName       string     `gorm:"column:part_name" json:"part_name"`
	PartType       string     `gorm:"column:part_type" json:"part_type"`
	Target         string     `gorm:"column:target" json:"target"`
	Description    string     `gorm:"column:description" json:"description"`
	FilePath       string     `gorm:"column:file_path" json:"-"`
	FileSize       int64      `gorm:"column:file_size" json:"file_size"`
	WeekNumber     int        `gorm:"column:week_number" json:"week_number"`
	Status         string     `gorm:"column:status" json:"status"`
	TimesShown     int        `gorm:"column:times_shown" json:"times_shown"`
	ThumbsUp       int        `gorm:"column:thumbs_up" json:"thumbs_up"`
	ThumbsDown     int        `gorm:"column:thumbs_down" json:"thumbs_down"`
	TotalVotes     int        `gorm:"column:total_votes" json:"total_votes"`
	VotesCompleted int        `gorm:"column:votes_completed" json:"votes_completed"`
	IsWinner       bool       `gorm:"column:is_winner" json:"is_winner"`
	QualifiedAt    *time.Time `gorm:"column:qualified_at" json:"qualified_at,omitempty"`
	CreateAt       time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt       *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Owner User `gorm:"foreignKey:UserID" json:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}

// ApprovalRating is thumbs_up / total_votes, the winner ranking key.
func (s *Submission) ApprovalRating() float64 {
	if s.TotalVotes == 0 {
		return 0
	}
	return float64(s.ThumbsUp) / float64(s.TotalVotes)
}
