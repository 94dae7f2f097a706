package models

import "time"

// Vote values, stored in votes.value.
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// Vote is one voter's verdict on one submission. The composite primary key
// makes the duplicate-vote check a property of the store: a second insert for
// the same pair is ignored, never an update.
type Vote struct {
	VoterID      int       `gorm:"primaryKey;column:voter_id" json:"voter_id"`
	SubmissionID int       `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	Value        string    `gorm:"column:value" json:"value"`
	CreateAt     time.Time `gorm:"column:create_at" json:"create_at"`
}

func (Vote) TableName() string {
	return "votes"
}
