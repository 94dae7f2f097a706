package services

import (
	"gorm.io/gorm"

	"part-contest-api/models"
)

const (
	votesCastQuery = `SELECT COUNT(*) AS count FROM votes WHERE voter_id = ?`

	writeProgressQuery = `UPDATE submissions SET votes_completed = ? WHERE user_id = ? AND delete_at IS NULL`

	// Guarded by status = 'pending': the transition fires at most once even
	// when two of the voter's casts cross the quota at the same instant, and
	// a qualified submission can never fall back to pending.
	qualifyQuery = `UPDATE submissions SET status = ?, qualified_at = NOW() WHERE user_id = ? AND status = ? AND delete_at IS NULL`
)

type QualificationTracker struct {
	db *gorm.DB
}

func NewQualificationTracker(db *gorm.DB) *QualificationTracker {
	return &QualificationTracker{db: db}
}

// RecordProgress recomputes the voter's distinct cast-vote count, persists it
// on their own submission, and flips that submission pending→qualified when
// the quota is reached. qualifiedNow is true only on the call where the
// transition actually happened, which lets the caller notify the user exactly
// once. A voter without a submission is a no-op beyond the count.
func (t *QualificationTracker) RecordProgress(voterID int) (votesCompleted int, qualifiedNow bool, err error) {
	votesCompleted, err = t.VotesCast(voterID)
	if err != nil {
		return 0, false, err
	}

	if err := t.db.Exec(writeProgressQuery, votesCompleted, voterID).Error; err != nil {
		return 0, false, err
	}

	if votesCompleted < VoteQuota {
		return votesCompleted, false, nil
	}

	res := t.db.Exec(qualifyQuery, models.StatusQualified, voterID, models.StatusPending)
	if res.Error != nil {
		return 0, false, res.Error
	}

	return votesCompleted, res.RowsAffected == 1, nil
}

// VotesCast counts the distinct votes this user has cast across the whole
// competition.
func (t *QualificationTracker) VotesCast(voterID int) (int, error) {
	var row struct {
		Count int
	}
	if err := t.db.Raw(votesCastQuery, voterID).Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Count, nil
}
