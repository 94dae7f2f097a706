package services

import (
	"gorm.io/gorm"

	"part-contest-api/models"
)

// Batch selection prefers qualified entries; when fewer than a full batch of
// unvoted qualified entries remain, the selection re-runs over the whole
// unvoted pool so early voters still get something to vote on. Both queries
// exclude the voter's own submissions and anything already voted on, and both
// order by times_shown ascending with a random tie-break, which converges
// exposure towards uniform over time.
const (
	qualifiedBatchQuery = `
		SELECT * FROM submissions
		WHERE delete_at IS NULL
		  AND user_id <> ?
		  AND status = ?
		  AND submission_id NOT IN (SELECT submission_id FROM votes WHERE voter_id = ?)
		ORDER BY times_shown ASC, RAND()
		LIMIT ?`

	fallbackBatchQuery = `
		SELECT * FROM submissions
		WHERE delete_at IS NULL
		  AND user_id <> ?
		  AND submission_id NOT IN (SELECT submission_id FROM votes WHERE voter_id = ?)
		ORDER BY times_shown ASC, RAND()
		LIMIT ?`

	touchShownQuery = `UPDATE submissions SET times_shown = times_shown + 1 WHERE submission_id IN ?`
)

type ExposureScheduler struct {
	db *gorm.DB
}

func NewExposureScheduler(db *gorm.DB) *ExposureScheduler {
	return &ExposureScheduler{db: db}
}

// VotingBatch returns up to VoteQuota submissions the voter has not voted on
// yet, least-shown first, and bumps each returned entry's times_shown by one.
// An empty batch is a valid outcome, not an error.
func (s *ExposureScheduler) VotingBatch(voterID int) ([]models.Submission, error) {
	var batch []models.Submission
	if err := s.db.Raw(qualifiedBatchQuery, voterID, models.StatusQualified, voterID, VoteQuota).
		Scan(&batch).Error; err != nil {
		return nil, err
	}

	if len(batch) < VoteQuota {
		batch = nil
		if err := s.db.Raw(fallbackBatchQuery, voterID, voterID, VoteQuota).
			Scan(&batch).Error; err != nil {
			return nil, err
		}
	}

	if len(batch) == 0 {
		return []models.Submission{}, nil
	}

	ids := make([]int, len(batch))
	for i, sub := range batch {
		ids[i] = sub.SubmissionID
	}
	if err := s.db.Exec(touchShownQuery, ids).Error; err != nil {
		return nil, err
	}

	return batch, nil
}
