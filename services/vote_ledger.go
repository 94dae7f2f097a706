package services

import (
	"gorm.io/gorm"

	"part-contest-api/models"
)

// The ledger is the only writer of the received-vote tallies. The duplicate
// check and the insert are one statement: INSERT IGNORE on the composite
// (voter_id, submission_id) primary key, with RowsAffected telling recorded
// apart from already-existed. Tallies move with in-database arithmetic only.
const (
	submissionOwnerQuery = `SELECT user_id FROM submissions WHERE submission_id = ? AND delete_at IS NULL`

	insertVoteQuery = `INSERT IGNORE INTO votes (voter_id, submission_id, value, create_at) VALUES (?, ?, ?, NOW())`

	tallyUpQuery   = `UPDATE submissions SET thumbs_up = thumbs_up + 1, total_votes = total_votes + 1 WHERE submission_id = ?`
	tallyDownQuery = `UPDATE submissions SET thumbs_down = thumbs_down + 1, total_votes = total_votes + 1 WHERE submission_id = ?`
)

type VoteLedger struct {
	db *gorm.DB
}

func NewVoteLedger(db *gorm.DB) *VoteLedger {
	return &VoteLedger{db: db}
}

// CastVote records one vote for (voterID, submissionID). A repeat cast for
// the same pair, whatever its value, is a successful no-op with
// recorded=false. Voting on one's own submission fails with ErrSelfVote
// before anything is written.
func (l *VoteLedger) CastVote(voterID, submissionID int, value string) (recorded bool, err error) {
	if value != models.VoteUp && value != models.VoteDown {
		return false, ErrInvalidVoteValue
	}

	var owner struct {
		UserID int
	}
	res := l.db.Raw(submissionOwnerQuery, submissionID).Scan(&owner)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, ErrSubmissionNotFound
	}
	if owner.UserID == voterID {
		return false, ErrSelfVote
	}

	res = l.db.Exec(insertVoteQuery, voterID, submissionID, value)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		// Duplicate vote: the pair already exists, nothing more to do.
		return false, nil
	}

	tally := tallyUpQuery
	if value == models.VoteDown {
		tally = tallyDownQuery
	}
	if err := l.db.Exec(tally, submissionID).Error; err != nil {
		return false, err
	}

	return true, nil
}
