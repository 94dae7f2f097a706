package services

import (
	"sort"

	"gorm.io/gorm"

	"part-contest-api/models"
)

const (
	distinctVotersQuery = `SELECT COUNT(DISTINCT voter_id) AS count FROM votes`

	winnerCandidatesQuery = `
		SELECT * FROM submissions
		WHERE week_number = ?
		  AND status = ?
		  AND total_votes >= ?
		  AND delete_at IS NULL`

	submissionStatusQuery = `SELECT status FROM submissions WHERE submission_id = ? AND delete_at IS NULL`

	promoteWinnerQuery = `UPDATE submissions SET status = ?, is_winner = 1 WHERE submission_id = ? AND delete_at IS NULL`
)

type WinnerSelector struct {
	db *gorm.DB
}

func NewWinnerSelector(db *gorm.DB) *WinnerSelector {
	return &WinnerSelector{db: db}
}

// MinimumVotes derives the weekly quorum: 20% of all distinct identities that
// have cast at least one vote across the competition, rounded up, never below
// one.
func (w *WinnerSelector) MinimumVotes() (int, error) {
	var row struct {
		Count int
	}
	if err := w.db.Raw(distinctVotersQuery).Scan(&row).Error; err != nil {
		return 0, err
	}

	minVotes := (row.Count + 4) / 5 // ceil(0.20 * n)
	if minVotes < 1 {
		minVotes = 1
	}
	return minVotes, nil
}

// WinnersForWeek ranks the week's qualified submissions that meet the quorum
// by approval rating, ties broken by total votes, and returns the top
// WinnersPerWeek along with the quorum used. Pure read; nothing is mutated.
func (w *WinnerSelector) WinnersForWeek(week int) ([]models.Submission, int, error) {
	minVotes, err := w.MinimumVotes()
	if err != nil {
		return nil, 0, err
	}

	var candidates []models.Submission
	if err := w.db.Raw(winnerCandidatesQuery, week, models.StatusQualified, minVotes).
		Scan(&candidates).Error; err != nil {
		return nil, 0, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return rankHigher(&candidates[i], &candidates[j])
	})

	if len(candidates) > WinnersPerWeek {
		candidates = candidates[:WinnersPerWeek]
	}
	if candidates == nil {
		candidates = []models.Submission{}
	}
	return candidates, minVotes, nil
}

// rankHigher reports whether a outranks b in the weekly standing.
func rankHigher(a, b *models.Submission) bool {
	ra, rb := a.ApprovalRating(), b.ApprovalRating()
	if ra != rb {
		return ra > rb
	}
	return a.TotalVotes > b.TotalVotes
}

// SelectWinner is the administrative override promoting one submission to
// winner. Terminal: a submission that is already a winner stays one, and the
// repeat call succeeds without touching the row.
func (w *WinnerSelector) SelectWinner(submissionID int) error {
	var row struct {
		Status string
	}
	res := w.db.Raw(submissionStatusQuery, submissionID).Scan(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSubmissionNotFound
	}
	if row.Status == models.StatusWinner {
		return nil
	}

	return w.db.Exec(promoteWinnerQuery, models.StatusWinner, submissionID).Error
}
