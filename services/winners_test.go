package services

import (
	"database/sql/driver"
	"regexp"
	"testing"

	"part-contest-api/models"
)

var (
	distinctVotersPattern = regexp.MustCompile(`SELECT COUNT\(DISTINCT voter_id\) AS count FROM votes`)
	candidatesPattern     = regexp.MustCompile(`(?s)SELECT \* FROM submissions.*week_number = \?.*total_votes >= \?`)
	statusPattern         = regexp.MustCompile(`SELECT status FROM submissions WHERE submission_id = \?`)
	promotePattern        = regexp.MustCompile(`UPDATE submissions SET status = \?, is_winner = 1`)
)

func TestMinimumVotes(t *testing.T) {
	cases := []struct {
		voters int
		want   int
	}{
		{0, 1},  // empty competition still needs one vote
		{1, 1},  // ceil(0.2) = 1
		{10, 2}, // ceil(2.0) = 2
		{11, 3}, // ceil(2.2) = 3
		{15, 3},
		{100, 20},
	}

	for _, tc := range cases {
		steps := []*scriptStep{
			{
				kind:    kindQuery,
				pattern: distinctVotersPattern,
				columns: []string{"count"},
				rows:    [][]driver.Value{{int64(tc.voters)}},
			},
		}
		db, state := newScriptedDB(t, steps)

		got, err := NewWinnerSelector(db).MinimumVotes()
		if err != nil {
			t.Fatalf("MinimumVotes(%d voters) returned error: %v", tc.voters, err)
		}
		if got != tc.want {
			t.Fatalf("MinimumVotes with %d voters = %d, want %d", tc.voters, got, tc.want)
		}
		if err := state.verifyComplete(); err != nil {
			t.Fatal(err)
		}
	}
}

func candidateRow(submissionID, thumbsUp, thumbsDown int) []driver.Value {
	return []driver.Value{int64(submissionID), "qualified", int64(thumbsUp), int64(thumbsDown), int64(thumbsUp + thumbsDown)}
}

func TestWinnersRankedByApprovalThenVotes(t *testing.T) {
	steps := []*scriptStep{
		{
			kind:    kindQuery,
			pattern: distinctVotersPattern,
			columns: []string{"count"},
			rows:    [][]driver.Value{{int64(10)}},
		},
		{
			kind:    kindQuery,
			pattern: candidatesPattern,
			args:    []driver.Value{int64(3), "qualified", int64(2)},
			columns: []string{"submission_id", "status", "thumbs_up", "thumbs_down", "total_votes"},
			rows: [][]driver.Value{
				candidateRow(1, 6, 4),  // 60% on 10 votes
				candidateRow(2, 3, 0),  // 100% on 3 votes
				candidateRow(3, 4, 1),  // 80% on 5 votes
				candidateRow(4, 5, 5),  // 50% on 10 votes
				candidateRow(5, 2, 2),  // 50% on 4 votes
			},
		},
	}
	db, state := newScriptedDB(t, steps)

	winners, minVotes, err := NewWinnerSelector(db).WinnersForWeek(3)
	if err != nil {
		t.Fatalf("WinnersForWeek returned error: %v", err)
	}
	if minVotes != 2 {
		t.Fatalf("expected quorum of 2 with 10 voters, got %d", minVotes)
	}

	wantOrder := []int{2, 3, 1, 4, 5}
	if len(winners) != len(wantOrder) {
		t.Fatalf("expected %d winners, got %d", len(wantOrder), len(winners))
	}
	for i, want := range wantOrder {
		if winners[i].SubmissionID != want {
			t.Fatalf("rank %d: got submission %d, want %d", i+1, winners[i].SubmissionID, want)
		}
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestWinnersCappedAtTen(t *testing.T) {
	rows := make([][]driver.Value, 0, WinnersPerWeek+3)
	for i := 0; i < WinnersPerWeek+3; i++ {
		rows = append(rows, candidateRow(i+1, 10-i%5, i%5))
	}

	steps := []*scriptStep{
		{
			kind:    kindQuery,
			pattern: distinctVotersPattern,
			columns: []string{"count"},
			rows:    [][]driver.Value{{int64(5)}},
		},
		{
			kind:    kindQuery,
			pattern: candidatesPattern,
			args:    []driver.Value{int64(1), "qualified", int64(1)},
			columns: []string{"submission_id", "status", "thumbs_up", "thumbs_down", "total_votes"},
			rows:    rows,
		},
	}
	db, state := newScriptedDB(t, steps)

	winners, _, err := NewWinnerSelector(db).WinnersForWeek(1)
	if err != nil {
		t.Fatalf("WinnersForWeek returned error: %v", err)
	}
	if len(winners) != WinnersPerWeek {
		t.Fatalf("expected the ranking capped at %d, got %d", WinnersPerWeek, len(winners))
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestRankHigher(t *testing.T) {
	sub := func(up, down int) *models.Submission {
		return &models.Submission{ThumbsUp: up, ThumbsDown: down, TotalVotes: up + down}
	}

	cases := []struct {
		name string
		a, b *models.Submission
		want bool
	}{
		{"higher approval wins", sub(3, 0), sub(6, 4), true},
		{"lower approval loses", sub(6, 4), sub(3, 0), false},
		{"equal approval, more votes wins", sub(10, 10), sub(2, 2), true},
		{"equal approval, fewer votes loses", sub(2, 2), sub(10, 10), false},
		{"no votes ranks below any votes", sub(0, 0), sub(0, 1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rankHigher(tc.a, tc.b); got != tc.want {
				t.Fatalf("rankHigher = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelectWinnerPromotes(t *testing.T) {
	steps := []*scriptStep{
		{
			kind:    kindQuery,
			pattern: statusPattern,
			args:    []driver.Value{int64(5)},
			columns: []string{"status"},
			rows:    [][]driver.Value{{"qualified"}},
		},
		{
			kind:    kindExec,
			pattern: promotePattern,
			args:    []driver.Value{"winner", int64(5)},
			result:  execResult{rowsAffected: 1},
		},
	}
	db, state := newScriptedDB(t, steps)

	if err := NewWinnerSelector(db).SelectWinner(5); err != nil {
		t.Fatalf("SelectWinner returned error: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestSelectWinnerIsTerminal(t *testing.T) {
	steps := []*scriptStep{
		{
			kind:    kindQuery,
			pattern: statusPattern,
			args:    []driver.Value{int64(5)},
			columns: []string{"status"},
			rows:    [][]driver.Value{{"winner"}},
		},
	}
	db, state := newScriptedDB(t, steps)

	// Repeat promotion succeeds without touching the row.
	if err := NewWinnerSelector(db).SelectWinner(5); err != nil {
		t.Fatalf("repeat SelectWinner returned error: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}
