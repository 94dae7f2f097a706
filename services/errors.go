package services

import "errors"

// Sentinel errors returned by the voting engine. Controllers map these onto
// HTTP status codes; everything else is treated as a transient storage
// failure and is safe to retry.
var (
	ErrSelfVote           = errors.New("cannot vote on your own submission")
	ErrInvalidVoteValue   = errors.New("vote value must be up or down")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrUploadNotOpen      = errors.New("the competition has not started yet")
	ErrCompetitionEnded   = errors.New("the competition has ended")
	ErrAlreadySubmitted   = errors.New("a submission already exists for this week")
)
