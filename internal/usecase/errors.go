package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrBetClosed rejects bet submissions at or after kickoff.
	ErrBetClosed = errors.New("betting closed for this match")
	// ErrDuplicateBet surfaces the (user, match) uniqueness violation.
	ErrDuplicateBet = errors.New("you already bet on this match")
)
