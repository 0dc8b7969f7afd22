package bet

import "context"

// Repository describes bet persistence needs from use cases.
type Repository interface {
	GetByUserAndMatch(ctx context.Context, userID, matchID int64) (Bet, bool, error)
	ListByUser(ctx context.Context, userID int64) ([]Bet, error)
	List(ctx context.Context) ([]Bet, error)
	// Create inserts a new row and returns ErrDuplicate when the
	// (user, match) uniqueness constraint rejects it.
	Create(ctx context.Context, b Bet) (Bet, error)
	// Update rewrites the goal counts of the existing (user, match) row.
	Update(ctx context.Context, b Bet) error
	// MatchIDsWithoutBet filters matchIDs down to those the user has not
	// bet on yet, preserving order.
	MatchIDsWithoutBet(ctx context.Context, userID int64, matchIDs []int64) ([]int64, error)
}
