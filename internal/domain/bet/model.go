package bet

import (
	"errors"
	"fmt"
)

const (
	MinGoals = 0
	MaxGoals = 20
)

// ErrDuplicate is returned when an insert collides with the
// UNIQUE(user_id, match_id) constraint. The constraint is the source of
// truth; application-level existence checks only shortcut the error.
var ErrDuplicate = errors.New("bet already exists for this user and match")

// Bet is one user's predicted final score for one match.
type Bet struct {
	ID        int64
	UserID    int64
	MatchID   int64
	GoalsHome int
	GoalsAway int
}

func (b Bet) Validate() error {
	if b.GoalsHome < MinGoals || b.GoalsHome > MaxGoals {
		return fmt.Errorf("home goals must be between %d and %d", MinGoals, MaxGoals)
	}
	if b.GoalsAway < MinGoals || b.GoalsAway > MaxGoals {
		return fmt.Errorf("away goals must be between %d and %d", MinGoals, MaxGoals)
	}

	return nil
}
