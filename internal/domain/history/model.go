package history

// Snapshot pins a user's global rank at the point a match result was
// recorded. Unique per (user, match).
type Snapshot struct {
	UserID  int64
	MatchID int64
	Rank    int
}
