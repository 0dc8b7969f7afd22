package history

import "context"

// Repository describes rank snapshot persistence needs from use cases.
type Repository interface {
	// Upsert stores the snapshot, replacing the rank when the
	// (user, match) row already exists.
	Upsert(ctx context.Context, s Snapshot) error
	ListByUser(ctx context.Context, userID int64) ([]Snapshot, error)
}
