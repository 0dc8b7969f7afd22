package friend

import "context"

// Repository describes friend persistence needs from use cases.
type Repository interface {
	// Add stores the edge; adding an existing edge is a no-op.
	Add(ctx context.Context, f Friend) error
	Remove(ctx context.Context, f Friend) error
	// ListIDsByUser returns the target user ids of all outgoing edges.
	ListIDsByUser(ctx context.Context, fromUserID int64) ([]int64, error)
}
