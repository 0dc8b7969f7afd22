package user

import (
	"context"
	"time"
)

// Repository describes user persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, userID int64) (User, bool, error)
	List(ctx context.Context) ([]User, error)
	SetResultsSeenAt(ctx context.Context, userID int64, seenAt time.Time) error
}
