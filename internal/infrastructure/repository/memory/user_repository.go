package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/scorebets/scorebets/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[int64]user.User
}

func NewUserRepository(users []user.User) *UserRepository {
	byID := make(map[int64]user.User, len(users))
	for _, item := range users {
		byID[item.ID] = item
	}

	return &UserRepository{users: byID}
}

func (r *UserRepository) GetByID(_ context.Context, userID int64) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	return u, ok, nil
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *UserRepository) SetResultsSeenAt(_ context.Context, userID int64, seenAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return nil
	}
	u.ResultsSeenAt = &seenAt
	r.users[userID] = u

	return nil
}
