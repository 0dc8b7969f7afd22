package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/scorebets/scorebets/internal/domain/friend"
)

type friendKey struct {
	fromUserID int64
	toUserID   int64
}

type FriendRepository struct {
	mu    sync.RWMutex
	edges map[friendKey]struct{}
}

func NewFriendRepository() *FriendRepository {
	return &FriendRepository{edges: make(map[friendKey]struct{})}
}

func (r *FriendRepository) Add(_ context.Context, f friend.Friend) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.edges[friendKey{fromUserID: f.FromUserID, toUserID: f.ToUserID}] = struct{}{}

	return nil
}

func (r *FriendRepository) Remove(_ context.Context, f friend.Friend) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.edges, friendKey{fromUserID: f.FromUserID, toUserID: f.ToUserID})

	return nil
}

func (r *FriendRepository) ListIDsByUser(_ context.Context, fromUserID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0)
	for key := range r.edges {
		if key.fromUserID == fromUserID {
			out = append(out, key.toUserID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}
