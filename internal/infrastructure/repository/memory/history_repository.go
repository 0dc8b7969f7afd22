package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/scorebets/scorebets/internal/domain/history"
)

type snapshotKey struct {
	userID  int64
	matchID int64
}

type HistoryRepository struct {
	mu        sync.RWMutex
	snapshots map[snapshotKey]history.Snapshot
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{snapshots: make(map[snapshotKey]history.Snapshot)}
}

func (r *HistoryRepository) Upsert(_ context.Context, s history.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[snapshotKey{userID: s.UserID, matchID: s.MatchID}] = s

	return nil
}

func (r *HistoryRepository) ListByUser(_ context.Context, userID int64) ([]history.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]history.Snapshot, 0)
	for key, s := range r.snapshots {
		if key.userID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })

	return out, nil
}
