package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/scorebets/scorebets/internal/domain/bet"
)

type betKey struct {
	userID  int64
	matchID int64
}

type BetRepository struct {
	mu     sync.RWMutex
	bets   map[betKey]bet.Bet
	nextID int64
}

func NewBetRepository(bets []bet.Bet) *BetRepository {
	byKey := make(map[betKey]bet.Bet, len(bets))
	var maxID int64
	for _, item := range bets {
		byKey[betKey{userID: item.UserID, matchID: item.MatchID}] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &BetRepository{bets: byKey, nextID: maxID + 1}
}

func (r *BetRepository) GetByUserAndMatch(_ context.Context, userID, matchID int64) (bet.Bet, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bets[betKey{userID: userID, matchID: matchID}]
	return b, ok, nil
}

func (r *BetRepository) ListByUser(_ context.Context, userID int64) ([]bet.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]bet.Bet, 0)
	for key, b := range r.bets {
		if key.userID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })

	return out, nil
}

func (r *BetRepository) List(_ context.Context) ([]bet.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]bet.Bet, 0, len(r.bets))
	for _, b := range r.bets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].MatchID < out[j].MatchID
	})

	return out, nil
}

func (r *BetRepository) Create(_ context.Context, b bet.Bet) (bet.Bet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := betKey{userID: b.UserID, matchID: b.MatchID}
	if _, exists := r.bets[key]; exists {
		return bet.Bet{}, bet.ErrDuplicate
	}

	b.ID = r.nextID
	r.nextID++
	r.bets[key] = b

	return b, nil
}

func (r *BetRepository) Update(_ context.Context, b bet.Bet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := betKey{userID: b.UserID, matchID: b.MatchID}
	existing, ok := r.bets[key]
	if !ok {
		return nil
	}
	existing.GoalsHome = b.GoalsHome
	existing.GoalsAway = b.GoalsAway
	r.bets[key] = existing

	return nil
}

func (r *BetRepository) MatchIDsWithoutBet(_ context.Context, userID int64, matchIDs []int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		if _, ok := r.bets[betKey{userID: userID, matchID: matchID}]; !ok {
			out = append(out, matchID)
		}
	}

	return out, nil
}
