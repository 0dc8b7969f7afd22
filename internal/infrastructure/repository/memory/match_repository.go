package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/scorebets/scorebets/internal/domain/match"
	"github.com/scorebets/scorebets/internal/domain/team"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[int64]match.Match
	types   map[int64]match.Type
	// teamIDsByUEFA mirrors the teams table for reconciliation lookups.
	teamIDsByUEFA map[int64]int64
}

func NewMatchRepository(matches []match.Match, types []match.Type, teams []team.Team) *MatchRepository {
	matchesByID := make(map[int64]match.Match, len(matches))
	for _, item := range matches {
		matchesByID[item.ID] = cloneMatch(item)
	}
	typesByID := make(map[int64]match.Type, len(types))
	for _, item := range types {
		typesByID[item.ID] = item
	}
	teamIDsByUEFA := make(map[int64]int64, len(teams))
	for _, item := range teams {
		teamIDsByUEFA[item.UEFAID] = item.ID
	}

	return &MatchRepository{
		matches:       matchesByID,
		types:         typesByID,
		teamIDsByUEFA: teamIDsByUEFA,
	}
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(m), true, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(func(match.Match) bool { return true }, 0), nil
}

func (r *MatchRepository) ListFinished(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(match.Match.Played, 0), nil
}

func (r *MatchRepository) ListUpcomingComplete(_ context.Context, now time.Time, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(func(m match.Match) bool {
		return !m.Expired(now) && m.PairingComplete()
	}, limit), nil
}

func (r *MatchRepository) CountLive(_ context.Context, now time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, m := range r.matches {
		if m.Expired(now) && !m.Played() {
			count++
		}
	}

	return count, nil
}

func (r *MatchRepository) CountResultsSince(_ context.Context, since *time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, m := range r.matches {
		if m.ResultInsertedAt == nil {
			continue
		}
		if since == nil || m.ResultInsertedAt.After(*since) {
			count++
		}
	}

	return count, nil
}

func (r *MatchRepository) ListMissingTeams(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(func(m match.Match) bool {
		return !m.PairingComplete()
	}, 0), nil
}

func (r *MatchRepository) RecordResult(_ context.Context, matchID int64, result match.Result, insertedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.matches[matchID]
	if !ok {
		return nil
	}
	m.Result = &match.Result{GoalsHome: result.GoalsHome, GoalsAway: result.GoalsAway}
	m.ResultInsertedAt = &insertedAt
	r.matches[matchID] = m

	return nil
}

func (r *MatchRepository) ListTypes(_ context.Context) ([]match.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *MatchRepository) GetType(_ context.Context, typeID int64) (match.Type, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[typeID]
	return t, ok, nil
}

// Reconcile stages every SetTeam on a copy of the match table; the copy
// replaces the live table only when fn returns nil.
func (r *MatchRepository) Reconcile(_ context.Context, fn func(tx match.ReconcileTx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stage := make(map[int64]match.Match, len(r.matches))
	for id, m := range r.matches {
		stage[id] = cloneMatch(m)
	}

	tx := &reconcileTx{matches: stage, teamIDsByUEFA: r.teamIDsByUEFA}
	if err := fn(tx); err != nil {
		return err
	}

	r.matches = stage
	return nil
}

func (r *MatchRepository) listLocked(keep func(match.Match) bool, limit int) []match.Match {
	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		if keep(m) {
			out = append(out, cloneMatch(m))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

type reconcileTx struct {
	matches       map[int64]match.Match
	teamIDsByUEFA map[int64]int64
}

func (t *reconcileTx) TeamIDByExternalID(_ context.Context, externalID int64) (int64, bool, error) {
	id, ok := t.teamIDsByUEFA[externalID]
	return id, ok, nil
}

func (t *reconcileTx) MatchByExternalID(_ context.Context, externalID int64) (match.Match, bool, error) {
	for _, m := range t.matches {
		if m.UEFAID == externalID {
			return cloneMatch(m), true, nil
		}
	}

	return match.Match{}, false, nil
}

func (t *reconcileTx) SetTeam(_ context.Context, matchID int64, side match.Side, teamID int64) error {
	m, ok := t.matches[matchID]
	if !ok {
		return nil
	}
	id := teamID
	if side == match.SideHome {
		m.HomeTeamID = &id
	} else {
		m.AwayTeamID = &id
	}
	t.matches[matchID] = m

	return nil
}

func cloneMatch(m match.Match) match.Match {
	out := m
	if m.HomeTeamID != nil {
		id := *m.HomeTeamID
		out.HomeTeamID = &id
	}
	if m.AwayTeamID != nil {
		id := *m.AwayTeamID
		out.AwayTeamID = &id
	}
	if m.Result != nil {
		result := *m.Result
		out.Result = &result
	}
	if m.ResultInsertedAt != nil {
		at := *m.ResultInsertedAt
		out.ResultInsertedAt = &at
	}

	return out
}
