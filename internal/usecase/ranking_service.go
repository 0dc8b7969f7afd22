package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/scorebets/scorebets/internal/domain/bet"
	"github.com/scorebets/scorebets/internal/domain/friend"
	"github.com/scorebets/scorebets/internal/domain/match"
	"github.com/scorebets/scorebets/internal/domain/ranking"
	"github.com/scorebets/scorebets/internal/domain/scoring"
	"github.com/scorebets/scorebets/internal/domain/team"
	"github.com/scorebets/scorebets/internal/domain/user"
	"github.com/scorebets/scorebets/internal/platform/cache"
)

const rankingCachePrefix = "ranking:"
const rankingCacheKeyGlobal = rankingCachePrefix + "global"

// UserMatch is one row of a user's match list: the match, its pairing,
// the user's bet and the points it earned.
type UserMatch struct {
	Match    match.Match
	Type     match.Type
	HomeTeam *team.Team
	AwayTeam *team.Team
	Bet      *bet.Bet
	Score    int
	Expired  bool
}

// ScoreSeries feeds the per-user score chart: one point per finished
// match in kickoff order, labelled "HOME AWAY" by team short codes.
type ScoreSeries struct {
	Labels []string
	Scores []int
}

// UserSeries is one user's line in the friends chart.
type UserSeries struct {
	UserID int64
	Name   string
	Scores []int
}

// FriendsSeries bundles the chart lines for a user and their friends.
type FriendsSeries struct {
	Labels []string
	Data   []UserSeries
}

// RankingService aggregates bet scores over finished matches into dense
// rankings. The aggregation is pure and deterministic; in-progress and
// future matches never contribute.
type RankingService struct {
	userRepo   user.Repository
	teamRepo   team.Repository
	matchRepo  match.Repository
	betRepo    bet.Repository
	friendRepo friend.Repository
	rankCache  *cache.Store
	now        func() time.Time
}

func NewRankingService(
	userRepo user.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	betRepo bet.Repository,
	friendRepo friend.Repository,
	rankCache *cache.Store,
) *RankingService {
	return &RankingService{
		userRepo:   userRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		betRepo:    betRepo,
		friendRepo: friendRepo,
		rankCache:  rankCache,
		now:        time.Now,
	}
}

// Global ranks every user by total score, dense ranking. With no
// finished matches every user scores 0 and shares rank 1.
func (s *RankingService) Global(ctx context.Context) ([]ranking.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Global")
	defer span.End()

	if s.rankCache != nil {
		if cached, ok := s.rankCache.Get(ctx, rankingCacheKeyGlobal); ok {
			if entries, ok := cached.([]ranking.Entry); ok {
				return entries, nil
			}
		}
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	totals, err := s.scoreTotals(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ranking.Entry, 0, len(users))
	for _, u := range users {
		entries = append(entries, ranking.Entry{
			UserID: u.ID,
			Name:   u.Name,
			Score:  totals[u.ID],
		})
	}

	ranked := ranking.Rank(entries)
	if s.rankCache != nil {
		s.rankCache.Set(ctx, rankingCacheKeyGlobal, ranked)
	}

	return ranked, nil
}

// ForUser returns the user's entry in the global ranking.
func (s *RankingService) ForUser(ctx context.Context, userID int64) (ranking.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.ForUser")
	defer span.End()

	ranked, err := s.Global(ctx)
	if err != nil {
		return ranking.Entry{}, err
	}

	for _, entry := range ranked {
		if entry.UserID == userID {
			return entry, nil
		}
	}

	return ranking.Entry{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
}

// Scoped ranks the user together with an explicit allow-list of other
// user ids. Unknown ids in the allow-list are ignored; an unknown
// requesting user is an error.
func (s *RankingService) Scoped(ctx context.Context, userID int64, allowedOthers []int64) ([]ranking.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Scoped")
	defer span.End()

	if _, exists, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	allowed := make(map[int64]struct{}, len(allowedOthers)+1)
	allowed[userID] = struct{}{}
	for _, id := range allowedOthers {
		allowed[id] = struct{}{}
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	totals, err := s.scoreTotals(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ranking.Entry, 0, len(allowed))
	for _, u := range users {
		if _, ok := allowed[u.ID]; !ok {
			continue
		}
		entries = append(entries, ranking.Entry{
			UserID: u.ID,
			Name:   u.Name,
			Score:  totals[u.ID],
		})
	}

	return ranking.Rank(entries), nil
}

// Friends ranks the user against their outgoing friend edges.
func (s *RankingService) Friends(ctx context.Context, userID int64) ([]ranking.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Friends")
	defer span.End()

	friendIDs, err := s.friendRepo.ListIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}

	return s.Scoped(ctx, userID, friendIDs)
}

// UserMatches lists matches in kickoff order with the user's bet and
// per-match score. Foreign viewers only see matches whose kickoff has
// passed, so open bets stay private.
func (s *RankingService) UserMatches(ctx context.Context, viewerID, userID int64) ([]UserMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.UserMatches")
	defer span.End()

	if _, exists, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	types, teams, err := s.referenceData(ctx)
	if err != nil {
		return nil, err
	}

	bets, err := s.betRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}
	betByMatch := make(map[int64]bet.Bet, len(bets))
	for _, b := range bets {
		betByMatch[b.MatchID] = b
	}

	now := s.now()
	out := make([]UserMatch, 0, len(matches))
	for _, m := range matches {
		expired := m.Expired(now)
		if viewerID != userID && !expired {
			continue
		}

		row := UserMatch{
			Match:    m,
			Type:     types[m.TypeID],
			HomeTeam: teamRef(teams, m.HomeTeamID),
			AwayTeam: teamRef(teams, m.AwayTeamID),
			Expired:  expired,
		}
		if b, ok := betByMatch[m.ID]; ok {
			placed := b
			row.Bet = &placed
			row.Score = scoring.MatchPoints(&placed, m, row.Type.Coef)
		}
		out = append(out, row)
	}

	return out, nil
}

// ScoreSeries returns the user's per-match scores over all finished
// matches in kickoff order.
func (s *RankingService) ScoreSeries(ctx context.Context, userID int64) (ScoreSeries, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.ScoreSeries")
	defer span.End()

	if _, exists, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return ScoreSeries{}, fmt.Errorf("get user: %w", err)
	} else if !exists {
		return ScoreSeries{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	finished, types, teams, err := s.finishedWithReferenceData(ctx)
	if err != nil {
		return ScoreSeries{}, err
	}

	labels := seriesLabels(finished, teams)
	scores, err := s.seriesScores(ctx, userID, finished, types)
	if err != nil {
		return ScoreSeries{}, err
	}

	return ScoreSeries{Labels: labels, Scores: scores}, nil
}

// FriendsSeries returns the score chart lines for the user and each of
// their friends over the same label axis.
func (s *RankingService) FriendsSeries(ctx context.Context, userID int64) (FriendsSeries, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.FriendsSeries")
	defer span.End()

	u, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return FriendsSeries{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return FriendsSeries{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	friendIDs, err := s.friendRepo.ListIDsByUser(ctx, userID)
	if err != nil {
		return FriendsSeries{}, fmt.Errorf("list friends: %w", err)
	}

	finished, types, teams, err := s.finishedWithReferenceData(ctx)
	if err != nil {
		return FriendsSeries{}, err
	}

	series := FriendsSeries{Labels: seriesLabels(finished, teams)}

	members := make([]user.User, 0, len(friendIDs)+1)
	members = append(members, u)
	for _, id := range friendIDs {
		f, exists, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return FriendsSeries{}, fmt.Errorf("get friend: %w", err)
		}
		if exists {
			members = append(members, f)
		}
	}

	for _, member := range members {
		scores, err := s.seriesScores(ctx, member.ID, finished, types)
		if err != nil {
			return FriendsSeries{}, err
		}
		series.Data = append(series.Data, UserSeries{
			UserID: member.ID,
			Name:   member.Name,
			Scores: scores,
		})
	}

	return series, nil
}

// scoreTotals sums points per user over finished matches only.
func (s *RankingService) scoreTotals(ctx context.Context) (map[int64]int, error) {
	finished, err := s.matchRepo.ListFinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finished matches: %w", err)
	}

	types, err := s.typesByID(ctx)
	if err != nil {
		return nil, err
	}

	bets, err := s.betRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}

	matchByID := make(map[int64]match.Match, len(finished))
	for _, m := range finished {
		matchByID[m.ID] = m
	}

	totals := make(map[int64]int)
	for _, b := range bets {
		m, ok := matchByID[b.MatchID]
		if !ok {
			continue
		}
		placed := b
		totals[b.UserID] += scoring.MatchPoints(&placed, m, types[m.TypeID].Coef)
	}

	return totals, nil
}

func (s *RankingService) seriesScores(ctx context.Context, userID int64, finished []match.Match, types map[int64]match.Type) ([]int, error) {
	bets, err := s.betRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}
	betByMatch := make(map[int64]bet.Bet, len(bets))
	for _, b := range bets {
		betByMatch[b.MatchID] = b
	}

	scores := make([]int, 0, len(finished))
	for _, m := range finished {
		var placed *bet.Bet
		if b, ok := betByMatch[m.ID]; ok {
			placed = &b
		}
		scores = append(scores, scoring.MatchPoints(placed, m, types[m.TypeID].Coef))
	}

	return scores, nil
}

func (s *RankingService) finishedWithReferenceData(ctx context.Context) ([]match.Match, map[int64]match.Type, map[int64]team.Team, error) {
	finished, err := s.matchRepo.ListFinished(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list finished matches: %w", err)
	}

	types, teams, err := s.referenceData(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	return finished, types, teams, nil
}

func (s *RankingService) referenceData(ctx context.Context) (map[int64]match.Type, map[int64]team.Team, error) {
	types, err := s.typesByID(ctx)
	if err != nil {
		return nil, nil, err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list teams: %w", err)
	}
	teamByID := make(map[int64]team.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	return types, teamByID, nil
}

func (s *RankingService) typesByID(ctx context.Context) (map[int64]match.Type, error) {
	types, err := s.matchRepo.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list match types: %w", err)
	}

	byID := make(map[int64]match.Type, len(types))
	for _, t := range types {
		byID[t.ID] = t
	}

	return byID, nil
}

func seriesLabels(finished []match.Match, teams map[int64]team.Team) []string {
	labels := make([]string, 0, len(finished))
	for _, m := range finished {
		labels = append(labels, matchLabel(m, teams))
	}
	return labels
}

func matchLabel(m match.Match, teams map[int64]team.Team) string {
	home := "TBD"
	away := "TBD"
	if t := teamRef(teams, m.HomeTeamID); t != nil {
		home = t.Short
	}
	if t := teamRef(teams, m.AwayTeamID); t != nil {
		away = t.Short
	}
	return home + " " + away
}

func teamRef(teams map[int64]team.Team, id *int64) *team.Team {
	if id == nil {
		return nil
	}
	t, ok := teams[*id]
	if !ok {
		return nil
	}
	return &t
}
