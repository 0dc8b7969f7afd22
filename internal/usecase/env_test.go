package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/scorebets/scorebets/internal/domain/bet"
	"github.com/scorebets/scorebets/internal/domain/feed"
	"github.com/scorebets/scorebets/internal/infrastructure/repository/memory"
	"github.com/scorebets/scorebets/internal/platform/cache"
	"github.com/scorebets/scorebets/internal/platform/logging"
)

// testEnv wires the services against seeded in-memory repositories with
// a frozen clock.
type testEnv struct {
	now       time.Time
	users     *memory.UserRepository
	teams     *memory.TeamRepository
	matches   *memory.MatchRepository
	bets      *memory.BetRepository
	history   *memory.HistoryRepository
	friends   *memory.FriendRepository
	rankCache *cache.Store

	rankingSvc   *RankingService
	betSvc       *BetService
	historySvc   *HistoryService
	matchSvc     *MatchService
	dashboardSvc *DashboardService
	friendSvc    *FriendService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	now := time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)
	env := &testEnv{
		now:     now,
		users:   memory.NewUserRepository(memory.SeedUsers()),
		teams:   memory.NewTeamRepository(memory.SeedTeams()),
		matches: memory.NewMatchRepository(memory.SeedMatches(now), memory.SeedMatchTypes(), memory.SeedTeams()),
		bets:    memory.NewBetRepository(memory.SeedBets()),
		history: memory.NewHistoryRepository(),
		friends: memory.NewFriendRepository(),
	}

	logger := logging.NewNop()

	env.rankingSvc = NewRankingService(env.users, env.teams, env.matches, env.bets, env.friends, env.rankCache)
	env.rankingSvc.now = func() time.Time { return now }

	env.historySvc = NewHistoryService(env.matches, env.history, env.rankingSvc, logger, 4)

	env.betSvc = NewBetService(env.users, env.matches, env.bets, env.rankCache, logger)
	env.betSvc.now = func() time.Time { return now }

	env.matchSvc = NewMatchService(env.matches, env.teams, env.historySvc, env.rankCache, logger)
	env.matchSvc.now = func() time.Time { return now }

	env.dashboardSvc = NewDashboardService(env.users, env.matches, env.bets)
	env.dashboardSvc.now = func() time.Time { return now }

	env.friendSvc = NewFriendService(env.users, env.friends)

	return env
}

// seedExtraBet is an exact bet by Henrike on the finished 2:1 match,
// worth 4 points once visible.
func seedExtraBet() bet.Bet {
	return bet.Bet{UserID: 4, MatchID: 1, GoalsHome: 2, GoalsAway: 1}
}

type feedStub struct {
	reports []feed.MatchReport
	err     error
	calls   int
	gotIDs  []int64
}

func (f *feedStub) FetchMatches(_ context.Context, matchIDs []int64) ([]feed.MatchReport, error) {
	f.calls++
	f.gotIDs = append([]int64(nil), matchIDs...)
	if f.err != nil {
		return nil, f.err
	}
	return f.reports, nil
}
