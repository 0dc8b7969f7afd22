package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/scorebets/scorebets/internal/domain/bet"
	"github.com/scorebets/scorebets/internal/domain/match"
	"github.com/scorebets/scorebets/internal/domain/user"
	"github.com/sourcegraph/conc/pool"
)

// Matches considered "upcoming" for the missing-bets nudge.
const upcomingWindow = 6

// DashboardCounters are the per-user header badges: matches still
// missing a bet, matches currently in play, and results recorded since
// the user last looked.
type DashboardCounters struct {
	UpcomingWithoutBet    int
	UpcomingWithoutBetIDs []int64
	LiveMatches           int
	UnseenResults         int
}

// DashboardService computes the counters; the three queries are
// independent and run concurrently.
type DashboardService struct {
	userRepo  user.Repository
	matchRepo match.Repository
	betRepo   bet.Repository
	now       func() time.Time
}

func NewDashboardService(
	userRepo user.Repository,
	matchRepo match.Repository,
	betRepo bet.Repository,
) *DashboardService {
	return &DashboardService{
		userRepo:  userRepo,
		matchRepo: matchRepo,
		betRepo:   betRepo,
		now:       time.Now,
	}
}

func (s *DashboardService) Counters(ctx context.Context, userID int64) (DashboardCounters, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Counters")
	defer span.End()

	u, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return DashboardCounters{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return DashboardCounters{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	now := s.now()
	var counters DashboardCounters

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()

	p.Go(func(ctx context.Context) error {
		upcoming, err := s.matchRepo.ListUpcomingComplete(ctx, now, upcomingWindow)
		if err != nil {
			return fmt.Errorf("list upcoming matches: %w", err)
		}
		ids := make([]int64, 0, len(upcoming))
		for _, m := range upcoming {
			ids = append(ids, m.ID)
		}
		missing, err := s.betRepo.MatchIDsWithoutBet(ctx, userID, ids)
		if err != nil {
			return fmt.Errorf("filter matches without bet: %w", err)
		}
		counters.UpcomingWithoutBet = len(missing)
		counters.UpcomingWithoutBetIDs = missing
		return nil
	})

	p.Go(func(ctx context.Context) error {
		live, err := s.matchRepo.CountLive(ctx, now)
		if err != nil {
			return fmt.Errorf("count live matches: %w", err)
		}
		counters.LiveMatches = live
		return nil
	})

	p.Go(func(ctx context.Context) error {
		unseen, err := s.matchRepo.CountResultsSince(ctx, u.ResultsSeenAt)
		if err != nil {
			return fmt.Errorf("count unseen results: %w", err)
		}
		counters.UnseenResults = unseen
		return nil
	})

	if err := p.Wait(); err != nil {
		return DashboardCounters{}, err
	}

	return counters, nil
}

// MarkResultsSeen resets the unseen-results counter.
func (s *DashboardService) MarkResultsSeen(ctx context.Context, userID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.MarkResultsSeen")
	defer span.End()

	if _, exists, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("get user: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	if err := s.userRepo.SetResultsSeenAt(ctx, userID, s.now()); err != nil {
		return fmt.Errorf("set results seen at: %w", err)
	}

	return nil
}
