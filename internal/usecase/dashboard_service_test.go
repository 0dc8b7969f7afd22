package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestDashboardService_Counters(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	counters, err := env.dashboardSvc.Counters(context.Background(), 1)
	if err != nil {
		t.Fatalf("Counters error: %v", err)
	}

	// Match 4 is the only upcoming match with both teams known; Martin
	// has not bet on it. Match 3 is live, and both results are unseen.
	if counters.UpcomingWithoutBet != 1 {
		t.Fatalf("expected 1 upcoming match without bet, got %d", counters.UpcomingWithoutBet)
	}
	if len(counters.UpcomingWithoutBetIDs) != 1 || counters.UpcomingWithoutBetIDs[0] != 4 {
		t.Fatalf("unexpected upcoming ids %v", counters.UpcomingWithoutBetIDs)
	}
	if counters.LiveMatches != 1 {
		t.Fatalf("expected 1 live match, got %d", counters.LiveMatches)
	}
	if counters.UnseenResults != 2 {
		t.Fatalf("expected 2 unseen results, got %d", counters.UnseenResults)
	}
}

func TestDashboardService_CountersAfterBet(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if _, err := env.betSvc.SubmitBet(context.Background(), 1, 4, 2, 1); err != nil {
		t.Fatalf("SubmitBet error: %v", err)
	}

	counters, err := env.dashboardSvc.Counters(context.Background(), 1)
	if err != nil {
		t.Fatalf("Counters error: %v", err)
	}
	if counters.UpcomingWithoutBet != 0 {
		t.Fatalf("expected no open bets left, got %d", counters.UpcomingWithoutBet)
	}
}

func TestDashboardService_MarkResultsSeen(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if err := env.dashboardSvc.MarkResultsSeen(context.Background(), 1); err != nil {
		t.Fatalf("MarkResultsSeen error: %v", err)
	}

	counters, err := env.dashboardSvc.Counters(context.Background(), 1)
	if err != nil {
		t.Fatalf("Counters error: %v", err)
	}
	if counters.UnseenResults != 0 {
		t.Fatalf("expected all results seen, got %d", counters.UnseenResults)
	}
}

func TestDashboardService_UnknownUser(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if _, err := env.dashboardSvc.Counters(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := env.dashboardSvc.MarkResultsSeen(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
