package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBetService_SubmitBet_CreatesNewBet(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	// User 4 has no bet on the upcoming match 4 yet.
	created, err := env.betSvc.SubmitBet(context.Background(), 4, 4, 2, 0)
	if err != nil {
		t.Fatalf("SubmitBet error: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected assigned id, got %+v", created)
	}

	stored, exists, err := env.bets.GetByUserAndMatch(context.Background(), 4, 4)
	if err != nil || !exists {
		t.Fatalf("stored bet missing: exists=%v err=%v", exists, err)
	}
	if stored.GoalsHome != 2 || stored.GoalsAway != 0 {
		t.Fatalf("unexpected stored bet %+v", stored)
	}
}

func TestBetService_SubmitBet_UpdatesExistingInPlace(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if _, err := env.betSvc.SubmitBet(context.Background(), 1, 4, 1, 0); err != nil {
		t.Fatalf("first SubmitBet error: %v", err)
	}
	if _, err := env.betSvc.SubmitBet(context.Background(), 1, 4, 3, 2); err != nil {
		t.Fatalf("resubmission error: %v", err)
	}

	all, err := env.bets.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	count := 0
	for _, b := range all {
		if b.MatchID == 4 {
			count++
			if b.GoalsHome != 3 || b.GoalsAway != 2 {
				t.Fatalf("expected updated goals 3:2, got %+v", b)
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one bet row for the pair, got %d", count)
	}
}

func TestBetService_SubmitBet_RejectsOutOfRangeGoals(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if _, err := env.betSvc.SubmitBet(context.Background(), 1, 4, 21, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for 21 goals, got %v", err)
	}
	if _, err := env.betSvc.SubmitBet(context.Background(), 1, 4, 0, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative goals, got %v", err)
	}
}

func TestBetService_SubmitBet_RejectsAfterKickoff(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	// Match 3 kicked off an hour before the frozen clock.
	if _, err := env.betSvc.SubmitBet(context.Background(), 1, 3, 1, 1); !errors.Is(err, ErrBetClosed) {
		t.Fatalf("expected ErrBetClosed for live match, got %v", err)
	}

	// Exactly at kickoff is also closed.
	env.betSvc.now = func() time.Time { return env.now.Add(24 * time.Hour) }
	if _, err := env.betSvc.SubmitBet(context.Background(), 1, 4, 1, 1); !errors.Is(err, ErrBetClosed) {
		t.Fatalf("expected ErrBetClosed at kickoff instant, got %v", err)
	}
}

func TestBetService_SubmitBet_UnknownReferences(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if _, err := env.betSvc.SubmitBet(context.Background(), 99, 4, 1, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
	if _, err := env.betSvc.SubmitBet(context.Background(), 1, 99, 1, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown match, got %v", err)
	}
}

func TestBetService_PlaceBet_DuplicateFails(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if _, err := env.betSvc.PlaceBet(context.Background(), 2, 4, 1, 0); err != nil {
		t.Fatalf("first PlaceBet error: %v", err)
	}
	if _, err := env.betSvc.PlaceBet(context.Background(), 2, 4, 2, 0); !errors.Is(err, ErrDuplicateBet) {
		t.Fatalf("expected ErrDuplicateBet on second insert, got %v", err)
	}
}
