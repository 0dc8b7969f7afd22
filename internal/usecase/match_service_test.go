package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestMatchService_List(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	views, err := env.matchSvc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(views) != 5 {
		t.Fatalf("expected 5 matches, got %d", len(views))
	}

	first := views[0]
	if first.Match.ID != 1 {
		t.Fatalf("expected kickoff order, got match %d first", first.Match.ID)
	}
	if first.HomeTeam == nil || first.HomeTeam.Short != "GER" {
		t.Fatalf("unexpected home team %+v", first.HomeTeam)
	}
	if first.Type.Code != "GROUP" {
		t.Fatalf("unexpected type %+v", first.Type)
	}

	// The semi-final pairing is still open.
	last := views[len(views)-1]
	if last.Match.ID != 5 || last.HomeTeam != nil || last.AwayTeam != nil {
		t.Fatalf("expected unresolved semi-final last, got %+v", last)
	}
}

func TestMatchService_RecordResult(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	// Match 3 is live: kicked off, no result yet.
	if err := env.matchSvc.RecordResult(context.Background(), 3, 1, 0); err != nil {
		t.Fatalf("RecordResult error: %v", err)
	}

	m, _, err := env.matches.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if m.Result == nil || m.Result.GoalsHome != 1 || m.Result.GoalsAway != 0 {
		t.Fatalf("unexpected result %+v", m.Result)
	}
	if m.ResultInsertedAt == nil || !m.ResultInsertedAt.Equal(env.now) {
		t.Fatalf("expected result timestamp %v, got %v", env.now, m.ResultInsertedAt)
	}

	// Recording the result pins rank history for the match.
	snapshots, err := env.historySvc.RankHistory(context.Background(), 1)
	if err != nil {
		t.Fatalf("RankHistory error: %v", err)
	}
	if len(snapshots) != 1 || snapshots[0].MatchID != 3 {
		t.Fatalf("expected rank snapshot for match 3, got %+v", snapshots)
	}
}

func TestMatchService_RecordResult_RejectsFutureMatch(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if err := env.matchSvc.RecordResult(context.Background(), 4, 1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput before kickoff, got %v", err)
	}
}

func TestMatchService_RecordResult_RejectsNegativeGoals(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if err := env.matchSvc.RecordResult(context.Background(), 3, -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative goals, got %v", err)
	}
}

func TestMatchService_RecordResult_UnknownMatch(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if err := env.matchSvc.RecordResult(context.Background(), 99, 1, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_RecordResult_OverwriteIsIdempotent(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if err := env.matchSvc.RecordResult(context.Background(), 3, 1, 0); err != nil {
		t.Fatalf("first RecordResult error: %v", err)
	}
	if err := env.matchSvc.RecordResult(context.Background(), 3, 1, 0); err != nil {
		t.Fatalf("second RecordResult error: %v", err)
	}

	snapshots, err := env.historySvc.RankHistory(context.Background(), 1)
	if err != nil {
		t.Fatalf("RankHistory error: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("expected a single snapshot row after re-recording, got %d", len(snapshots))
	}
}
