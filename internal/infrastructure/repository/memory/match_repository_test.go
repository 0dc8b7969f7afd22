package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scorebets/scorebets/internal/domain/match"
)

func TestMatchRepository_ReconcileCommitsOnSuccess(t *testing.T) {
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)
	repo := NewMatchRepository(SeedMatches(now), SeedMatchTypes(), SeedTeams())

	err := repo.Reconcile(context.Background(), func(tx match.ReconcileTx) error {
		teamID, ok, err := tx.TeamIDByExternalID(context.Background(), 57451)
		if err != nil || !ok {
			t.Fatalf("expected GER resolvable, got ok=%v err=%v", ok, err)
		}
		return tx.SetTeam(context.Background(), 5, match.SideHome, teamID)
	})
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}

	m, _, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if m.HomeTeamID == nil || *m.HomeTeamID != 1 {
		t.Fatalf("expected home team committed, got %v", m.HomeTeamID)
	}
}

func TestMatchRepository_ReconcileRollsBackOnError(t *testing.T) {
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)
	repo := NewMatchRepository(SeedMatches(now), SeedMatchTypes(), SeedTeams())

	wantErr := errors.New("lookup failed")
	err := repo.Reconcile(context.Background(), func(tx match.ReconcileTx) error {
		if err := tx.SetTeam(context.Background(), 5, match.SideHome, 1); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected staged error surfaced, got %v", err)
	}

	m, _, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if m.HomeTeamID != nil {
		t.Fatalf("expected staged write discarded, got %v", m.HomeTeamID)
	}
}

func TestMatchRepository_GetByIDReturnsCopies(t *testing.T) {
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)
	repo := NewMatchRepository(SeedMatches(now), SeedMatchTypes(), SeedTeams())

	first, _, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	first.Result.GoalsHome = 99

	second, _, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if second.Result.GoalsHome == 99 {
		t.Fatalf("caller mutation must not leak into the repository")
	}
}
