package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scorebets/scorebets/internal/platform/cache"
)

// Seeded results: match 1 finished 2:1 (coef 1), match 2 finished 0:0
// (coef 1). Martin hit 2:1 exactly (4) and missed match 2 (0); Claudia
// missed match 1 (0) and hit 0:0 exactly (4); Jonas got the match 1
// outcome right (2); Henrike never bet.
func TestRankingService_Global_DenseRanks(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	ranked, err := env.rankingSvc.Global(context.Background())
	if err != nil {
		t.Fatalf("Global error: %v", err)
	}
	if len(ranked) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(ranked))
	}

	expect := []struct {
		name  string
		score int
		rank  int
	}{
		{"Claudia", 4, 1},
		{"Martin", 4, 1},
		{"Jonas", 2, 2},
		{"Henrike", 0, 3},
	}
	for i, want := range expect {
		got := ranked[i]
		if got.Name != want.name || got.Score != want.score || got.Rank != want.rank {
			t.Fatalf("entry %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestRankingService_Global_UsesCache(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.rankingSvc.rankCache = cache.NewStore(time.Minute)

	first, err := env.rankingSvc.Global(context.Background())
	if err != nil {
		t.Fatalf("Global error: %v", err)
	}

	// A bet written behind the service's back is invisible until the
	// cache entry is dropped.
	if _, err := env.bets.Create(context.Background(), seedExtraBet()); err != nil {
		t.Fatalf("create bet: %v", err)
	}

	cached, err := env.rankingSvc.Global(context.Background())
	if err != nil {
		t.Fatalf("cached Global error: %v", err)
	}
	for i := range first {
		if cached[i] != first[i] {
			t.Fatalf("expected cached ranking to match first result")
		}
	}

	env.rankingSvc.rankCache.DeletePrefix(context.Background(), rankingCachePrefix)
	fresh, err := env.rankingSvc.Global(context.Background())
	if err != nil {
		t.Fatalf("fresh Global error: %v", err)
	}
	var henrike int
	for _, entry := range fresh {
		if entry.UserID == 4 {
			henrike = entry.Score
		}
	}
	if henrike != 4 {
		t.Fatalf("expected Henrike's late exact bet to score 4 after invalidation, got %d", henrike)
	}
}

func TestRankingService_ForUser(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	entry, err := env.rankingSvc.ForUser(context.Background(), 3)
	if err != nil {
		t.Fatalf("ForUser error: %v", err)
	}
	if entry.Name != "Jonas" || entry.Rank != 2 {
		t.Fatalf("unexpected entry %+v", entry)
	}

	if _, err := env.rankingSvc.ForUser(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRankingService_Friends_ScopesToOutgoingEdges(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if err := env.friendSvc.Add(context.Background(), 3, 1); err != nil {
		t.Fatalf("add friend: %v", err)
	}

	ranked, err := env.rankingSvc.Friends(context.Background(), 3)
	if err != nil {
		t.Fatalf("Friends error: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected user plus one friend, got %d entries", len(ranked))
	}
	if ranked[0].Name != "Martin" || ranked[0].Rank != 1 {
		t.Fatalf("unexpected leader %+v", ranked[0])
	}
	if ranked[1].Name != "Jonas" || ranked[1].Rank != 2 {
		t.Fatalf("unexpected runner-up %+v", ranked[1])
	}
}

func TestRankingService_UserMatches_OwnerSeesEverything(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rows, err := env.rankingSvc.UserMatches(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("UserMatches error: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("owner must see all 5 matches, got %d", len(rows))
	}

	// First row is the earliest kickoff: the finished 2:1 with an exact
	// bet.
	first := rows[0]
	if first.Match.ID != 1 || first.Score != 4 || first.Bet == nil {
		t.Fatalf("unexpected first row %+v", first)
	}
	if !first.Expired {
		t.Fatal("finished match must be expired")
	}
}

func TestRankingService_UserMatches_ForeignViewerSeesOnlyExpired(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rows, err := env.rankingSvc.UserMatches(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("UserMatches error: %v", err)
	}

	// Matches 1-3 have kicked off; 4 and 5 are upcoming and stay hidden.
	if len(rows) != 3 {
		t.Fatalf("foreign viewer must see 3 expired matches, got %d", len(rows))
	}
	for _, row := range rows {
		if !row.Expired {
			t.Fatalf("foreign viewer saw open match %+v", row.Match)
		}
	}
}

func TestRankingService_ScoreSeries(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	series, err := env.rankingSvc.ScoreSeries(context.Background(), 1)
	if err != nil {
		t.Fatalf("ScoreSeries error: %v", err)
	}

	wantLabels := []string{"GER FRA", "ESP ITA"}
	if len(series.Labels) != len(wantLabels) {
		t.Fatalf("expected %d labels, got %v", len(wantLabels), series.Labels)
	}
	for i, want := range wantLabels {
		if series.Labels[i] != want {
			t.Fatalf("label %d: got %q, want %q", i, series.Labels[i], want)
		}
	}

	wantScores := []int{4, 0}
	for i, want := range wantScores {
		if series.Scores[i] != want {
			t.Fatalf("score %d: got %d, want %d", i, series.Scores[i], want)
		}
	}
}

func TestRankingService_FriendsSeries(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if err := env.friendSvc.Add(context.Background(), 1, 2); err != nil {
		t.Fatalf("add friend: %v", err)
	}

	series, err := env.rankingSvc.FriendsSeries(context.Background(), 1)
	if err != nil {
		t.Fatalf("FriendsSeries error: %v", err)
	}
	if len(series.Data) != 2 {
		t.Fatalf("expected 2 chart lines, got %d", len(series.Data))
	}
	if series.Data[0].Name != "Martin" || series.Data[1].Name != "Claudia" {
		t.Fatalf("unexpected line order %+v", series.Data)
	}
	if got := series.Data[1].Scores; len(got) != 2 || got[0] != 0 || got[1] != 4 {
		t.Fatalf("unexpected Claudia scores %v", got)
	}
}
