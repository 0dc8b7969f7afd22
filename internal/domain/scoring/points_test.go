package scoring

import (
	"testing"
	"time"

	"github.com/scorebets/scorebets/internal/domain/bet"
	"github.com/scorebets/scorebets/internal/domain/match"
)

func TestPoints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		predHome   int
		predAway   int
		actualHome int
		actualAway int
		coef       int
		want       int
	}{
		{name: "exact score coef 1", predHome: 2, predAway: 1, actualHome: 2, actualAway: 1, coef: 1, want: 4},
		{name: "exact score coef 5", predHome: 0, predAway: 0, actualHome: 0, actualAway: 0, coef: 5, want: 20},
		{name: "correct winner wrong score", predHome: 3, predAway: 0, actualHome: 1, actualAway: 0, coef: 1, want: 2},
		{name: "correct winner coef 4", predHome: 2, predAway: 1, actualHome: 4, actualAway: 2, coef: 4, want: 8},
		{name: "correct draw wrong score", predHome: 1, predAway: 1, actualHome: 2, actualAway: 2, coef: 2, want: 4},
		{name: "wrong outcome coef 3", predHome: 2, predAway: 0, actualHome: 0, actualAway: 1, coef: 3, want: 0},
		{name: "predicted draw but home won", predHome: 1, predAway: 1, actualHome: 2, actualAway: 0, coef: 5, want: 0},
		{name: "predicted away win but draw", predHome: 0, predAway: 2, actualHome: 1, actualAway: 1, coef: 2, want: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Points(tc.predHome, tc.predAway, tc.actualHome, tc.actualAway, tc.coef)
			if got != tc.want {
				t.Fatalf("Points(%d:%d vs %d:%d, coef=%d) = %d, want %d",
					tc.predHome, tc.predAway, tc.actualHome, tc.actualAway, tc.coef, got, tc.want)
			}
		})
	}
}

func TestPoints_ExactNeverStacksWithOutcome(t *testing.T) {
	t.Parallel()

	// An exact hit is also a correct outcome; only the exact award
	// applies.
	if got := Points(1, 0, 1, 0, 3); got != 12 {
		t.Fatalf("expected exact award 12, got %d", got)
	}
}

func TestMatchPoints(t *testing.T) {
	t.Parallel()

	played := match.Match{
		ID:        1,
		KickoffAt: time.Now().Add(-3 * time.Hour),
		Result:    &match.Result{GoalsHome: 2, GoalsAway: 1},
	}
	pending := match.Match{
		ID:        2,
		KickoffAt: time.Now().Add(3 * time.Hour),
	}
	b := &bet.Bet{UserID: 1, MatchID: 1, GoalsHome: 2, GoalsAway: 1}

	if got := MatchPoints(b, played, 2); got != 8 {
		t.Fatalf("expected 8 points for exact hit at coef 2, got %d", got)
	}
	if got := MatchPoints(nil, played, 2); got != 0 {
		t.Fatalf("expected 0 points without a bet, got %d", got)
	}
	if got := MatchPoints(b, pending, 2); got != 0 {
		t.Fatalf("expected 0 points without a result, got %d", got)
	}
}
