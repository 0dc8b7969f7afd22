// Package scoring holds the fixed point table that turns a bet and a
// final score into points. It is the single source of truth for both the
// bulk ranking aggregation and the per-match score display.
package scoring

import (
	"github.com/scorebets/scorebets/internal/domain/bet"
	"github.com/scorebets/scorebets/internal/domain/match"
)

// Point award per coefficient. The coefficient scales match importance
// (group stage 1 ... final 5):
//
//	coef  exact  outcome  miss
//	   1      4        2     0
//	   2      8        4     0
//	   3     12        6     0
//	   4     16        8     0
//	   5     20       10     0
//
// "exact" is the precise final score, "outcome" the correct winner or a
// correctly predicted draw without the exact score. Exact never stacks
// with outcome.
const (
	exactBase   = 4
	outcomeBase = 2
)

// Points returns the points earned by a prediction against a final
// score, scaled by the match coefficient.
func Points(predHome, predAway, actualHome, actualAway, coef int) int {
	if predHome == actualHome && predAway == actualAway {
		return exactBase * coef
	}
	if sign(predHome-predAway) == sign(actualHome-actualAway) {
		return outcomeBase * coef
	}

	return 0
}

// MatchPoints evaluates one bet against one match. The neutral value 0
// is returned when the bet is absent or the match has no result yet.
func MatchPoints(b *bet.Bet, m match.Match, coef int) int {
	if b == nil || m.Result == nil {
		return 0
	}

	return Points(b.GoalsHome, b.GoalsAway, m.Result.GoalsHome, m.Result.GoalsAway, coef)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
