// Package feed models the external match feed the reconciler consumes.
package feed

import (
	"context"
	"fmt"
)

// TeamRefKind is the closed set of team descriptor variants the feed
// emits.
type TeamRefKind string

const (
	// TeamPlaceholder marks a side that is not drawn yet ("winner of
	// group A"); nothing can be learned from it.
	TeamPlaceholder TeamRefKind = "PLACEHOLDER"
	// TeamNational is a resolved national team with a feed id.
	TeamNational TeamRefKind = "NATIONAL"
)

// TeamRef is one side of an externally reported match.
type TeamRef struct {
	Kind TeamRefKind
	ID   int64
}

// ResolvedID returns the external team id when the descriptor is a
// resolved team, ok=false for a placeholder, and an error for a variant
// outside the closed set.
func (r TeamRef) ResolvedID() (int64, bool, error) {
	switch r.Kind {
	case TeamPlaceholder:
		return 0, false, nil
	case TeamNational:
		return r.ID, true, nil
	default:
		return 0, false, fmt.Errorf("unknown team descriptor kind %q", r.Kind)
	}
}

// MatchReport is one externally reported match.
type MatchReport struct {
	MatchID int64
	Home    TeamRef
	Away    TeamRef
}

// Source fetches match reports for the given external match ids. A
// failing source aborts reconciliation wholesale.
type Source interface {
	FetchMatches(ctx context.Context, matchIDs []int64) ([]MatchReport, error)
}
