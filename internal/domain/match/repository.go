package match

import (
	"context"
	"time"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	// ListFinished returns matches with a recorded result, kickoff order.
	ListFinished(ctx context.Context) ([]Match, error)
	// ListUpcomingComplete returns the next matches after now whose
	// pairing is complete, kickoff order, at most limit rows.
	ListUpcomingComplete(ctx context.Context, now time.Time, limit int) ([]Match, error)
	// CountLive counts matches whose kickoff has passed but whose result
	// is not yet recorded.
	CountLive(ctx context.Context, now time.Time) (int, error)
	// CountResultsSince counts matches whose result was recorded after
	// since. A nil since counts every recorded result.
	CountResultsSince(ctx context.Context, since *time.Time) (int, error)
	// ListMissingTeams returns matches with at least one unresolved side.
	ListMissingTeams(ctx context.Context) ([]Match, error)
	RecordResult(ctx context.Context, matchID int64, result Result, insertedAt time.Time) error
	ListTypes(ctx context.Context) ([]Type, error)
	GetType(ctx context.Context, typeID int64) (Type, bool, error)
	// Reconcile runs fn against a transactional view; every SetTeam call
	// commits together or not at all.
	Reconcile(ctx context.Context, fn func(tx ReconcileTx) error) error
}

// ReconcileTx is the transactional surface the team reconciler works on.
type ReconcileTx interface {
	TeamIDByExternalID(ctx context.Context, externalID int64) (int64, bool, error)
	MatchByExternalID(ctx context.Context, externalID int64) (Match, bool, error)
	SetTeam(ctx context.Context, matchID int64, side Side, teamID int64) error
}
