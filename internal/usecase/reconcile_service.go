package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/scorebets/scorebets/internal/domain/feed"
	"github.com/scorebets/scorebets/internal/domain/match"
	"github.com/scorebets/scorebets/internal/platform/cache"
	"github.com/scorebets/scorebets/internal/platform/logging"
)

// SideUpdate is one newly resolved (match, side) pair.
type SideUpdate struct {
	MatchID int64
	Side    match.Side
	TeamID  int64
}

// ReconcileService merges externally reported pairings into local
// matches. The whole batch commits in one transaction: an unknown team
// or match aborts it with zero database changes.
type ReconcileService struct {
	matchRepo match.Repository
	source    feed.Source
	rankCache *cache.Store
	logger    *logging.Logger
}

func NewReconcileService(
	matchRepo match.Repository,
	source feed.Source,
	rankCache *cache.Store,
	logger *logging.Logger,
) *ReconcileService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ReconcileService{
		matchRepo: matchRepo,
		source:    source,
		rankCache: rankCache,
		logger:    logger,
	}
}

// ReconcileTeams fetches reports for every local match with an
// unresolved side and applies them. Running it twice over the same feed
// state is a no-op the second time.
func (s *ReconcileService) ReconcileTeams(ctx context.Context) ([]SideUpdate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.ReconcileTeams")
	defer span.End()

	started := time.Now()

	pending, err := s.matchRepo.ListMissingTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches missing teams: %w", err)
	}
	if len(pending) == 0 {
		return []SideUpdate{}, nil
	}

	externalIDs := make([]int64, 0, len(pending))
	for _, m := range pending {
		externalIDs = append(externalIDs, m.UEFAID)
	}

	reports, err := s.source.FetchMatches(ctx, externalIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch match feed: %v", ErrDependencyUnavailable, err)
	}

	updates := make([]SideUpdate, 0, len(reports))
	err = s.matchRepo.Reconcile(ctx, func(tx match.ReconcileTx) error {
		for _, report := range reports {
			for _, side := range []struct {
				side match.Side
				ref  feed.TeamRef
			}{
				{match.SideHome, report.Home},
				{match.SideAway, report.Away},
			} {
				updated, update, err := s.reconcileSide(ctx, tx, report.MatchID, side.side, side.ref)
				if err != nil {
					return err
				}
				if updated {
					updates = append(updates, update)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, update := range updates {
		s.logger.InfoContext(ctx, "match side resolved",
			"match_id", update.MatchID,
			"side", string(update.Side),
			"team_id", update.TeamID,
		)
	}
	s.logger.InfoContext(ctx, "team reconciliation finished",
		"pending_matches", len(pending),
		"reports", len(reports),
		"updated_sides", len(updates),
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if len(updates) > 0 && s.rankCache != nil {
		s.rankCache.DeletePrefix(ctx, rankingCachePrefix)
	}

	return updates, nil
}

// reconcileSide applies one side of one report: placeholders and
// already-resolved sides are skipped, unknown references abort the
// batch.
func (s *ReconcileService) reconcileSide(ctx context.Context, tx match.ReconcileTx, externalMatchID int64, side match.Side, ref feed.TeamRef) (bool, SideUpdate, error) {
	externalTeamID, known, err := ref.ResolvedID()
	if err != nil {
		return false, SideUpdate{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !known {
		// Placeholder: nothing learned yet.
		return false, SideUpdate{}, nil
	}

	teamID, exists, err := tx.TeamIDByExternalID(ctx, externalTeamID)
	if err != nil {
		return false, SideUpdate{}, fmt.Errorf("resolve external team %d: %w", externalTeamID, err)
	}
	if !exists {
		return false, SideUpdate{}, fmt.Errorf("%w: unknown external team=%d", ErrNotFound, externalTeamID)
	}

	m, exists, err := tx.MatchByExternalID(ctx, externalMatchID)
	if err != nil {
		return false, SideUpdate{}, fmt.Errorf("resolve external match %d: %w", externalMatchID, err)
	}
	if !exists {
		return false, SideUpdate{}, fmt.Errorf("%w: unknown external match=%d", ErrNotFound, externalMatchID)
	}

	if m.TeamID(side) != nil {
		// Already reconciled.
		return false, SideUpdate{}, nil
	}

	if err := tx.SetTeam(ctx, m.ID, side, teamID); err != nil {
		return false, SideUpdate{}, fmt.Errorf("set %s team on match %d: %w", side, m.ID, err)
	}

	return true, SideUpdate{MatchID: m.ID, Side: side, TeamID: teamID}, nil
}
