package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/scorebets/scorebets/internal/domain/match"
	"github.com/scorebets/scorebets/internal/domain/team"
	"github.com/scorebets/scorebets/internal/platform/cache"
	"github.com/scorebets/scorebets/internal/platform/logging"
)

// MatchView is one match with its reference data resolved.
type MatchView struct {
	Match    match.Match
	Type     match.Type
	HomeTeam *team.Team
	AwayTeam *team.Team
}

// MatchService lists matches and records final results. Both goal
// counts are written together so a match never carries half a result.
type MatchService struct {
	matchRepo  match.Repository
	teamRepo   team.Repository
	historySvc *HistoryService
	rankCache  *cache.Store
	logger     *logging.Logger
	now        func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	historySvc *HistoryService,
	rankCache *cache.Store,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		historySvc: historySvc,
		rankCache:  rankCache,
		logger:     logger,
		now:        time.Now,
	}
}

// List returns all matches in kickoff order with teams and types
// resolved.
func (s *MatchService) List(ctx context.Context) ([]MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	types, err := s.matchRepo.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list match types: %w", err)
	}
	typeByID := make(map[int64]match.Type, len(types))
	for _, t := range types {
		typeByID[t.ID] = t
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	teamByID := make(map[int64]team.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	out := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchView{
			Match:    m,
			Type:     typeByID[m.TypeID],
			HomeTeam: teamRef(teamByID, m.HomeTeamID),
			AwayTeam: teamRef(teamByID, m.AwayTeamID),
		})
	}

	return out, nil
}

// RecordResult stores the final score of a match that has kicked off
// and triggers the rank history snapshot.
func (s *MatchService) RecordResult(ctx context.Context, matchID int64, goalsHome, goalsAway int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
	defer span.End()

	if goalsHome < 0 || goalsAway < 0 {
		return fmt.Errorf("%w: goal counts cannot be negative", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	now := s.now()
	if !m.Expired(now) {
		return fmt.Errorf("%w: match=%d has not kicked off", ErrInvalidInput, matchID)
	}

	result := match.Result{GoalsHome: goalsHome, GoalsAway: goalsAway}
	if err := s.matchRepo.RecordResult(ctx, matchID, result, now); err != nil {
		return fmt.Errorf("record result: %w", err)
	}

	if s.rankCache != nil {
		s.rankCache.DeletePrefix(ctx, rankingCachePrefix)
	}

	s.logger.InfoContext(ctx, "match result recorded",
		"match_id", matchID,
		"goals_home", goalsHome,
		"goals_away", goalsAway,
	)

	if err := s.historySvc.Snapshot(ctx, matchID); err != nil {
		return fmt.Errorf("snapshot ranks after result: %w", err)
	}

	return nil
}
