package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scorebets/scorebets/internal/domain/bet"
	"github.com/scorebets/scorebets/internal/domain/match"
	"github.com/scorebets/scorebets/internal/domain/user"
	"github.com/scorebets/scorebets/internal/platform/cache"
	"github.com/scorebets/scorebets/internal/platform/logging"
)

// BetService validates and persists score predictions. The database
// UNIQUE(user_id, match_id) constraint is the source of truth for
// duplicates; the pre-check here only picks the update path up front.
type BetService struct {
	userRepo  user.Repository
	matchRepo match.Repository
	betRepo   bet.Repository
	rankCache *cache.Store
	logger    *logging.Logger
	now       func() time.Time
}

func NewBetService(
	userRepo user.Repository,
	matchRepo match.Repository,
	betRepo bet.Repository,
	rankCache *cache.Store,
	logger *logging.Logger,
) *BetService {
	if logger == nil {
		logger = logging.Default()
	}

	return &BetService{
		userRepo:  userRepo,
		matchRepo: matchRepo,
		betRepo:   betRepo,
		rankCache: rankCache,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitBet stores the prediction for (user, match). A resubmission
// before kickoff updates the existing row in place; at most one row per
// (user, match) ever exists.
func (s *BetService) SubmitBet(ctx context.Context, userID, matchID int64, goalsHome, goalsAway int) (bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.SubmitBet")
	defer span.End()

	candidate := bet.Bet{
		UserID:    userID,
		MatchID:   matchID,
		GoalsHome: goalsHome,
		GoalsAway: goalsAway,
	}
	if err := candidate.Validate(); err != nil {
		return bet.Bet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return bet.Bet{}, fmt.Errorf("get user: %w", err)
	} else if !exists {
		return bet.Bet{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return bet.Bet{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	if m.Expired(s.now()) {
		return bet.Bet{}, fmt.Errorf("%w: match=%d kicked off at %s", ErrBetClosed, matchID, m.KickoffAt.UTC().Format(time.RFC3339))
	}

	existing, exists, err := s.betRepo.GetByUserAndMatch(ctx, userID, matchID)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("get bet: %w", err)
	}
	if exists {
		existing.GoalsHome = goalsHome
		existing.GoalsAway = goalsAway
		if err := s.betRepo.Update(ctx, existing); err != nil {
			return bet.Bet{}, fmt.Errorf("update bet: %w", err)
		}
		s.invalidateRankings(ctx)
		return existing, nil
	}

	created, err := s.betRepo.Create(ctx, candidate)
	if errors.Is(err, bet.ErrDuplicate) {
		// Lost the race against a concurrent submission for the same
		// pair; the constraint held, so fall back to the update path.
		s.logger.WarnContext(ctx, "duplicate bet insert, updating in place",
			"user_id", userID, "match_id", matchID)
		existing, exists, getErr := s.betRepo.GetByUserAndMatch(ctx, userID, matchID)
		if getErr != nil {
			return bet.Bet{}, fmt.Errorf("get bet after duplicate insert: %w", getErr)
		}
		if !exists {
			return bet.Bet{}, fmt.Errorf("%w: bet vanished after duplicate insert", ErrDuplicateBet)
		}
		existing.GoalsHome = goalsHome
		existing.GoalsAway = goalsAway
		if err := s.betRepo.Update(ctx, existing); err != nil {
			return bet.Bet{}, fmt.Errorf("update bet after duplicate insert: %w", err)
		}
		s.invalidateRankings(ctx)
		return existing, nil
	}
	if err != nil {
		return bet.Bet{}, fmt.Errorf("create bet: %w", err)
	}

	s.invalidateRankings(ctx)
	return created, nil
}

// PlaceBet is the strict insert path: an existing (user, match) bet
// fails with ErrDuplicateBet instead of updating.
func (s *BetService) PlaceBet(ctx context.Context, userID, matchID int64, goalsHome, goalsAway int) (bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.PlaceBet")
	defer span.End()

	candidate := bet.Bet{
		UserID:    userID,
		MatchID:   matchID,
		GoalsHome: goalsHome,
		GoalsAway: goalsAway,
	}
	if err := candidate.Validate(); err != nil {
		return bet.Bet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return bet.Bet{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	if m.Expired(s.now()) {
		return bet.Bet{}, fmt.Errorf("%w: match=%d", ErrBetClosed, matchID)
	}

	created, err := s.betRepo.Create(ctx, candidate)
	if errors.Is(err, bet.ErrDuplicate) {
		return bet.Bet{}, fmt.Errorf("%w: match=%d", ErrDuplicateBet, matchID)
	}
	if err != nil {
		return bet.Bet{}, fmt.Errorf("create bet: %w", err)
	}

	s.invalidateRankings(ctx)
	return created, nil
}

func (s *BetService) invalidateRankings(ctx context.Context) {
	if s.rankCache != nil {
		s.rankCache.DeletePrefix(ctx, rankingCachePrefix)
	}
}
