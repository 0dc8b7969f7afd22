package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/scorebets/scorebets/internal/domain/history"
	"github.com/scorebets/scorebets/internal/domain/match"
	"github.com/scorebets/scorebets/internal/platform/logging"
)

const defaultSnapshotWorkers = 8

// HistoryService pins every user's global rank to a match once its
// result is recorded, producing the data behind the rank-over-time
// chart.
type HistoryService struct {
	matchRepo   match.Repository
	historyRepo history.Repository
	rankingSvc  *RankingService
	logger      *logging.Logger
	workers     int
}

func NewHistoryService(
	matchRepo match.Repository,
	historyRepo history.Repository,
	rankingSvc *RankingService,
	logger *logging.Logger,
	workers int,
) *HistoryService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = defaultSnapshotWorkers
	}

	return &HistoryService{
		matchRepo:   matchRepo,
		historyRepo: historyRepo,
		rankingSvc:  rankingSvc,
		logger:      logger,
		workers:     workers,
	}
}

// Snapshot upserts one (user, match, rank) row per user for the given
// played match. Re-running overwrites the same rows, so the operation
// is idempotent.
func (s *HistoryService) Snapshot(ctx context.Context, matchID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.Snapshot")
	defer span.End()

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	if !m.Played() {
		return fmt.Errorf("%w: match=%d has no result yet", ErrInvalidInput, matchID)
	}

	ranked, err := s.rankingSvc.Global(ctx)
	if err != nil {
		return fmt.Errorf("compute global ranking: %w", err)
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return fmt.Errorf("create snapshot worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, entry := range ranked {
		snapshot := history.Snapshot{
			UserID:  entry.UserID,
			MatchID: matchID,
			Rank:    entry.Rank,
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := s.historyRepo.Upsert(ctx, snapshot); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("upsert rank snapshot user=%d: %w", snapshot.UserID, err)
				}
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit snapshot task: %w", submitErr)
			}
			mu.Unlock()
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}

	s.logger.InfoContext(ctx, "rank history snapshot stored",
		"match_id", matchID,
		"users", len(ranked),
	)

	return nil
}

// RankHistory returns the stored per-match rank snapshots of one user.
func (s *HistoryService) RankHistory(ctx context.Context, userID int64) ([]history.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.RankHistory")
	defer span.End()

	snapshots, err := s.historyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list rank snapshots: %w", err)
	}

	return snapshots, nil
}
