package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/scorebets/scorebets/internal/domain/bet"
	qb "github.com/scorebets/scorebets/internal/platform/querybuilder"
)

type BetRepository struct {
	db *sqlx.DB
}

func NewBetRepository(db *sqlx.DB) *BetRepository {
	return &BetRepository{db: db}
}

func (r *BetRepository) GetByUserAndMatch(ctx context.Context, userID, matchID int64) (bet.Bet, bool, error) {
	query, args, err := qb.Select("*").From("bets").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("match_id", matchID),
		).
		ToSQL()
	if err != nil {
		return bet.Bet{}, false, fmt.Errorf("build select bet query: %w", err)
	}

	var row betTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return bet.Bet{}, false, nil
		}
		return bet.Bet{}, false, fmt.Errorf("select bet: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *BetRepository) ListByUser(ctx context.Context, userID int64) ([]bet.Bet, error) {
	query, args, err := qb.Select("*").From("bets").
		Where(qb.Eq("user_id", userID)).
		OrderBy("match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list bets by user query: %w", err)
	}

	return r.selectBets(ctx, query, args)
}

func (r *BetRepository) List(ctx context.Context) ([]bet.Bet, error) {
	query, args, err := qb.Select("*").From("bets").
		OrderBy("user_id", "match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list bets query: %w", err)
	}

	return r.selectBets(ctx, query, args)
}

// Create relies on the UNIQUE(user_id, match_id) index; a violation is
// reported as bet.ErrDuplicate.
func (r *BetRepository) Create(ctx context.Context, b bet.Bet) (bet.Bet, error) {
	now := time.Now()
	query, args, err := qb.InsertInto("bets").
		Columns("user_id", "match_id", "goals_home", "goals_away", "created_at", "updated_at").
		Values(b.UserID, b.MatchID, b.GoalsHome, b.GoalsAway, now, now).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return bet.Bet{}, fmt.Errorf("build insert bet query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isUniqueViolation(err) {
			return bet.Bet{}, bet.ErrDuplicate
		}
		return bet.Bet{}, fmt.Errorf("insert bet: %w", err)
	}

	b.ID = id
	return b, nil
}

func (r *BetRepository) Update(ctx context.Context, b bet.Bet) error {
	query, args, err := qb.Update("bets").
		Set("goals_home", b.GoalsHome).
		Set("goals_away", b.GoalsAway).
		Set("updated_at", time.Now()).
		Where(
			qb.Eq("user_id", b.UserID),
			qb.Eq("match_id", b.MatchID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update bet query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update bet: %w", err)
	}

	return nil
}

func (r *BetRepository) MatchIDsWithoutBet(ctx context.Context, userID int64, matchIDs []int64) ([]int64, error) {
	if len(matchIDs) == 0 {
		return []int64{}, nil
	}

	query, args, err := qb.Select("match_id").From("bets").
		Where(
			qb.Eq("user_id", userID),
			qb.Expr("match_id = ANY(?)", pq.Array(matchIDs)),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bet match ids query: %w", err)
	}

	var betOn []int64
	if err := r.db.SelectContext(ctx, &betOn, query, args...); err != nil {
		return nil, fmt.Errorf("select bet match ids: %w", err)
	}

	covered := make(map[int64]struct{}, len(betOn))
	for _, id := range betOn {
		covered[id] = struct{}{}
	}

	out := make([]int64, 0, len(matchIDs))
	for _, id := range matchIDs {
		if _, ok := covered[id]; !ok {
			out = append(out, id)
		}
	}

	return out, nil
}

func (r *BetRepository) selectBets(ctx context.Context, query string, args []any) ([]bet.Bet, error) {
	var rows []betTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select bets: %w", err)
	}

	out := make([]bet.Bet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
