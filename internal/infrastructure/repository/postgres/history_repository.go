package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/scorebets/scorebets/internal/domain/history"
	qb "github.com/scorebets/scorebets/internal/platform/querybuilder"
)

type HistoryRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Upsert(ctx context.Context, s history.Snapshot) error {
	query, args, err := qb.InsertInto("rank_history").
		Columns("user_id", "match_id", "rank").
		Values(s.UserID, s.MatchID, s.Rank).
		Suffix("ON CONFLICT (user_id, match_id) DO UPDATE SET rank = EXCLUDED.rank").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert rank snapshot query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert rank snapshot: %w", err)
	}

	return nil
}

func (r *HistoryRepository) ListByUser(ctx context.Context, userID int64) ([]history.Snapshot, error) {
	query, args, err := qb.Select("h.user_id", "h.match_id", "h.rank").
		From("rank_history h JOIN matches m ON m.id = h.match_id").
		Where(qb.Eq("h.user_id", userID)).
		OrderBy("m.kickoff_at", "m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list rank snapshots query: %w", err)
	}

	var rows []historyTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list rank snapshots: %w", err)
	}

	out := make([]history.Snapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, history.Snapshot{
			UserID:  row.UserID,
			MatchID: row.MatchID,
			Rank:    row.Rank,
		})
	}

	return out, nil
}

type historyTableModel struct {
	UserID  int64 `db:"user_id"`
	MatchID int64 `db:"match_id"`
	Rank    int   `db:"rank"`
}
