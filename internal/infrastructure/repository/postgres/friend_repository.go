package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/scorebets/scorebets/internal/domain/friend"
	qb "github.com/scorebets/scorebets/internal/platform/querybuilder"
)

type FriendRepository struct {
	db *sqlx.DB
}

func NewFriendRepository(db *sqlx.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

func (r *FriendRepository) Add(ctx context.Context, f friend.Friend) error {
	query, args, err := qb.InsertInto("friends").
		Columns("from_user_id", "to_user_id", "created_at").
		Values(f.FromUserID, f.ToUserID, time.Now()).
		Suffix("ON CONFLICT (from_user_id, to_user_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert friend query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert friend: %w", err)
	}

	return nil
}

func (r *FriendRepository) Remove(ctx context.Context, f friend.Friend) error {
	query, args, err := qb.DeleteFrom("friends").
		Where(
			qb.Eq("from_user_id", f.FromUserID),
			qb.Eq("to_user_id", f.ToUserID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete friend query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete friend: %w", err)
	}

	return nil
}

func (r *FriendRepository) ListIDsByUser(ctx context.Context, fromUserID int64) ([]int64, error) {
	query, args, err := qb.Select("to_user_id").From("friends").
		Where(qb.Eq("from_user_id", fromUserID)).
		OrderBy("to_user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list friend ids query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list friend ids: %w", err)
	}

	return ids, nil
}
