package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/scorebets/scorebets/internal/domain/match"
	qb "github.com/scorebets/scorebets/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListFinished(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.IsNotNull("goals_home")).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list finished matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListUpcomingComplete(ctx context.Context, now time.Time, limit int) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Gt("kickoff_at", now),
			qb.IsNotNull("home_team_id"),
			qb.IsNotNull("away_team_id"),
		).
		OrderBy("kickoff_at", "id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list upcoming matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) CountLive(ctx context.Context, now time.Time) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("matches").
		Where(
			qb.Expr("kickoff_at <= ?", now),
			qb.IsNull("goals_home"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count live matches query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count live matches: %w", err)
	}

	return count, nil
}

func (r *MatchRepository) CountResultsSince(ctx context.Context, since *time.Time) (int, error) {
	conditions := []qb.Condition{qb.IsNotNull("result_inserted_at")}
	if since != nil {
		conditions = append(conditions, qb.Gt("result_inserted_at", *since))
	}

	query, args, err := qb.Select("COUNT(*)").From("matches").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count unseen results query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count unseen results: %w", err)
	}

	return count, nil
}

func (r *MatchRepository) ListMissingTeams(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Expr("(home_team_id IS NULL OR away_team_id IS NULL)")).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches missing teams query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) RecordResult(ctx context.Context, matchID int64, result match.Result, insertedAt time.Time) error {
	query, args, err := qb.Update("matches").
		Set("goals_home", result.GoalsHome).
		Set("goals_away", result.GoalsAway).
		Set("result_inserted_at", insertedAt).
		Set("updated_at", insertedAt).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build record result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("record result: %w", err)
	}

	return nil
}

func (r *MatchRepository) ListTypes(ctx context.Context) ([]match.Type, error) {
	query, args, err := qb.Select("*").From("match_types").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match types query: %w", err)
	}

	var rows []matchTypeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match types: %w", err)
	}

	out := make([]match.Type, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) GetType(ctx context.Context, typeID int64) (match.Type, bool, error) {
	query, args, err := qb.Select("*").From("match_types").
		Where(qb.Eq("id", typeID)).
		ToSQL()
	if err != nil {
		return match.Type{}, false, fmt.Errorf("build select match type query: %w", err)
	}

	var row matchTypeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Type{}, false, nil
		}
		return match.Type{}, false, fmt.Errorf("select match type: %w", err)
	}

	return row.toDomain(), true, nil
}

// Reconcile runs fn inside one transaction; any error rolls every
// SetTeam back.
func (r *MatchRepository) Reconcile(ctx context.Context, fn func(tx match.ReconcileTx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reconcile tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&reconcileTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reconcile tx: %w", err)
	}

	return nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

type reconcileTx struct {
	tx *sqlx.Tx
}

func (t *reconcileTx) TeamIDByExternalID(ctx context.Context, externalID int64) (int64, bool, error) {
	query, args, err := qb.Select("id").From("teams").
		Where(qb.Eq("uefa_id", externalID)).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build select team by external id query: %w", err)
	}

	var id int64
	if err := t.tx.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select team by external id: %w", err)
	}

	return id, true, nil
}

func (t *reconcileTx) MatchByExternalID(ctx context.Context, externalID int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("uefa_id", externalID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by external id query: %w", err)
	}

	var row matchTableModel
	if err := t.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by external id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (t *reconcileTx) SetTeam(ctx context.Context, matchID int64, side match.Side, teamID int64) error {
	column := "home_team_id"
	if side == match.SideAway {
		column = "away_team_id"
	}

	query, args, err := qb.Update("matches").
		Set(column, teamID).
		Set("updated_at", time.Now()).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set %s query: %w", column, err)
	}

	if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set %s: %w", column, err)
	}

	return nil
}
