package postgres

import (
	"database/sql"
	"time"

	"github.com/scorebets/scorebets/internal/domain/match"
)

type matchTableModel struct {
	ID               int64         `db:"id"`
	HomeTeamID       sql.NullInt64 `db:"home_team_id"`
	AwayTeamID       sql.NullInt64 `db:"away_team_id"`
	TypeID           int64         `db:"type_id"`
	KickoffAt        time.Time     `db:"kickoff_at"`
	TV               string        `db:"tv"`
	GoalsHome        sql.NullInt64 `db:"goals_home"`
	GoalsAway        sql.NullInt64 `db:"goals_away"`
	ResultInsertedAt sql.NullTime  `db:"result_inserted_at"`
	UEFAID           int64         `db:"uefa_id"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

func (m matchTableModel) toDomain() match.Match {
	out := match.Match{
		ID:               m.ID,
		HomeTeamID:       nullInt64ToInt64Ptr(m.HomeTeamID),
		AwayTeamID:       nullInt64ToInt64Ptr(m.AwayTeamID),
		TypeID:           m.TypeID,
		KickoffAt:        m.KickoffAt,
		TV:               m.TV,
		ResultInsertedAt: nullTimeToTimePtr(m.ResultInsertedAt),
		UEFAID:           m.UEFAID,
	}
	// goals_home and goals_away are constrained to be null together.
	if m.GoalsHome.Valid && m.GoalsAway.Valid {
		out.Result = &match.Result{
			GoalsHome: int(m.GoalsHome.Int64),
			GoalsAway: int(m.GoalsAway.Int64),
		}
	}

	return out
}

type matchTypeTableModel struct {
	ID   int64  `db:"id"`
	Code string `db:"code"`
	Name string `db:"name"`
	Coef int    `db:"coef"`
}

func (m matchTypeTableModel) toDomain() match.Type {
	return match.Type{
		ID:   m.ID,
		Code: m.Code,
		Name: m.Name,
		Coef: m.Coef,
	}
}
