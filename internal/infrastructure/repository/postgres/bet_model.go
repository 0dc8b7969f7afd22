package postgres

import (
	"time"

	"github.com/scorebets/scorebets/internal/domain/bet"
)

type betTableModel struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	MatchID   int64     `db:"match_id"`
	GoalsHome int       `db:"goals_home"`
	GoalsAway int       `db:"goals_away"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m betTableModel) toDomain() bet.Bet {
	return bet.Bet{
		ID:        m.ID,
		UserID:    m.UserID,
		MatchID:   m.MatchID,
		GoalsHome: m.GoalsHome,
		GoalsAway: m.GoalsAway,
	}
}
