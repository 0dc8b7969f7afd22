package postgres

import (
	"time"

	"github.com/scorebets/scorebets/internal/domain/team"
)

type teamTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Short     string    `db:"short"`
	UEFAID    int64     `db:"uefa_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:     m.ID,
		Name:   m.Name,
		Short:  m.Short,
		UEFAID: m.UEFAID,
	}
}
