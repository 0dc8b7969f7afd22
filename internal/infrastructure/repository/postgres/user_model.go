package postgres

import (
	"database/sql"
	"time"

	"github.com/scorebets/scorebets/internal/domain/user"
)

type userTableModel struct {
	ID             int64          `db:"id"`
	Name           string         `db:"name"`
	Email          sql.NullString `db:"email"`
	FacebookID     sql.NullString `db:"facebook_id"`
	GoogleID       sql.NullString `db:"google_id"`
	PasswordHash   sql.NullString `db:"password_hash"`
	EmailConfirmed bool           `db:"email_confirmed"`
	Admin          bool           `db:"admin"`
	ResultsSeenAt  sql.NullTime   `db:"results_seen_at"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:             m.ID,
		Name:           m.Name,
		Email:          nullStringToStringPtr(m.Email),
		FacebookID:     nullStringToStringPtr(m.FacebookID),
		GoogleID:       nullStringToStringPtr(m.GoogleID),
		PasswordHash:   nullStringToStringPtr(m.PasswordHash),
		EmailConfirmed: m.EmailConfirmed,
		Admin:          m.Admin,
		ResultsSeenAt:  nullTimeToTimePtr(m.ResultsSeenAt),
	}
}
