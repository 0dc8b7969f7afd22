package user

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// User is one registered participant. Rows are never hard-deleted because
// bets and history keep referencing them.
type User struct {
	ID             int64
	Name           string
	Email          *string
	FacebookID     *string
	GoogleID       *string
	PasswordHash   *string
	EmailConfirmed bool
	Admin          bool
	// ResultsSeenAt is the last time the user opened the results page,
	// used for the unseen-results counter.
	ResultsSeenAt *time.Time
}

func (u User) Validate() error {
	length := utf8.RuneCountInString(u.Name)
	if length < 3 || length > 40 {
		return fmt.Errorf("user name must be 3-40 characters")
	}

	return nil
}
