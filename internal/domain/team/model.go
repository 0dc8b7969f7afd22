package team

import (
	"fmt"
	"unicode/utf8"
)

// Team is immutable reference data for one national side.
type Team struct {
	ID    int64
	Name  string
	Short string
	// UEFAID links the team to the external match feed.
	UEFAID int64
}

func (t Team) Validate() error {
	if n := utf8.RuneCountInString(t.Name); n < 1 || n > 100 {
		return fmt.Errorf("team name must be 1-100 characters")
	}
	if n := utf8.RuneCountInString(t.Short); n < 1 || n > 10 {
		return fmt.Errorf("team short code must be 1-10 characters")
	}

	return nil
}
