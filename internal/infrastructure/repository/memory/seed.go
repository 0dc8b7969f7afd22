package memory

import (
	"time"

	"github.com/scorebets/scorebets/internal/domain/bet"
	"github.com/scorebets/scorebets/internal/domain/match"
	"github.com/scorebets/scorebets/internal/domain/team"
	"github.com/scorebets/scorebets/internal/domain/user"
)

// Seed data for local development without a database. The fixtures form
// a tiny tournament slice: two finished group matches, one live, one
// upcoming with teams resolved and one semi-final still paired against
// placeholders.

func SeedUsers() []user.User {
	return []user.User{
		{ID: 1, Name: "Martin", EmailConfirmed: true, Admin: true},
		{ID: 2, Name: "Claudia", EmailConfirmed: true},
		{ID: 3, Name: "Jonas", EmailConfirmed: true},
		{ID: 4, Name: "Henrike", EmailConfirmed: true},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Germany", Short: "GER", UEFAID: 57451},
		{ID: 2, Name: "France", Short: "FRA", UEFAID: 57379},
		{ID: 3, Name: "Spain", Short: "ESP", UEFAID: 57462},
		{ID: 4, Name: "Italy", Short: "ITA", UEFAID: 57397},
	}
}

func SeedMatchTypes() []match.Type {
	return []match.Type{
		{ID: 1, Code: "GROUP", Name: "Group stage", Coef: 1},
		{ID: 2, Code: "R16", Name: "Round of 16", Coef: 2},
		{ID: 3, Code: "QF", Name: "Quarter-final", Coef: 3},
		{ID: 4, Code: "SF", Name: "Semi-final", Coef: 4},
		{ID: 5, Code: "F", Name: "Final", Coef: 5},
	}
}

func SeedMatches(now time.Time) []match.Match {
	team1, team2, team3, team4 := int64(1), int64(2), int64(3), int64(4)
	finished1 := now.Add(-72 * time.Hour)
	finished2 := now.Add(-48 * time.Hour)
	live := now.Add(-1 * time.Hour)
	resultAt1 := finished1.Add(2 * time.Hour)
	resultAt2 := finished2.Add(2 * time.Hour)

	return []match.Match{
		{
			ID:               1,
			HomeTeamID:       &team1,
			AwayTeamID:       &team2,
			TypeID:           1,
			KickoffAt:        finished1,
			TV:               "ARD",
			Result:           &match.Result{GoalsHome: 2, GoalsAway: 1},
			ResultInsertedAt: &resultAt1,
			UEFAID:           2024491,
		},
		{
			ID:               2,
			HomeTeamID:       &team3,
			AwayTeamID:       &team4,
			TypeID:           1,
			KickoffAt:        finished2,
			TV:               "ZDF",
			Result:           &match.Result{GoalsHome: 0, GoalsAway: 0},
			ResultInsertedAt: &resultAt2,
			UEFAID:           2024492,
		},
		{
			ID:         3,
			HomeTeamID: &team1,
			AwayTeamID: &team3,
			TypeID:     1,
			KickoffAt:  live,
			TV:         "ARD",
			UEFAID:     2024493,
		},
		{
			ID:         4,
			HomeTeamID: &team2,
			AwayTeamID: &team4,
			TypeID:     1,
			KickoffAt:  now.Add(24 * time.Hour),
			TV:         "ZDF",
			UEFAID:     2024494,
		},
		{
			ID:        5,
			TypeID:    4,
			KickoffAt: now.Add(7 * 24 * time.Hour),
			TV:        "ARD",
			UEFAID:    2024495,
		},
	}
}

func SeedBets() []bet.Bet {
	return []bet.Bet{
		{ID: 1, UserID: 1, MatchID: 1, GoalsHome: 2, GoalsAway: 1},
		{ID: 2, UserID: 2, MatchID: 1, GoalsHome: 1, GoalsAway: 1},
		{ID: 3, UserID: 3, MatchID: 1, GoalsHome: 3, GoalsAway: 0},
		{ID: 4, UserID: 1, MatchID: 2, GoalsHome: 1, GoalsAway: 2},
		{ID: 5, UserID: 2, MatchID: 2, GoalsHome: 0, GoalsAway: 0},
	}
}
