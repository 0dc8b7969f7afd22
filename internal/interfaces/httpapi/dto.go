package httpapi

import (
	"time"

	"github.com/scorebets/scorebets/internal/domain/bet"
	"github.com/scorebets/scorebets/internal/domain/history"
	"github.com/scorebets/scorebets/internal/domain/ranking"
	"github.com/scorebets/scorebets/internal/domain/team"
	"github.com/scorebets/scorebets/internal/usecase"
)

type teamDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Short string `json:"short"`
}

type matchTypeDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Coef int    `json:"coef"`
}

type resultDTO struct {
	GoalsHome int `json:"goals_home"`
	GoalsAway int `json:"goals_away"`
}

type matchDTO struct {
	ID        int64        `json:"id"`
	HomeTeam  *teamDTO     `json:"home_team"`
	AwayTeam  *teamDTO     `json:"away_team"`
	Type      matchTypeDTO `json:"type"`
	KickoffAt time.Time    `json:"kickoff_at"`
	TV        string       `json:"tv,omitempty"`
	Result    *resultDTO   `json:"result,omitempty"`
}

type betDTO struct {
	MatchID   int64 `json:"match_id"`
	GoalsHome int   `json:"goals_home"`
	GoalsAway int   `json:"goals_away"`
}

type userMatchDTO struct {
	matchDTO
	Bet     *betDTO `json:"bet,omitempty"`
	Score   int     `json:"score"`
	Expired bool    `json:"expired"`
}

type rankingEntryDTO struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Rank   int    `json:"rank"`
}

type rankSnapshotDTO struct {
	MatchID int64 `json:"match_id"`
	Rank    int   `json:"rank"`
}

type scoreSeriesDTO struct {
	Labels []string `json:"labels"`
	Scores []int    `json:"scores"`
}

type userSeriesDTO struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Scores []int  `json:"scores"`
}

type friendsSeriesDTO struct {
	Labels []string        `json:"labels"`
	Data   []userSeriesDTO `json:"data"`
}

type dashboardDTO struct {
	UpcomingWithoutBet    int     `json:"upcoming_without_bet"`
	UpcomingWithoutBetIDs []int64 `json:"upcoming_without_bet_ids"`
	LiveMatches           int     `json:"live_matches"`
	UnseenResults         int     `json:"unseen_results"`
}

type sideUpdateDTO struct {
	MatchID int64  `json:"match_id"`
	Side    string `json:"side"`
	TeamID  int64  `json:"team_id"`
}

func teamToDTO(t *team.Team) *teamDTO {
	if t == nil {
		return nil
	}
	return &teamDTO{ID: t.ID, Name: t.Name, Short: t.Short}
}

func matchViewToDTO(v usecase.MatchView) matchDTO {
	out := matchDTO{
		ID:       v.Match.ID,
		HomeTeam: teamToDTO(v.HomeTeam),
		AwayTeam: teamToDTO(v.AwayTeam),
		Type: matchTypeDTO{
			Code: v.Type.Code,
			Name: v.Type.Name,
			Coef: v.Type.Coef,
		},
		KickoffAt: v.Match.KickoffAt,
		TV:        v.Match.TV,
	}
	if v.Match.Result != nil {
		out.Result = &resultDTO{
			GoalsHome: v.Match.Result.GoalsHome,
			GoalsAway: v.Match.Result.GoalsAway,
		}
	}

	return out
}

func userMatchToDTO(row usecase.UserMatch) userMatchDTO {
	out := userMatchDTO{
		matchDTO: matchViewToDTO(usecase.MatchView{
			Match:    row.Match,
			Type:     row.Type,
			HomeTeam: row.HomeTeam,
			AwayTeam: row.AwayTeam,
		}),
		Score:   row.Score,
		Expired: row.Expired,
	}
	if row.Bet != nil {
		out.Bet = betToDTO(*row.Bet)
	}

	return out
}

func betToDTO(b bet.Bet) *betDTO {
	return &betDTO{
		MatchID:   b.MatchID,
		GoalsHome: b.GoalsHome,
		GoalsAway: b.GoalsAway,
	}
}

func rankingToDTOs(entries []ranking.Entry) []rankingEntryDTO {
	out := make([]rankingEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, rankingEntryDTO{
			UserID: entry.UserID,
			Name:   entry.Name,
			Score:  entry.Score,
			Rank:   entry.Rank,
		})
	}
	return out
}

func snapshotsToDTOs(snapshots []history.Snapshot) []rankSnapshotDTO {
	out := make([]rankSnapshotDTO, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, rankSnapshotDTO{MatchID: s.MatchID, Rank: s.Rank})
	}
	return out
}
