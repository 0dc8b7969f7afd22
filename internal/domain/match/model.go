package match

import "time"

// Side identifies one half of a match pairing.
type Side string

const (
	SideHome Side = "HOME"
	SideAway Side = "AWAY"
)

// Type categorises a match (group stage, final, ...) and carries the
// scoring coefficient applied to points earned on it.
type Type struct {
	ID   int64
	Code string
	Name string
	Coef int
}

// Result is a final score. Matches store either no result or a complete
// one; the two goal counts never exist independently.
type Result struct {
	GoalsHome int
	GoalsAway int
}

// Match is one scheduled game. Team references stay nil until the draw
// (or the feed reconciler) resolves the pairing.
type Match struct {
	ID         int64
	HomeTeamID *int64
	AwayTeamID *int64
	TypeID     int64
	KickoffAt  time.Time
	TV         string
	Result     *Result
	// ResultInsertedAt records when the final score was stored, which
	// drives the unseen-results counter.
	ResultInsertedAt *time.Time
	// UEFAID links the match to the external feed for reconciliation.
	UEFAID int64
}

// Played reports whether the final score is recorded.
func (m Match) Played() bool {
	return m.Result != nil
}

// Expired reports whether betting is closed, i.e. kickoff has passed.
func (m Match) Expired(now time.Time) bool {
	return !now.Before(m.KickoffAt)
}

// PairingComplete reports whether both teams are known.
func (m Match) PairingComplete() bool {
	return m.HomeTeamID != nil && m.AwayTeamID != nil
}

// TeamID returns the team reference for one side.
func (m Match) TeamID(side Side) *int64 {
	if side == SideHome {
		return m.HomeTeamID
	}
	return m.AwayTeamID
}
