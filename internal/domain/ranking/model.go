package ranking

import "sort"

// Entry is one user's place in a ranking view.
type Entry struct {
	UserID int64
	Name   string
	Score  int
	Rank   int
}

// Rank orders entries by score descending (name, then id, break display
// ties) and assigns dense ranks: equal scores share a rank and the next
// distinct score gets rank+1, never skipping.
func Rank(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].UserID < out[j].UserID
	})

	rank := 0
	lastScore := 0
	for i := range out {
		if i == 0 || out[i].Score != lastScore {
			rank++
			lastScore = out[i].Score
		}
		out[i].Rank = rank
	}

	return out
}
