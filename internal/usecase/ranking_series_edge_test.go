package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// Henrike (user 4) never placed a bet; every chart and ranking surface
// must still carry her with zero scores.
func TestRankingService_UserWithoutBets(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	series, err := env.rankingSvc.ScoreSeries(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, []string{"GER FRA", "ESP ITA"}, series.Labels)
	require.Equal(t, []int{0, 0}, series.Scores)

	entry, err := env.rankingSvc.ForUser(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, 0, entry.Score)
	require.Equal(t, 3, entry.Rank)
}

func TestRankingService_FriendsSeries_NoFriends(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	series, err := env.rankingSvc.FriendsSeries(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, series.Data, 1)
	require.Equal(t, "Claudia", series.Data[0].Name)
	require.Equal(t, []int{0, 4}, series.Data[0].Scores)
}
