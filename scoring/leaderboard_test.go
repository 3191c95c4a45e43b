package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cactuspool/pickem/models"
	"github.com/cactuspool/pickem/scoring"
)

func leaderboardInput() scoring.LeaderboardInput {
	winner := 10
	return scoring.LeaderboardInput{
		Users: []*models.User{
			{ID: "alice", Name: "Alice"},
			{ID: "bob", Name: "Bob"},
			{ID: "carol", Name: "Carol"},
		},
		Groups:  []*models.Group{testGroup()},
		Matches: completedRoundRobin(),
		KnockoutRounds: []*models.KnockoutMatch{
			knockoutMatch(1, testCutoffs.Second.AddDate(0, 0, 7), 10, 20, &winner),
		},
		GroupPicks: map[string][]*models.GroupPick{
			"alice": {groupPick("alice", 1, 10, 20)}, // exact: 3
			"bob":   {groupPick("bob", 1, 30, 40)},   // no overlap: 0
			// carol never picked
		},
		KnockoutPicks: map[string][]*models.KnockoutPick{
			"bob": {{UserID: "bob", KnockoutMatchID: 1, WinnerID: 10}}, // final round: 4
		},
	}
}

func TestLeaderboard_RanksByTotalDescending(t *testing.T) {
	engine := scoring.NewEngine(testCutoffs, scoring.RequireCompleteGroupPicks)

	entries, err := engine.Leaderboard(leaderboardInput())

	require.NoError(t, err)
	require.Len(t, entries, 2, "carol has no complete group picks and is excluded")

	assert.Equal(t, "bob", entries[0].User.ID)
	assert.Equal(t, 4, entries[0].TotalPoints)
	assert.Equal(t, "alice", entries[1].User.ID)
	assert.Equal(t, 3, entries[1].TotalPoints)
}

func TestLeaderboard_ZeroGroupScoreIsNotAbsent(t *testing.T) {
	engine := scoring.NewEngine(testCutoffs, scoring.RequireCompleteGroupPicks)

	entries, err := engine.Leaderboard(leaderboardInput())
	require.NoError(t, err)

	// Bob scored zero group points but did complete his picks: he stays on
	// the board with an explicit 0, not a nil.
	require.NotNil(t, entries[0].GroupPoints)
	assert.Equal(t, 0, *entries[0].GroupPoints)
}

func TestLeaderboard_IncludeAllUsers(t *testing.T) {
	engine := scoring.NewEngine(testCutoffs, scoring.IncludeAllUsers)

	entries, err := engine.Leaderboard(leaderboardInput())

	require.NoError(t, err)
	require.Len(t, entries, 3)

	last := entries[2]
	assert.Equal(t, "carol", last.User.ID)
	assert.Nil(t, last.GroupPoints, "incomplete picks stay distinguishable from zero")
	assert.Equal(t, 0, last.TotalPoints)
}

func TestLeaderboard_TieBreakKeepsInputOrder(t *testing.T) {
	input := leaderboardInput()
	// Identical exact group picks and no knockout picks: both total 3.
	input.GroupPicks["bob"] = []*models.GroupPick{groupPick("bob", 1, 10, 20)}
	input.KnockoutPicks = nil

	engine := scoring.NewEngine(testCutoffs, scoring.RequireCompleteGroupPicks)
	entries, err := engine.Leaderboard(input)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entries[0].TotalPoints, entries[1].TotalPoints)
	assert.Equal(t, "alice", entries[0].User.ID, "equal totals keep user creation order")
	assert.Equal(t, "bob", entries[1].User.ID)
}

func TestLeaderboard_SurfacesCorruptPicks(t *testing.T) {
	input := leaderboardInput()
	input.GroupPicks["alice"] = append(input.GroupPicks["alice"], groupPick("alice", 1, 20, 10))

	engine := scoring.NewEngine(testCutoffs, scoring.RequireCompleteGroupPicks)
	_, err := engine.Leaderboard(input)

	assert.ErrorIs(t, err, scoring.ErrDuplicatePick)
}

func TestLeaderboard_Idempotent(t *testing.T) {
	engine := scoring.NewEngine(testCutoffs, scoring.RequireCompleteGroupPicks)

	first, err := engine.Leaderboard(leaderboardInput())
	require.NoError(t, err)
	second, err := engine.Leaderboard(leaderboardInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
