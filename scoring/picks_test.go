package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cactuspool/pickem/models"
	"github.com/cactuspool/pickem/scoring"
)

var testCutoffs = scoring.Cutoffs{
	First:  time.Date(2022, 12, 7, 0, 0, 0, 0, time.UTC),
	Second: time.Date(2022, 12, 11, 0, 0, 0, 0, time.UTC),
}

func testEngine() *scoring.Engine {
	return scoring.NewEngine(testCutoffs, scoring.RequireCompleteGroupPicks)
}

func groupPick(userID string, groupID, first, second int) *models.GroupPick {
	return &models.GroupPick{
		UserID:       userID,
		GroupID:      groupID,
		FirstSeedID:  first,
		SecondSeedID: second,
	}
}

func TestScoreGroupPick(t *testing.T) {
	seeds := models.SeedOrder{FirstSeedID: 10, SecondSeedID: 20}

	tests := []struct {
		name   string
		first  int
		second int
		want   int
	}{
		{"exact", 10, 20, 3},
		{"swapped", 20, 10, 2},
		{"first seed only", 10, 30, 1},
		{"second seed only", 30, 20, 1},
		{"second seed in first slot", 20, 30, 1},
		{"first seed in second slot", 30, 10, 1},
		{"no overlap", 30, 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pick := groupPick("u1", 1, tt.first, tt.second)
			assert.Equal(t, tt.want, scoring.ScoreGroupPick(pick, seeds))
		})
	}
}

func TestScoreGroupPick_SwapSymmetry(t *testing.T) {
	// Swapping the predicted slots maps 3<->2 and leaves 1 and 0 alone.
	seeds := models.SeedOrder{FirstSeedID: 10, SecondSeedID: 20}

	for _, pair := range [][2]int{{10, 20}, {20, 10}, {10, 30}, {30, 40}} {
		straight := scoring.ScoreGroupPick(groupPick("u1", 1, pair[0], pair[1]), seeds)
		swapped := scoring.ScoreGroupPick(groupPick("u1", 1, pair[1], pair[0]), seeds)

		switch straight {
		case 3:
			assert.Equal(t, 2, swapped)
		case 2:
			assert.Equal(t, 3, swapped)
		default:
			assert.Equal(t, straight, swapped)
		}
	}
}

func knockoutMatch(id int, date time.Time, team1, team2 int, winner *int) *models.KnockoutMatch {
	return &models.KnockoutMatch{
		ID:       id,
		Date:     date,
		Team1ID:  team1,
		Team2ID:  team2,
		WinnerID: winner,
		Played:   winner != nil,
	}
}

func TestScoreKnockoutPick_CutoffBands(t *testing.T) {
	winner := 10
	pick := &models.KnockoutPick{UserID: "u1", KnockoutMatchID: 1, WinnerID: 10}
	engine := testEngine()

	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"before first cutoff", testCutoffs.First.AddDate(0, 0, -2), 1},
		{"on first cutoff", testCutoffs.First, 1},
		{"between cutoffs", testCutoffs.First.AddDate(0, 0, 2), 2},
		{"on second cutoff", testCutoffs.Second, 2},
		{"after second cutoff", testCutoffs.Second.AddDate(0, 0, 3), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := knockoutMatch(1, tt.date, 10, 20, &winner)
			assert.Equal(t, tt.want, engine.ScoreKnockoutPick(pick, match))
		})
	}
}

func TestScoreKnockoutPick_WrongOrPending(t *testing.T) {
	winner := 20
	engine := testEngine()
	pick := &models.KnockoutPick{UserID: "u1", KnockoutMatchID: 1, WinnerID: 10}

	finalDate := testCutoffs.Second.AddDate(0, 0, 7)
	assert.Equal(t, 0, engine.ScoreKnockoutPick(pick, knockoutMatch(1, finalDate, 10, 20, &winner)))
	assert.Equal(t, 0, engine.ScoreKnockoutPick(pick, knockoutMatch(1, finalDate, 10, 20, nil)))
}

func TestScoreKnockoutPick_LaterRoundsPayMore(t *testing.T) {
	winner := 10
	engine := testEngine()
	pick := &models.KnockoutPick{UserID: "u1", KnockoutMatchID: 1, WinnerID: 10}

	early := engine.ScoreKnockoutPick(pick, knockoutMatch(1, testCutoffs.First.AddDate(0, 0, -1), 10, 20, &winner))
	late := engine.ScoreKnockoutPick(pick, knockoutMatch(1, testCutoffs.Second.AddDate(0, 0, 1), 10, 20, &winner))

	assert.Greater(t, late, early)
}

func TestGroupScore_AbsentUntilAllGroupsPicked(t *testing.T) {
	groups := []*models.Group{
		testGroup(),
		{ID: 2, Name: "Group B", Team1ID: 50, Team2ID: 60, Team3ID: 70, Team4ID: 80},
	}
	picks := []*models.GroupPick{groupPick("u1", 1, 10, 20)}

	total, err := testEngine().GroupScore(picks, groups, completedRoundRobin())

	require.NoError(t, err)
	assert.Nil(t, total, "one pick for two groups must report absent, not zero")
}

func TestGroupScore_UndeterminedGroupContributesZero(t *testing.T) {
	groups := []*models.Group{
		testGroup(),
		{ID: 2, Name: "Group B", Team1ID: 50, Team2ID: 60, Team3ID: 70, Team4ID: 80},
	}
	// Group A is fully played, Group B has not started.
	picks := []*models.GroupPick{
		groupPick("u1", 1, 10, 20),
		groupPick("u1", 2, 50, 60),
	}

	total, err := testEngine().GroupScore(picks, groups, completedRoundRobin())

	require.NoError(t, err)
	require.NotNil(t, total)
	assert.Equal(t, 3, *total)
}

func TestGroupScore_DuplicatePickSurfaces(t *testing.T) {
	groups := []*models.Group{testGroup()}
	picks := []*models.GroupPick{
		groupPick("u1", 1, 10, 20),
		groupPick("u1", 1, 20, 10),
	}

	_, err := testEngine().GroupScore(picks, groups, completedRoundRobin())

	assert.ErrorIs(t, err, scoring.ErrDuplicatePick)
}

func TestGroupScore_UnknownGroup(t *testing.T) {
	picks := []*models.GroupPick{groupPick("u1", 99, 10, 20)}

	_, err := testEngine().GroupScore(picks, []*models.Group{testGroup()}, nil)

	assert.ErrorIs(t, err, scoring.ErrUnknownGroup)
}

func TestGroupScore_TeamOutsideGroup(t *testing.T) {
	picks := []*models.GroupPick{groupPick("u1", 1, 10, 50)}

	_, err := testEngine().GroupScore(picks, []*models.Group{testGroup()}, nil)

	assert.ErrorIs(t, err, scoring.ErrUnknownTeam)
}

func TestKnockoutScore_Totals(t *testing.T) {
	winner10, winner20 := 10, 20
	matches := []*models.KnockoutMatch{
		knockoutMatch(1, testCutoffs.First.AddDate(0, 0, -1), 10, 20, &winner10),
		knockoutMatch(2, testCutoffs.Second.AddDate(0, 0, 4), 10, 20, &winner20),
		knockoutMatch(3, testCutoffs.Second.AddDate(0, 0, 7), 10, 20, nil),
	}
	picks := []*models.KnockoutPick{
		{UserID: "u1", KnockoutMatchID: 1, WinnerID: 10}, // correct, early round
		{UserID: "u1", KnockoutMatchID: 2, WinnerID: 20}, // correct, late round
		{UserID: "u1", KnockoutMatchID: 3, WinnerID: 10}, // unplayed
	}

	total, err := testEngine().KnockoutScore(picks, matches)

	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestKnockoutScore_DuplicatePickSurfaces(t *testing.T) {
	winner := 10
	matches := []*models.KnockoutMatch{
		knockoutMatch(1, testCutoffs.First, 10, 20, &winner),
	}
	picks := []*models.KnockoutPick{
		{UserID: "u1", KnockoutMatchID: 1, WinnerID: 10},
		{UserID: "u1", KnockoutMatchID: 1, WinnerID: 20},
	}

	_, err := testEngine().KnockoutScore(picks, matches)

	assert.ErrorIs(t, err, scoring.ErrDuplicatePick)
}

func TestKnockoutScore_UnknownMatch(t *testing.T) {
	picks := []*models.KnockoutPick{{UserID: "u1", KnockoutMatchID: 42, WinnerID: 10}}

	_, err := testEngine().KnockoutScore(picks, nil)

	assert.ErrorIs(t, err, scoring.ErrUnknownKnockoutMatch)
}
